package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chiton/gridgraph"
	"github.com/katalvlaran/chiton/solve"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

type rootFlags struct {
	configPath string
	cfg        Config
}

type solveFlags struct {
	route bool
	json  bool
}

// =============================================================================
// COMMAND DEFINITIONS
// =============================================================================

func newRootCmd() *cobra.Command {
	rf := &rootFlags{cfg: defaultConfig()}

	root := &cobra.Command{
		Use:   "chiton",
		Short: "Find the lowest-risk route through a grid of entry costs",
		Long: `chiton reads a grid of digits 1-9, one row per line, and finds the
cheapest orthogonal route from the top-left to the bottom-right corner,
where each digit is the cost of entering that cell.

It answers for the grid as given and for the grid tiled 5x5, where every
tile step to the right or down raises costs by one, wrapping 9 back to 1.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rf.resolve(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "YAML config file (tile_factor, start, end, parts, log_level, log_format)")
	pf.IntVar(&rf.cfg.TileFactor, "tile-factor", rf.cfg.TileFactor, "tiles per axis for the expanded grid")
	pf.StringVar(&rf.cfg.LogLevel, "log-level", rf.cfg.LogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&rf.cfg.LogFormat, "log-format", rf.cfg.LogFormat, "log format: text or json")

	root.AddCommand(newSolveCmd(rf), newExpandCmd(rf))

	return root
}

func newSolveCmd(rf *rootFlags) *cobra.Command {
	sf := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the minimum route cost for the base and expanded grids",
		Long: `Read a grid from file (or stdin when no file or "-" is given) and print
the lowest total entry cost from start to end. The start cell's own cost
is never counted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, rf, sf, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&rf.cfg.Start, "start", "", "start cell as x,y (default top-left)")
	f.StringVar(&rf.cfg.End, "end", "", "end cell as x,y (default bottom-right of each grid)")
	f.StringVar(&rf.cfg.Parts, "parts", rf.cfg.Parts, "which grids to solve: base, expanded or both")
	f.BoolVar(&sf.route, "route", false, "also print the route, one x,y per line")
	f.BoolVar(&sf.json, "json", false, "print the result as JSON")

	return cmd
}

func newExpandCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "expand [file]",
		Short: "Write the tiled grid in the same digit format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			g, err := gridgraph.ParseReader(in)
			if err != nil {
				return err
			}
			big, err := gridgraph.ExpandBy(g, rf.cfg.TileFactor)
			if err != nil {
				return err
			}

			return gridgraph.Format(cmd.OutOrStdout(), big)
		},
	}
}

// =============================================================================
// HANDLERS
// =============================================================================

// resolve layers the config file under any flags the user set explicitly.
func (rf *rootFlags) resolve(cmd *cobra.Command) error {
	if rf.configPath == "" {
		return nil
	}
	fileCfg, err := loadConfig(rf.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	merged := fileCfg
	if flags.Changed("tile-factor") {
		merged.TileFactor = rf.cfg.TileFactor
	}
	if flags.Changed("log-level") {
		merged.LogLevel = rf.cfg.LogLevel
	}
	if flags.Changed("log-format") {
		merged.LogFormat = rf.cfg.LogFormat
	}
	if flags.Changed("start") {
		merged.Start = rf.cfg.Start
	}
	if flags.Changed("end") {
		merged.End = rf.cfg.End
	}
	if flags.Changed("parts") {
		merged.Parts = rf.cfg.Parts
	}
	rf.cfg = merged

	return nil
}

type jsonAnswer struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cost   int      `json:"cost"`
	Route  []string `json:"route,omitempty"`
}

type jsonReport struct {
	RunID    string      `json:"run_id"`
	Base     *jsonAnswer `json:"base,omitempty"`
	Expanded *jsonAnswer `json:"expanded,omitempty"`
}

func runSolve(cmd *cobra.Command, rf *rootFlags, sf *solveFlags, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), rf.cfg.LogLevel, rf.cfg.LogFormat)
	if err != nil {
		return err
	}
	cfg, err := rf.cfg.solveConfig(logger)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	rep, err := solve.FromReader(cmd.Context(), in, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sf.json {
		jr := jsonReport{
			RunID:    rep.RunID,
			Base:     toJSON(rep.Base, sf.route),
			Expanded: toJSON(rep.Expanded, sf.route),
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(jr)
	}

	printAnswer(out, "Base", rep.Base, sf.route)
	printAnswer(out, "Expanded", rep.Expanded, sf.route)

	return nil
}

func toJSON(a *solve.Answer, withRoute bool) *jsonAnswer {
	if a == nil {
		return nil
	}
	ja := &jsonAnswer{Width: a.Width, Height: a.Height, Cost: a.Result.Cost}
	if withRoute {
		ja.Route = make([]string, len(a.Result.Route))
		for i, p := range a.Result.Route {
			ja.Route[i] = p.String()
		}
	}

	return ja
}

func printAnswer(w io.Writer, name string, a *solve.Answer, withRoute bool) {
	if a == nil {
		return
	}
	fmt.Fprintf(w, "%s (%dx%d): %d\n", name, a.Width, a.Height, a.Result.Cost)
	if !withRoute {
		return
	}
	for _, p := range a.Result.Route {
		fmt.Fprintln(w, p)
	}
}

// openInput returns the file named by args[0], or the command's stdin when
// there is no argument or it is "-".
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}
