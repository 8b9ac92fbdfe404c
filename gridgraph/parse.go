package gridgraph

import (
	"bufio"
	"io"
	"strings"
)

// Parse builds a Grid from digit text: one row per line, every character a
// digit '1'..'9'. A trailing newline, CRLF line endings and blank trailing
// lines are accepted; anything else malformed is reported as *ParseError.
func Parse(text string) (*Grid, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader is Parse over an io.Reader. Read failures are returned as is.
func ParseReader(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		w, h    int
		costs   []int
		pending int // blank lines seen since the last row
		line    int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			pending++
			continue
		}
		if pending > 0 && h > 0 {
			// blank line in the middle of the grid
			return nil, &ParseError{Line: line - pending, Err: ErrNonRectangular}
		}
		pending = 0
		if h == 0 {
			w = len(text)
			costs = make([]int, 0, w*w)
		} else if len(text) != w {
			return nil, &ParseError{Line: line, Err: ErrNonRectangular}
		}
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c < '1' || c > '9' {
				return nil, &ParseError{Line: line, Column: i + 1, Err: ErrInvalidDigit}
			}
			costs = append(costs, int(c-'0'))
		}
		h++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if h == 0 {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}

	return newGrid(w, h, costs), nil
}

// Format writes g in the format accepted by Parse, one row per line.
func Format(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		for _, c := range g.costs[y*g.Width : (y+1)*g.Width] {
			if err := bw.WriteByte(byte('0' + c)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// String renders g as digit text, the inverse of Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height)
	_ = Format(&sb, g)

	return sb.String()
}
