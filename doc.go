// Package chiton finds the lowest-risk route through a cave whose every
// cell carries an entry cost from 1 to 9.
//
// What is chiton?
//
//	A small, dependency-light toolkit made of three layers:
//		• gridgraph: the immutable cost Grid, digit-text parsing and the
//		  5×5 tiled expansion with cost wraparound
//		• dijkstra:  node-weighted shortest path with a lazy-deletion heap,
//		  route reconstruction and validation
//		• solve:     the base and expanded answers, computed in parallel
//
// Entry cost:
//
//	Moving into a cell costs that cell's digit. The start cell is free.
//
//	    1 1 6          start (0,0), end (2,2)
//	    1 3 8          cheapest: down, down, right, right
//	    2 1 3          cost 1 + 2 + 1 + 3 = 7
//
// Expansion:
//
//	The expanded map is 5 tiles wide and 5 tiles tall. Tile (tx,ty) is the
//	base map with every cost raised by tx+ty, wrapping 9 back to 1:
//
//	    cost' = ((cost - 1 + tx + ty) mod 9) + 1
//
// The cmd/chiton command reads a map from a file or stdin and prints both
// answers:
//
//	go run ./cmd/chiton solve input.txt
package chiton
