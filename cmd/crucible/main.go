/*
Crucible reads a grid of single-digit movement costs and prints the cheapest
way from the top-left to the bottom-right corner under each configured mode.

	crucible -input map.txt
	crucible -config config.yaml -path < map.txt

Without -config the two reference modes run: "bounded" (at most 3 steps in a
straight line) and "ultra" (at least 4 and at most 10 steps before turning or
stopping).
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/solver"
)

var (
	configPath    = flag.String("config", "", "yaml config listing the modes to run")
	inputPath     = flag.String("input", "-", "grid file, or - for stdin")
	maxIterations = flag.Int("max-iterations", 0, "cap on finalized states per mode, 0 for no cap")
	showPath      = flag.Bool("path", false, "print the moves of each cheapest route")
	debug         = flag.Bool("debug", false, "log timings and expanded state counts")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("crucible: ")
	flag.Parse()

	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer) error {
	cfg := solver.DefaultConfig()
	if *configPath != "" {
		loaded, err := solver.FromYaml(*configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if *maxIterations > 0 {
		cfg.MaxIterations = *maxIterations
	}

	g, err := readGrid(*inputPath)
	if err != nil {
		return err
	}
	if *debug {
		log.Printf("grid %dx%d, %d modes", g.Rows(), g.Cols(), len(cfg.Modes))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var extra []dijkstra.Option
	if *showPath {
		extra = append(extra, dijkstra.WithReturnPath())
	}
	reports, err := solver.Solve(ctx, g, cfg, extra...)
	if err != nil {
		return err
	}

	for _, rep := range reports {
		if *debug {
			log.Printf("%s: %d states in %v", rep.Mode.Name, rep.Expanded, rep.Elapsed)
		}
		if !rep.Found {
			fmt.Fprintf(out, "%s: no path\n", rep.Mode.Name)
			continue
		}
		fmt.Fprintf(out, "%s: %d\n", rep.Mode.Name, rep.Cost)
		if *showPath {
			fmt.Fprintf(out, "  %s\n", moves(rep.Path))
		}
	}

	return nil
}

func readGrid(path string) (*grid.Grid, error) {
	if path == "-" {
		return grid.Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return grid.Read(f)
}

// moves renders a path as compass letters, one per step.
func moves(path []dijkstra.State) string {
	var sb strings.Builder
	for _, s := range path {
		switch s.Dir {
		case grid.North:
			sb.WriteByte('N')
		case grid.South:
			sb.WriteByte('S')
		case grid.East:
			sb.WriteByte('E')
		case grid.West:
			sb.WriteByte('W')
		}
	}

	return sb.String()
}
