// Command binpacking solves bin-packing instances with the dpsearch
// engine, exactly mirroring didp-rust-models' bin_packing_rpid binary's
// CLI surface.
package main

import (
	"fmt"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/romfontaine/dpsearch/internal/cliutil"
	"github.com/romfontaine/dpsearch/internal/config"
	"github.com/romfontaine/dpsearch/internal/problems/binpacking"
	"github.com/romfontaine/dpsearch/pkg/dpsearch"
	"github.com/romfontaine/dpsearch/pkg/dpsearch/history"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		solver     string
		historyOut string
		timeLimit  float64
		configFile string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:          "binpacking <input_file>",
		Short:        "Solve a bin-packing instance with anytime DP search",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := cliutil.NewLogger(os.Stderr, level)

			defaults, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("solver") && defaults.Solver != "" {
				solver = defaults.Solver
			}
			if !cmd.Flags().Changed("history") && defaults.History != "" {
				historyOut = defaults.History
			}
			if !cmd.Flags().Changed("time-limit") && defaults.TimeLimit != 0 {
				timeLimit = defaults.TimeLimit
			}

			start := time.Now()
			inst, err := binpacking.ReadFromFile(args[0])
			if err != nil {
				return err
			}
			problem := binpacking.NewProblem(inst)
			logger.Infof("Preparing time: %gs", time.Since(start).Seconds())

			params := dpsearch.SearchParameters{TimeLimit: time.Duration(timeLimit * float64(time.Second))}

			var sol dpsearch.Solution[int]
			w, err := history.NewWriter[int](historyOut, nil)
			if err != nil {
				return err
			}
			defer w.Close()
			if err := w.WriteRunHeader(cliutil.RunID()); err != nil {
				logger.Warnf("failed to write history run header: %v", err)
			}

			switch solver {
			case "cabs":
				beamParams := dpsearch.DefaultCABSParameters()
				s := dpsearch.NewCABS[binpacking.State, int, string](problem, binpacking.Dominance{}, params, beamParams)
				sol, err = dpsearch.Run[int](s, w, beamParams.KeepAllSolutions)
			case "astar":
				s := dpsearch.NewAStar[binpacking.State, int, string](problem, binpacking.Dominance{}, params)
				sol, err = dpsearch.Run[int](s, w, true)
			default:
				return fmt.Errorf("unknown solver %q (want cabs or astar)", solver)
			}
			if err != nil {
				return err
			}

			history.PrintStatistics(os.Stdout, sol)
			if sol.HasCost {
				order := binpacking.PackedOrder(sol.Transitions)
				inst.PrintSolution(order)
				if inst.Validate(order, sol.Cost) {
					fmt.Println("The solution is valid.")
				} else {
					fmt.Println("The solution is invalid.")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&solver, "solver", "s", "cabs", "solver: cabs or astar")
	cmd.Flags().StringVar(&historyOut, "history", "history.csv", "file to save the solution history")
	cmd.Flags().Float64VarP(&timeLimit, "time-limit", "t", 1800.0, "wall-clock time limit in seconds")
	cmd.Flags().StringVar(&configFile, "config", "", "optional TOML file of flag defaults")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}
