package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridlab/config"
	"github.com/katalvlaran/gridlab/input"
)

// app carries what every solver command needs once flags are parsed.
type app struct {
	out io.Writer
	log zerolog.Logger
	cfg config.Config

	configPath string
	logLevel   string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:          "gridlab",
		Short:        "Solve grid simulation and search puzzles",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(a.logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			a.log = zerolog.New(zerolog.ConsoleWriter{Out: errOut, TimeFormat: time.RFC3339}).
				Level(level).With().Timestamp().Str("cmd", cmd.Name()).Logger()

			a.cfg, err = config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.log.Debug().Str("config", a.configPath).Interface("settings", a.cfg).Msg("configuration loaded")

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file (defaults apply when omitted)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")

	root.AddCommand(
		a.solverCmd("pipes", "Furthest pipe-loop distance and enclosed tiles", a.solvePipes),
		a.solverCmd("beam", "Energized tiles from the top-left and from the best edge", a.solveBeam),
		a.solverCmd("crucible", "Least heat loss for normal and ultra crucibles", a.solveCrucible),
		a.solverCmd("platform", "North load after one tilt and after many spin cycles", a.solvePlatform),
		a.solverCmd("pulse", "Pulse product and presses until the target gets a low pulse", a.solvePulse),
	)

	return root
}

// solveFunc computes both answers for one puzzle text.
type solveFunc func(cmd *cobra.Command, text string) (part1, part2 any, err error)

func (a *app) solverCmd(name, short string, solve solveFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <input>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			text, err := input.Load(args[0])
			if err != nil {
				return err
			}
			a.log.Debug().Str("input", args[0]).Int("bytes", len(text)).Msg("input loaded")

			part1, part2, err := solve(cmd, text)
			if err != nil {
				a.log.Error().Err(err).Msg("solve failed")
				return err
			}
			a.log.Info().Dur("elapsed", time.Since(started)).Msg("solved")
			fmt.Fprintf(a.out, "part 1: %v\npart 2: %v\n", part1, part2)

			return nil
		},
	}
}
