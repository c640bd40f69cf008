package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"hive/engine"
	"hive/experiments"
	"hive/experiments/metrics"
	"hive/gamemaster"
	"hive/meta"
	"hive/player"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: error loading .env file: %v\n", err)
	}

	cmd := &cli.Command{
		Name:  "hive",
		Usage: "play Hive on the console or run self-play experiments",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("HIVE_LOG_LEVEL"),
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			playCommand(),
			selfplayCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("hive failed")
	}
}

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level, err := zerolog.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return ctx, fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return ctx, nil
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "hot-seat game between two players on this console",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "white", Value: "White", Usage: "name of the white player"},
			&cli.StringFlag{Name: "black", Value: "Black", Usage: "name of the black player"},
			&cli.IntFlag{Name: "max-turns", Value: meta.MAX_TURNS, Usage: "turn cap, a capped game is a draw"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// Both players share stdin
			white := player.NewConsolePlayer(cmd.String("white"), os.Stdin, os.Stdout)
			black := player.NewConsolePlayer(cmd.String("black"), os.Stdin, os.Stdout)

			e := engine.NewLocalEngine(white, black,
				engine.WithMaxTurns(int(cmd.Int("max-turns"))),
				engine.WithObserver(func(u gamemaster.Update) {
					if u.Turn == nil {
						fmt.Fprintf(os.Stdout, "%s has no legal turn and passes.\n", u.State.Player().Opponent())
					}
					if err := player.RenderState(os.Stdout, u.State); err != nil {
						log.Error().Err(err).Msg("failed to render board")
					}
				}),
			)

			result, err := e.Run(ctx)
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(os.Stdout, "Input closed, game abandoned.")
				return nil
			}
			if err != nil {
				return err
			}

			switch {
			case result.Winner != "":
				fmt.Fprintf(os.Stdout, "Game over! %s wins after %d turns.\n", result.Winner, result.Final.TurnNumber)
			case result.Capped:
				fmt.Fprintf(os.Stdout, "Game over! No winner after %d turns, it's a draw.\n", result.Final.TurnNumber)
			default:
				fmt.Fprintln(os.Stdout, "Game over! Both queens are surrounded, it's a draw.")
			}
			return nil
		},
	}
}

func selfplayCommand() *cli.Command {
	return &cli.Command{
		Name:  "selfplay",
		Usage: "computer-vs-computer games written to CSV records",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "games", Value: meta.GAMES, Usage: "games per match up"},
			&cli.UintFlag{Name: "seed", Value: 1, Usage: "random seed of the first game"},
			&cli.IntFlag{Name: "max-turns", Value: meta.MAX_TURNS, Usage: "turn cap, a capped game is a draw"},
			&cli.StringFlag{Name: "out", Value: meta.OUT_DIR, Usage: "output directory, empty to skip records"},
			&cli.StringFlag{Name: "white", Usage: "strategy of the white player (random, weighted); all match ups when unset"},
			&cli.StringFlag{Name: "black", Usage: "strategy of the black player (random, weighted); all match ups when unset"},
			&cli.FloatFlag{Name: "temperature", Value: meta.TEMPERATURE, Usage: "temperature of weighted players"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := experiments.Config{
				Games:    int(cmd.Int("games")),
				Seed:     uint64(cmd.Uint("seed")),
				MaxTurns: int(cmd.Int("max-turns")),
				OutDir:   cmd.String("out"),
			}
			if cmd.IsSet("white") || cmd.IsSet("black") {
				cfg.MatchUps = [][2]metrics.PlayerConfig{{
					playerConfig(1, cmd.String("white"), cmd.Float("temperature")),
					playerConfig(2, cmd.String("black"), cmd.Float("temperature")),
				}}
			}

			report, err := experiments.Run(ctx, cfg)
			if err != nil {
				return err
			}
			log.Info().
				Int("games", len(report.Games)).
				Int("white_wins", report.WhiteWins).
				Int("black_wins", report.BlackWins).
				Int("draws", report.Draws).
				Str("dir", report.Dir).
				Msg("self-play finished")
			return nil
		},
	}
}

func playerConfig(id int, strategy string, temperature float64) metrics.PlayerConfig {
	if strategy == "" {
		strategy = player.RandomStrategy
	}
	config := metrics.PlayerConfig{ID: id, Strategy: strategy}
	if strategy == player.WeightedStrategy {
		config.Temperature = temperature
	}
	return config
}
