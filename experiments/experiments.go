// Package experiments runs batches of computer-vs-computer games and stores their records.
package experiments

import (
	"context"
	"fmt"

	"hive/engine"
	"hive/experiments/metrics"
	"hive/game"
	"hive/meta"
	"hive/player"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Name     string
	Games    int // Per match up
	Seed     uint64
	MaxTurns int
	OutDir   string // Records are skipped when empty
	MatchUps [][2]metrics.PlayerConfig
}

type Report struct {
	Dir       string
	Games     []metrics.GameRecord
	WhiteWins int
	BlackWins int
	Draws     int
}

// DefaultMatchUps pairs the random and weighted players in both seatings.
func DefaultMatchUps() [][2]metrics.PlayerConfig {
	random := metrics.PlayerConfig{ID: 1, Strategy: player.RandomStrategy}
	weighted := metrics.PlayerConfig{ID: 2, Strategy: player.WeightedStrategy, Temperature: meta.TEMPERATURE}
	return [][2]metrics.PlayerConfig{
		{random, random},
		{random, weighted},
		{weighted, random},
	}
}

// Run plays cfg.Games games for each match up and writes player configs, game records
// and turn records into a timestamped directory below cfg.OutDir.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Name == "" {
		cfg.Name = "selfplay"
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = meta.MAX_TURNS
	}
	if len(cfg.MatchUps) == 0 {
		cfg.MatchUps = DefaultMatchUps()
	}

	report := &Report{}
	turnRecords := []metrics.TurnRecord{}
	count := 0

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchUp := range cfg.MatchUps {
		white, black := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(cfg.MatchUps), white, black)

		for i := 0; i < cfg.Games; i++ {
			count++
			seed := cfg.Seed + uint64(2*count)
			result, err := runGame(ctx, white, black, seed, cfg.MaxTurns)
			if err != nil {
				return nil, fmt.Errorf("game %d: %w", count, err)
			}

			report.Games = append(report.Games, metrics.GameRecord{
				ID:         count,
				White:      white.ID,
				Black:      black.ID,
				GameMetric: result.Game,
			})
			for _, tm := range result.Turns {
				turnRecords = append(turnRecords, metrics.TurnRecord{Game: count, TurnMetric: tm})
			}
			switch result.Outcome {
			case game.WhiteWins:
				report.WhiteWins++
			case game.BlackWins:
				report.BlackWins++
			default:
				report.Draws++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with outcome: %s", mi+1, len(cfg.MatchUps), i+1, result.Outcome)
		}
	}

	log.Info().Msgf("completed %s experiment: %d white wins, %d black wins, %d draws", cfg.Name, report.WhiteWins, report.BlackWins, report.Draws)

	if cfg.OutDir == "" {
		return report, nil
	}
	dir, err := store(cfg, report.Games, turnRecords)
	if err != nil {
		return nil, err
	}
	report.Dir = dir
	return report, nil
}

func store(cfg Config, gameRecords []metrics.GameRecord, turnRecords []metrics.TurnRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	// Store experiment metadata
	if err := writer.WritePlayerConfigs(playerConfigs(cfg.MatchUps)); err != nil {
		return "", fmt.Errorf("failed to store player configs: %w", err)
	}
	log.Info().Msg("stored player configs")

	// Store experiment results
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return "", fmt.Errorf("failed to write turn records: %w", err)
	}
	log.Info().Msgf("stored turn records in %s", writer.Dir())

	return writer.Dir(), nil
}

func playerConfigs(matchUps [][2]metrics.PlayerConfig) []metrics.PlayerConfig {
	seen := map[int]bool{}
	var configs []metrics.PlayerConfig
	for _, matchUp := range matchUps {
		for _, config := range matchUp {
			if !seen[config.ID] {
				seen[config.ID] = true
				configs = append(configs, config)
			}
		}
	}
	return configs
}

// runGame executes a single game between two computer players
func runGame(ctx context.Context, white, black metrics.PlayerConfig, seed uint64, maxTurns int) (engine.Result, error) {
	whitePlayer, err := createPlayer(white, seed)
	if err != nil {
		return engine.Result{}, err
	}
	blackPlayer, err := createPlayer(black, seed+1)
	if err != nil {
		return engine.Result{}, err
	}

	e := engine.NewLocalEngine(whitePlayer, blackPlayer,
		engine.WithMaxTurns(maxTurns),
		engine.WithCollector(metrics.NewCollector()),
	)
	return e.Run(ctx)
}

func createPlayer(config metrics.PlayerConfig, seed uint64) (player.Player, error) {
	name := fmt.Sprintf("%s-%d", config.Strategy, config.ID)
	return player.NewComputer(config.Strategy, name, seed, config.Temperature)
}
