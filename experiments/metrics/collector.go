package metrics

import (
	"sync/atomic"
	"time"

	"hive/game"
)

type TurnMetric struct {
	Step       int
	Player     string // Color
	Turn       string // Notation, empty for a pass
	LegalTurns int
	Rejections int
	Duration   time.Duration
}

type GameMetric struct {
	StartingPlayer string // Color
	Winner         string // Color, empty on a draw
	Outcome        string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalTurns     int
	Passes         int
	Rejections     int
	Capped         bool // Stopped at the turn cap
}

// Collector measures one turn at a time: Start, any number of rejections, Complete.
type Collector interface {
	Start(step int, player game.Color, legalTurns int)
	AddRejection()
	Complete(turn *game.Turn) TurnMetric
}

type collector struct {
	step       int
	player     game.Color
	legalTurns int
	startTime  time.Time
	rejections atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(step int, player game.Color, legalTurns int) {
	m.startTime = time.Now()
	m.step = step
	m.player = player
	m.legalTurns = legalTurns
	m.rejections.Store(0)
}

func (m *collector) AddRejection() {
	m.rejections.Add(1)
}

func (m *collector) Complete(turn *game.Turn) TurnMetric {
	notation := ""
	if turn != nil {
		notation = turn.String()
	}
	return TurnMetric{
		Step:       m.step,
		Player:     m.player.String(),
		Turn:       notation,
		LegalTurns: m.legalTurns,
		Rejections: int(m.rejections.Load()),
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(step int, player game.Color, legalTurns int) {}
func (m *dummyCollector) AddRejection()                                   {}
func (m *dummyCollector) Complete(turn *game.Turn) TurnMetric              { return TurnMetric{} }

// Summarize folds the turn metrics of a finished game into a game metric. Passes are
// counted by the caller.
func Summarize(turns []TurnMetric, passes int, outcome game.Outcome, start, end time.Time, capped bool) GameMetric {
	gm := GameMetric{
		StartingPlayer: game.White.String(),
		Outcome:        outcome.String(),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalTurns:     len(turns),
		Passes:         passes,
		Capped:         capped,
	}
	if winner, ok := outcome.Winner(); ok {
		gm.Winner = winner.String()
	}
	for _, tm := range turns {
		gm.Rejections += tm.Rejections
	}
	return gm
}
