package statistics

import (
	"fmt"
	"math"
	"strings"
)

// Outcome is the result of one game from strategy A's point of view.
type Outcome int

const (
	Draw Outcome = iota
	WinA
	WinB
)

func (o Outcome) String() string {
	switch o {
	case WinA:
		return "W"
	case WinB:
		return "L"
	default:
		return "D"
	}
}

// Seat is the side strategy A played in a game.
type Seat int

const (
	SeatP1 Seat = iota
	SeatP2
)

// GameResult represents the outcome of a single game
type GameResult struct {
	Outcome  Outcome
	Seed     int64  // RNG seed for this game (for replay)
	Seat     Seat   // side A played
	LanesWon [2]int // lanes won by A and B
	Rounds   int
}

// SeatStats tracks results for one seat
type SeatStats struct {
	Games int
	WinsA int
	WinsB int
}

// HistorySize is the number of recent outcomes kept.
const HistorySize = 10

// History is a rolling window of the most recent outcomes.
type History struct {
	outcomes []Outcome
}

// Push appends an outcome, dropping the oldest beyond HistorySize.
func (h *History) Push(o Outcome) {
	h.outcomes = append(h.outcomes, o)
	if len(h.outcomes) > HistorySize {
		h.outcomes = h.outcomes[len(h.outcomes)-HistorySize:]
	}
}

// Outcomes returns the window, oldest first.
func (h History) Outcomes() []Outcome {
	return append([]Outcome(nil), h.outcomes...)
}

func (h History) String() string {
	var b strings.Builder
	for _, o := range h.outcomes {
		b.WriteString(o.String())
	}
	return b.String()
}

// MatchStats accumulates game results between strategy A and strategy B
type MatchStats struct {
	A, B string

	Games int
	WinsA int
	WinsB int
	Draws int

	LanesA int // lanes won by A over all games
	LanesB int
	Rounds int // rounds played over all games

	SeatResults [2]SeatStats
	Recent      History
}

// New creates empty statistics for a named matchup.
func New(a, b string) *MatchStats {
	return &MatchStats{A: a, B: b}
}

// Add incorporates a new game result into the statistics
func (s *MatchStats) Add(result GameResult) {
	s.Games++
	switch result.Outcome {
	case WinA:
		s.WinsA++
	case WinB:
		s.WinsB++
	default:
		s.Draws++
	}
	s.LanesA += result.LanesWon[0]
	s.LanesB += result.LanesWon[1]
	s.Rounds += result.Rounds

	if result.Seat == SeatP1 || result.Seat == SeatP2 {
		seat := &s.SeatResults[result.Seat]
		seat.Games++
		switch result.Outcome {
		case WinA:
			seat.WinsA++
		case WinB:
			seat.WinsB++
		}
	}
	s.Recent.Push(result.Outcome)
}

// Merge folds other into s. Recent history is taken from other, which is
// assumed to hold the later games.
func (s *MatchStats) Merge(other *MatchStats) {
	s.Games += other.Games
	s.WinsA += other.WinsA
	s.WinsB += other.WinsB
	s.Draws += other.Draws
	s.LanesA += other.LanesA
	s.LanesB += other.LanesB
	s.Rounds += other.Rounds
	for i := range s.SeatResults {
		s.SeatResults[i].Games += other.SeatResults[i].Games
		s.SeatResults[i].WinsA += other.SeatResults[i].WinsA
		s.SeatResults[i].WinsB += other.SeatResults[i].WinsB
	}
	for _, o := range other.Recent.outcomes {
		s.Recent.Push(o)
	}
}

func (s *MatchStats) rate(n int) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(n) / float64(s.Games)
}

// WinRate returns the fraction of games A won
func (s *MatchStats) WinRate() float64 { return s.rate(s.WinsA) }

// LossRate returns the fraction of games B won
func (s *MatchStats) LossRate() float64 { return s.rate(s.WinsB) }

// DrawRate returns the fraction of drawn games
func (s *MatchStats) DrawRate() float64 { return s.rate(s.Draws) }

// StdError returns the binomial standard error of the win rate
func (s *MatchStats) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	p := s.WinRate()
	return math.Sqrt(p * (1 - p) / float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the win rate
func (s *MatchStats) ConfidenceInterval95() (float64, float64) {
	p := s.WinRate()
	margin := 1.96 * s.StdError() // 95% confidence
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// AvgRounds returns the mean number of rounds per game
func (s *MatchStats) AvgRounds() float64 { return s.rate(s.Rounds) }

// AvgLanes returns the mean lanes won per game by A and by B
func (s *MatchStats) AvgLanes() (float64, float64) {
	return s.rate(s.LanesA), s.rate(s.LanesB)
}

// SeatWinRate returns A's win rate when seated at seat
func (s *MatchStats) SeatWinRate(seat Seat) float64 {
	ss := s.SeatResults[seat]
	if ss.Games == 0 {
		return 0
	}
	return float64(ss.WinsA) / float64(ss.Games)
}

// Validate performs consistency checks on the accumulated counts
func (s *MatchStats) Validate() error {
	if s.Games < 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if total := s.WinsA + s.WinsB + s.Draws; total != s.Games {
		return fmt.Errorf("outcomes total (%d) does not match games count (%d)", total, s.Games)
	}
	seatGames := s.SeatResults[SeatP1].Games + s.SeatResults[SeatP2].Games
	if seatGames != s.Games {
		return fmt.Errorf("seat games total (%d) does not match games count (%d)", seatGames, s.Games)
	}
	if s.LanesA+s.LanesB > 3*s.Games {
		return fmt.Errorf("lanes won (%d) exceeds three per game", s.LanesA+s.LanesB)
	}
	return nil
}

func (s *MatchStats) String() string {
	return fmt.Sprintf("%s vs %s: %d games, %d-%d-%d (%.1f%%)",
		s.A, s.B, s.Games, s.WinsA, s.WinsB, s.Draws, s.WinRate()*100)
}
