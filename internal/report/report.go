// Package report renders match results, tier matrices and game replays for
// the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/war0/internal/deck"
	"github.com/lox/war0/internal/game"
	"github.com/lox/war0/internal/simulator"
	"github.com/lox/war0/internal/statistics"
)

// Printer renders reports with a fixed set of styles.
type Printer struct {
	renderer *lipgloss.Renderer
	styles   Styles
}

// New creates a printer for output written to w.
func New(w io.Writer, color bool) *Printer {
	r := NewRenderer(w, color)
	return &Printer{renderer: r, styles: NewStyles(r)}
}

func (p *Printer) newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.styles.Border)
}

func pct(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// Match renders the summary of one match from A's point of view.
func (p *Printer) Match(stats *statistics.MatchStats) string {
	s := p.styles
	low, high := stats.ConfidenceInterval95()
	lanesA, lanesB := stats.AvgLanes()

	rows := [][]string{
		{"Games", fmt.Sprintf("%d", stats.Games)},
		{"Record", fmt.Sprintf("%s-%s-%s (W-L-D)",
			s.Win.Render(fmt.Sprintf("%d", stats.WinsA)),
			s.Loss.Render(fmt.Sprintf("%d", stats.WinsB)),
			s.Draw.Render(fmt.Sprintf("%d", stats.Draws)))},
		{"Win rate", fmt.Sprintf("%s ± %s", pct(stats.WinRate()), pct(1.96*stats.StdError()))},
		{"95% CI", fmt.Sprintf("[%s, %s]", pct(low), pct(high))},
		{"Loss rate", pct(stats.LossRate())},
		{"Draw rate", pct(stats.DrawRate())},
		{"Avg lanes", fmt.Sprintf("%.2f - %.2f", lanesA, lanesB)},
	}
	if stats.SeatResults[statistics.SeatP1].Games > 0 && stats.SeatResults[statistics.SeatP2].Games > 0 {
		rows = append(rows,
			[]string{"Win rate as P1", pct(stats.SeatWinRate(statistics.SeatP1))},
			[]string{"Win rate as P2", pct(stats.SeatWinRate(statistics.SeatP2))})
	}
	if recent := stats.Recent.String(); recent != "" {
		rows = append(rows, []string{"Recent", p.history(stats.Recent)})
	}

	t := p.newTable().
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return s.Label.Padding(0, 1)
			}
			return s.Cell
		})

	title := s.Header.Render(fmt.Sprintf("%s vs %s", stats.A, stats.B))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String())
}

func (p *Printer) history(h statistics.History) string {
	var b strings.Builder
	for _, o := range h.Outcomes() {
		switch o {
		case statistics.WinA:
			b.WriteString(p.styles.Win.Render(o.String()))
		case statistics.WinB:
			b.WriteString(p.styles.Loss.Render(o.String()))
		default:
			b.WriteString(p.styles.Draw.Render(o.String()))
		}
	}
	return b.String()
}

// Matrix renders the win rate of every row tier, seated as P1, against every
// column tier.
func (p *Printer) Matrix(m *simulator.Matrix) string {
	s := p.styles
	headers := []string{"P1 \\ P2"}
	for _, t := range m.Tiers {
		headers = append(headers, t.String())
	}

	rows := make([][]string, len(m.Tiers))
	for i, a := range m.Tiers {
		row := []string{a.String()}
		for j := range m.Tiers {
			row = append(row, pct(m.Cells[i][j].WinRate()))
		}
		rows[i] = row
	}

	t := p.newTable().
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow, col == 0:
				return s.Label.Padding(0, 1)
			case row < 0 || row >= len(m.Cells) || col > len(m.Tiers):
				return s.Cell
			case m.Cells[row][col-1].WinRate() > m.Cells[row][col-1].LossRate():
				return s.Win.Padding(0, 1)
			case m.Cells[row][col-1].WinRate() < m.Cells[row][col-1].LossRate():
				return s.Loss.Padding(0, 1)
			}
			return s.Cell
		})

	games := 0
	if len(m.Tiers) > 0 {
		games = m.Cells[0][0].Games
	}
	title := s.Header.Render("Win rate matrix")
	footer := s.Muted.Render(fmt.Sprintf("%d games per cell, row tier seated as P1", games))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String(), footer)
}

func (p *Printer) card(c deck.Card) string {
	if c.Suit.IsRed() {
		return p.styles.RedCard.Render(c.String())
	}
	return p.styles.Card.Render(c.String())
}

// Replay renders the round log and final lane tallies of a finished game.
// Names label the two sides.
func (p *Printer) Replay(st *game.State, names [2]string, seed int64) string {
	s := p.styles

	rounds := p.newTable().
		Headers("Round", names[game.P1], "", names[game.P2], "").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Label.Padding(0, 1)
			}
			return s.Cell
		})
	for _, r := range st.Rounds() {
		rounds.Row(
			fmt.Sprintf("%d", r.Number),
			r.Lanes[game.P1].String(), p.card(r.Cards[game.P1]),
			r.Lanes[game.P2].String(), p.card(r.Cards[game.P2]),
		)
	}

	res := st.Result()
	lanes := p.newTable().
		Headers("Lane", names[game.P1], names[game.P2], "Cards", "Winner").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Label.Padding(0, 1)
			}
			return s.Cell
		})
	for _, l := range game.Lanes {
		ls := st.Lane(l)
		winner := s.Draw.Render("tie")
		if side, ok := ls.Winner(); ok {
			winner = s.Win.Render(names[side])
		}
		lanes.Row(
			l.String(),
			fmt.Sprintf("%d", ls.Score[game.P1]),
			fmt.Sprintf("%d", ls.Score[game.P2]),
			fmt.Sprintf("%d/%d", ls.Cards[game.P1], ls.Cards[game.P2]),
			winner,
		)
	}

	outcome := s.Draw.Render(fmt.Sprintf("Draw %d-%d", res.LanesWon[game.P1], res.LanesWon[game.P2]))
	if side, ok := res.Winner(); ok {
		outcome = s.Win.Render(fmt.Sprintf("%s wins %d-%d", names[side], res.LanesWon[side], res.LanesWon[side.Opponent()]))
	}

	title := s.Header.Render(fmt.Sprintf("%s vs %s, seed %d", names[game.P1], names[game.P2], seed))
	return lipgloss.JoinVertical(lipgloss.Left, title, rounds.String(), lanes.String(), outcome)
}
