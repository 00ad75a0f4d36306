package report

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/coder/quartz"
	"github.com/lox/war0/internal/simulator"
	"github.com/lox/war0/internal/statistics"
	"github.com/muesli/termenv"
)

// redrawInterval limits how often the bar is repainted.
const redrawInterval = 100 * time.Millisecond

// ProgressBar draws a single-line progress bar for each match
type ProgressBar struct {
	mu       sync.Mutex
	w        io.Writer
	bar      progress.Model
	clock    quartz.Clock
	label    string
	total    int
	start    time.Time
	lastDraw time.Time
}

var _ simulator.ProgressReporter = (*ProgressBar)(nil)

// NewProgressBar creates a progress reporter writing to w
func NewProgressBar(w io.Writer, clock quartz.Clock, color bool) *ProgressBar {
	opts := []progress.Option{progress.WithWidth(30), progress.WithoutPercentage()}
	if color {
		opts = append(opts, progress.WithDefaultGradient())
	} else {
		opts = append(opts, progress.WithColorProfile(termenv.Ascii))
	}
	return &ProgressBar{
		w:     w,
		bar:   progress.New(opts...),
		clock: clock,
	}
}

// OnMatchStart is called before the first game of a match
func (p *ProgressBar) OnMatchStart(a, b string, games int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.label = fmt.Sprintf("%s vs %s", a, b)
	p.total = games
	p.start = p.clock.Now()
	p.draw(0)
}

// OnGameComplete is called after every game, possibly from several workers
func (p *ProgressBar) OnGameComplete(completed, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if completed < total && p.clock.Since(p.lastDraw) < redrawInterval {
		return
	}
	p.draw(completed)
}

// OnMatchComplete finishes the line
func (p *ProgressBar) OnMatchComplete(stats *statistics.MatchStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.draw(stats.Games)
	fmt.Fprintln(p.w)
}

func (p *ProgressBar) draw(completed int) {
	p.lastDraw = p.clock.Now()

	ratio := 1.0
	if p.total > 0 {
		ratio = float64(completed) / float64(p.total)
	}

	var b strings.Builder
	b.WriteString("\r")
	b.WriteString(p.label)
	b.WriteString(" ")
	b.WriteString(p.bar.ViewAs(ratio))
	fmt.Fprintf(&b, " %d/%d", completed, p.total)
	if elapsed := p.clock.Since(p.start); elapsed > 0 {
		fmt.Fprintf(&b, " %.0f games/s", float64(completed)/elapsed.Seconds())
	}
	fmt.Fprint(p.w, b.String())
}
