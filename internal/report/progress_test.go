package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/war0/internal/statistics"
	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	ctx := context.Background()
	clock := quartz.NewMock(t)
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, clock, false)

	bar.OnMatchStart("PRO", "EASY", 100)
	assert.Contains(t, buf.String(), "PRO vs EASY")
	assert.Contains(t, buf.String(), "0/100")

	clock.Advance(time.Second).MustWait(ctx)
	bar.OnGameComplete(50, 100)
	assert.Contains(t, buf.String(), "50/100 50 games/s")

	// Within the redraw interval nothing is written.
	n := buf.Len()
	bar.OnGameComplete(51, 100)
	assert.Equal(t, n, buf.Len())

	// The last game always draws.
	bar.OnGameComplete(100, 100)
	assert.Contains(t, buf.String(), "100/100 100 games/s")

	stats := statistics.New("PRO", "EASY")
	stats.Games = 100
	bar.OnMatchComplete(stats)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestProgressBar_EmptyMatch(t *testing.T) {
	clock := quartz.NewMock(t)
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, clock, false)

	bar.OnMatchStart("RANDOM", "RANDOM", 0)
	bar.OnMatchComplete(statistics.New("RANDOM", "RANDOM"))
	assert.Contains(t, buf.String(), "0/0")
	assert.NotContains(t, buf.String(), "games/s")
}
