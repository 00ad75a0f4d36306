package strategy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownDifficulty is returned for tier names or numbers that do not map
// to a Difficulty.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects the decision rule an agent uses. Either side may use any
// tier.
type Difficulty int

const (
	Random   Difficulty = iota // uniform lane choice
	Easy                       // spread two cards per lane, skip badly lost lanes
	Pro                        // lane evaluation, fight for the second-best lane
	HardPlus                   // Pro plus a peek at its own next card
	Counter                    // experimental: also peeks the opponent and predicts its move
	Lookahead                  // experimental: peeks its own next two cards
)

// Tiers are the four standard difficulty levels, weakest first.
var Tiers = []Difficulty{Random, Easy, Pro, HardPlus}

// AllTiers includes the experimental tiers.
var AllTiers = []Difficulty{Random, Easy, Pro, HardPlus, Counter, Lookahead}

func (d Difficulty) String() string {
	switch d {
	case Random:
		return "RANDOM"
	case Easy:
		return "EASY"
	case Pro:
		return "PRO"
	case HardPlus:
		return "HARD+"
	case Counter:
		return "COUNTER"
	case Lookahead:
		return "LOOKAHEAD"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	return d >= Random && d <= Lookahead
}

// Experimental reports whether d is outside the four standard tiers.
func (d Difficulty) Experimental() bool {
	return d == Counter || d == Lookahead
}

// ParseDifficulty accepts a tier name (case-insensitive, with a few aliases)
// or its number.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "RANDOM", "RAND":
		return Random, nil
	case "EASY":
		return Easy, nil
	case "PRO":
		return Pro, nil
	case "HARD+", "HARD", "HARDPLUS", "HARD_PLUS", "HARD-PLUS":
		return HardPlus, nil
	case "COUNTER", "OMNISCIENT":
		return Counter, nil
	case "LOOKAHEAD":
		return Lookahead, nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		if d := Difficulty(n); d.Valid() {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// ParseDifficulties parses a comma separated list such as "random,pro,hard+".
func ParseDifficulties(s string) ([]Difficulty, error) {
	var tiers []Difficulty
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseDifficulty(part)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, d)
	}
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: empty tier list", ErrUnknownDifficulty)
	}
	return tiers, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so tiers can be decoded
// straight from flags and config files.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
