// Package game implements the War.0 lane-allocation game.
//
// Two players each own a deck. Every round both players commit one of three
// lanes (left, center, right) without seeing the other's choice, then the
// front card of each deck is added to the chosen lane. The game ends as soon
// as either deck is empty. A lane goes to the side with the strictly higher
// score and the game to the side that won more lanes.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	s := game.NewRandom(rng)
//	for !s.IsOver() {
//	    s.PlayRound(game.Left, game.Center)
//	}
//	if side, ok := s.Result().Winner(); ok {
//	    fmt.Println(side, "wins")
//	}
//
// # Deterministic Testing
//
// Fixtures use decks with a fixed draw order:
//
//	s := game.New(deck.FromValues(10, 10, 5), deck.FromValues(2, 3, 4))
//
// # Architecture
//
// State owns both decks, the three LaneState tallies and the round log.
// Strategies only see the read-only View interface, which exposes lane
// tallies and lets a strategy peek at deck fronts; which peeks a strategy is
// allowed to make is a property of its tier, not of the engine.
package game
