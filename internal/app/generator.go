package app

import (
	"math/rand"
	"time"

	"tilequeue/internal/domain"
)

// Generator supplies new pieces to refill the queue.
type Generator interface {
	Next() domain.Piece
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func() domain.Piece

func (f GeneratorFunc) Next() domain.Piece { return f() }

// RandomGenerator draws a uniform kind and numbers pieces from 1 upward.
type RandomGenerator struct {
	rng    *rand.Rand
	nextID int
}

// NewRandomGenerator constructs a generator with provided rng or a time-seeded default.
func NewRandomGenerator(rng *rand.Rand) *RandomGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomGenerator{rng: rng}
}

func (g *RandomGenerator) Next() domain.Piece {
	g.nextID++
	return domain.Piece{
		ID:   g.nextID,
		Kind: domain.Kinds[g.rng.Intn(len(domain.Kinds))],
	}
}
