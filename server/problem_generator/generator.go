// server/problem_generator/generator.go
package problemgenerator

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Generator expands plans into problem sets. It owns the random stream
// used for shuffling; the mutex lets concurrent RPCs share it.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeededGenerator seeds a PCG stream. A zero seed draws one from the
// runtime's entropy.
func NewSeededGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate validates req and builds a fresh problem set.
func (g *Generator) Generate(req GenerateRequest) (ProblemSet, error) {
	if !req.Level.Valid() {
		return ProblemSet{}, fmt.Errorf("%w: %d", ErrUnknownLevel, int(req.Level))
	}
	plan, err := PlanFor(req)
	if err != nil {
		return ProblemSet{}, err
	}
	problems, err := g.Expand(plan, req.Level)
	if err != nil {
		return ProblemSet{}, err
	}

	ps := ProblemSet{Operation: req.Operation, Level: req.Level, Problems: problems}
	if req.Operation == Division {
		ps.Mode = req.Mode
	}
	return ps, nil
}

// Expand runs plan under the given randomization level.
func (g *Generator) Expand(plan Plan, level RandomizationLevel) ([]Problem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Problem, 0)
	switch level {
	case Sequential, BlockShuffled:
		for outer := range plan.Outer.Values() {
			block := plan.block(outer)
			if level == BlockShuffled {
				shuffle(g.rng, block)
			}
			for _, inner := range block {
				out = append(out, plan.Make(inner, outer))
			}
		}
	case FullyShuffled:
		if plan.Transpose {
			out = append(out, plan.transposed()...)
		} else {
			for outer := range plan.Outer.Values() {
				for _, inner := range plan.block(outer) {
					out = append(out, plan.Make(inner, outer))
				}
			}
		}
		shuffle(g.rng, out)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(level))
	}
	return out, nil
}

// shuffle is an in-place Fisher-Yates permutation.
func shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Empty is the problem set produced when an input field could not be read.
func Empty(op Operation, mode DivisionMode, level RandomizationLevel) ProblemSet {
	ps := ProblemSet{Operation: op, Level: level, Problems: []Problem{}}
	if op == Division {
		ps.Mode = mode
	}
	return ps
}
