package mathlib

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/specialistvlad/builtintour/internal/value"
	"github.com/specialistvlad/builtintour/internal/varargs"
)

// source is the pseudo-random generator behind math.random. It is owned by
// one registry and reseeded in place by math.randomseed.
type source struct {
	pcg *rand.PCG
	rng *rand.Rand
}

func newSource(seed uint64) *source {
	pcg := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &source{pcg: pcg, rng: rand.New(pcg)}
}

func (s *source) seed(seed uint64) {
	s.pcg.Seed(seed, seed^0x9e3779b97f4a7c15)
}

// random returns a float in [0,1) without arguments, an integer in [1,m]
// with one and an integer in [m,n] with two.
func (s *source) random(args varargs.Pack) ([]any, error) {
	var lo, hi int64
	switch args.Len() {
	case 0:
		return []any{s.rng.Float64()}, nil
	case 1:
		lo = 1
		n, err := args.CheckInteger(1, "random")
		if err != nil {
			return nil, err
		}
		hi = n
	case 2:
		var err error
		if lo, err = args.CheckInteger(1, "random"); err != nil {
			return nil, err
		}
		if hi, err = args.CheckInteger(2, "random"); err != nil {
			return nil, err
		}
	default:
		return nil, varargs.NewArgError(3, "random", "wrong number of arguments")
	}
	if lo > hi {
		return nil, varargs.NewArgError(args.Len(), "random", "interval is empty")
	}

	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return []any{int64(s.rng.Uint64())}, nil
	}
	return []any{lo + int64(s.rng.Uint64N(span+1))}, nil
}

// randomseed reseeds the generator with the given number, or with the
// current time when called without arguments.
func (s *source) randomseed(args varargs.Pack) ([]any, error) {
	if args.Len() == 0 {
		s.seed(uint64(time.Now().UnixNano()))
		return nil, nil
	}
	n, err := args.CheckNumber(1, "randomseed")
	if err != nil {
		return nil, err
	}
	if i, ok := n.(int64); ok {
		s.seed(uint64(i))
	} else {
		f, _ := value.ToFloat(n)
		s.seed(math.Float64bits(f))
	}
	return nil, nil
}
