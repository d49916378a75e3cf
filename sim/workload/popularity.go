package workload

import (
	"fmt"
	"math/rand"
)

// ContentSampler picks a content index in [1, N].
type ContentSampler interface {
	Next() int
}

// UniformSampler picks every content with equal probability.
type UniformSampler struct {
	n   int
	rng *rand.Rand
}

func (s *UniformSampler) Next() int {
	return 1 + s.rng.Intn(s.n)
}

// ZipfSampler favours low indices: Content-1 is the most popular.
type ZipfSampler struct {
	zipf *rand.Zipf
}

func (s *ZipfSampler) Next() int {
	return 1 + int(s.zipf.Uint64())
}

// NewContentSampler builds the sampler described by p over n contents,
// drawing from rng. p must already be validated.
func NewContentSampler(p PopularitySpec, n int, rng *rand.Rand) (ContentSampler, error) {
	if n < 1 {
		return nil, fmt.Errorf("content count must be >= 1, got %d", n)
	}
	switch p.Type {
	case "", "uniform":
		return &UniformSampler{n: n, rng: rng}, nil
	case "zipf":
		v := p.V
		if v == 0 {
			v = 1
		}
		z := rand.NewZipf(rng, p.S, v, uint64(n-1))
		if z == nil {
			return nil, fmt.Errorf("invalid zipf parameters s=%f v=%f", p.S, v)
		}
		return &ZipfSampler{zipf: z}, nil
	default:
		return nil, fmt.Errorf("unknown popularity type %q", p.Type)
	}
}
