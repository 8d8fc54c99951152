package generator

// Sampler lazily draws samples from a generator at a fixed timestep.
// A Sampler built with NewSampler never runs out; one built with
// NewFiniteSampler stops after its count is exhausted.
type Sampler struct {
	gen       GeneratorInterface
	dt        float64
	infinite  bool
	remaining int
}

// Returns a Sampler that produces samples indefinitely.
func NewSampler(gen GeneratorInterface, dt float64) *Sampler {
	return &Sampler{gen: gen, dt: dt, infinite: true}
}

// Returns a Sampler that produces at most count samples.
func NewFiniteSampler(gen GeneratorInterface, dt float64, count int) *Sampler {
	return &Sampler{gen: gen, dt: dt, remaining: count}
}

// Draws the next sample. The second return is false once a finite sampler
// is exhausted; an infinite sampler always returns true.
func (s *Sampler) Next() (float64, bool) {
	if !s.infinite {
		if s.remaining <= 0 {
			return 0, false
		}
		s.remaining--
	}
	return s.gen.Sample(s.dt), true
}

// Draws up to n samples. Returns fewer if the sampler runs out first.
func (s *Sampler) Take(n int) []float64 {
	samples := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		sample, ok := s.Next()
		if !ok {
			break
		}
		samples = append(samples, sample)
	}
	return samples
}

// Draws every remaining sample of a finite sampler. Returns nil for an
// infinite sampler, which has no final sample to collect.
func (s *Sampler) Collect() []float64 {
	if s.infinite {
		return nil
	}
	return s.Take(s.remaining)
}
