package zigzag

import (
	"math"
	"math/rand"

	"github.com/npillmayer/quake/config"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quake'
func tracer() tracing.Trace {
	return tracing.Select("quake")
}

// Sampler draws direction angles for the segments of a quake.
type Sampler struct {
	rnd           *rand.Rand
	maxDeviation  float64 // D, half-width of the band around π/2
	maxGoingRight float64 // G, bound on bearings
}

// NewSampler creates a sampler consuming randomness from rnd.
// conf should have been validated, otherwise NextAngle may not terminate.
func NewSampler(conf config.Config, rnd *rand.Rand) *Sampler {
	return &Sampler{
		rnd:           rnd,
		maxDeviation:  conf.MaxDeviationFromPerpendicular,
		maxGoingRight: conf.MaxDeviationFromGoingRight,
	}
}

// NextAngle returns the bearing of a segment following a segment with
// bearing prev. The turn between both is in [π/2-D, π/2+D], to the left or to
// the right. The result lies strictly within (-G, G). Candidates violating
// this are discarded and drawn again, each attempt with fresh random draws.
func (s *Sampler) NextAngle(prev float64) float64 {
	for attempt := 1; ; attempt++ {
		shift := s.uniform(math.Pi/2-s.maxDeviation, math.Pi/2+s.maxDeviation)
		sign := 1.0
		if s.rnd.Intn(2) == 1 {
			sign = -1.0
		}
		phi := prev + sign*shift
		if -s.maxGoingRight < phi && phi < s.maxGoingRight {
			return phi
		}
		tracer().Debugf("angle %.4f after %.4f rejected (attempt %d)", phi, prev, attempt)
	}
}

// uniform draws from [a, b].
func (s *Sampler) uniform(a, b float64) float64 {
	return uniform(s.rnd, a, b)
}

func uniform(rnd *rand.Rand, a, b float64) float64 {
	return a + (b-a)*rnd.Float64()
}
