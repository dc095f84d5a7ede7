package zigzag

import (
	"fmt"
	"math/rand"

	"github.com/npillmayer/quake"
	"github.com/npillmayer/quake/config"
)

// Generator builds quake paths. A generator owns its random source and is
// not safe for concurrent use.
type Generator struct {
	conf    config.Config
	rnd     *rand.Rand
	sampler *Sampler
}

// NewGenerator creates a generator for a configuration, drawing randomness
// from rnd. It returns an error wrapping config.ErrInvalidConfig if conf
// would allow the angle sampler to loop forever.
func NewGenerator(conf config.Config, rnd *rand.Rand) (*Generator, error) {
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("cannot create generator: %w", err)
	}
	return &Generator{
		conf:    conf,
		rnd:     rnd,
		sampler: NewSampler(conf, rnd),
	}, nil
}

// MustNewGenerator is a helper which panics on invalid configurations.
func MustNewGenerator(conf config.Config, rnd *rand.Rand) *Generator {
	gen, err := NewGenerator(conf, rnd)
	if err != nil {
		panic(err)
	}
	return gen
}

// Generate returns a new path of NrSegments+1 knots, starting at the origin.
func (gen *Generator) Generate() *quake.Path {
	path := quake.Nullpath().Knot(quake.Origin)
	for i := 0; i < gen.conf.NrSegments; i++ {
		path.Knot(gen.nextPoint(path))
	}
	tracer().Infof("generated quake %s", path)
	return path.End()
}

// nextPoint appends a segment to the last knot of path. The first segment
// gets its bearing from [-MaxFirstAngle, MaxFirstAngle]; every later one
// from the sampler, given the direction of travel of the segment before.
func (gen *Generator) nextPoint(path *quake.Path) quake.Pair {
	r := uniform(gen.rnd, gen.conf.MinSegmentLength, gen.conf.MaxSegmentLength)
	var phi float64
	if n := path.N(); n > 1 {
		phi = gen.sampler.NextAngle(path.Bearing(n - 2))
	} else {
		phi = uniform(gen.rnd, -gen.conf.MaxFirstAngle, gen.conf.MaxFirstAngle)
	}
	next := path.Last() + quake.Polar(r, phi)
	tracer().Debugf("next point %s (r = %.2f, φ = %.4f)", next, r, phi)
	return next
}
