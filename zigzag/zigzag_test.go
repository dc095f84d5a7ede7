package zigzag

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/quake"
	"github.com/npillmayer/quake/config"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestSamplerStaysInBand(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := config.Default()
	s := NewSampler(conf, seeded(1))
	D, G := conf.MaxDeviationFromPerpendicular, conf.MaxDeviationFromGoingRight
	left, right := 0, 0
	for i := 0; i < 2000; i++ {
		prev := (rand.New(rand.NewSource(int64(i))).Float64()*2 - 1) * G * 0.999
		phi := s.NextAngle(prev)
		turn := phi - prev
		if turn > 0 {
			left++
		} else {
			right++
		}
		assert.True(t, math.Abs(turn) >= math.Pi/2-D-tolerance && math.Abs(turn) <= math.Pi/2+D+tolerance,
			"turn %.4f after %.4f out of band", turn, prev)
		assert.True(t, -G < phi && phi < G, "bearing %.4f not within ±%.4f", phi, G)
	}
	assert.Greater(t, left, 0, "sampler never turned left")
	assert.Greater(t, right, 0, "sampler never turned right")
}

func TestSamplerRetriesAtBoundary(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelInfo)
	conf := config.Default()
	G := conf.MaxDeviationFromGoingRight
	s := NewSampler(conf, seeded(7))
	// close to +G, every left turn is rejected
	prev := G - 0.01
	for i := 0; i < 200; i++ {
		phi := s.NextAngle(prev)
		assert.Less(t, phi, prev, "expected a right turn after %.4f, got %.4f", prev, phi)
		assert.Greater(t, phi, -G)
	}
}

func TestSamplerIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := config.Default()
	s1, s2 := NewSampler(conf, seeded(42)), NewSampler(conf, seeded(42))
	for i := 0; i < 50; i++ {
		assert.Equal(t, s1.NextAngle(0.3), s2.NextAngle(0.3))
	}
}

func TestGeneratorRejectsInvalidConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := config.Default()
	conf.MaxDeviationFromGoingRight = 0.5
	conf.MaxFirstAngle = 0.1
	_, err := NewGenerator(conf, seeded(1))
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected MustNewGenerator to panic")
		}
	}()
	MustNewGenerator(conf, seeded(1))
}

func TestGeneratedPathProperties(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelInfo)
	conf := config.Default()
	D, G := conf.MaxDeviationFromPerpendicular, conf.MaxDeviationFromGoingRight
	for seed := int64(0); seed < 100; seed++ {
		path := MustNewGenerator(conf, seeded(seed)).Generate()
		if !assert.Equal(t, conf.NrSegments+1, path.N()) {
			continue
		}
		assert.True(t, path.Z(0).IsOrigin(), "path must start at the origin")
		first := path.Bearing(0)
		assert.LessOrEqual(t, math.Abs(first), conf.MaxFirstAngle+tolerance)
		for i := 0; i < conf.NrSegments; i++ {
			length := path.Z(i + 1).Shifted(-path.Z(i)).Magnitude()
			assert.GreaterOrEqual(t, length, conf.MinSegmentLength-tolerance)
			assert.LessOrEqual(t, length, conf.MaxSegmentLength+tolerance)
			b := path.Bearing(i)
			assert.Less(t, math.Abs(b), G+tolerance, "seed %d: bearing %d = %.4f", seed, i, b)
			if i > 0 {
				turn := math.Abs(b - path.Bearing(i-1))
				assert.GreaterOrEqual(t, turn, math.Pi/2-D-tolerance, "seed %d, segment %d", seed, i)
				assert.LessOrEqual(t, turn, math.Pi/2+D+tolerance, "seed %d, segment %d", seed, i)
			}
		}
	}
}

func TestFixedLengthScenario(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := config.Default()
	conf.NrSegments = 3
	conf.MinSegmentLength, conf.MaxSegmentLength = 50, 50
	conf.MaxFirstAngle = 0
	path := MustNewGenerator(conf, seeded(2024)).Generate()
	assert.Equal(t, 4, path.N())
	assert.Equal(t, quake.P(0, 0), path.Z(0))
	assert.Equal(t, quake.P(50, 0), path.Z(1))
	for i := 1; i < 3; i++ {
		length := path.Z(i + 1).Shifted(-path.Z(i)).Magnitude()
		assert.InDelta(t, 50.0, length, tolerance)
	}
}

func TestZeroSegments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := config.Default()
	conf.NrSegments = 0
	path := MustNewGenerator(conf, seeded(1)).Generate()
	assert.Equal(t, 1, path.N())
	assert.True(t, path.Z(0).IsOrigin())
}

func TestGeneratorIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := config.Default()
	p1 := MustNewGenerator(conf, seeded(99)).Generate()
	p2 := MustNewGenerator(conf, seeded(99)).Generate()
	assert.Equal(t, p1.Points(), p2.Points())
}

func TestGeneratorRejectsNonFiniteAngles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, breakit := range []func(c *config.Config){
		func(c *config.Config) { c.MaxDeviationFromPerpendicular = math.NaN() },
		func(c *config.Config) { c.MaxFirstAngle = math.NaN() },
		func(c *config.Config) { c.MaxSegmentLength = math.Inf(1) },
	} {
		conf := config.Default()
		breakit(&conf)
		_, err := NewGenerator(conf, seeded(1))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	}
}
