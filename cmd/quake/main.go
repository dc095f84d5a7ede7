// Command quake draws vertical earthquakes: a fat zigzag line, fanned out
// by thin rotated copies of itself, saved as timestamped PNG images.
//
//	quake -n 5 -out ./img -config quake.yaml
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/npillmayer/quake/config"
	"github.com/npillmayer/quake/mirror"
	"github.com/npillmayer/quake/render"
	"github.com/npillmayer/quake/zigzag"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quake'
func tracer() tracing.Trace {
	return tracing.Select("quake")
}

var (
	countFlag   = flag.Int("n", 1, "Number of quakes to draw")
	configFlag  = flag.String("config", "", "YAML file with drawing parameters")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 uses the current time)")
	outFlag     = flag.String("out", "", "Directory to save images to (overrides the configuration)")
	verboseFlag = flag.Bool("v", false, "Verbose tracing")
)

func main() {
	flag.Parse()
	if *verboseFlag {
		tracer().SetTraceLevel(tracing.LevelDebug)
	} else {
		tracer().SetTraceLevel(tracing.LevelInfo)
	}
	conf := config.Default()
	if *configFlag != "" {
		var err error
		if conf, err = config.Load(*configFlag); err != nil {
			fatal(err)
		}
	}
	if *outFlag != "" {
		conf.ImageDir = *outFlag
	}
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tracer().Infof("drawing %d quake(s) with seed %d", *countFlag, seed)
	b, err := newBatch(conf, rand.New(rand.NewSource(seed)))
	if err != nil {
		fatal(err)
	}
	if err := b.run(*countFlag); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	tracer().Errorf("%v", err)
	fmt.Fprintf(os.Stderr, "quake: %v\n", err)
	os.Exit(1)
}

// batch draws quakes one after the other. Image names carry a timestamp
// of second precision, so a batch never starts two quakes within the same
// second.
type batch struct {
	conf  config.Config
	gen   *zigzag.Generator
	now   func() time.Time
	sleep func(time.Duration)
}

func newBatch(conf config.Config, rnd *rand.Rand) (*batch, error) {
	gen, err := zigzag.NewGenerator(conf, rnd)
	if err != nil {
		return nil, err
	}
	return &batch{conf: conf, gen: gen, now: time.Now, sleep: time.Sleep}, nil
}

func (b *batch) run(n int) error {
	if err := os.MkdirAll(b.conf.ImageDir, 0o755); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		start := b.now().Truncate(time.Second)
		if _, err := b.draw(start); err != nil {
			return err
		}
		for b.now().Truncate(time.Second).Equal(start) {
			b.sleep(10 * time.Millisecond)
		}
	}
	return nil
}

// draw generates one quake with its fan of mirror lines and saves it,
// named for time at. It returns the path of the image file.
func (b *batch) draw(at time.Time) (string, error) {
	path := b.gen.Generate()
	fan := mirror.Fan(path, b.conf)
	canvas, err := render.NewCanvas(b.conf.Width)
	if err != nil {
		return "", err
	}
	if err := render.DrawQuake(canvas, path, fan, b.conf); err != nil {
		return "", err
	}
	name := filepath.Join(b.conf.ImageDir, render.Filename(b.conf.Prefix, at))
	return name, canvas.SavePNG(name)
}
