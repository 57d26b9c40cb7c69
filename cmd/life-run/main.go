package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"life-canvas/pkg/patterns"
	"life-canvas/pkg/universe"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

func (l kvList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}

func main() {
	steps := flag.Int("steps", 100, "generations to simulate")
	every := flag.Int("every", 0, "report population every N generations (0 disables)")
	pattern := flag.String("pattern", "", "start from an empty grid with this pattern centred")
	printGrid := flag.Bool("print", false, "print the final grid")
	var overrides kvList
	flag.Var(&overrides, "set", "universe setting in key=value form: w, h, seed (repeatable)")
	flag.Parse()

	cfg := universe.FromMap(overrides.Map())
	life, err := universe.NewFromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if *pattern != "" {
		p, err := patterns.Lookup(*pattern)
		if err != nil {
			log.Fatal(err)
		}
		life.Clear()
		patterns.PlaceCentered(life, p)
	}

	fmt.Printf("Universe %dx%d seed %d, population %d\n", life.Width(), life.Height(), cfg.Seed, life.Population())
	start := time.Now()
	for i := 1; i <= *steps; i++ {
		life.Tick()
		if *every > 0 && i%*every == 0 {
			fmt.Printf("gen %6d  population %d\n", life.Generation(), life.Population())
		}
	}
	elapsed := time.Since(start)

	rate := 0.0
	if elapsed > 0 {
		rate = float64(*steps) / elapsed.Seconds()
	}
	fmt.Printf("Ran %d generations in %s (%.1f gen/s), final population %d\n", *steps, elapsed.Round(time.Microsecond), rate, life.Population())
	if *printGrid {
		fmt.Fprint(os.Stdout, life.String())
	}
}
