// Command worldgen emits a synthetic initial world CSV for the scheduler,
// deterministic from its seed.
package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/talgya/statecraft/internal/worldgen"
)

func main() {
	defaults := worldgen.DefaultGenConfig()

	var (
		seed      = flag.Int64("seed", defaults.Seed, "generation seed")
		countries = flag.Int("countries", defaults.Countries, "number of countries")
		resources = flag.String("resources", strings.Join(defaults.Resources, ","), "comma-separated resource vocabulary")
		abundance = flag.Float64("abundance", defaults.Abundance, "upper bound on a single endowment")
		outPath   = flag.String("out", "world.csv", "output CSV path")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := defaults
	cfg.Seed = *seed
	cfg.Countries = *countries
	cfg.Abundance = *abundance
	if *resources != "" {
		cfg.Resources = strings.Split(*resources, ",")
	}

	w, err := worldgen.Generate(cfg)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		slog.Error("failed to create output file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := worldgen.WriteCSV(f, w, cfg.Resources); err != nil {
		slog.Error("failed to write world", "error", err)
		os.Exit(1)
	}
	slog.Info("world written", "path", *outPath, "countries", cfg.Countries, "seed", cfg.Seed)
}
