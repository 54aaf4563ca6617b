// Command scheduler searches for the resource-transformation and transfer
// schedule with the highest expected utility for one designated country.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/talgya/statecraft/internal/config"
	"github.com/talgya/statecraft/internal/metrics"
	"github.com/talgya/statecraft/internal/persistence"
	"github.com/talgya/statecraft/internal/search"
)

func main() {
	defaults := config.DefaultParams()

	var (
		selfCountry = flag.String("self", "", "name of the country this agent plans for")
		worldPath   = flag.String("world", "", "CSV file describing the initial world state")
		weightsPath = flag.String("weights", "", "CSV with resource,weight,baseline columns")
		tplPath     = flag.String("templates", "", "file of (TRANSFORM ...) templates")
		outPath     = flag.String("out", "", "CSV file for the discovered schedules (optional)")
		paramsPath  = flag.String("params", "", "YAML run-parameter file (flags override it)")
		dbPath      = flag.String("db", "", "SQLite database to record the run in (optional)")
		n           = flag.Int("n", defaults.N, "completed schedules to collect before stopping")
		depth       = flag.Int("depth", defaults.Depth, "max actions per schedule")
		beam        = flag.Int("beam", defaults.Beam, "frontier width kept per expansion round")
		gamma       = flag.Float64("gamma", defaults.Gamma, "reward discount factor, 0 <= gamma < 1")
		cost        = flag.Float64("cost", defaults.FailureCost, "failure-cost constant C")
		k           = flag.Float64("k", defaults.K, "logistic acceptance steepness")
		x0          = flag.Float64("x0", defaults.X0, "logistic acceptance midpoint")
		logLevel    = flag.String("log-level", "info", "log verbosity: debug, info, warn, error")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(*logLevel),
	}))
	slog.SetDefault(logger)

	params := defaults
	if *paramsPath != "" {
		loaded, err := config.LoadParams(*paramsPath)
		if err != nil {
			slog.Error("failed to load params file", "error", err)
			os.Exit(1)
		}
		params = loaded
	}
	// Explicit flags win over the params file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "self":
			params.Self = *selfCountry
		case "n":
			params.N = *n
		case "depth":
			params.Depth = *depth
		case "beam":
			params.Beam = *beam
		case "gamma":
			params.Gamma = *gamma
		case "cost":
			params.FailureCost = *cost
		case "k":
			params.K = *k
		case "x0":
			params.X0 = *x0
		}
	})
	if params.Self == "" {
		slog.Error("no self country given (use -self or the params file)")
		os.Exit(1)
	}
	if *worldPath == "" || *weightsPath == "" || *tplPath == "" {
		slog.Error("world, weights, and templates files are all required")
		os.Exit(1)
	}

	slog.Info("loading initial world state", "path", *worldPath)
	initial, err := config.LoadWorld(*worldPath)
	if err != nil {
		slog.Error("failed to load world", "error", err)
		os.Exit(1)
	}

	slog.Info("loading state quality weights", "path", *weightsPath)
	quality, err := config.LoadWeights(*weightsPath)
	if err != nil {
		slog.Error("failed to load weights", "error", err)
		os.Exit(1)
	}

	slog.Info("parsing transform templates", "path", *tplPath)
	templates, err := config.LoadTemplates(*tplPath)
	if err != nil {
		slog.Error("failed to load templates", "error", err)
		os.Exit(1)
	}
	names := make([]string, len(templates))
	for i, tpl := range templates {
		names[i] = tpl.Name
	}
	slog.Info("templates loaded", "count", len(templates), "names", strings.Join(names, ","))

	engine, err := search.New(search.Config{
		SelfCountry:  params.Self,
		Templates:    templates,
		Quality:      quality,
		NumSchedules: params.N,
		MaxDepth:     params.Depth,
		BeamWidth:    params.Beam,
		Metrics: metrics.Params{
			Gamma:       params.Gamma,
			FailureCost: params.FailureCost,
			K:           params.K,
			X0:          params.X0,
		},
	})
	if err != nil {
		slog.Error("bad search configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("starting search",
		"self", params.Self,
		"n", params.N,
		"depth", params.Depth,
		"beam", params.Beam,
	)
	results, err := engine.Run(initial)
	if err != nil {
		slog.Error("search failed", "error", err)
		os.Exit(1)
	}
	slog.Info("search complete", "schedules", len(results), "best_eu", fmt.Sprintf("%.4f", results[0].EU))

	printResults(params.Self, results)

	final, err := results[0].Schedule.Apply(initial)
	if err != nil {
		slog.Error("failed to replay best schedule", "error", err)
		os.Exit(1)
	}
	fmt.Println("\nFinal world snapshot (best schedule, truncated):")
	fmt.Println(final.Pretty(10))

	if *outPath != "" {
		if err := writeScheduleCSV(*outPath, results); err != nil {
			slog.Error("failed to write schedule file", "error", err)
			os.Exit(1)
		}
		slog.Info("schedules written", "path", *outPath)
	}

	if *dbPath != "" {
		db, err := persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		runID, err := db.SaveRun(persistence.Run{
			SelfCountry: params.Self,
			N:           params.N,
			Depth:       params.Depth,
			Beam:        params.Beam,
			Gamma:       params.Gamma,
			FailureCost: params.FailureCost,
			K:           params.K,
			X0:          params.X0,
		}, results)
		if err != nil {
			slog.Error("failed to record run", "error", err)
			os.Exit(1)
		}
		slog.Info("run recorded", "run_id", runID, "db", *dbPath)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// printResults renders the ranked schedules with their per-step EU traces.
func printResults(self string, results []search.Result) {
	for rank, res := range results {
		fmt.Printf("\n=== Schedule %d (EU %.4f) ===\n", rank+1, res.EU)
		if res.Schedule.Len() == 0 {
			fmt.Println("(do nothing)")
			continue
		}
		for i, line := range res.Schedule.Strings() {
			fmt.Printf("%02d. %s   EU=%.4f\n", i+1, line, res.Schedule.Trace[i])
		}
	}
	fmt.Printf("\nExpected utility for %s: %.4f\n", self, results[0].EU)
}

// writeScheduleCSV emits one row per schedule: the action list joined by
// " | " and the step EUs joined by ";".
func writeScheduleCSV(path string, results []search.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Schedule", "Step_EUs"}); err != nil {
		return err
	}
	for _, res := range results {
		eus := make([]string, len(res.Schedule.Trace))
		for i, eu := range res.Schedule.Trace {
			eus[i] = fmt.Sprintf("%.4f", eu)
		}
		row := []string{
			strings.Join(res.Schedule.Strings(), " | "),
			strings.Join(eus, ";"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
