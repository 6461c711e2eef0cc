package main

import (
	"context"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"infinite-experiment/reachburo/internal/common"
	"infinite-experiment/reachburo/internal/config"
	"infinite-experiment/reachburo/internal/constants"
	"infinite-experiment/reachburo/internal/logging"
	"infinite-experiment/reachburo/internal/metrics"
	"infinite-experiment/reachburo/internal/providers"
	"infinite-experiment/reachburo/internal/report"
	"infinite-experiment/reachburo/internal/services"
)

func main() {
	app := kingpin.New("reachburo", "Estimates travel difficulty between groups of source and destination cities for venue picking")
	configPath := app.Flag("config", "Path to the JSON run config (src, dst, bcThreshold)").Required().String()
	aliasesPath := app.Flag("aliases", "Optional YAML file overriding the built-in metro alias table").String()
	outputPath := app.Flag("output", "Write the CSV report to a file instead of stdout").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	// .env is optional; real environments set the variables directly
	_ = godotenv.Load()

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logging.Close()

	cfg, err := config.LoadRunConfig(*configPath)
	if err != nil {
		logging.Fatal("Failed to load run config", "error", err.Error())
	}

	aliases := constants.MetroAreas
	if *aliasesPath != "" {
		overrides, err := config.LoadAliases(*aliasesPath)
		if err != nil {
			logging.Fatal("Failed to load alias overrides", "error", err.Error())
		}
		aliases = config.MergeAliases(overrides)
	}

	logging.Info("Starting estimate run",
		"run_source", string(constants.RunSourceCLI),
		"sources", len(cfg.Src),
		"destinations", len(cfg.Dst),
		"bc_threshold_min", cfg.BCThreshold,
	)

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)
	cacheSvc := common.NewCacheService(0, 0)
	provider := providers.NewRouteAPIProvider()
	distanceSvc := services.NewDistanceService(cacheSvc, provider, metricsReg)
	estimator := services.NewEstimatorService(distanceSvc, aliases, metricsReg)

	start := time.Now()
	result, err := estimator.Run(context.Background(), cfg.Src, cfg.Dst, cfg.BCThreshold)
	if err != nil {
		logging.Fatal("Estimate run failed", "error", err.Error())
	}

	logging.Info("Estimate run complete",
		"destinations", len(result.Summaries),
		"cached_lookups", distanceSvc.CachedEntries(),
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)

	out := os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			logging.Fatal("Failed to create output file", "error", err.Error())
		}
		defer f.Close()
		out = f
	}

	if err := report.WriteCSV(out, result.Summaries); err != nil {
		logging.Fatal("Failed to write CSV report", "error", err.Error())
	}
}
