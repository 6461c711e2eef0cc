package main

import (
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"infinite-experiment/reachburo/internal/api"
	"infinite-experiment/reachburo/internal/config"
	"infinite-experiment/reachburo/internal/constants"
	"infinite-experiment/reachburo/internal/logging"
	"infinite-experiment/reachburo/internal/metrics"
	"infinite-experiment/reachburo/internal/routes"
)

func main() {
	app := kingpin.New("reachburo-server", "Serving mode for the travel-reachability estimator")
	aliasesPath := app.Flag("aliases", "Optional YAML file overriding the built-in metro alias table").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	// .env is optional; real environments set the variables directly
	_ = godotenv.Load()

	cfg := config.LoadServerConfig()

	if err := logging.Init(cfg.AppEnv); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logging.Close()

	logging.Info("Reachburo server starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	aliases := constants.MetroAreas
	if *aliasesPath != "" {
		overrides, err := config.LoadAliases(*aliasesPath)
		if err != nil {
			logging.Fatal("Failed to load alias overrides", "error", err.Error())
		}
		aliases = config.MergeAliases(overrides)
	}

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	deps, err := api.InitDependencies(metricsReg, aliases)
	if err != nil {
		logging.Fatal("Failed to initialize dependencies", "error", err.Error())
	}

	upSince := time.Now()

	router := routes.RegisterRoutes(deps, cfg, upSince)

	// Metrics endpoint lives outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
		"api_key_auth", len(cfg.APIKeys) > 0,
	)

	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		logging.Fatal("Server stopped", "error", err.Error())
	}
}
