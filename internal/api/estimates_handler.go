package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"infinite-experiment/reachburo/internal/common"
	"infinite-experiment/reachburo/internal/constants"
	reqcontext "infinite-experiment/reachburo/internal/context"
	"infinite-experiment/reachburo/internal/logging"
	"infinite-experiment/reachburo/internal/models/dtos"
	"infinite-experiment/reachburo/internal/providers"
)

var validate = validator.New()

// EstimatesHandler handles POST /api/v1/estimates: the serve-mode
// counterpart of a CLI run. The request body mirrors the run config file;
// the response carries the destination summaries plus the per-source
// table.
func EstimatesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.EstimateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request", http.StatusBadRequest)
			return
		}

		for i, c := range req.Src {
			req.Src[i] = common.NormalizeCode(c)
		}
		for i, c := range req.Dst {
			req.Dst[i] = common.NormalizeCode(c)
		}

		log := logging.WithRequest(reqcontext.GetRequestID(r.Context()), "/api/v1/estimates")
		log.Infow("Estimate request received",
			"run_source", string(constants.RunSourceAPI),
			"sources", len(req.Src),
			"destinations", len(req.Dst),
			"bc_threshold_min", req.BCThreshold,
		)

		result, err := deps.Services.Estimator.Run(r.Context(), req.Src, req.Dst, req.BCThreshold)
		if err != nil {
			log.Errorw("Estimate run failed", "error", err.Error())

			code := http.StatusInternalServerError
			var provErr *providers.ProviderError
			if errors.As(err, &provErr) {
				code = http.StatusBadGateway
				if provErr.Code == constants.ErrCodeAirportNotFound {
					code = http.StatusUnprocessableEntity
				}
			}
			common.RespondError(w, initTime, err, "Estimate run failed", code)
			return
		}

		deps.Metrics.CacheEntries.WithLabelValues("lookup").Set(float64(deps.Services.Cache.Count()))

		common.RespondSuccess(w, initTime, "Estimates computed", result)
	}
}
