package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/BlendBot_Go/internal/logger"
	"github.com/osse101/BlendBot_Go/internal/optimizer"
)

// OptimizeResponse is the synchronous result of a mix optimization.
type OptimizeResponse struct {
	Mix            []string `json:"mix"`
	ProfitCents    int      `json:"profitCents"`
	SellPriceCents int      `json:"sellPriceCents"`
	CostCents      int      `json:"costCents"`
}

// HandleOptimizeMix runs a search to completion and returns the best mix.
// The request blocks until the full state space is enumerated, so clients
// with deep catalogs should prefer the async search endpoints.
func HandleOptimizeMix(svc optimizer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req optimizer.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode optimize request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		log.Debug("Optimize request",
			"product", req.Product.Name,
			"substances", len(req.Substances),
			"max_depth", req.MaxDepth,
			"algorithm", req.Algorithm)

		result, err := svc.FindBestMix(r.Context(), req, optimizer.Callbacks{})
		if err != nil {
			log.Warn("Optimize failed", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Optimize completed",
			"product", req.Product.Name,
			"mix_len", len(result.Mix),
			"profit_cents", result.ProfitCents)

		respondJSON(w, http.StatusOK, OptimizeResponse{
			Mix:            result.Mix,
			ProfitCents:    result.ProfitCents,
			SellPriceCents: result.SellPriceCents,
			CostCents:      result.CostCents,
		})
	}
}
