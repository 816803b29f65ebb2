package handlers

import (
	"net/http"

	"mundell-fleming/internal/analysis"
	"mundell-fleming/internal/api/models"
	"mundell-fleming/internal/curve"
	"mundell-fleming/internal/logger"
	"mundell-fleming/internal/metrics"
	"mundell-fleming/internal/model"
	"mundell-fleming/internal/render"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EvaluateHandler handles model evaluation requests
type EvaluateHandler struct {
	log *zap.Logger
}

// NewEvaluateHandler creates a new evaluate handler
func NewEvaluateHandler(log *zap.Logger) *EvaluateHandler {
	return &EvaluateHandler{log: log}
}

// Evaluate handles POST /api/v1/evaluate
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	in, err := resolveInputs(req)
	if err != nil {
		h.log.Debug("rejected inputs", zap.Error(err))
		respondInputError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.evaluate(in, req.IncludeCurve))
}

func (h *EvaluateHandler) evaluate(in model.PolicyInputs, includeCurve bool) models.EvaluateResponse {
	res := model.Evaluate(in)
	metrics.EvaluationsTotal.WithLabelValues(string(in.Fiscal), string(in.Monetary)).Inc()

	id := uuid.NewString()
	h.log.Info("evaluated",
		append(logger.PolicyFields(string(in.Fiscal), string(in.Monetary)),
			zap.String("id", id),
			zap.Float64("tariff_shock", in.TariffShock),
			zap.Float64("ad_contraction", in.ADContraction),
			zap.Float64("y_new", res.YNew),
		)...,
	)

	resp := models.EvaluateResponse{
		ID:        id,
		Inputs:    in,
		Result:    res,
		Deltas:    res.Deltas(),
		Metrics:   render.Metrics(res),
		Narrative: analysis.Narrative(in, res),
		Shocks:    analysis.ShockBreakdown(in, res),
	}
	if includeCurve {
		resp.Curve = curve.Sample(res)
	}
	return resp
}

// Compare handles POST /api/v1/evaluate/compare
func (h *EvaluateHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	base, err := resolveInputs(req.Base)
	if err != nil {
		respondInputError(c, err)
		return
	}

	variations := make([]analysis.Variation, 0, len(req.Variations))
	for _, v := range req.Variations {
		o, err := overrideFrom(v.Inputs)
		if err != nil {
			respondInputError(c, err)
			return
		}
		variations = append(variations, analysis.Variation{Name: v.Name, Override: o})
	}

	rows, err := analysis.Compare(base, variations)
	if err != nil {
		respondInputError(c, err)
		return
	}

	resp := models.CompareResponse{Comparison: make([]models.ComparisonResult, 0, len(rows))}
	for _, r := range rows {
		metrics.EvaluationsTotal.WithLabelValues(string(r.Inputs.Fiscal), string(r.Inputs.Monetary)).Inc()
		resp.Comparison = append(resp.Comparison, models.ComparisonResult{
			Name:   r.Name,
			Inputs: r.Inputs,
			Result: r.Result,
			Deltas: r.Deltas,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Rank handles GET /api/v1/rank
func (h *EvaluateHandler) Rank(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	in, err := resolveInputs(models.EvaluateRequest{
		TariffShock:   req.TariffShock,
		ADContraction: req.ADContraction,
	})
	if err != nil {
		respondInputError(c, err)
		return
	}

	mixes := analysis.RankPolicyMixes(in.TariffShock, in.ADContraction)
	resp := models.RankResponse{
		TariffShock:   in.TariffShock,
		ADContraction: in.ADContraction,
		Rankings:      make([]models.Ranking, 0, len(mixes)),
	}
	for i, m := range mixes {
		resp.Rankings = append(resp.Rankings, models.Ranking{
			Rank:           i + 1,
			FiscalResponse: string(m.Inputs.Fiscal),
			MonetaryPolicy: string(m.Inputs.Monetary),
			YNew:           m.Result.YNew,
			RNew:           m.Result.RNew,
			ENew:           m.Result.ENew,
		})
	}
	c.JSON(http.StatusOK, resp)
}
