package handlers

import (
	"errors"
	"net/http"
	"os"

	"mundell-fleming/internal/data"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScenarioHandler serves the read-only preset catalogue
type ScenarioHandler struct {
	dir  string
	eval *EvaluateHandler
	log  *zap.Logger
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(dir string, eval *EvaluateHandler, log *zap.Logger) *ScenarioHandler {
	log.Info("scenario directory", zap.String("dir", dir))
	return &ScenarioHandler{dir: dir, eval: eval, log: log}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios, skipped, err := data.ListScenarios(h.dir)
	if err != nil {
		h.log.Error("list scenarios", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "SCENARIO_DIR_ERROR", err.Error(), nil)
		return
	}
	for _, s := range skipped {
		h.log.Warn("skipping invalid scenario", zap.String("file", s.File), zap.Error(s.Err))
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}

// EvaluateScenario handles GET /api/v1/scenarios/:id
func (h *ScenarioHandler) EvaluateScenario(c *gin.Context) {
	sc, err := data.FindScenario(h.dir, c.Param("id"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			respondError(c, http.StatusNotFound, "SCENARIO_NOT_FOUND", err.Error(), nil)
			return
		}
		respondError(c, http.StatusBadRequest, "INVALID_SCENARIO", err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"scenario":   sc,
		"evaluation": h.eval.evaluate(sc.Inputs, c.Query("include_curve") == "true"),
	})
}
