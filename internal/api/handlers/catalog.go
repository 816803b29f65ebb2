package handlers

import (
	"net/http"

	"mundell-fleming/internal/analysis"
	"mundell-fleming/internal/api/models"
	"mundell-fleming/internal/model"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static option and coefficient catalogues
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListPolicies handles GET /api/v1/policies
func (h *CatalogHandler) ListPolicies(c *gin.Context) {
	defaults := model.DefaultInputs()
	resp := models.PoliciesResponse{
		Parameters: []models.ParameterInfo{
			{
				Name:        "tariff_shock",
				Description: "Tariff size as % of GDP",
				Min:         model.MinShock,
				Max:         model.MaxShock,
				Step:        0.1,
				Default:     defaults.TariffShock,
			},
			{
				Name:        "ad_contraction",
				Description: "Aggregate demand drag from higher prices, % of GDP",
				Min:         model.MinShock,
				Max:         model.MaxShock,
				Step:        0.1,
				Default:     defaults.ADContraction,
			},
		},
	}
	for _, f := range model.FiscalResponses() {
		resp.FiscalResponses = append(resp.FiscalResponses, models.PolicyInfo{
			ID:    string(f),
			Label: f.Label(),
			Shift: f.Shift(),
		})
	}
	for _, m := range model.MonetaryPolicies() {
		resp.MonetaryPolicies = append(resp.MonetaryPolicies, models.PolicyInfo{
			ID:    string(m),
			Label: m.Label(),
			Shift: m.Shift(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// ListCoefficients handles GET /api/v1/coefficients
func (h *CatalogHandler) ListCoefficients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"coefficients": analysis.CoefficientGlossary()})
}
