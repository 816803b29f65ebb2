package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mundell-fleming/internal/api/models"
	"mundell-fleming/internal/metrics"
	"mundell-fleming/internal/model"

	"github.com/gin-gonic/gin"
)

// resolveInputs overlays the request onto the default inputs and validates
// the result. Every failure is a *model.InputError.
func resolveInputs(req models.EvaluateRequest) (model.PolicyInputs, error) {
	return resolveOnto(model.DefaultInputs(), req)
}

func resolveOnto(base model.PolicyInputs, req models.EvaluateRequest) (model.PolicyInputs, error) {
	o, err := overrideFrom(req)
	if err != nil {
		return model.PolicyInputs{}, err
	}
	in := o.Apply(base)
	if err := in.Validate(); err != nil {
		return model.PolicyInputs{}, err
	}
	return in, nil
}

func overrideFrom(req models.EvaluateRequest) (model.InputOverride, error) {
	o := model.InputOverride{
		TariffShock:   req.TariffShock,
		ADContraction: req.ADContraction,
	}
	if req.FiscalResponse != nil {
		f, err := model.ParseFiscalResponse(*req.FiscalResponse)
		if err != nil {
			return o, &model.InputError{Field: "fiscal_response", Message: err.Error()}
		}
		o.Fiscal = &f
	}
	if req.MonetaryPolicy != nil {
		m, err := model.ParseMonetaryPolicy(*req.MonetaryPolicy)
		if err != nil {
			return o, &model.InputError{Field: "monetary_policy", Message: err.Error()}
		}
		o.Monetary = &m
	}
	return o, nil
}

func respondError(c *gin.Context, status int, code, message string, details map[string]any) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondInputError maps validation failures to 400 INVALID_INPUTS and
// anything else to 500.
func respondInputError(c *gin.Context, err error) {
	var ie *model.InputError
	if errors.As(err, &ie) {
		metrics.InvalidInputsTotal.WithLabelValues(ie.Field).Inc()
		respondError(c, http.StatusBadRequest, "INVALID_INPUTS", err.Error(), map[string]any{
			"field": ie.Field,
		})
		return
	}
	_ = c.Error(err)
	respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
}

// queryInputs reads slider-style inputs from the query string. Missing or
// unparsable values fall back to defaults and numerics are clamped.
func queryInputs(c *gin.Context) model.PolicyInputs {
	in := model.DefaultInputs()
	if v, err := strconv.ParseFloat(c.Query("tariff_shock"), 64); err == nil {
		in.TariffShock = v
	}
	if v, err := strconv.ParseFloat(c.Query("ad_contraction"), 64); err == nil {
		in.ADContraction = v
	}
	if f, err := model.ParseFiscalResponse(c.Query("fiscal_response")); err == nil {
		in.Fiscal = f
	}
	if m, err := model.ParseMonetaryPolicy(c.Query("monetary_policy")); err == nil {
		in.Monetary = m
	}
	return in.Clamp()
}
