package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"mundell-fleming/internal/api/web"
	"mundell-fleming/internal/curve"
	"mundell-fleming/internal/metrics"
	"mundell-fleming/internal/model"
	"mundell-fleming/internal/render"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler serves the interactive calculator page and its chart
type PageHandler struct {
	cache *render.ChartCache
	log   *zap.Logger
}

// NewPageHandler creates a new page handler. A nil cache disables chart caching.
func NewPageHandler(cache *render.ChartCache, log *zap.Logger) *PageHandler {
	return &PageHandler{cache: cache, log: log}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	in := queryInputs(c)
	res := model.Evaluate(in)
	metrics.EvaluationsTotal.WithLabelValues(string(in.Fiscal), string(in.Monetary)).Inc()

	svg := h.chart(in, res, render.DefaultChartOptions())
	var buf bytes.Buffer
	if err := web.Render(&buf, web.NewPageData(in, res, svg)); err != nil {
		h.log.Error("render page", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "RENDER_ERROR", err.Error(), nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Chart handles GET /chart.svg
func (h *PageHandler) Chart(c *gin.Context) {
	in := queryInputs(c)
	opts := render.DefaultChartOptions()
	if w, err := strconv.Atoi(c.Query("width")); err == nil && w > 0 && w <= 4000 {
		opts.Width = w
	}
	if ht, err := strconv.Atoi(c.Query("height")); err == nil && ht > 0 && ht <= 4000 {
		opts.Height = ht
	}
	svg := h.chart(in, model.Evaluate(in), opts)
	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}

func (h *PageHandler) chart(in model.PolicyInputs, res model.EquilibriumResult, opts render.ChartOptions) string {
	key := render.CacheKey(in, opts)
	if svg, ok := h.cache.Get(key); ok {
		metrics.ChartCacheLookups.WithLabelValues("hit").Inc()
		return svg
	}
	metrics.ChartCacheLookups.WithLabelValues("miss").Inc()
	svg := render.SVGChart(curve.Sample(res), res, opts)
	h.cache.Set(key, svg)
	return svg
}
