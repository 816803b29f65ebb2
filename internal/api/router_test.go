package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mundell-fleming/internal/api/middleware"
	"mundell-fleming/internal/config"
	"mundell-fleming/internal/render"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	preset := "scenario:\n  name: Rebate\n  tariff_shock: 3\n  ad_contraction: 2\n  fiscal_response: tax_cut\n  monetary_policy: ease\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rebate.yaml"), []byte(preset), 0o644))

	settings := &config.Settings{
		API:       config.APISettings{Port: "0", Env: "test", CORSOrigins: []string{"*"}},
		Scenarios: config.ScenarioSettings{Dir: dir},
		Cache:     config.CacheSettings{Enabled: true, TTL: time.Minute},
	}
	return NewRouter(settings, zaptest.NewLogger(t))
}

func do(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, w)
	detail, ok := body["error"].(map[string]any)
	require.True(t, ok, w.Body.String())
	return detail["code"].(string)
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestEvaluate_Defaults(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/evaluate", `{}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.NotEmpty(t, body["id"])
	assert.NotContains(t, body, "curve")

	result := body["result"].(map[string]any)
	assert.InDelta(t, 100.16, result["y_new"].(float64), 1e-9)
	assert.InDelta(t, 4.04, result["r_new"].(float64), 1e-9)
	assert.InDelta(t, 1.38, result["e_new"].(float64), 1e-9)

	assert.Len(t, body["narrative"], 5)
	assert.Len(t, body["shocks"], 4)
	assert.Len(t, body["metrics"], 3)
}

func TestEvaluate_LabelsAndCurve(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/evaluate",
		`{"tariff_shock":0,"ad_contraction":0,"fiscal_response":"Tax Cut (Mildly Expansionary)","monetary_policy":"ease","include_curve":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	inputs := body["inputs"].(map[string]any)
	assert.Equal(t, "tax_cut", inputs["fiscal_response"])
	assert.Equal(t, "ease", inputs["monetary_policy"])
	assert.Equal(t, 0.0, inputs["tariff_shock"])

	points := body["curve"].([]any)
	require.Len(t, points, 100)
	assert.Equal(t, 95.0, points[0].(map[string]any)["y"])
	assert.Equal(t, 105.0, points[99].(map[string]any)["y"])
}

func TestEvaluate_InvalidInputs(t *testing.T) {
	r := newTestRouter(t)
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"tariff above range", `{"tariff_shock":5.1}`, "tariff_shock"},
		{"negative ad", `{"ad_contraction":-0.5}`, "ad_contraction"},
		{"unknown fiscal", `{"fiscal_response":"helicopter"}`, "fiscal_response"},
		{"unknown monetary", `{"monetary_policy":"qe"}`, "monetary_policy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/v1/evaluate", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			detail := decode(t, w)["error"].(map[string]any)
			assert.Equal(t, "INVALID_INPUTS", detail["code"])
			assert.Equal(t, tt.field, detail["details"].(map[string]any)["field"])
		})
	}
}

func TestEvaluate_MalformedBody(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/evaluate", `{"tariff_shock":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
}

func TestCompare(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/evaluate/compare",
		`{"base":{"tariff_shock":2},"variations":[{"name":"ease","inputs":{"monetary_policy":"ease"}},{"name":"paydown","inputs":{"fiscal_response":"debt_paydown"}}]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	rows := decode(t, w)["comparison"].([]any)
	require.Len(t, rows, 3)
	assert.Equal(t, "base", rows[0].(map[string]any)["name"])
	assert.Equal(t, "ease", rows[1].(map[string]any)["name"])

	baseY := rows[0].(map[string]any)["result"].(map[string]any)["y_new"].(float64)
	easeY := rows[1].(map[string]any)["result"].(map[string]any)["y_new"].(float64)
	assert.InDelta(t, 0.5, easeY-baseY, 1e-9)

	w = do(t, r, http.MethodPost, "/api/v1/evaluate/compare",
		`{"base":{},"variations":[{"name":"bad","inputs":{"tariff_shock":7}}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUTS", errorCode(t, w))

	w = do(t, r, http.MethodPost, "/api/v1/evaluate/compare", `{"base":{},"variations":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRank(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/api/v1/rank?tariff_shock=2&ad_contraction=1", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	rankings := decode(t, w)["rankings"].([]any)
	require.Len(t, rankings, 9)
	first := rankings[0].(map[string]any)
	assert.Equal(t, "tax_cut", first["fiscal_response"])
	assert.Equal(t, "ease", first["monetary_policy"])
	for i := 1; i < len(rankings); i++ {
		prev := rankings[i-1].(map[string]any)["y_new"].(float64)
		cur := rankings[i].(map[string]any)["y_new"].(float64)
		assert.GreaterOrEqual(t, prev, cur)
	}

	w = do(t, r, http.MethodGet, "/api/v1/rank?tariff_shock=9", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalog(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/policies", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["fiscal_responses"], 3)
	assert.Len(t, body["monetary_policies"], 3)
	assert.Len(t, body["parameters"], 2)

	w = do(t, r, http.MethodGet, "/api/v1/coefficients", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["coefficients"], 6)
}

func TestScenarios(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/scenarios", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)["scenarios"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "rebate", list[0].(map[string]any)["id"])

	w = do(t, r, http.MethodGet, "/api/v1/scenarios/rebate", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	eval := decode(t, w)["evaluation"].(map[string]any)
	assert.Equal(t, "tax_cut", eval["inputs"].(map[string]any)["fiscal_response"])

	w = do(t, r, http.MethodGet, "/api/v1/scenarios/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SCENARIO_NOT_FOUND", errorCode(t, w))
}

func TestIndexPage(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	page := w.Body.String()
	assert.Contains(t, page, "Mundell-Fleming Tariff Simulator")
	assert.Contains(t, page, "IS-LM Diagram (Flexible Exchange Rates)")
	assert.Contains(t, page, `value="2.0"`)
	assert.Contains(t, page, "Tariff Shock (NX Boost)")
	assert.Contains(t, page, `<p class="intro">`+render.IntroText+`</p>`)
	assert.Contains(t, page, "<h2>Model Assumptions</h2>")
	for _, label := range []string{
		render.LabelTariffShock,
		render.LabelADContraction,
		render.LabelFiscal,
		render.LabelMonetary,
	} {
		assert.Contains(t, page, label)
	}
	assert.Contains(t, page, "<h2>Understanding the IS and LM Curves</h2>")
	for _, e := range render.Explainers() {
		assert.Contains(t, page, "<h3>"+e.Title+"</h3>")
		assert.Contains(t, page, "<p>"+e.Lead+"</p>")
		for _, p := range e.Points {
			assert.Contains(t, page, "<li>"+p+"</li>")
		}
	}
	assert.Contains(t, page, "where Total Demand = Total Output.")

	w = do(t, r, http.MethodGet, "/?tariff_shock=9&ad_contraction=abc&fiscal_response=tax_cut", "")
	require.Equal(t, http.StatusOK, w.Code)
	page = w.Body.String()
	assert.Contains(t, page, `id="tariff_shock" name="tariff_shock" min="0.0" max="5.0" step="0.1" value="5.0"`)
	assert.Contains(t, page, `id="ad_contraction" name="ad_contraction" min="0.0" max="5.0" step="0.1" value="1.0"`)
	assert.Contains(t, page, `<option value="tax_cut" selected>`)
}

func TestChartSVG(t *testing.T) {
	r := newTestRouter(t)
	for range 2 {
		w := do(t, r, http.MethodGet, "/chart.svg?monetary_policy=tighten&width=400&height=300", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), `width="400" height="300"`)
		assert.Equal(t, 1, strings.Count(w.Body.String(), `class="equilibrium"`))
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/evaluate", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight_StopsChain(t *testing.T) {
	var reached int
	r := gin.New()
	r.Use(middleware.CORS(nil))
	r.Use(func(c *gin.Context) {
		reached++
		c.Next()
	})
	r.OPTIONS("/api/v1/evaluate", func(c *gin.Context) {
		c.Status(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/evaluate", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Zero(t, reached)

	// A plain OPTIONS request is not a preflight and still reaches the route.
	w = do(t, r, http.MethodOptions, "/api/v1/evaluate", "")
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, 1, reached)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	do(t, r, http.MethodPost, "/api/v1/evaluate", `{}`)

	w := do(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mfsim_evaluations_total")
	assert.Contains(t, w.Body.String(), "mfsim_http_request_duration_seconds")
}

func TestRecoveryAndNotFound(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := do(t, r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, w))

	w = do(t, r, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}
