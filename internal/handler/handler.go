package handler

import (
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"slipfall-engine/internal/calculations"
	"slipfall-engine/internal/engine"
	"slipfall-engine/internal/estimator"
	"slipfall-engine/internal/metrics"
	"slipfall-engine/internal/model"
)

// Config tunes the API handler.
type Config struct {
	// Strict is the validation mode used when a request does not choose one.
	Strict bool
	// RateLimit is the sustained request rate per second across all clients.
	// Zero or less disables throttling.
	RateLimit float64
	RateBurst int
}

// Handler serves the estimation API.
type Handler struct {
	opts    calculations.Options
	limiter *rate.Limiter
	metrics fasthttp.RequestHandler
}

func New(cfg Config) *Handler {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	return &Handler{
		opts:    calculations.Options{Strict: cfg.Strict},
		limiter: rate.NewLimiter(limit, burst),
		metrics: fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// Serve routes a request. It is the fasthttp.RequestHandler for the server.
func (h *Handler) Serve(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())
	route := h.route(ctx, path)

	status := ctx.Response.StatusCode()
	metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	zap.L().Debug("request served",
		zap.ByteString("method", ctx.Method()),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)),
	)
}

// route dispatches and returns the route label used for metrics.
func (h *Handler) route(ctx *fasthttp.RequestCtx, path string) string {
	switch path {
	case "/health":
		if requireMethod(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		}
		return path
	case "/metrics":
		if requireMethod(ctx, fasthttp.MethodGet) {
			h.metrics(ctx)
		}
		return path
	}

	if !h.limiter.Allow() {
		metrics.HTTPThrottled.Inc()
		writeError(ctx, fasthttp.StatusTooManyRequests, "Too many requests")
		return "throttled"
	}

	switch {
	case path == "/calculate":
		if requireMethod(ctx, fasthttp.MethodPost) {
			h.handleCalculation(ctx)
		}
	case path == "/api/settlement":
		if requireMethod(ctx, fasthttp.MethodPost) {
			h.handleSingle(ctx, calculations.SlipFallSettlement)
		}
	case path == "/api/insurance":
		if requireMethod(ctx, fasthttp.MethodPost) {
			h.handleSingle(ctx, calculations.InsurancePayout)
		}
	case path == "/api/injury-estimate":
		if requireMethod(ctx, fasthttp.MethodPost) {
			h.handleSingle(ctx, calculations.InjuryEstimate)
		}
	case path == "/api/injuries":
		if requireMethod(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, estimator.Injuries())
		}
	case strings.HasPrefix(path, "/api/injuries/"):
		if requireMethod(ctx, fasthttp.MethodGet) {
			handleInjury(ctx, strings.TrimPrefix(path, "/api/injuries/"))
		}
		return "/api/injuries/:key"
	case path == "/api/locations":
		if requireMethod(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, estimator.FallLocations())
		}
	case path == "/api/reference":
		if requireMethod(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, newReference())
		}
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
		return "not_found"
	}
	return path
}

func (h *Handler) handleCalculation(ctx *fasthttp.RequestCtx) {
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.CalculationInstructions.Calculations) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one calculation is required")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, engine.Process(&req, h.opts))
}

// handleSingle wraps a bare properties body into a one-calculation request.
// A failed calculation answers 422 with the full response so the messages
// are still visible.
func (h *Handler) handleSingle(ctx *fasthttp.RequestCtx, definition string) {
	body := ctx.PostBody()
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body")
		return
	}

	req := model.CalculationRequest{
		TenantID: string(ctx.Request.Header.Peek("X-Tenant-ID")),
		CalculationInstructions: model.CalculationInstructions{
			Calculations: []model.Calculation{{
				CalculationID:             uuid.New().String(),
				CalculationDefinitionName: definition,
				CalculationProperties:     append(json.RawMessage(nil), body...),
			}},
		},
	}
	if args := ctx.QueryArgs(); args.Has("strict") {
		strict := args.GetBool("strict")
		req.CalculationInstructions.Strict = &strict
	}

	resp := engine.Process(&req, h.opts)
	status := fasthttp.StatusOK
	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		status = fasthttp.StatusUnprocessableEntity
	}
	writeJSON(ctx, status, resp)
}

type injuryDetail struct {
	Estimate  estimator.InjuryEstimate `json:"estimate"`
	Formatted map[string]string        `json:"formatted"`
}

func handleInjury(ctx *fasthttp.RequestCtx, key string) {
	est, err := estimator.EstimateInjury(estimator.InjuryKey(key))
	if err != nil {
		writeError(ctx, fasthttp.StatusNotFound, "Unknown injury type: "+key)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, injuryDetail{Estimate: est, Formatted: est.Formatted()})
}

func requireMethod(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	ctx.Response.Header.Set("Allow", method)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	return false
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		zap.L().Error("encode response", zap.Error(err))
		status = fasthttp.StatusInternalServerError
		b, _ = json.Marshal(model.ErrorResponse{Status: status, Message: "Failed to encode response"})
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
