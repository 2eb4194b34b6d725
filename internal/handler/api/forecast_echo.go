package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	models "PriceCast/internal/domain/models"
	icache "PriceCast/internal/service/cache"
	"PriceCast/internal/service/metrics"
	"PriceCast/internal/service/ratelimit"
	"PriceCast/internal/services/forecast"
	"PriceCast/internal/usecase"
	xhttp "PriceCast/pkg/http"
	xlogger "PriceCast/pkg/logger"
	"PriceCast/pkg/util"
)

// ForecastEchoHandler implements the Echo-based forecast API.
type ForecastEchoHandler struct {
	logger   *xlogger.Logger
	uc       *usecase.ForecastUseCase
	cache    icache.BytesCache
	rl       *ratelimit.Limiter
	cacheTTL time.Duration
}

func NewForecastEchoHandler(logger *xlogger.Logger, uc *usecase.ForecastUseCase) *ForecastEchoHandler {
	metrics.Register()
	return &ForecastEchoHandler{
		logger:   logger,
		uc:       uc,
		rl:       ratelimit.New(),
		cacheTTL: 60 * time.Second,
	}
}

// SetCache injects a response cache.
func (h *ForecastEchoHandler) SetCache(c icache.BytesCache) { h.cache = c }

// SetCacheTTL overrides the default response cache TTL.
func (h *ForecastEchoHandler) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		h.cacheTTL = ttl
	}
}

func (h *ForecastEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/forecast", h.Forecast)
	g.GET("/recommendation", h.Recommendation)
	g.GET("/history", h.History)
}

func (h *ForecastEchoHandler) Forecast(c echo.Context) error {
	start := time.Now()
	endpoint := "forecast"
	defer func() { metrics.ForecastLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.uc.Forecast(c.Request().Context(), usecase.ForecastParams{
		Symbol: req.Symbol,
		Model:  models.Model(req.Model),
		Days:   req.Days,
		N:      req.N,
		Window: req.Window,
		Alpha:  req.Alpha,
		P:      req.P,
		D:      req.D,
		Q:      req.Q,
	})
	if err != nil {
		metrics.ForecastErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("forecast usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, h.mapError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ForecastEchoHandler) Recommendation(c echo.Context) error {
	start := time.Now()
	endpoint := "recommendation"
	defer func() { metrics.ForecastLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.RecommendationRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if !h.rl.Allow(c.RealIP()+":recommendation", 5, 2) {
		h.logger.Warn("recommendation rate_limited", xlogger.String("remote", c.RealIP()))
		return xhttp.TooManyRequestsResponse(c)
	}

	cacheKey := fmt.Sprintf("recommendation:%s:%d:%d", req.Symbol, req.Days, req.N)
	if h.cache != nil {
		if b, ok, err := h.cache.GetBytes(cacheKey); err != nil {
			h.logger.Warn("recommendation cache_get_error", xlogger.Error(err))
		} else if ok {
			h.logger.Debug("recommendation cache_hit", xlogger.String("key", cacheKey))
			return c.JSONBlob(http.StatusOK, b)
		}
	}

	res, err := h.uc.Recommend(c.Request().Context(), usecase.RecommendParams{
		Symbol: req.Symbol,
		Days:   req.Days,
		N:      req.N,
	})
	if err != nil {
		metrics.ForecastErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("recommendation usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, h.mapError(err))
	}
	metrics.ModelWins.WithLabelValues(string(res.Recommendation.BestModel)).Inc()

	body := xhttp.APIResponse{
		Status:  http.StatusOK,
		Message: http.StatusText(http.StatusOK),
		Data:    res,
	}
	if b, err := json.Marshal(body); err == nil {
		if h.cache != nil {
			if err := h.cache.SetBytes(cacheKey, b, h.cacheTTL); err != nil {
				h.logger.Warn("recommendation cache_set_error", xlogger.Error(err))
			}
		}
		return c.JSONBlob(http.StatusOK, b)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ForecastEchoHandler) History(c echo.Context) error {
	start := time.Now()
	endpoint := "history"
	defer func() { metrics.ForecastLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	now := time.Now().UTC()
	from := util.ParseDateDefault(req.From, now.AddDate(0, -6, 0))
	to := util.ParseDateDefault(req.To, now)

	res, err := h.uc.History(c.Request().Context(), usecase.HistoryParams{
		Symbol: req.Symbol,
		From:   from,
		To:     to,
	})
	if err != nil {
		metrics.ForecastErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("history usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, h.mapError(err))
	}
	if res.Count == 0 {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("no history for symbol %s", req.Symbol))
	}
	return xhttp.SuccessResponse(c, res)
}

// mapError translates domain errors to API errors. Insufficient history is
// the caller's problem, not the server's.
func (h *ForecastEchoHandler) mapError(err error) error {
	if errors.Is(err, forecast.ErrInsufficientData) {
		return xhttp.BadRequestError("ERR_INSUFFICIENT_DATA", err.Error()).WithError(err)
	}
	return err
}
