package http

import (
	"time"

	"github.com/MKhiriev/address-search/internal/config"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/internal/service"
	"github.com/MKhiriev/address-search/internal/utils"
)

type Handler struct {
	services *service.Services
	traceIDs *utils.TraceIDGenerator
	limiter  *IPRateLimiter

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	rateLimit, burst := cfg.RateLimit, cfg.RateBurst
	if rateLimit <= 0 {
		rateLimit = config.DefaultRateLimit
	}
	if burst <= 0 {
		burst = config.DefaultRateBurst
	}

	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = config.DefaultRequestTimeout
	}

	logger.Info().Float64("rate_limit", rateLimit).Int("rate_burst", burst).Msg("http handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewTraceIDGenerator(),
		limiter:  NewIPRateLimiter(rateLimit, burst),

		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
