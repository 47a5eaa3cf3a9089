// Package server exposes the address checker and the address book over a
// JSON HTTP API.
package server

import (
	"context"
	"net/http"

	"github.com/andreiashu/postaddr"
	"github.com/andreiashu/postaddr/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// AddressBook is the persistence the API needs; *store.Store implements it.
type AddressBook interface {
	Put(ctx context.Context, canonical, country string) (store.Record, error)
	Get(ctx context.Context, id string) (store.Record, error)
	Delete(ctx context.Context, id string) error
}

// Config holds the HTTP-level settings.
type Config struct {
	RateLimit float64 // requests per second per client, 0 disables limiting
	RateBurst int

	// MaxBodyBytes caps request bodies on the API routes; 0 uses
	// DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// DefaultMaxBodyBytes is the request body limit when Config leaves it unset.
const DefaultMaxBodyBytes = 64 << 10

type Server struct {
	router  *gin.Engine
	checker *postaddr.Checker
	book    AddressBook
	log     *zap.Logger
	metrics *Metrics
	limiter *RateLimiter
}

// New wires the routes. Metrics are registered on reg and served from it.
func New(cfg Config, checker *postaddr.Checker, book AddressBook, log *zap.Logger, reg *prometheus.Registry) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		router:  gin.New(),
		checker: checker,
		book:    book,
		log:     log,
		metrics: NewMetrics("postaddr", reg, checker),
	}

	s.router.Use(gin.Recovery(), requestLogger(log), s.metrics.middleware())
	s.router.GET("/health", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := s.router.Group("/v1")
	if cfg.RateLimit > 0 {
		s.limiter = NewRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
		api.Use(rateLimit(s.limiter))
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	api.Use(limitBody(maxBody))
	api.POST("/addresses/check", s.checkAddress)
	api.POST("/addresses", s.createAddress)
	api.GET("/addresses/:id", s.getAddress)
	api.DELETE("/addresses/:id", s.deleteAddress)
	api.GET("/countries", s.listCountries)
	api.GET("/countries/:code/divisions", s.listDivisions)

	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler { return s.router }

// Limiter returns the rate limiter, or nil when limiting is disabled.
func (s *Server) Limiter() *RateLimiter { return s.limiter }
