// Package api exposes the IRR solver over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mvonwaldner/irr"
)

// Server serves the solver endpoints.
type Server struct {
	cfg    Config
	log    *slog.Logger
	engine *gin.Engine
}

// New builds the router. It fails when the CORS settings are inconsistent.
func New(cfg Config, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	registerTagNames()

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(log))

	if len(cfg.CORSOrigins) > 0 {
		corsCfg := cors.Config{
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		}
		if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
			corsCfg.AllowAllOrigins = true
		} else {
			corsCfg.AllowOrigins = cfg.CORSOrigins
		}
		if err := corsCfg.Validate(); err != nil {
			return nil, fmt.Errorf("cors: %w", err)
		}
		engine.Use(cors.New(corsCfg))
	}

	s := &Server{cfg: cfg, log: log, engine: engine}
	engine.GET("/healthz", s.handleHealth)
	v1 := engine.Group("/v1")
	v1.POST("/irr", s.handleIRR)
	v1.POST("/npv", s.handleNPV)
	return s, nil
}

// Handler returns the router as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// within cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", s.cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleIRR(c *gin.Context) {
	var req IRRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: bindingMessage(err)})
		return
	}

	resp := req.Solve()
	s.log.Debug("irr solved",
		slog.Int("cash_flows", len(req.CashFlows)),
		slog.Bool("converged", resp.Converged),
		slog.Int("iterations", resp.Iterations),
	)
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleNPV(c *gin.Context) {
	var req NPVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: bindingMessage(err)})
		return
	}

	flows := toCashFlows(req.CashFlows)
	resp := NPVResponse{
		NPV:        irr.NetPresentValue(*req.Rate, flows),
		Derivative: irr.NetPresentValueDerivative(*req.Rate, flows),
	}
	if !isFinite(resp.NPV) || !isFinite(resp.Derivative) {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error: fmt.Sprintf("net present value is not finite at rate %g", *req.Rate),
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// requestLogger writes one line per request.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
