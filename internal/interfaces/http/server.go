package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"playo/internal/idempotency"
	"playo/internal/interfaces/tools"
)

var (
	toolCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tool_calls_total",
		Help: "Total number of tool executions",
	}, []string{"tool"})
	toolCallsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tool_calls_failed_total",
		Help: "Total number of tool executions returning a transport error",
	}, []string{"tool"})
)

type Server struct {
	e        *echo.Echo
	addr     string
	registry *tools.Registry
}

func NewServer(
	e *echo.Echo,
	addr string,
	registry *tools.Registry,
	routerIsRunning func() bool,
) *Server {
	srv := &Server{
		e:        e,
		addr:     addr,
		registry: registry,
	}

	e.GET("/tools", srv.ListToolsHandler)
	e.POST("/tools/:name", srv.CallToolHandler)

	e.GET("/health", func(c echo.Context) error {
		if !routerIsRunning() {
			return c.String(http.StatusServiceUnavailable, "router is not running")
		}
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log.FromContext(c.Request().Context()).
				WithField("path", c.Request().URL.Path).
				Info("Handling a request")

			err := next(c)

			if err != nil {
				log.FromContext(c.Request().Context()).
					WithField("error", err).
					Error("Request handling error")
			}

			return err
		}
	})
	return srv
}

func (s *Server) ListToolsHandler(c echo.Context) error {
	type toolInfo struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		Parameters  map[string]any `json:"parameters"`
	}

	list := s.registry.List()
	infos := make([]toolInfo, 0, len(list))
	for _, t := range list {
		infos = append(infos, toolInfo{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{"tools": infos})
}

func (s *Server) CallToolHandler(c echo.Context) error {
	name := c.Param("name")

	tool, ok := s.registry.Get(name)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]any{
			"success": false,
			"error":   "unknown tool: " + name,
		})
	}

	args := map[string]any{}
	if err := c.Bind(&args); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid JSON body",
		})
	}

	ctx := c.Request().Context()
	if key := c.Request().Header.Get("Idempotency-Key"); key != "" {
		ctx = idempotency.WithKey(ctx, key)
	}

	toolCallsTotal.WithLabelValues(name).Inc()

	result, err := tool.Execute(ctx, args)
	if err != nil {
		toolCallsFailedTotal.WithLabelValues(name).Inc()
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) Start() error {
	err := s.e.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
