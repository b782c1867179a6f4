// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"github.com/kidzeivo/seating-designer/internal/db"
	"github.com/kidzeivo/seating-designer/internal/server/api"
)

func NewServer(serviceName string, store db.VersionStore) *Server {
	s := &Server{
		logger:      slog.Default().WithGroup("http"),
		serviceName: serviceName,
		store:       store,
	}
	s.mux = s.buildMux()
	return s
}

type Server struct {
	serviceName string
	logger      *slog.Logger
	store       db.VersionStore
	mux         *gin.Engine
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) buildMux() *gin.Engine {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	mux := gin.New()

	mux.Use(
		sloggin.NewWithConfig(s.logger,
			sloggin.Config{
				DefaultLevel:     slog.LevelInfo,
				ClientErrorLevel: slog.LevelWarn,
				ServerErrorLevel: slog.LevelError,
			},
		),
		gin.Recovery(), otelgin.Middleware(s.serviceName), slogAddTraceAttributes,
	)

	mux.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	versionHandler := api.NewVersionHandler(s.store)
	versions := mux.Group("/versions")
	versions.POST("", versionHandler.Create)
	versions.GET("", versionHandler.List)
	versions.POST("/import", versionHandler.Import)

	withID := versions.Group("/:uuid", versionIDValid)
	withID.GET("", versionHandler.GetByID)
	withID.DELETE("", versionHandler.Delete)
	withID.GET("/export", versionHandler.Export)
	withID.GET("/seating.csv", versionHandler.ExportCSV)

	mux.NoRoute(notFound)
	return mux
}

// versionIDValid rejects malformed version ids before they reach a
// handler. A malformed id is answered as not-found, never as a lookup
// error.
func versionIDValid(c *gin.Context) {
	var span trace.Span
	_, span = tracer.Start(c.Request.Context(), "Middleware.versionIDValid")
	defer span.End()

	if _, err := uuid.Parse(c.Param("uuid")); err != nil {
		span.RecordError(err)
		notFound(c)
		c.Abort()
		return
	}
	c.Next()
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
}

func slogAddTraceAttributes(c *gin.Context) {
	sloggin.AddCustomAttributes(c,
		slog.String("trace-id", trace.SpanFromContext(c.Request.Context()).SpanContext().TraceID().String()),
	)
	sloggin.AddCustomAttributes(c,
		slog.String("span-id", trace.SpanFromContext(c.Request.Context()).SpanContext().SpanID().String()),
	)
	c.Next()
}
