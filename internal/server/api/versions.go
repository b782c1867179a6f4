// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/kidzeivo/seating-designer/internal/db"
	"github.com/kidzeivo/seating-designer/internal/exchange"
	"github.com/kidzeivo/seating-designer/internal/model"
	"github.com/kidzeivo/seating-designer/internal/view"
)

func NewVersionHandler(store db.VersionStore) *VersionHandler {
	return &VersionHandler{
		store:  store,
		logger: slog.Default().WithGroup("api"),
	}
}

type VersionHandler struct {
	store  db.VersionStore
	logger *slog.Logger
}

// Create stores a new version from the request body. The payload must
// carry guests and tables as arrays; it is rejected before anything is
// written otherwise. The save time is stamped by the server.
func (h *VersionHandler) Create(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "VersionHandler.Create")
	defer span.End()

	version, ok := h.readDocument(c, ctx, span)
	if !ok {
		return
	}
	version.SavedAt = time.Now()

	id, err := h.store.CreateVersion(ctx, version)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not store version", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "STORAGE_ERROR", "message": "could not store version"})
		return
	}
	c.JSON(http.StatusCreated, model.VersionInfo{ID: id, Name: version.Name, SavedAt: version.SavedAt})
}

// Import stores an uploaded plan document. Unlike Create it keeps the save
// time recorded in the file, so re-imported exports keep their history.
func (h *VersionHandler) Import(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "VersionHandler.Import")
	defer span.End()

	version, ok := h.readDocument(c, ctx, span)
	if !ok {
		return
	}
	if version.SavedAt.IsZero() {
		version.SavedAt = time.Now()
	}

	id, err := h.store.CreateVersion(ctx, version)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not store imported version", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "STORAGE_ERROR", "message": "could not store version"})
		return
	}
	c.JSON(http.StatusCreated, model.VersionInfo{ID: id, Name: version.Name, SavedAt: version.SavedAt})
}

func (h *VersionHandler) List(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "VersionHandler.List")
	defer span.End()

	infos, err := h.store.ListVersions(ctx)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not list versions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "STORAGE_ERROR", "message": "could not list versions"})
		return
	}
	if infos == nil {
		infos = []model.VersionInfo{}
	}
	c.JSON(http.StatusOK, infos)
}

func (h *VersionHandler) GetByID(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "VersionHandler.GetByID")
	defer span.End()

	version, ok := h.lookup(c, ctx, span)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, version)
}

func (h *VersionHandler) Delete(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "VersionHandler.Delete")
	defer span.End()

	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		span.RecordError(err)
		versionNotFound(c)
		return
	}
	err = h.store.DeleteVersion(ctx, id)
	if errors.Is(err, db.ErrVersionNotFound) {
		span.RecordError(err)
		versionNotFound(c)
		return
	}
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not delete version", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "STORAGE_ERROR", "message": "could not delete version"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Export streams the version as a downloadable plan document.
func (h *VersionHandler) Export(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "VersionHandler.Export")
	defer span.End()

	version, ok := h.lookup(c, ctx, span)
	if !ok {
		return
	}
	data, err := exchange.Export(*version)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not render export", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "EXPORT_ERROR", "message": "could not render export"})
		return
	}
	filename := exchange.Filename(version.Name, version.SavedAt)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

// ExportCSV streams the version's seating list as CSV.
func (h *VersionHandler) ExportCSV(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "VersionHandler.ExportCSV")
	defer span.End()

	version, ok := h.lookup(c, ctx, span)
	if !ok {
		return
	}
	data, err := view.CSV(version.Plan())
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not render csv", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "EXPORT_ERROR", "message": "could not render csv"})
		return
	}
	filename := strings.TrimSuffix(exchange.Filename(version.Name, version.SavedAt), ".json") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// readDocument parses and validates the request body, answering the
// request itself when the document is rejected.
func (h *VersionHandler) readDocument(c *gin.Context, ctx context.Context, span trace.Span) (*model.Version, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not read request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_DOCUMENT", "message": "could not read request body"})
		return nil, false
	}
	version, err := exchange.Import(body)
	if err != nil {
		span.RecordError(err)
		h.logger.WarnContext(ctx, "rejected version payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_DOCUMENT", "message": err.Error()})
		return nil, false
	}
	return version, true
}

// lookup fetches the version named by the :uuid parameter, answering the
// request itself on failure.
func (h *VersionHandler) lookup(c *gin.Context, ctx context.Context, span trace.Span) (*model.Version, bool) {
	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		span.RecordError(err)
		versionNotFound(c)
		return nil, false
	}
	version, err := h.store.GetVersionByID(ctx, id)
	if errors.Is(err, db.ErrVersionNotFound) {
		span.RecordError(err)
		versionNotFound(c)
		return nil, false
	}
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not read version", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "STORAGE_ERROR", "message": "could not read version"})
		return nil, false
	}
	return version, true
}

func versionNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"code": "VERSION_NOT_FOUND", "message": "version not found"})
}
