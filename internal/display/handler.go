// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package display

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/kidzeivo/seating-designer/internal/db"
	"github.com/kidzeivo/seating-designer/internal/model"
	"github.com/kidzeivo/seating-designer/internal/view"
)

type indexData struct {
	Versions []model.VersionInfo
}

type versionData struct {
	Version    *model.Version
	Tables     []view.TableSeating
	Unassigned []model.Guest
}

func (d *Display) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	infos, err := d.store.ListVersions(ctx)
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to list versions", "error", err)
		http.Error(w, "could not load versions", http.StatusBadGateway)
		return
	}

	if err := d.templates.TmplIndex.Execute(w, indexData{Versions: infos}); err != nil {
		d.logger.ErrorContext(ctx, "failed to execute template", "error", err)
		return
	}
}

func (d *Display) version(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("uuid"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	version, err := d.store.GetVersionByID(ctx, id)
	if errors.Is(err, db.ErrVersionNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to load version", "id", id, "error", err)
		http.Error(w, "could not load version", http.StatusBadGateway)
		return
	}

	plan := version.Plan()
	data := versionData{
		Version:    version,
		Tables:     view.GuestsByTable(plan),
		Unassigned: view.UnassignedGuests(plan),
	}
	if err := d.templates.TmplVersion.Execute(w, data); err != nil {
		d.logger.ErrorContext(ctx, "failed to execute template", "error", err)
		return
	}
}
