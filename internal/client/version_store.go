// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

// Package client implements db.VersionStore on top of the REST surface of
// a running seating-designer server. It lets the command line tools treat
// a remote server like any other storage backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/kidzeivo/seating-designer/internal/db"
	"github.com/kidzeivo/seating-designer/internal/exchange"
	"github.com/kidzeivo/seating-designer/internal/model"
)

type VersionStore struct {
	base   string
	client *http.Client
}

// NewVersionStore returns a store backed by the server at base,
// e.g. "http://localhost:8080".
func NewVersionStore(base string) *VersionStore {
	return &VersionStore{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateVersion uploads the version through the import endpoint, so a
// non-zero SavedAt survives the copy the way the local stores keep it.
func (s *VersionStore) CreateVersion(ctx context.Context, version *model.Version) (uuid.UUID, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateVersion")
	defer span.End()

	body, err := exchange.Export(*version)
	if err != nil {
		span.RecordError(err)
		return uuid.Nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.base+"/versions/import", bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		return uuid.Nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return uuid.Nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		err := statusError(resp)
		span.RecordError(err)
		return uuid.Nil, err
	}

	var info model.VersionInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		span.RecordError(err)
		return uuid.Nil, err
	}
	return info.ID, nil
}

func (s *VersionStore) GetVersionByID(ctx context.Context, id uuid.UUID) (*model.Version, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "GetVersionByID")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+"/versions/"+id.String(), nil)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, db.ErrVersionNotFound
	default:
		err := statusError(resp)
		span.RecordError(err)
		return nil, err
	}

	var version model.Version
	if err := json.NewDecoder(resp.Body).Decode(&version); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &version, nil
}

func (s *VersionStore) ListVersions(ctx context.Context) ([]model.VersionInfo, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "ListVersions")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+"/versions", nil)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := statusError(resp)
		span.RecordError(err)
		return nil, err
	}

	var infos []model.VersionInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return infos, nil
}

func (s *VersionStore) DeleteVersion(ctx context.Context, id uuid.UUID) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "DeleteVersion")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.base+"/versions/"+id.String(), nil)
	if err != nil {
		span.RecordError(err)
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return db.ErrVersionNotFound
	default:
		err := statusError(resp)
		span.RecordError(err)
		return err
	}
}

func statusError(resp *http.Response) error {
	return fmt.Errorf("server returned %s", resp.Status)
}
