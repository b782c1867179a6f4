// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kidzeivo/seating-designer/internal/model"
)

// ErrVersionNotFound reports a lookup or delete of a version id the store
// does not hold. Handlers map it to not-found rather than a server error.
var ErrVersionNotFound = errors.New("version not found")

type VersionStore interface {
	// CreateVersion stores the snapshot and returns its identity,
	// generating one when the snapshot carries none.
	CreateVersion(ctx context.Context, version *model.Version) (uuid.UUID, error)
	// ListVersions returns metadata for every stored version, newest first.
	ListVersions(ctx context.Context) ([]model.VersionInfo, error)
	GetVersionByID(ctx context.Context, id uuid.UUID) (*model.Version, error)
	DeleteVersion(ctx context.Context, id uuid.UUID) error
}
