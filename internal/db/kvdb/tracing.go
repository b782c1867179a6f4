// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package kvdb

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("github.com/kidzeivo/seating-designer/internal/db/kvdb")
