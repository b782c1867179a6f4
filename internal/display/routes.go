// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package display

import (
	"net/http"
)

// register provided routes to http.ServerMux
func registerRoutes(
	mux *http.ServeMux,
	routes map[string]http.Handler,
) {
	for route, handler := range routes {
		mux.Handle(route, handler)
	}
}

func (d *Display) addRoutes() map[string]http.Handler {
	routes := make(map[string]http.Handler)

	//NOTE: if middleware is needed, it can be added right here

	routes["GET /{$}"] = http.HandlerFunc(d.index)
	routes["GET /versions/{uuid}"] = http.HandlerFunc(d.version)

	return routes
}
