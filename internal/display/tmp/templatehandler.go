// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"embed"
	"html/template"
)

type TemplateHandler struct {
	TmplIndex   *template.Template
	TmplVersion *template.Template
}

//go:embed templates/*.html
var templates embed.FS

func NewTemplateHandler() *TemplateHandler {
	mainTemplate := []string{"templates/main.html", "templates/main.style.html"}
	indexTemplate := "templates/index.html"
	versionTemplate := "templates/version.html"

	return &TemplateHandler{
		TmplIndex:   template.Must(template.ParseFS(templates, append(mainTemplate, indexTemplate)...)),
		TmplVersion: template.Must(template.ParseFS(templates, append(mainTemplate, versionTemplate)...)),
	}
}
