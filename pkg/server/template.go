package server

import (
	"embed"
	"html/template"

	"github.com/matzehuels/seedpacket/pkg/assets"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type indexData struct {
	DefaultSeedName string
	Today           string
	Images          []assets.Info
}
