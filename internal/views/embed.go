package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html
var files embed.FS

// NewEngine returns the console's template engine, reading the pages
// compiled into the binary.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
