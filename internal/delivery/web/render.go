package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer отвечает за рендер встроенных html/template шаблонов.
// Визуальное оформление сознательно минимально: стили не являются
// предметом этого приложения.
type Renderer struct {
	tmpl   *template.Template
	logger logger.Logger
}

// NewRenderer парсит все встроенные шаблоны
func NewRenderer(log logger.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
		"dec": func(i int) int { return i - 1 },
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, logger: log}, nil
}

// Render пишет шаблон name с данными data и указанным статусом
func (rn *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := rn.tmpl.ExecuteTemplate(w, name, data); err != nil {
		rn.logger.Error("Failed to render template", map[string]interface{}{
			"template": name,
			"error":    err.Error(),
		})
	}
}

// NotFound рендерит полноэкранный 404
func (rn *Renderer) NotFound(w http.ResponseWriter, flash *Flash) {
	rn.Render(w, http.StatusNotFound, "notfound.html", map[string]interface{}{
		"Title": "No encontrado",
		"Flash": flash,
	})
}
