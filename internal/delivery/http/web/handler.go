// Package web serves the browser version of the project request form.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"project-request-backend/internal/domain"
	"project-request-backend/internal/form"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Page is the copy rendered into the landing page and the form.
type Page struct {
	Brand        string
	ContactEmail string
	Phone        string
	ProjectTypes []domain.ProjectType
	// "What's Next?" bullets of the success panel
	NextSteps []string
	SubmitURL string
}

type Handler struct {
	templates *template.Template
	page      Page
}

// NewHandler registers the landing page, the form and its static assets.
func NewHandler(r gin.IRouter, page Page) error {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"year": func() int { return time.Now().Year() },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse web templates: %w", err)
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("failed to open static assets: %w", err)
	}

	if page.SubmitURL == "" {
		page.SubmitURL = "/api/submit-request"
	}

	h := &Handler{templates: tmpl, page: page}

	r.StaticFS("/static", http.FS(static))
	r.GET("/", h.Landing)
	r.GET("/request", h.RequestForm)
	return nil
}

// Landing lists the project types and links to the form.
func (h *Handler) Landing(c *gin.Context) {
	h.render(c, "index.html")
}

// RequestForm renders the empty form in the editing state.
func (h *Handler) RequestForm(c *gin.Context) {
	h.render(c, "request.html")
}

func (h *Handler) render(c *gin.Context, name string) {
	c.Render(http.StatusOK, render.HTML{
		Template: h.templates,
		Name:     name,
		Data: struct {
			Page
			AlertText string
		}{h.page, form.AlertText},
	})
}
