package web

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/yuin/goldmark"

	"github.com/protanno/protanno/internal/errors"
	"github.com/protanno/protanno/internal/ops"
	"github.com/protanno/protanno/internal/protein"
	"github.com/protanno/protanno/internal/view"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title   string
	Version string
}

// UploadPageData is the template data for the upload page.
type UploadPageData struct {
	PageData
	Proteins   []protein.ProteinSummary
	Pagination ops.Pagination
}

// ViewerPageData is the template data for the protein viewer page.
type ViewerPageData struct {
	PageData
	ProteinID       string
	Filename        string
	SequenceLength  int
	Cells           []view.ResidueCell
	Entries         []view.ListEntry
	DescriptionHTML template.HTML
	ShareURL        string
	Bootstrap       template.JS
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// bootstrapData is the one-time payload handed to the page script.
type bootstrapData struct {
	ProteinID   string               `json:"protein_id"`
	PDBURL      string               `json:"pdb_url"`
	Annotations []protein.Annotation `json:"annotations"`
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	funcMap := template.FuncMap{
		"formatTime": formatTime,
	}

	// Parse layout as the base template
	layoutTmpl := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"upload":  "upload.html",
		"protein": "protein.html",
		"error":   "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
	}
}

// renderPage renders a named page template with the given data and HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, name string, data any) {
	r.renderPageStatus(w, http.StatusOK, name, data)
}

// renderPageStatus renders a named page template with the given data and HTTP status code.
func (r *Renderer) renderPageStatus(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		log.Printf("template %q not found", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("template execution error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders a full HTML error page for page routes.
func (r *Renderer) renderError(w http.ResponseWriter, err error) {
	vErr := asViewerError(err)

	r.renderPageStatus(w, vErr.Status, "error", ErrorPageData{
		PageData: PageData{
			Title:   fmt.Sprintf("Error %d", vErr.Status),
			Version: r.version,
		},
		StatusCode: vErr.Status,
		Message:    vErr.Message,
	})
}

// renderAPIError writes a JSON error for the annotation API. The body
// carries a "detail" field, which clients surface to the user.
func renderAPIError(w http.ResponseWriter, err error) {
	vErr := asViewerError(err)
	renderJSON(w, vErr.Status, map[string]any{
		"detail": vErr.Message,
		"code":   string(vErr.Code),
	})
}

// asViewerError normalizes any error into a ViewerError.
func asViewerError(err error) *errors.ViewerError {
	var vErr *errors.ViewerError
	if !stderrors.As(err, &vErr) {
		vErr = errors.NewInternal(err)
	}
	return vErr
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// formatTime formats a Unix timestamp as "2006-01-02 15:04" UTC.
func formatTime(unix int64) string {
	return time.Unix(unix, 0).UTC().Format("2006-01-02 15:04")
}
