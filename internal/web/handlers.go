package web

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/protanno/protanno/internal/config"
	"github.com/protanno/protanno/internal/errors"
	"github.com/protanno/protanno/internal/ops"
	"github.com/protanno/protanno/internal/view"
)

// Handlers contains HTTP route handlers for the viewer UI.
type Handlers struct {
	db       *sql.DB
	cfg      *config.Config
	baseDir  string
	renderer *Renderer
}

// HandleIndex handles GET / — the upload page with recent proteins.
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	result, err := ops.List(r.Context(), h.db, ops.ListInput{
		Limit:  parseIntParam(r, "limit", ops.DefaultListLimit),
		Offset: parseIntParam(r, "offset", 0),
	})
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	h.renderer.renderPage(w, "upload", UploadPageData{
		PageData: PageData{
			Title:   "Upload a structure",
			Version: h.renderer.version,
		},
		Proteins:   result.Items,
		Pagination: result.Pagination,
	})
}

// HandleUpload handles POST /upload — store a PDB file and redirect to its
// viewer page.
func (h *Handlers) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.cfg.UploadMaxBytes); err != nil {
		h.renderer.renderError(w, errors.NewInvalidUpload("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.renderer.renderError(w, errors.NewInvalidUpload("file field is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.cfg.UploadMaxBytes+1))
	if err != nil {
		h.renderer.renderError(w, errors.NewInternal(err))
		return
	}

	input := ops.UploadInput{
		Filename: header.Filename,
		Data:     data,
	}
	if desc := r.FormValue("description"); desc != "" {
		input.Description = &desc
	}

	result, err := ops.Upload(r.Context(), h.db, h.cfg, h.baseDir, input)
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	http.Redirect(w, r, "/p/"+result.ID, http.StatusSeeOther)
}

// HandleViewer handles GET /p/{id} — the sequence + structure viewer page.
func (h *Handlers) HandleViewer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, errors.NewInvalidRequest("protein ID is required"))
		return
	}

	p, err := ops.Fetch(r.Context(), h.db, ops.FetchInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	bootstrap, err := json.Marshal(bootstrapData{
		ProteinID:   p.ID,
		PDBURL:      "/uploads/" + p.Filename,
		Annotations: p.Annotations,
	})
	if err != nil {
		h.renderer.renderError(w, errors.NewInternal(err))
		return
	}

	data := ViewerPageData{
		PageData: PageData{
			Title:   p.Filename,
			Version: h.renderer.version,
		},
		ProteinID:      p.ID,
		Filename:       p.Filename,
		SequenceLength: len(p.Sequence),
		Cells:          view.SequenceCells(p.Sequence, p.Annotations),
		Entries:        view.ListEntries(p.Annotations),
		ShareURL:       shareURL(r, p.ID),
		Bootstrap:      template.JS(bootstrap),
	}
	if p.Description != nil {
		data.DescriptionHTML = renderMarkdown(*p.Description)
	}

	h.renderer.renderPage(w, "protein", data)
}

// HandleAddAnnotation handles POST /p/{id}/annotations — the annotation
// store endpoint. Responds with JSON; failures carry a "detail" field.
func (h *Handlers) HandleAddAnnotation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := r.ParseForm(); err != nil {
		renderAPIError(w, errors.NewInvalidRequest("invalid form data"))
		return
	}

	start, err := strconv.Atoi(r.FormValue("start_index"))
	if err != nil {
		renderAPIError(w, errors.NewInvalidRequest("start_index must be an integer"))
		return
	}
	end, err := strconv.Atoi(r.FormValue("end_index"))
	if err != nil {
		renderAPIError(w, errors.NewInvalidRequest("end_index must be an integer"))
		return
	}

	result, err := ops.AddAnnotation(r.Context(), h.db, ops.AddAnnotationInput{
		ProteinID:  id,
		StartIndex: start,
		EndIndex:   end,
		Label:      r.FormValue("label"),
		Color:      r.FormValue("color"),
	})
	if err != nil {
		renderAPIError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"annotation": result.Annotation,
	})
}

// HandleListAnnotations handles GET /p/{id}/annotations — the protein's
// annotations as JSON, in insertion order.
func (h *Handlers) HandleListAnnotations(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	result, err := ops.ListAnnotations(r.Context(), h.db, ops.ListAnnotationsInput{ProteinID: id})
	if err != nil {
		renderAPIError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

// shareURL builds the absolute viewer URL for a protein.
func shareURL(r *http.Request, id string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/p/%s", scheme, r.Host, id)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
