package api

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/wordbridge/internal/outline"
)

type outlineRequest struct {
	Markdown string `json:"markdown"`
	Title    string `json:"title"`
}

// handleOutline returns the heading tree of a document: either the structure
// a Markdown conversion would produce (JSON body) or the structure of a
// generated .docx (multipart upload).
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		s.handleDocxOutline(w, r)
		return
	}

	var req outlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		req.Title = "untitled"
	}

	tree, err := outline.FromMarkdown([]byte(req.Markdown), req.Title)
	if err != nil {
		jsonError(w, "failed to outline markdown: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	jsonResponse(w, tree, http.StatusOK)
}

func (s *Server) handleDocxOutline(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !strings.EqualFold(filepath.Ext(filename), ".docx") {
		jsonError(w, "only .docx files can be outlined", http.StatusBadRequest)
		return
	}

	title := strings.TrimSuffix(filename, filepath.Ext(filename))
	tree, err := outline.FromDocx(io.LimitReader(file, s.cfg.MaxUploadBytes), title)
	if err != nil {
		jsonError(w, "failed to outline docx: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	jsonResponse(w, tree, http.StatusOK)
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
