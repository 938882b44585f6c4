package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dgallion1/wordbridge/internal/convert"
)

// handleConvert runs one Markdown-to-document conversion against the word
// service and returns its aggregated outcome.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req convert.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Filename == "" {
		jsonError(w, "filename is required", http.StatusBadRequest)
		return
	}
	if req.Author == "" {
		req.Author = s.cfg.DefaultAuthor
	}

	// The conversion core carries no timeout of its own; the whole call is
	// bounded here.
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ConvertTimeout)
	defer cancel()

	res := s.converter.Convert(ctx, req)

	code := http.StatusOK
	if !res.OK {
		code = http.StatusBadGateway
	}
	jsonResponse(w, res, code)
}
