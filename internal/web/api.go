package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"calcpad/internal/builder"
	"calcpad/internal/domain"
	"calcpad/internal/keymap"
)

type evaluateRequest struct {
	Expression string `json:"expression"`
}

type appendRequest struct {
	Expression string `json:"expression"`
	Value      string `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, err := fs.ReadFile(staticFiles, "static/index.html")
	if err != nil {
		s.log.Error("read index page: %v", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleKeypad(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, keymap.Keypad())
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req evaluateRequest
	if !s.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, domain.Display{
		Expression: req.Expression,
		Result:     s.eval.Evaluate(req.Expression),
	})
}

func (s *Server) handleAppend(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req appendRequest
	if !s.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, domain.Display{
		Expression: builder.Next(req.Expression, req.Value),
		Result:     domain.ResultZero,
	})
}

// decode reads a size-limited JSON body into v, answering 4xx itself on
// failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err := dec.Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
				Error: fmt.Sprintf("body exceeds %d bytes", tooBig.Limit),
			})
			return false
		}
		s.log.Warn("bad request body on %s: %v", r.URL.Path, err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
