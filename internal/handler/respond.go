package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/AlexZinkM/leochain-explorer/internal/model"
	"github.com/AlexZinkM/leochain-explorer/leochain"
)

var (
	_ ChainReader  = (*leochain.Explorer)(nil)
	_ Searcher     = (*leochain.Searcher)(nil)
	_ AccountStore = (*leochain.AccountStore)(nil)
	_ Transferer   = (*leochain.Transferer)(nil)
)

// writeJSON writes v with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes err as an ErrorResponse with the status code its kind maps to
func writeError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

// writeBadRequest writes a validation error for a malformed request
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: message, Code: model.CodeValidation})
}

// allowMethod writes 405 and returns false when r does not use method
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	http.Error(w, "Method not allowed. Should be "+method, http.StatusMethodNotAllowed)
	return false
}

// requireJSON writes 415 and returns false unless the request body is declared as JSON
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && mediaType == "application/json" {
		return true
	}
	writeJSON(w, http.StatusUnsupportedMediaType, model.ErrorResponse{
		Error: "Content-Type must be application/json",
		Code:  model.CodeValidation,
	})
	return false
}

func classify(err error) (int, string) {
	switch {
	case model.IsValidationError(err), errors.Is(err, model.ErrInvalidMnemonic):
		return http.StatusBadRequest, model.CodeValidation
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrAccountNotFound):
		return http.StatusNotFound, model.CodeNotFound
	case model.IsUpstreamError(err):
		return http.StatusBadGateway, model.CodeUpstream
	default:
		return http.StatusInternalServerError, model.CodeInternal
	}
}
