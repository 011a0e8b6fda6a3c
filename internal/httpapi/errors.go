// SPDX-License-Identifier: MIT

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/splinegen/internal/logging"
	"github.com/katalvlaran/splinegen/spline"
)

// Error kinds reported for failures outside the spline pipeline.
const (
	kindRequest  = "request"
	kindInternal = "internal"
)

// errBadRequest marks request-shape problems (bad JSON, missing fields).
var errBadRequest = errors.New("bad request")

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// respondError logs err and writes it with the status its kind maps to.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := classify(err)

	logging.FromContext(r.Context()).Warn("request failed",
		"path", r.URL.Path,
		"status", status,
		"kind", kind,
		"error", err.Error(),
	)

	writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: kind})
}

// classify maps err to an HTTP status and a kind label.
//
//	parse                → 400
//	solver, structural   → 422
//	oversize body        → 413
//	bad request / sample → 400
//	anything else        → 500
func classify(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, kindRequest
	case errors.Is(err, errBadRequest),
		errors.Is(err, spline.ErrInvalidCount),
		errors.Is(err, spline.ErrInvalidStep):
		return http.StatusBadRequest, kindRequest
	}

	switch k := spline.KindOf(err); k {
	case spline.KindParse:
		return http.StatusBadRequest, k.String()
	case spline.KindSolver, spline.KindStructural:
		return http.StatusUnprocessableEntity, k.String()
	default:
		return http.StatusInternalServerError, kindInternal
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
