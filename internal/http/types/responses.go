// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type Pagination struct {
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

type Response struct {
	Data    any         `json:"data"`
	Message string      `json:"message,omitempty"`
	Status  int         `json:"status"`
	Meta    *Pagination `json:"_meta,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteResponse wraps data in the standard envelope.
func WriteResponse(w http.ResponseWriter, status int, data any, meta *Pagination) {
	WriteJSON(w, status, Response{Data: data, Status: status, Meta: meta})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}

func WriteValidationError(w http.ResponseWriter, err *ValidationError) {
	WriteJSON(
		w,
		http.StatusBadRequest,
		ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "invalid request",
			Errors:  err.Fields,
		},
	)
}

// PageParams reads the page and size query parameters, zero when absent.
func PageParams(r *http.Request) (page, size int64) {
	q := r.URL.Query()

	page, _ = strconv.ParseInt(q.Get("page"), 10, 64)
	size, _ = strconv.ParseInt(q.Get("size"), 10, 64)

	return page, size
}
