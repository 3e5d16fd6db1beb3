// Package respond writes uniform JSON API responses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type successResponse struct {
	Result interface{} `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes a 200 response with a result payload.
func OK(w http.ResponseWriter, result interface{}) {
	writeJSON(w, http.StatusOK, successResponse{Result: result})
}

// Created writes a 201 response with a result payload.
func Created(w http.ResponseWriter, result interface{}) {
	writeJSON(w, http.StatusCreated, successResponse{Result: result})
}

// Accepted writes a 202 response with a result payload.
func Accepted(w http.ResponseWriter, result interface{}) {
	writeJSON(w, http.StatusAccepted, successResponse{Result: result})
}

// Fail writes an error response with the given status.
func Fail(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
