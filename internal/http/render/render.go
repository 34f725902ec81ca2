// Package render writes API responses.
package render

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/contasimple/internal/notify"
)

// Created is the body of every successful create or state change.
type Created[T any] struct {
	Record       T                   `json:"record"`
	Notification notify.Notification `json:"notification"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
