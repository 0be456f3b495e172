package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/brandlens/brandlens/pkg/storage"
)

// mapStorageError maps storage-layer errors to an HTTP status and a safe
// client-facing message.
func mapStorageError(err error) (int, string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "audit not found"
	case errors.Is(err, storage.ErrAlreadyExists):
		return http.StatusConflict, "audit already exists"
	case errors.Is(err, storage.ErrTerminalState):
		return http.StatusConflict, "audit is not in a cancellable state"
	}

	slog.Error("Unexpected storage error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}
