package apperror

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{name: "missing field", err: MissingField("title"), want: http.StatusBadRequest},
		{name: "invalid id", err: InvalidID("id"), want: http.StatusBadRequest},
		{name: "invalid reference", err: InvalidReference("bad ref"), want: http.StatusBadRequest},
		{name: "not found", err: NotFound(), want: http.StatusNotFound},
		{name: "conflict", err: Conflict("duplicate"), want: http.StatusConflict},
		{name: "unauthorized", err: Unauthorized("nope"), want: http.StatusUnauthorized},
		{name: "store", err: Store("boom", errors.New("io")), want: http.StatusInternalServerError},
		{name: "internal", err: New(InternalError, "boom", nil), want: http.StatusInternalServerError},
		{name: "unknown", err: New(UnknownError, "boom", nil), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.StatusCode(); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	if got := MissingField("title").Error(); got != "missing `title` in request body" {
		t.Errorf("unexpected message: %q", got)
	}
	if got := InvalidID("id").Error(); got != "the `id` is not valid" {
		t.Errorf("unexpected message: %q", got)
	}
	if got := NotFound().Error(); got != "not found" {
		t.Errorf("not-found must carry no detail, got %q", got)
	}

	cause := errors.New("connection reset")
	if got := Store("failed to write", cause).Error(); got != "failed to write: connection reset" {
		t.Errorf("unexpected wrapped message: %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Store("failed to write", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause must be reachable through errors.Is")
	}

	var appErr *AppError
	if !errors.As(error(err), &appErr) {
		t.Fatal("errors.As must recover the *AppError")
	}
	if appErr.Type != StoreError {
		t.Errorf("type = %v, want StoreError", appErr.Type)
	}
}
