package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/inventory/services/inventory/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrPartNotFound", domain.ErrPartNotFound, http.StatusNotFound},
		{"wrapped ErrProductNotFound", fmt.Errorf("get product: %w", domain.ErrProductNotFound), http.StatusNotFound},
		{"ErrDeleteBlocked", fmt.Errorf("delete product: %w", domain.ErrDeleteBlocked), http.StatusConflict},
		{"not a number", domain.NewValidationError(domain.KindNotANumber, "stock", "abc"), http.StatusBadRequest},
		{"no selection", domain.ErrNoSelection, http.StatusBadRequest},
		{"empty name", domain.NewValidationError(domain.KindEmptyName, "name", ""), http.StatusUnprocessableEntity},
		{"invalid range", fmt.Errorf("create part: %w", domain.NewValidationError(domain.KindInvalidRange, "min", "5")), http.StatusUnprocessableEntity},
		{"stock out of bounds", domain.NewValidationError(domain.KindStockOutOfBounds, "stock", "11"), http.StatusUnprocessableEntity},
		{"invalid price", domain.NewValidationError(domain.KindInvalidPrice, "price", "-1"), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, fmt.Errorf("create part: %w", domain.NewValidationError(domain.KindNotANumber, "stock", "abc")))

	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Kind != "not_a_number" {
		t.Errorf("kind = %q, want not_a_number", body.Kind)
	}
	if body.Field != "stock" {
		t.Errorf("field = %q, want stock", body.Field)
	}
	if body.Error == "" {
		t.Error("response body missing error message")
	}
}

func TestWriteError_KindFromBareSentinel(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, fmt.Errorf("delete product 10000: %w", domain.ErrDeleteBlocked))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["kind"] != "delete_blocked" {
		t.Errorf("kind = %q, want delete_blocked", body["kind"])
	}
	if _, ok := body["field"]; ok {
		t.Error("field must be omitted when absent")
	}
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("mutex poisoned"))

	var body ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Error != "Internal Server Error" {
		t.Errorf("500 leaked detail: %q", body.Error)
	}
	if body.Kind != "" {
		t.Errorf("unexpected kind %q", body.Kind)
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, domain.ErrPartNotFound)

	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
