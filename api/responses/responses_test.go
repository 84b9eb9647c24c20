package responses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/locallinkhq/locallink-backend/pkg/errors"
	"github.com/locallinkhq/locallink-backend/pkg/types"
)

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var envelope types.SuccessEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !envelope.Success {
		t.Fatal("expected success=true")
	}
}

func TestWriteErrorTypedCodes(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{pkgerrors.New(pkgerrors.CodeNotFound, "order not found"), http.StatusNotFound, "NOT_FOUND"},
		{pkgerrors.New(pkgerrors.CodeConflict, "insufficient stock"), http.StatusBadRequest, "CONFLICT"},
		{pkgerrors.New(pkgerrors.CodeStateConflict, "cannot deliver a pending order"), http.StatusBadRequest, "STATE_CONFLICT"},
		{pkgerrors.New(pkgerrors.CodeForbidden, "not your order"), http.StatusForbidden, "FORBIDDEN"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		WriteError(context.Background(), nil, rec, tt.err)
		if rec.Code != tt.status {
			t.Fatalf("error %v: expected status %d got %d", tt.err, tt.status, rec.Code)
		}
		var envelope types.ErrorEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode envelope: %v", err)
		}
		if envelope.Success {
			t.Fatal("expected success=false")
		}
		if envelope.Code != tt.code {
			t.Fatalf("expected code %s got %s", tt.code, envelope.Code)
		}
	}
}

func TestWriteErrorHidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeInternal, "db exploded at 10.0.0.3"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Message != "internal server error" {
		t.Fatalf("internal details leaked: %q", envelope.Message)
	}
}

func TestWriteErrorIncludesValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
		WithDetails(map[string]string{"delivery_address": "is required"})
	WriteError(context.Background(), nil, rec, err)

	var envelope types.ErrorEnvelope
	if decErr := json.Unmarshal(rec.Body.Bytes(), &envelope); decErr != nil {
		t.Fatalf("decode envelope: %v", decErr)
	}
	if envelope.Errors == nil {
		t.Fatal("expected field details on validation error")
	}
}
