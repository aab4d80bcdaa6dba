package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reviewlens/reviewlens/pkg/handlers"
)

type body struct {
	Review  string `json:"review"`
	Product string `json:"product"`
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondJSON(rec, http.StatusCreated, body{Review: "great", Product: "Smartwatch Series X"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got body
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.Product != "Smartwatch Series X" {
		t.Errorf("Product = %q", got.Product)
	}
}

func TestRespondError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := httptest.NewRecorder()

	handlers.RespondError(rec, logger, http.StatusNotFound, errors.New("analysis not found"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	var got handlers.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.Error != "analysis not found" {
		t.Errorf("Error = %q", got.Error)
	}
}

func TestDecode(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"review":"ok","product":"Stellar Drone 4K"}`))
	rec := httptest.NewRecorder()

	got, err := handlers.Decode[body](rec, req, 1024)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Product != "Stellar Drone 4K" {
		t.Errorf("Product = %q", got.Product)
	}
}

func TestDecodeMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"review":`))
	rec := httptest.NewRecorder()

	if _, err := handlers.Decode[body](rec, req, 1024); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestDecodeEnforcesSizeLimit(t *testing.T) {
	oversized := `{"review":"` + strings.Repeat("a", 100) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(oversized))
	rec := httptest.NewRecorder()

	if _, err := handlers.Decode[body](rec, req, 16); err == nil {
		t.Fatal("expected error for oversized body, got nil")
	}
}
