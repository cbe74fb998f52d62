package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1M", 1 << 20},
		{"10MB", 10 << 20},
		{"512K", 512 << 10},
		{"1G", 1 << 30},
		{"1024", 1024},
		{"", 1 << 20},
		{"invalid", 1 << 20},
		{"-5", 1 << 20},
	}

	for _, tt := range tests {
		if got := parseLimit(tt.input); got != tt.want {
			t.Errorf("parseLimit(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestBodyLimit_AllowsSmallBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/add_patient", strings.NewReader(`{"name":"Asha"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := func(c echo.Context) error {
		b, err := io.ReadAll(c.Request().Body)
		if err != nil {
			t.Fatalf("failed to read body: %v", err)
		}
		if len(b) == 0 {
			t.Error("expected non-empty body")
		}
		called = true
		return c.String(http.StatusCreated, "created")
	}

	if err := BodyLimit("1M")(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected handler to be called")
	}
}

func TestBodyLimit_RejectsOversizedBody_ContentLength(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/add_patient", bytes.NewReader(bytes.Repeat([]byte("x"), 2048)))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		t.Error("handler should not be called")
		return nil
	}

	err := BodyLimit("1K")(handler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T (%v)", err, err)
	}
	if he.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", he.Code)
	}
}

func TestBodyLimit_RejectsOversizedBody_Streaming(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/add_patient", bytes.NewReader(bytes.Repeat([]byte("x"), 2048)))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var readErr error
	handler := func(c echo.Context) error {
		_, readErr = io.ReadAll(c.Request().Body)
		return readErr
	}

	BodyLimit("1K")(handler)(c)

	he, ok := readErr.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError from read, got %T (%v)", readErr, readErr)
	}
	if he.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", he.Code)
	}
}

func TestBodyLimit_NoBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get_patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	BodyLimit("1")(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	if !called {
		t.Error("expected handler to be called for bodyless request")
	}
}
