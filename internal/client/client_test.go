package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/protanno/protanno/internal/errors"
	"github.com/protanno/protanno/internal/protein"
)

func record() protein.Annotation {
	return protein.Annotation{
		ProteinID:  "prot1",
		StartIndex: 2,
		EndIndex:   4,
		Label:      "helix",
		Color:      "#ff0000",
	}
}

func TestCreate_SendsFormEncodedFields(t *testing.T) {
	var gotPath, gotContentType string
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotForm = map[string]string{
			"start_index": r.FormValue("start_index"),
			"end_index":   r.FormValue("end_index"),
			"label":       r.FormValue("label"),
			"color":       r.FormValue("color"),
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Create(context.Background(), record()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if gotPath != "/p/prot1/annotations" {
		t.Errorf("path = %q, want /p/prot1/annotations", gotPath)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("content type = %q", gotContentType)
	}
	want := map[string]string{
		"start_index": "2",
		"end_index":   "4",
		"label":       "helix",
		"color":       "#ff0000",
	}
	for k, v := range want {
		if gotForm[k] != v {
			t.Errorf("form[%q] = %q, want %q", k, gotForm[k], v)
		}
	}
}

func TestCreate_SuccessBodyIgnored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Create(context.Background(), record()); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestCreate_RejectionParsesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"duplicate range"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Create(context.Background(), record())
	if !errors.Is(err, errors.ErrStoreRejected) {
		t.Fatalf("err = %v, want STORE_REJECTED", err)
	}
	vErr := err.(*errors.ViewerError)
	if vErr.Message != "duplicate range" {
		t.Errorf("Message = %q, want %q", vErr.Message, "duplicate range")
	}
}

func TestCreate_RejectionWithoutDetailUsesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Create(context.Background(), record())
	if !errors.Is(err, errors.ErrStoreRejected) {
		t.Fatalf("err = %v, want STORE_REJECTED", err)
	}
	vErr := err.(*errors.ViewerError)
	if vErr.Message == "" {
		t.Error("expected a generic status description")
	}
}

func TestCreate_ConnectionRefused(t *testing.T) {
	// Port from a closed test server: connection refused maps to rejection.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url)
	err := c.Create(context.Background(), record())
	if !errors.Is(err, errors.ErrStoreRejected) {
		t.Fatalf("err = %v, want STORE_REJECTED", err)
	}
}
