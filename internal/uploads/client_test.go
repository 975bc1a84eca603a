package uploads

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClientRequiresConfig(t *testing.T) {
	if c := NewClient("", "key", "shop"); c != nil {
		t.Fatalf("expected nil client without endpoint")
	}
	if c := NewClient("https://img.example.com", "", "shop"); c != nil {
		t.Fatalf("expected nil client without api key")
	}
	if c := NewClient("https://img.example.com", "key", ""); c == nil {
		t.Fatalf("expected client with default folder")
	}
}

func TestPublicID(t *testing.T) {
	c := NewClient("https://img.example.com", "key", "shop")
	at := time.Unix(1700000000, 0)

	cases := []struct {
		filename string
		want     string
	}{
		{"laptop.png", "shop/1700000000-laptop"},
		{"dir/sub/case-fan.jpeg", "shop/1700000000-case-fan"},
		{".png", "shop/1700000000-image"},
		{"noext", "shop/1700000000-noext"},
		{"", "shop/1700000000-image"},
		{".", "shop/1700000000-image"},
		{"..", "shop/1700000000-image"},
	}
	for _, tc := range cases {
		if got := c.PublicID(tc.filename, at); got != tc.want {
			t.Fatalf("PublicID(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestUpload(t *testing.T) {
	var gotAPIKey, gotFolder, gotPublicID, gotFilename string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/upload" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAPIKey = r.Header.Get("api-key")

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotFolder = r.FormValue("folder")
		gotPublicID = r.FormValue("public_id")

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
		} else {
			gotFilename = header.Filename
			body, _ := io.ReadAll(file)
			file.Close()
			if string(body) != "fake image bytes" {
				t.Errorf("unexpected file body %q", body)
			}
		}

		_ = json.NewEncoder(w).Encode(uploadResponse{
			SecureURL: "https://img.example.com/shop/1700000000-laptop.png",
			PublicID:  gotPublicID,
			Format:    "png",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", "shop")
	c.now = func() time.Time { return time.Unix(1700000000, 0) }

	img, err := c.Upload(context.Background(), "laptop.png", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if img.URL != "https://img.example.com/shop/1700000000-laptop.png" {
		t.Fatalf("unexpected url %q", img.URL)
	}
	if img.PublicID != "shop/1700000000-laptop" {
		t.Fatalf("unexpected public id %q", img.PublicID)
	}
	if gotAPIKey != "secret" {
		t.Fatalf("api-key header not sent, got %q", gotAPIKey)
	}
	if gotFolder != "shop" || gotPublicID != "shop/1700000000-laptop" || gotFilename != "laptop.png" {
		t.Fatalf("unexpected form fields: folder=%q public_id=%q filename=%q", gotFolder, gotPublicID, gotFilename)
	}
}

func TestUploadHostError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", "shop")
	_, err := c.Upload(context.Background(), "laptop.png", strings.NewReader("x"))
	if err == nil || !strings.Contains(err.Error(), "status=403") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestDestroy(t *testing.T) {
	var gotPublicID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/destroy" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		gotPublicID = payload["public_id"]
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", "shop")
	if err := c.Destroy(context.Background(), "shop/1700000000-laptop"); err != nil {
		t.Fatalf("Destroy error: %v", err)
	}
	if gotPublicID != "shop/1700000000-laptop" {
		t.Fatalf("unexpected public id %q", gotPublicID)
	}

	if err := c.Destroy(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for blank public id")
	}
}
