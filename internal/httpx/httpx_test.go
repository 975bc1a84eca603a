package httpx

import (
	"net/url"
	"strings"
	"testing"
)

func TestDecodeJSONSingleObject(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	if err := DecodeJSON(strings.NewReader(`{"name":"ok"}`), &v); err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if v.Name != "ok" {
		t.Fatalf("unexpected value: %q", v.Name)
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	if err := DecodeJSON(strings.NewReader(`{"name":"ok","extra":1}`), &v); err == nil {
		t.Fatalf("expected unknown field to be rejected")
	}
}

func TestDecodeJSONRejectsTrailingContent(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	if err := DecodeJSON(strings.NewReader(`{"name":"ok"}{"name":"again"}`), &v); err == nil {
		t.Fatalf("expected trailing object to be rejected")
	}
}

func TestParseLimitOffsetDefaults(t *testing.T) {
	limit, offset, err := ParseLimitOffset(url.Values{}, 20, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 20 || offset != 0 {
		t.Fatalf("unexpected defaults: limit=%d offset=%d", limit, offset)
	}
}

func TestParseLimitOffsetCapsLimit(t *testing.T) {
	values := url.Values{"limit": {"500"}, "offset": {"40"}}
	limit, offset, err := ParseLimitOffset(values, 20, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 100 || offset != 40 {
		t.Fatalf("unexpected values: limit=%d offset=%d", limit, offset)
	}
}

func TestParseLimitOffsetRejectsInvalid(t *testing.T) {
	if _, _, err := ParseLimitOffset(url.Values{"limit": {"0"}}, 20, 100); err == nil {
		t.Fatalf("expected zero limit to be rejected")
	}
	if _, _, err := ParseLimitOffset(url.Values{"offset": {"-1"}}, 20, 100); err == nil {
		t.Fatalf("expected negative offset to be rejected")
	}
}
