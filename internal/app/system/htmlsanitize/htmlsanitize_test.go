package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/huddle/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainBio(t *testing.T) {
	bio := "Highly motivated student."
	if got := htmlsanitize.Sanitize(bio); got != bio {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "Building a ML project<script>alert('xss')</script>"
	got := htmlsanitize.Sanitize(input)
	if strings.Contains(got, "<script>") {
		t.Errorf("expected script removed, got %q", got)
	}
	if !strings.Contains(got, "Building a ML project") {
		t.Errorf("expected text preserved, got %q", got)
	}
}

func TestSanitize_RemovesEventHandlers(t *testing.T) {
	input := `<b onclick="alert('xss')">hi</b>`
	got := htmlsanitize.Sanitize(input)
	if strings.Contains(got, "onclick") {
		t.Errorf("expected onclick stripped, got %q", got)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Click</a>`
	got := htmlsanitize.Sanitize(input)
	if strings.Contains(got, "javascript:") {
		t.Errorf("expected javascript: href removed, got %q", got)
	}
}
