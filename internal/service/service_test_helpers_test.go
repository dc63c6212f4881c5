package service

import (
	"os"
	"strings"
	"testing"

	"github.com/studio-site-backend/internal/publish"
)

func assertListingContains(t *testing.T, p *publish.Publisher, slug string, want bool) {
	t.Helper()
	data, err := os.ReadFile(p.ListingPath())
	if err != nil {
		t.Fatalf("Listing page unreadable: %v", err)
	}
	got := strings.Contains(string(data), `data-slug="`+slug+`"`)
	if got != want {
		t.Errorf("Listing contains card for %q = %v, want %v", slug, got, want)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
