package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/config"
	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/store"
	"github.com/studio-site-backend/internal/validation"
)

func newTestSubmissionService(t *testing.T) *submissionService {
	t.Helper()
	cfg := &config.StorageConfig{DataDir: t.TempDir(), SiteDir: t.TempDir()}
	if err := store.EnsureDirs(cfg, filepath.Join(cfg.DataDir, "uploads")); err != nil {
		t.Fatal(err)
	}
	stores := store.New(cfg, zerolog.Nop())
	return newSubmissionService(stores, zerolog.Nop())
}

func validApplication() *models.ApplicationRequest {
	return &models.ApplicationRequest{
		BusinessName: "Acme Corp",
		FullName:     "Jane Doe",
		Email:        "jane@acme.test",
		Phone:        "555-0100",
		Industry:     "retail",
		Website:      "https://acme.test",
	}
}

func TestSaveApplication_RoundTrip(t *testing.T) {
	svc := newTestSubmissionService(t)

	saved, err := svc.SaveApplication(validApplication(), nil)
	if err != nil {
		t.Fatalf("SaveApplication failed: %v", err)
	}
	if saved.ID == "" || !strings.HasSuffix(saved.FileName, ".json") {
		t.Errorf("Missing id/fileName: %+v", saved)
	}
	if !strings.HasSuffix(saved.ID, "_acme_corp") {
		t.Errorf("ID %q does not embed sanitized business name", saved.ID)
	}

	got, err := svc.GetSubmission(saved.ID)
	if err != nil {
		t.Fatalf("GetSubmission failed: %v", err)
	}
	if got.BusinessName != saved.BusinessName || got.Email != saved.Email {
		t.Errorf("Round trip mismatch: %+v vs %+v", got, saved)
	}
	if !got.SubmittedAt.Equal(saved.SubmittedAt) {
		t.Errorf("SubmittedAt mismatch: %v vs %v", got.SubmittedAt, saved.SubmittedAt)
	}
}

func TestSaveApplication_WritesCSVSummary(t *testing.T) {
	svc := newTestSubmissionService(t)

	if _, err := svc.SaveApplication(validApplication(), nil); err != nil {
		t.Fatal(err)
	}
	second := validApplication()
	second.BusinessName = `Quote "Heavy" Inc`
	svc.now = func() time.Time { return time.Now().Add(time.Second) }
	if _, err := svc.SaveApplication(second, nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(svc.stores.Submissions.Dir(), "applications_summary.csv"))
	if err != nil {
		t.Fatalf("Summary CSV missing: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != `"Timestamp","Name","Email","Phone","Business Name","Industry","Website","Employee Count"` {
		t.Errorf("Header = %q", lines[0])
	}
	if !strings.Contains(lines[2], `"Quote ""Heavy"" Inc"`) {
		t.Errorf("Embedded quotes not doubled: %q", lines[2])
	}
}

func TestSaveApplication_Validation(t *testing.T) {
	svc := newTestSubmissionService(t)

	req := validApplication()
	req.Email = "not-an-email"
	_, err := svc.SaveApplication(req, nil)

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected validation.Errors, got %v", err)
	}
	if verrs[0].Field != "email" {
		t.Errorf("Expected email error, got %+v", verrs)
	}
}

func TestListSubmissions_NewestFirst(t *testing.T) {
	svc := newTestSubmissionService(t)

	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"First Co", "Second Co", "Third Co"} {
		ts := base.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return ts }
		req := validApplication()
		req.BusinessName = name
		if _, err := svc.SaveApplication(req, nil); err != nil {
			t.Fatal(err)
		}
	}

	subs, err := svc.ListSubmissions()
	if err != nil {
		t.Fatalf("ListSubmissions failed: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("Expected 3 submissions, got %d", len(subs))
	}
	if subs[0].BusinessName != "Third Co" || subs[2].BusinessName != "First Co" {
		t.Errorf("Not newest first: %s, %s, %s",
			subs[0].BusinessName, subs[1].BusinessName, subs[2].BusinessName)
	}
}

func TestDeleteSubmission(t *testing.T) {
	svc := newTestSubmissionService(t)

	saved, err := svc.SaveApplication(validApplication(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteSubmission(saved.ID); err != nil {
		t.Fatalf("DeleteSubmission failed: %v", err)
	}
	if _, err := svc.GetSubmission(saved.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.DeleteSubmission(saved.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for second delete, got %v", err)
	}
}

func TestSaveContactAndList(t *testing.T) {
	svc := newTestSubmissionService(t)

	msg, err := svc.SaveContact(&models.ContactRequest{Name: "Jane", Email: "jane@test.com", Message: "Hi"})
	if err != nil {
		t.Fatalf("SaveContact failed: %v", err)
	}
	if msg.ID == "" {
		t.Error("Contact message has no id")
	}

	msgs, err := svc.ListContacts()
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].Name != "Jane" {
		t.Errorf("ListContacts = %+v", msgs)
	}
}

func TestSaveSignup_DefaultsSource(t *testing.T) {
	svc := newTestSubmissionService(t)

	signup, err := svc.SaveSignup(&models.SignupRequest{Email: "a@b.co"})
	if err != nil {
		t.Fatalf("SaveSignup failed: %v", err)
	}
	if signup.Source != "website" {
		t.Errorf("Source = %q, want website default", signup.Source)
	}

	signups, err := svc.ListSignups()
	if err != nil {
		t.Fatal(err)
	}
	if len(signups) != 1 {
		t.Errorf("Expected 1 signup, got %d", len(signups))
	}
}
