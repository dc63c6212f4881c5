package service

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/store"
	"github.com/studio-site-backend/internal/validation"
)

// Column order for the applications summary CSV. Fixed for the
// lifetime of a summary file; there is no schema versioning.
var applicationColumns = []string{
	"Timestamp", "Name", "Email", "Phone", "Business Name", "Industry", "Website", "Employee Count",
}

var contactColumns = []string{"Timestamp", "Name", "Email", "Subject", "Message"}

var signupColumns = []string{"Timestamp", "Name", "Email", "Source"}

// submissionService is the concrete implementation of SubmissionService
type submissionService struct {
	stores *store.Stores
	log    zerolog.Logger
	now    func() time.Time
}

// newSubmissionService creates a new SubmissionService
func newSubmissionService(stores *store.Stores, log zerolog.Logger) *submissionService {
	return &submissionService{
		stores: stores,
		log:    log.With().Str("service", "submission").Logger(),
		now:    time.Now,
	}
}

// SaveApplication persists a lead-generation application as a JSON
// record plus one row in the summary CSV
func (s *submissionService) SaveApplication(req *models.ApplicationRequest, files []models.UploadedFileRef) (*models.Submission, error) {
	if errs := validation.ValidateApplication(req); len(errs) > 0 {
		return nil, errs
	}

	now := s.now()
	submission := &models.Submission{
		BusinessName:    req.BusinessName,
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Industry:        req.Industry,
		Website:         req.Website,
		EmployeeCount:   req.EmployeeCount,
		ServiceInterest: req.ServiceInterest,
		Files:           files,
		SubmittedAt:     now,
		SubmittedDate:   now.Format("1/2/2006, 3:04:05 PM"),
	}

	key, err := s.stores.Submissions.Append(req.BusinessName, now, submission)
	if err != nil {
		return nil, err
	}
	submission.ID = key
	submission.FileName = key + ".json"
	if err := s.stores.Submissions.Write(key, submission); err != nil {
		return nil, err
	}

	csvPath := filepath.Join(s.stores.Submissions.Dir(), "applications_summary.csv")
	if err := store.EnsureHeader(csvPath, applicationColumns); err != nil {
		return nil, err
	}
	row := []string{
		submission.SubmittedDate, req.FullName, req.Email, req.Phone,
		req.BusinessName, req.Industry, req.Website, req.EmployeeCount,
	}
	if err := store.AppendRow(csvPath, row); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", key).Str("business", req.BusinessName).Msg("Application saved")
	return submission, nil
}

// ListSubmissions returns all applications, newest first
func (s *submissionService) ListSubmissions() ([]models.Submission, error) {
	submissions := []models.Submission{}
	err := s.stores.Submissions.List(func(key string, data []byte) error {
		var sub models.Submission
		if err := json.Unmarshal(data, &sub); err != nil {
			return err
		}
		sub.ID = key
		sub.FileName = key + ".json"
		submissions = append(submissions, sub)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].SubmittedAt.After(submissions[j].SubmittedAt)
	})
	return submissions, nil
}

// GetSubmission returns one application by id
func (s *submissionService) GetSubmission(id string) (*models.Submission, error) {
	var sub models.Submission
	if err := s.stores.Submissions.Read(id, &sub); err != nil {
		return nil, err
	}
	sub.ID = id
	sub.FileName = id + ".json"
	return &sub, nil
}

// DeleteSubmission removes one application by id
func (s *submissionService) DeleteSubmission(id string) error {
	if err := s.stores.Submissions.Delete(id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("Submission deleted")
	return nil
}

// SaveContact persists a contact-form message
func (s *submissionService) SaveContact(req *models.ContactRequest) (*models.ContactMessage, error) {
	if errs := validation.ValidateContact(req); len(errs) > 0 {
		return nil, errs
	}

	now := s.now()
	msg := &models.ContactMessage{
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		SubmittedAt: now,
	}
	key, err := s.stores.Contacts.Append(req.Name, now, msg)
	if err != nil {
		return nil, err
	}
	msg.ID = key

	csvPath := filepath.Join(s.stores.Contacts.Dir(), "contacts_summary.csv")
	if err := store.EnsureHeader(csvPath, contactColumns); err != nil {
		return nil, err
	}
	row := []string{now.Format(time.RFC3339), req.Name, req.Email, req.Subject, req.Message}
	if err := store.AppendRow(csvPath, row); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", key).Msg("Contact message saved")
	return msg, nil
}

// ListContacts returns all contact messages, newest first
func (s *submissionService) ListContacts() ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	err := s.stores.Contacts.List(func(key string, data []byte) error {
		var msg models.ContactMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		msg.ID = key
		messages = append(messages, msg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].SubmittedAt.After(messages[j].SubmittedAt)
	})
	return messages, nil
}

// SaveSignup persists an email signup
func (s *submissionService) SaveSignup(req *models.SignupRequest) (*models.EmailSignup, error) {
	if errs := validation.ValidateSignup(req); len(errs) > 0 {
		return nil, errs
	}

	now := s.now()
	source := req.Source
	if source == "" {
		source = "website"
	}
	signup := &models.EmailSignup{
		Name:        req.Name,
		Email:       req.Email,
		Source:      source,
		SubmittedAt: now,
	}
	key, err := s.stores.Emails.Append(req.Email, now, signup)
	if err != nil {
		return nil, err
	}
	signup.ID = key

	csvPath := filepath.Join(s.stores.Emails.Dir(), "signups_summary.csv")
	if err := store.EnsureHeader(csvPath, signupColumns); err != nil {
		return nil, err
	}
	row := []string{now.Format(time.RFC3339), req.Name, req.Email, source}
	if err := store.AppendRow(csvPath, row); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", key).Msg("Email signup saved")
	return signup, nil
}

// ListSignups returns all email signups, newest first
func (s *submissionService) ListSignups() ([]models.EmailSignup, error) {
	signups := []models.EmailSignup{}
	err := s.stores.Emails.List(func(key string, data []byte) error {
		var su models.EmailSignup
		if err := json.Unmarshal(data, &su); err != nil {
			return err
		}
		su.ID = key
		signups = append(signups, su)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(signups, func(i, j int) bool {
		return signups[i].SubmittedAt.After(signups[j].SubmittedAt)
	})
	return signups, nil
}
