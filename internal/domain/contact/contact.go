// Package contact carries evaluation results to the external CRM/email
// collaborator. Delivery is fire-and-forget from the caller's perspective:
// a failed export is reported but never touches the already-computed result.
package contact

import (
	"context"
	"fmt"

	"evalkit/internal/domain/evalkit"
)

// Submission is the JSON payload posted to the export collaborator.
type Submission struct {
	Email            string                   `json:"email"`
	FirstName        string                   `json:"firstName"`
	LastName         string                   `json:"lastName"`
	Company          string                   `json:"company"`
	Industry         string                   `json:"industry"`
	CompanySize      string                   `json:"companySize"`
	NetworkName      string                   `json:"networkName"`
	NewsletterOptIn  bool                     `json:"newsletterOptIn"`
	PrivacyConsent   bool                     `json:"privacyConsent"`
	EvaluationResult evalkit.EvaluationResult `json:"evaluationResult"`
}

// Exporter delivers a submission to the external collaborator.
type Exporter interface {
	Export(ctx context.Context, sub Submission) error
}

// Mailer sends the optional results summary email. Implemented by the
// platform SMTP mailer; a noop stands in when email is disabled.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// ExternalServiceError wraps a failed call to the export collaborator.
type ExternalServiceError struct {
	Op     string
	Status int
	Err    error
}

func (e *ExternalServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed with status %d", e.Op, e.Status)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
