package validation

import (
	"regexp"
	"strings"

	"github.com/mirothedj/robocat/internal/domain"
)

// MaxSubmissionLength caps free-text submissions; the UI textarea is small
// but the API should not trust it.
const MaxSubmissionLength = 2000

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSessionID checks the session id path parameter.
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errs = append(errs, domain.NewMissingFieldError("session_id"))
	} else if !isValidULID(sessionID) {
		errs = append(errs, domain.NewInvalidFormatError("session_id", sessionID))
	}
	return errs
}

// ValidateSubmitAnswerRequest checks the submission payload. An empty
// submission is allowed through: it is a legal (wrong) answer that the
// domain validator rejects with a hint, not a malformed request.
func (v *Validator) ValidateSubmitAnswerRequest(submission string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if len(submission) > MaxSubmissionLength {
		errs = append(errs, domain.NewOutOfRangeError("submission", len(submission), 0, MaxSubmissionLength))
	}
	return errs
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
