package domain

import "strings"

// SubmissionResult is the outcome of checking one submission against a
// requirement. Hint is only set on rejection and is returned verbatim.
type SubmissionResult struct {
	Accepted bool
	Hint     string
}

// CheckSubmission validates a user submission against a part requirement.
// It is pure: no state is read or written, and repeated calls with the same
// inputs return the same result. Rejection is a normal outcome, not an error.
//
// Option mode compares the submitted option id exactly, case-sensitive.
// Keyword mode lowercases the submission and accepts it if any keyword occurs
// as a substring; there is no trimming and no word-boundary check, so "art"
// matches "party".
func CheckSubmission(req Requirement, submission string) SubmissionResult {
	switch req.Mode {
	case ModeOption:
		if submission == req.CorrectOptionID {
			return SubmissionResult{Accepted: true}
		}
	case ModeKeywords:
		lower := strings.ToLower(submission)
		for _, keyword := range req.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return SubmissionResult{Accepted: true}
			}
		}
	case ModeAlways:
		return SubmissionResult{Accepted: true}
	}
	return SubmissionResult{Accepted: false, Hint: req.Hint}
}
