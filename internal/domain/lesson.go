package domain

import "fmt"

// RequirementMode selects how a submission for a part is validated.
type RequirementMode string

const (
	// ModeOption accepts only the exact correct option id.
	ModeOption RequirementMode = "option"
	// ModeKeywords accepts free text containing at least one keyword.
	ModeKeywords RequirementMode = "keywords"
	// ModeAlways accepts any submission. Must be declared explicitly;
	// it is never inferred from missing data.
	ModeAlways RequirementMode = "always"
)

// AnswerOption is one selectable choice for an option-mode part.
type AnswerOption struct {
	ID    string
	Label string
}

// Requirement defines how a single part of a lesson is unlocked.
type Requirement struct {
	PartType        PartType
	Mode            RequirementMode
	CorrectOptionID string
	Keywords        []string
	Hint            string
}

// Validate checks a requirement against the options offered for its part.
// Inconsistent lesson data fails here, at catalog load, rather than being
// silently auto-accepted at runtime.
func (r Requirement) Validate(options []AnswerOption) error {
	switch r.Mode {
	case ModeOption:
		if r.CorrectOptionID == "" {
			return NewLessonDataError(fmt.Sprintf("part %s: option mode requires a correct option id", r.PartType))
		}
		found := false
		for _, opt := range options {
			if opt.ID == r.CorrectOptionID {
				found = true
				break
			}
		}
		if !found {
			return NewLessonDataError(fmt.Sprintf("part %s: correct option %q is not among the offered options", r.PartType, r.CorrectOptionID))
		}
		if r.Hint == "" {
			return NewLessonDataError(fmt.Sprintf("part %s: hint is required", r.PartType))
		}
	case ModeKeywords:
		if len(r.Keywords) == 0 {
			return NewLessonDataError(fmt.Sprintf("part %s: keywords mode requires at least one keyword", r.PartType))
		}
		if r.Hint == "" {
			return NewLessonDataError(fmt.Sprintf("part %s: hint is required", r.PartType))
		}
	case ModeAlways:
		// Nothing to check: any submission passes and no hint is ever shown.
	default:
		return NewLessonDataError(fmt.Sprintf("part %s: unknown requirement mode %q", r.PartType, r.Mode))
	}
	return nil
}

// Lesson is one self-contained teaching scenario. Lessons are static data,
// ordered by ID in the catalog.
type Lesson struct {
	ID           int
	Title        string
	MissionBrief string
	MissionGoal  string

	// AnatomyLabels optionally renames parts for this lesson
	// (e.g. HEAD becomes "The Controls (UI)").
	AnatomyLabels map[PartType]string

	Requirements map[PartType]Requirement
	Options      map[PartType][]AnswerOption
}

// Validate checks structural consistency of the lesson.
func (l Lesson) Validate() error {
	if l.ID <= 0 {
		return NewLessonDataError("lesson id must be positive")
	}
	if l.Title == "" {
		return NewLessonDataError(fmt.Sprintf("lesson %d: title is required", l.ID))
	}
	for _, part := range AllParts {
		req, ok := l.Requirements[part]
		if !ok {
			return NewLessonDataError(fmt.Sprintf("lesson %d: part %s has no requirement", l.ID, part))
		}
		if req.PartType != part {
			return NewLessonDataError(fmt.Sprintf("lesson %d: requirement for %s is tagged %s", l.ID, part, req.PartType))
		}
		if err := req.Validate(l.Options[part]); err != nil {
			if derr, ok := err.(*DomainError); ok {
				derr.Message = fmt.Sprintf("lesson %d: %s", l.ID, derr.Message)
				return derr
			}
			return err
		}
		seen := make(map[string]bool)
		for _, opt := range l.Options[part] {
			if opt.ID == "" || opt.Label == "" {
				return NewLessonDataError(fmt.Sprintf("lesson %d: part %s has an option with empty id or label", l.ID, part))
			}
			if seen[opt.ID] {
				return NewLessonDataError(fmt.Sprintf("lesson %d: part %s has duplicate option id %q", l.ID, part, opt.ID))
			}
			seen[opt.ID] = true
		}
	}
	return nil
}

// LabelFor returns the lesson-specific label for a part, falling back to the
// part's generic display name.
func (l Lesson) LabelFor(part PartType) string {
	if label, ok := l.AnatomyLabels[part]; ok && label != "" {
		return label
	}
	return PartInfo(part).Name
}
