package domain

import (
	"strings"
	"testing"
)

func validLesson() Lesson {
	requirements := make(map[PartType]Requirement)
	options := make(map[PartType][]AnswerOption)
	for _, part := range AllParts {
		if part == PartTorso {
			requirements[part] = Requirement{
				PartType: part,
				Mode:     ModeKeywords,
				Keywords: []string{"setup"},
				Hint:     "hint",
			}
			continue
		}
		requirements[part] = Requirement{
			PartType:        part,
			Mode:            ModeOption,
			CorrectOptionID: "opt_good",
			Hint:            "hint",
		}
		options[part] = []AnswerOption{
			{ID: "opt_good", Label: "Good"},
			{ID: "opt_bad", Label: "Bad"},
		}
	}
	return Lesson{
		ID:           1,
		Title:        "Test Lesson",
		MissionBrief: "brief",
		MissionGoal:  "goal",
		Requirements: requirements,
		Options:      options,
	}
}

func TestLesson_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Lesson)
		wantErr string
	}{
		{"valid lesson", func(l *Lesson) {}, ""},
		{
			"missing requirement",
			func(l *Lesson) { delete(l.Requirements, PartLegs) },
			"has no requirement",
		},
		{
			"correct option not offered",
			func(l *Lesson) {
				req := l.Requirements[PartHead]
				req.CorrectOptionID = "opt_missing"
				l.Requirements[PartHead] = req
			},
			"not among the offered options",
		},
		{
			"keywords mode without keywords",
			func(l *Lesson) {
				req := l.Requirements[PartTorso]
				req.Keywords = nil
				l.Requirements[PartTorso] = req
			},
			"requires at least one keyword",
		},
		{
			"no mode at all",
			func(l *Lesson) {
				l.Requirements[PartTorso] = Requirement{PartType: PartTorso, Hint: "hint"}
			},
			"unknown requirement mode",
		},
		{
			"missing hint",
			func(l *Lesson) {
				req := l.Requirements[PartHead]
				req.Hint = ""
				l.Requirements[PartHead] = req
			},
			"hint is required",
		},
		{
			"duplicate option ids",
			func(l *Lesson) {
				l.Options[PartHead] = append(l.Options[PartHead], AnswerOption{ID: "opt_good", Label: "Again"})
			},
			"duplicate option id",
		},
		{
			"mismatched requirement tag",
			func(l *Lesson) {
				req := l.Requirements[PartHead]
				req.PartType = PartLegs
				l.Requirements[PartHead] = req
			},
			"is tagged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lesson := validLesson()
			tt.mutate(&lesson)
			err := lesson.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
			if derr, ok := err.(*DomainError); !ok || derr.Code != CodeLessonData {
				t.Errorf("Validate() error code = %v, want %s", err, CodeLessonData)
			}
		})
	}
}

func TestLesson_LabelFor(t *testing.T) {
	lesson := validLesson()
	lesson.AnatomyLabels = map[PartType]string{PartHead: "The Controls (UI)"}

	if got := lesson.LabelFor(PartHead); got != "The Controls (UI)" {
		t.Errorf("LabelFor(HEAD) = %q, want the anatomy label", got)
	}
	if got := lesson.LabelFor(PartLegs); got != "Output Drive" {
		t.Errorf("LabelFor(LEGS) = %q, want the generic part name", got)
	}
}

func TestParsePartType(t *testing.T) {
	if _, err := ParsePartType("HEAD"); err != nil {
		t.Errorf("ParsePartType(HEAD) unexpected error: %v", err)
	}
	if _, err := ParsePartType("TAIL"); err == nil {
		t.Error("ParsePartType(TAIL) should fail")
	}
}
