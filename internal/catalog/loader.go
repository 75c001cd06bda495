package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mirothedj/robocat/internal/domain"
	"github.com/mirothedj/robocat/internal/logger"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// lessonFile is the on-disk shape of one lesson pack.
type lessonFile struct {
	ID            int                 `yaml:"id"`
	Title         string              `yaml:"title"`
	MissionBrief  string              `yaml:"mission_brief"`
	MissionGoal   string              `yaml:"mission_goal"`
	AnatomyLabels map[string]string   `yaml:"anatomy_labels"`
	Parts         map[string]partFile `yaml:"parts"`
}

type partFile struct {
	Mode            string       `yaml:"mode"`
	CorrectOptionID string       `yaml:"correct_option_id"`
	Keywords        []string     `yaml:"keywords"`
	Hint            string       `yaml:"hint"`
	Options         []optionFile `yaml:"options"`
}

type optionFile struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// LoadDir reads every *.yaml / *.yml lesson pack under dir. Each file is
// checked against the lesson schema and then mapped into a domain.Lesson;
// any invalid file aborts the load so bad packs cannot reach students.
func LoadDir(dir string) ([]domain.Lesson, error) {
	var lessons []domain.Lesson

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || (!strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml")) {
			return nil
		}

		lesson, err := loadFile(path)
		if err != nil {
			return err
		}
		lessons = append(lessons, lesson)

		logger.Get().Info("Loaded lesson pack",
			zap.String("path", path),
			zap.Int("lesson_id", lesson.ID),
			zap.String("title", lesson.Title),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

func loadFile(path string) (domain.Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Lesson{}, domain.NewInternalError(fmt.Sprintf("failed to read lesson pack %s", path), err)
	}

	// Schema check runs on the generic document so the error names the
	// offending fields instead of surfacing as a half-mapped struct.
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Lesson{}, domain.NewLessonDataError(fmt.Sprintf("lesson pack %s: invalid YAML: %v", path, err))
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(lessonSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return domain.Lesson{}, domain.NewInternalError(fmt.Sprintf("failed to validate lesson pack %s", path), err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return domain.Lesson{}, domain.NewLessonDataError(
			fmt.Sprintf("lesson pack %s failed schema validation: %s", path, strings.Join(details, "; ")))
	}

	var file lessonFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Lesson{}, domain.NewLessonDataError(fmt.Sprintf("lesson pack %s: %v", path, err))
	}

	lesson, err := file.toDomain()
	if err != nil {
		return domain.Lesson{}, err
	}
	if err := lesson.Validate(); err != nil {
		if derr, ok := err.(*domain.DomainError); ok {
			derr.Message = fmt.Sprintf("lesson pack %s: %s", path, derr.Message)
		}
		return domain.Lesson{}, err
	}
	return lesson, nil
}

func (f lessonFile) toDomain() (domain.Lesson, error) {
	lesson := domain.Lesson{
		ID:           f.ID,
		Title:        f.Title,
		MissionBrief: f.MissionBrief,
		MissionGoal:  f.MissionGoal,
		Requirements: make(map[domain.PartType]domain.Requirement, len(f.Parts)),
		Options:      make(map[domain.PartType][]domain.AnswerOption),
	}

	if len(f.AnatomyLabels) > 0 {
		lesson.AnatomyLabels = make(map[domain.PartType]string, len(f.AnatomyLabels))
		for key, label := range f.AnatomyLabels {
			part, err := domain.ParsePartType(key)
			if err != nil {
				return domain.Lesson{}, domain.NewLessonDataError(fmt.Sprintf("lesson %d: unknown part %q in anatomy_labels", f.ID, key))
			}
			lesson.AnatomyLabels[part] = label
		}
	}

	for key, pf := range f.Parts {
		part, err := domain.ParsePartType(key)
		if err != nil {
			return domain.Lesson{}, domain.NewLessonDataError(fmt.Sprintf("lesson %d: unknown part %q", f.ID, key))
		}

		req := domain.Requirement{
			PartType:        part,
			Mode:            domain.RequirementMode(pf.Mode),
			CorrectOptionID: pf.CorrectOptionID,
			Keywords:        pf.Keywords,
			Hint:            pf.Hint,
		}
		// Mode may be omitted when it is unambiguous from the fields.
		// A part declaring neither is left mode-less and rejected by
		// lesson validation; auto-accept must be spelled out as "always".
		if pf.Mode == "" {
			switch {
			case pf.CorrectOptionID != "" && len(pf.Keywords) > 0:
				return domain.Lesson{}, domain.NewLessonDataError(
					fmt.Sprintf("lesson %d: part %s declares both a correct option and keywords", f.ID, part))
			case pf.CorrectOptionID != "":
				req.Mode = domain.ModeOption
			case len(pf.Keywords) > 0:
				req.Mode = domain.ModeKeywords
			}
		}
		lesson.Requirements[part] = req

		for _, opt := range pf.Options {
			lesson.Options[part] = append(lesson.Options[part], domain.AnswerOption{ID: opt.ID, Label: opt.Label})
		}
	}
	return lesson, nil
}
