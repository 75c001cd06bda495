// Package catalog holds the ordered set of lessons served to assembly
// sessions: the two built-in lessons plus any packs loaded from disk.
package catalog

import (
	"fmt"
	"sort"

	"github.com/mirothedj/robocat/internal/domain"
)

// Catalog is an ordered, immutable list of validated lessons.
type Catalog struct {
	lessons []domain.Lesson
}

// New builds a catalog from the given lessons. Every lesson is validated and
// ids must be unique; lessons are ordered by id. Bad lesson data fails here,
// before the server starts taking traffic.
func New(lessons []domain.Lesson) (*Catalog, error) {
	if len(lessons) == 0 {
		return nil, domain.NewLessonDataError("catalog must contain at least one lesson")
	}

	seen := make(map[int]bool, len(lessons))
	for _, lesson := range lessons {
		if err := lesson.Validate(); err != nil {
			return nil, err
		}
		if seen[lesson.ID] {
			return nil, domain.NewLessonDataError(fmt.Sprintf("duplicate lesson id %d", lesson.ID))
		}
		seen[lesson.ID] = true
	}

	ordered := make([]domain.Lesson, len(lessons))
	copy(ordered, lessons)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	return &Catalog{lessons: ordered}, nil
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}

// ByIndex returns the lesson at the given 0-based position.
func (c *Catalog) ByIndex(idx int) (domain.Lesson, error) {
	if idx < 0 || idx >= len(c.lessons) {
		return domain.Lesson{}, domain.NewError(domain.CodeNotFound, fmt.Sprintf("no lesson at index %d", idx), nil)
	}
	return c.lessons[idx], nil
}

// IsLast reports whether the given index is the final lesson, which controls
// whether sessions may advance.
func (c *Catalog) IsLast(idx int) bool {
	return idx >= len(c.lessons)-1
}
