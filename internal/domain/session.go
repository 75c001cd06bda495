package domain

import "time"

// InstallEvent is emitted exactly once per accepted submission that installs
// a part. The rendering collaborator uses it to play the install cue.
type InstallEvent struct {
	Part PartType
}

// Session is the progression state machine for one assembly session.
// It owns all mutable state: the active lesson index, which parts are
// installed, the part currently being configured, and the terminal complete
// flag. Callers must serialize access; the session itself holds no lock.
//
// Invalid transitions are silent no-ops: the methods report whether anything
// changed, but never fail.
type Session struct {
	ID         string
	LessonIdx  int
	Assembled  map[PartType]bool
	ActivePart *PartType
	Complete   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSession creates a session at the first lesson with nothing installed.
func NewSession(id string) *Session {
	now := time.Now()
	s := &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.resetAssembly()
	return s
}

func (s *Session) resetAssembly() {
	assembled := make(map[PartType]bool, len(AllParts))
	for _, part := range AllParts {
		assembled[part] = false
	}
	s.Assembled = assembled
	s.ActivePart = nil
	s.Complete = false
}

// InstalledCount returns how many parts are installed.
func (s *Session) InstalledCount() int {
	count := 0
	for _, installed := range s.Assembled {
		if installed {
			count++
		}
	}
	return count
}

// PowerLevel derives the completion percentage:
// floor(installed / total * 100), so 1 part yields 20, 5 parts yield 100.
func (s *Session) PowerLevel() int {
	return s.InstalledCount() * 100 / len(AllParts)
}

// SelectPart opens the configuration surface for a part. Re-selecting an
// installed part is allowed and does not uninstall it. Ignored once the
// session is complete.
func (s *Session) SelectPart(part PartType) bool {
	if s.Complete {
		return false
	}
	p := part
	s.ActivePart = &p
	s.UpdatedAt = time.Now()
	return true
}

// CloseConfiguration cancels the open configuration without touching
// assembly state.
func (s *Session) CloseConfiguration() {
	if s.ActivePart == nil {
		return
	}
	s.ActivePart = nil
	s.UpdatedAt = time.Now()
}

// Submit checks a submission for the currently active part. req must be the
// active lesson's requirement for that part; resolving it is the caller's job.
//
// On acceptance the part is installed, the configuration closes, and an
// InstallEvent is returned - unless the part was already installed, in which
// case the submission still succeeds but nothing changes and no event fires.
// On rejection the configuration stays open and the result carries the hint.
// With no part active the call is a no-op.
func (s *Session) Submit(req Requirement, submission string) (SubmissionResult, *InstallEvent) {
	if s.ActivePart == nil || s.Complete {
		return SubmissionResult{}, nil
	}
	part := *s.ActivePart

	result := CheckSubmission(req, submission)
	if !result.Accepted {
		return result, nil
	}

	s.UpdatedAt = time.Now()
	if s.Assembled[part] {
		// Re-validating an installed part: success, but no double install.
		s.ActivePart = nil
		return result, nil
	}

	s.Assembled[part] = true
	s.ActivePart = nil
	return result, &InstallEvent{Part: part}
}

// Activate enters the terminal complete state. Only permitted at exactly
// 100 percent power; anything less is ignored.
func (s *Session) Activate() bool {
	if s.Complete || s.PowerLevel() != 100 {
		return false
	}
	s.Complete = true
	s.ActivePart = nil
	s.UpdatedAt = time.Now()
	return true
}

// AdvanceLesson moves to the next lesson and resets assembly. Only valid from
// the complete state and only when a next lesson exists.
func (s *Session) AdvanceLesson(lessonCount int) bool {
	if !s.Complete || s.LessonIdx >= lessonCount-1 {
		return false
	}
	s.LessonIdx++
	s.resetAssembly()
	s.UpdatedAt = time.Now()
	return true
}

// RestartLesson resets assembly for the current lesson. Valid from any state
// and idempotent.
func (s *Session) RestartLesson() {
	s.resetAssembly()
	s.UpdatedAt = time.Now()
}
