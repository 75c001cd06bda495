package service

import (
	"sync"

	"github.com/mirothedj/robocat/internal/catalog"
	"github.com/mirothedj/robocat/internal/config"
	"github.com/mirothedj/robocat/internal/domain"
	"github.com/mirothedj/robocat/internal/dto"
	"github.com/mirothedj/robocat/internal/logger"
	"github.com/mirothedj/robocat/internal/repository"
	"github.com/mirothedj/robocat/internal/util"

	"go.uber.org/zap"
)

// SessionService exposes every intent the rendering collaborator can send.
// Each call returns a fresh snapshot so the UI never needs to diff state.
type SessionService interface {
	CreateSession() (*dto.SessionResponse, error)
	GetSession(sessionID string) (*dto.SessionResponse, error)
	SelectPart(sessionID string, part domain.PartType) (*dto.SessionResponse, error)
	SubmitAnswer(sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	CloseConfiguration(sessionID string) (*dto.SessionResponse, error)
	Activate(sessionID string) (*dto.SessionResponse, error)
	AdvanceLesson(sessionID string) (*dto.SessionResponse, error)
	RestartLesson(sessionID string) (*dto.SessionResponse, error)
}

// sessionService implements SessionService
type sessionService struct {
	repo    repository.SessionRepository
	catalog *catalog.Catalog
	cfg     *config.Config

	// mu serializes all session mutations. Sessions were designed around
	// strictly ordered, one-at-a-time intents; concurrent HTTP requests
	// must not interleave inside a transition.
	mu sync.Mutex
}

// NewSessionService creates a new instance of sessionService
func NewSessionService(repo repository.SessionRepository, cat *catalog.Catalog, cfg *config.Config) SessionService {
	return &sessionService{
		repo:    repo,
		catalog: cat,
		cfg:     cfg,
	}
}

// CreateSession implements SessionService
func (s *sessionService) CreateSession() (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if max := s.cfg.Session.MaxSessions; max > 0 && s.repo.Count() >= max {
		return nil, domain.NewSessionLimitError(max)
	}

	session := domain.NewSession(util.NewULID())
	if err := s.repo.Save(session); err != nil {
		return nil, domain.NewInternalError("Failed to save new session", err)
	}

	logger.Get().Info("Session created", zap.String("session_id", session.ID))
	return s.snapshot(session)
}

// GetSession implements SessionService
func (s *sessionService) GetSession(sessionID string) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(session)
}

// SelectPart implements SessionService. Selecting while the session is
// complete is ignored, matching the locked assembly bay in the UI.
func (s *sessionService) SelectPart(sessionID string, part domain.PartType) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	session.SelectPart(part)
	return s.snapshot(session)
}

// SubmitAnswer implements SessionService. With no part being configured the
// submission is a silent no-op: nothing changes and no hint is returned.
func (s *sessionService) SubmitAnswer(sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.Get(sessionID)
	if err != nil {
		return nil, err
	}

	response := &dto.SubmitAnswerResponse{}
	if session.ActivePart != nil {
		lesson, err := s.catalog.ByIndex(session.LessonIdx)
		if err != nil {
			return nil, domain.NewInternalError("Session points at a missing lesson", err)
		}
		requirement := lesson.Requirements[*session.ActivePart]

		result, event := session.Submit(requirement, req.Submission)
		response.Accepted = result.Accepted
		response.Hint = result.Hint

		if event != nil {
			response.InstalledPart = string(event.Part)
			logger.Get().Info("Part installed",
				zap.String("session_id", session.ID),
				zap.String("part", string(event.Part)),
				zap.Int("power_level", session.PowerLevel()),
			)
		}
	}

	snapshot, err := s.snapshot(session)
	if err != nil {
		return nil, err
	}
	response.Session = snapshot
	return response, nil
}

// CloseConfiguration implements SessionService
func (s *sessionService) CloseConfiguration(sessionID string) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	session.CloseConfiguration()
	return s.snapshot(session)
}

// Activate implements SessionService. Below full power this is a silent
// no-op; the snapshot simply comes back without the complete flag.
func (s *sessionService) Activate(sessionID string) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Activate() {
		logger.Get().Info("Agent activated",
			zap.String("session_id", session.ID),
			zap.Int("lesson_idx", session.LessonIdx),
		)
	}
	return s.snapshot(session)
}

// AdvanceLesson implements SessionService
func (s *sessionService) AdvanceLesson(sessionID string) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.AdvanceLesson(s.catalog.Len()) {
		logger.Get().Info("Advanced to next lesson",
			zap.String("session_id", session.ID),
			zap.Int("lesson_idx", session.LessonIdx),
		)
	}
	return s.snapshot(session)
}

// RestartLesson implements SessionService
func (s *sessionService) RestartLesson(sessionID string) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	session.RestartLesson()
	return s.snapshot(session)
}

// snapshot maps a session plus its active lesson into the wire shape.
func (s *sessionService) snapshot(session *domain.Session) (*dto.SessionResponse, error) {
	lesson, err := s.catalog.ByIndex(session.LessonIdx)
	if err != nil {
		return nil, domain.NewInternalError("Session points at a missing lesson", err)
	}

	parts := make([]dto.PartResponse, 0, len(domain.AllParts))
	for _, info := range domain.AllPartInfo() {
		requirement := lesson.Requirements[info.Type]

		inputMode := "text"
		var options []dto.OptionResponse
		if requirement.Mode == domain.ModeOption {
			inputMode = "choice"
			for _, opt := range lesson.Options[info.Type] {
				options = append(options, dto.OptionResponse{ID: opt.ID, Label: opt.Label})
			}
		}

		parts = append(parts, dto.PartResponse{
			ID:          info.ID,
			Type:        string(info.Type),
			Name:        info.Name,
			Label:       lesson.LabelFor(info.Type),
			AITerm:      info.AITerm,
			Description: info.Description,
			ColorTheme:  info.ColorTheme,
			IconName:    info.IconName,
			InputMode:   inputMode,
			Installed:   session.Assembled[info.Type],
			Options:     options,
		})
	}

	response := &dto.SessionResponse{
		SessionID: session.ID,
		Lesson: dto.LessonResponse{
			ID:           lesson.ID,
			Title:        lesson.Title,
			MissionBrief: lesson.MissionBrief,
			MissionGoal:  lesson.MissionGoal,
			IsLast:       s.catalog.IsLast(session.LessonIdx),
		},
		Parts:      parts,
		PowerLevel: session.PowerLevel(),
		Complete:   session.Complete,
	}
	if session.ActivePart != nil {
		response.ActivePart = string(*session.ActivePart)
	}
	return response, nil
}
