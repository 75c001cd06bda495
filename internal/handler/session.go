package handler

import (
	"github.com/mirothedj/robocat/internal/domain"
	"github.com/mirothedj/robocat/internal/dto"
	"github.com/mirothedj/robocat/internal/service"
	"github.com/mirothedj/robocat/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles assembly-session HTTP requests
type SessionHandler struct {
	service   service.SessionService
	validator *validation.Validator
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateSession godoc
// @Summary Create a new assembly session
// @Description Starts a fresh session at the first lesson
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	snapshot, err := h.service.CreateSession()
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(snapshot)
}

// GetSession godoc
// @Summary Get a session snapshot
// @Description Returns the full state the UI needs to render
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	snapshot, err := h.service.GetSession(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// SelectPart godoc
// @Summary Open the configuration surface for a part
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param part path string true "Part type (HEAD, TORSO, ARM_RIGHT, ARM_LEFT, LEGS)"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/parts/{part}/select [post]
func (h *SessionHandler) SelectPart(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	part, err := domain.ParsePartType(c.Params("part"))
	if err != nil {
		return err
	}

	snapshot, err := h.service.SelectPart(sessionID, part)
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// SubmitAnswer godoc
// @Summary Submit an answer for the part being configured
// @Description Validates the submission; on success the part installs and the configuration closes
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SubmitAnswerRequest true "Submission"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/submit [post]
func (h *SessionHandler) SubmitAnswer(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be JSON with a submission field")
	}
	if errs := h.validator.ValidateSubmitAnswerRequest(req.Submission); len(errs) > 0 {
		return errs
	}

	result, err := h.service.SubmitAnswer(sessionID, &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// CloseConfiguration godoc
// @Summary Cancel the open part configuration
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/configuration/close [post]
func (h *SessionHandler) CloseConfiguration(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	snapshot, err := h.service.CloseConfiguration(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// Activate godoc
// @Summary Activate the assembled agent
// @Description Only succeeds at 100 percent power; otherwise the state is returned unchanged
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/activate [post]
func (h *SessionHandler) Activate(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	snapshot, err := h.service.Activate(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// AdvanceLesson godoc
// @Summary Advance to the next lesson
// @Description Only available from a completed, non-final lesson
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/advance [post]
func (h *SessionHandler) AdvanceLesson(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	snapshot, err := h.service.AdvanceLesson(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// RestartLesson godoc
// @Summary Restart the current lesson
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/restart [post]
func (h *SessionHandler) RestartLesson(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	snapshot, err := h.service.RestartLesson(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// RegisterRoutes mounts all session routes on the given router group.
func (h *SessionHandler) RegisterRoutes(router fiber.Router) {
	sessions := router.Group("/sessions")
	sessions.Post("/", h.CreateSession)
	sessions.Get("/:id", h.GetSession)
	sessions.Post("/:id/parts/:part/select", h.SelectPart)
	sessions.Post("/:id/submit", h.SubmitAnswer)
	sessions.Post("/:id/configuration/close", h.CloseConfiguration)
	sessions.Post("/:id/activate", h.Activate)
	sessions.Post("/:id/advance", h.AdvanceLesson)
	sessions.Post("/:id/restart", h.RestartLesson)
}
