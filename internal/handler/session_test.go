package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/mirothedj/robocat/internal/domain"
	"github.com/mirothedj/robocat/internal/dto"
	"github.com/mirothedj/robocat/internal/handler"
	"github.com/mirothedj/robocat/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockSessionService
type MockSessionService struct {
	CreateSessionFunc      func() (*dto.SessionResponse, error)
	GetSessionFunc         func(sessionID string) (*dto.SessionResponse, error)
	SelectPartFunc         func(sessionID string, part domain.PartType) (*dto.SessionResponse, error)
	SubmitAnswerFunc       func(sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	CloseConfigurationFunc func(sessionID string) (*dto.SessionResponse, error)
	ActivateFunc           func(sessionID string) (*dto.SessionResponse, error)
	AdvanceLessonFunc      func(sessionID string) (*dto.SessionResponse, error)
	RestartLessonFunc      func(sessionID string) (*dto.SessionResponse, error)
}

func (m *MockSessionService) CreateSession() (*dto.SessionResponse, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc()
	}
	panic("MockSessionService.CreateSessionFunc not implemented")
}
func (m *MockSessionService) GetSession(sessionID string) (*dto.SessionResponse, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(sessionID)
	}
	panic("MockSessionService.GetSessionFunc not implemented")
}
func (m *MockSessionService) SelectPart(sessionID string, part domain.PartType) (*dto.SessionResponse, error) {
	if m.SelectPartFunc != nil {
		return m.SelectPartFunc(sessionID, part)
	}
	panic("MockSessionService.SelectPartFunc not implemented")
}
func (m *MockSessionService) SubmitAnswer(sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	if m.SubmitAnswerFunc != nil {
		return m.SubmitAnswerFunc(sessionID, req)
	}
	panic("MockSessionService.SubmitAnswerFunc not implemented")
}
func (m *MockSessionService) CloseConfiguration(sessionID string) (*dto.SessionResponse, error) {
	if m.CloseConfigurationFunc != nil {
		return m.CloseConfigurationFunc(sessionID)
	}
	panic("MockSessionService.CloseConfigurationFunc not implemented")
}
func (m *MockSessionService) Activate(sessionID string) (*dto.SessionResponse, error) {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(sessionID)
	}
	panic("MockSessionService.ActivateFunc not implemented")
}
func (m *MockSessionService) AdvanceLesson(sessionID string) (*dto.SessionResponse, error) {
	if m.AdvanceLessonFunc != nil {
		return m.AdvanceLessonFunc(sessionID)
	}
	panic("MockSessionService.AdvanceLessonFunc not implemented")
}
func (m *MockSessionService) RestartLesson(sessionID string) (*dto.SessionResponse, error) {
	if m.RestartLessonFunc != nil {
		return m.RestartLessonFunc(sessionID)
	}
	panic("MockSessionService.RestartLessonFunc not implemented")
}

const validSessionID = "01HGZ8VNRYXS8QKNJV5GRWPWDQ"

func newTestApp(svc *MockSessionService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	api := app.Group("/api")
	handler.NewSessionHandler(svc).RegisterRoutes(api)
	return app
}

func TestSessionHandler_CreateSession(t *testing.T) {
	svc := &MockSessionService{
		CreateSessionFunc: func() (*dto.SessionResponse, error) {
			return &dto.SessionResponse{SessionID: validSessionID, PowerLevel: 0}, nil
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/sessions/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, validSessionID, body.SessionID)
}

func TestSessionHandler_CreateSession_Limit(t *testing.T) {
	svc := &MockSessionService{
		CreateSessionFunc: func() (*dto.SessionResponse, error) {
			return nil, domain.NewSessionLimitError(10)
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/sessions/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestSessionHandler_GetSession_NotFound(t *testing.T) {
	svc := &MockSessionService{
		GetSessionFunc: func(sessionID string) (*dto.SessionResponse, error) {
			return nil, domain.NewSessionNotFoundError(sessionID)
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sessions/"+validSessionID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeSessionNotFound), body.Code)
}

func TestSessionHandler_GetSession_BadID(t *testing.T) {
	app := newTestApp(&MockSessionService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sessions/not-a-ulid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeValidation), body.Code)
}

func TestSessionHandler_SelectPart(t *testing.T) {
	var gotPart domain.PartType
	svc := &MockSessionService{
		SelectPartFunc: func(sessionID string, part domain.PartType) (*dto.SessionResponse, error) {
			gotPart = part
			return &dto.SessionResponse{SessionID: sessionID, ActivePart: string(part)}, nil
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/sessions/"+validSessionID+"/parts/ARM_LEFT/select", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.PartArmLeft, gotPart)
}

func TestSessionHandler_SelectPart_UnknownPart(t *testing.T) {
	app := newTestApp(&MockSessionService{})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/sessions/"+validSessionID+"/parts/TAIL/select", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeInvalidPart), body.Code)
}

func TestSessionHandler_SubmitAnswer(t *testing.T) {
	svc := &MockSessionService{
		SubmitAnswerFunc: func(sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
			return &dto.SubmitAnswerResponse{
				Accepted:      true,
				InstalledPart: "HEAD",
				Session:       &dto.SessionResponse{SessionID: sessionID, PowerLevel: 20},
			}, nil
		},
	}
	app := newTestApp(svc)

	payload, _ := json.Marshal(dto.SubmitAnswerRequest{Submission: "opt_controls"})
	req := httptest.NewRequest("POST", "/api/sessions/"+validSessionID+"/submit", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.SubmitAnswerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Accepted)
	assert.Equal(t, "HEAD", body.InstalledPart)
	assert.Equal(t, 20, body.Session.PowerLevel)
}

func TestSessionHandler_SubmitAnswer_BadBody(t *testing.T) {
	app := newTestApp(&MockSessionService{})

	req := httptest.NewRequest("POST", "/api/sessions/"+validSessionID+"/submit", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSessionHandler_Activate(t *testing.T) {
	svc := &MockSessionService{
		ActivateFunc: func(sessionID string) (*dto.SessionResponse, error) {
			return &dto.SessionResponse{SessionID: sessionID, PowerLevel: 100, Complete: true}, nil
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/sessions/"+validSessionID+"/activate", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Complete)
}
