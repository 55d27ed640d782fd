package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/mockview/internal/api/handlers"
	"github.com/yoockh/mockview/internal/api/middleware"
	"github.com/yoockh/mockview/internal/api/routes"
	"github.com/yoockh/mockview/internal/live"
	"github.com/yoockh/mockview/internal/logger"
	"github.com/yoockh/mockview/internal/providers/llm"
	"github.com/yoockh/mockview/internal/repositories/memory"
	"github.com/yoockh/mockview/internal/services"
)

type stubChat struct{}

func (stubChat) Send(ctx context.Context, message string) (string, error) {
	return "흥미롭군요. 조금 더 자세히 말씀해주시겠어요?", nil
}

type stubProvider struct{}

func (stubProvider) OpenChat(ctx context.Context) (llm.Chat, error) { return stubChat{}, nil }
func (stubProvider) Close() error                                   { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.New()
	hub := live.NewHub()
	interviewSvc := services.NewInterviewService(stubProvider{}, memory.NewSessionRepository(), hub, log)
	profileSvc := services.NewProfileService(memory.NewProfileRepository(time.Hour))

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Auth:      handlers.NewAuthHandler(middleware.SigningSecret()),
		Interview: handlers.NewInterviewHandler(interviewSvc, profileSvc),
		WS:        handlers.NewWSHandler(interviewSvc, hub, log),
		System:    handlers.NewSystemHandler(interviewSvc, hub, true),
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestInterviewFlowOverREST(t *testing.T) {
	r := newTestRouter(t)

	w, out := doJSON(t, r, http.MethodPost, "/api/interview/profile",
		`{"profile":{"type":"university","institution":"서울대학교 공과대학","fields":["컴퓨터과학"],"keywords":["머신러닝"],"additionalStyle":"","difficulty":"high"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	profileID, _ := out["profile_id"].(string)
	require.NotEmpty(t, profileID)

	w, out = doJSON(t, r, http.MethodPost, "/api/interview/start-personalized",
		`{"profile_id":"`+profileID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	sessionID, _ := out["session_id"].(string)
	require.NotEmpty(t, sessionID)
	assert.Contains(t, out["question"], "서울대학교 공과대학")

	w, out = doJSON(t, r, http.MethodPost, "/api/interview/respond",
		`{"session_id":"`+sessionID+`","response":"안녕하세요, 김학생입니다."}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, out["question"])

	w, out = doJSON(t, r, http.MethodPost, "/api/interview/end?session_id="+sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), out["total_exchanges"])
	assert.NotEmpty(t, out["basic_feedback"])

	// the session is gone
	w, _ = doJSON(t, r, http.MethodPost, "/api/interview/respond",
		`{"session_id":"`+sessionID+`","response":"추가 답변"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartLegacyShape(t *testing.T) {
	r := newTestRouter(t)

	w, out := doJSON(t, r, http.MethodPost, "/api/interview/start",
		`{"interview_type":"gifted_center","user_profile":{"interests":["로봇"]}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, out["session_id"])
	assert.Contains(t, out["question"], "영재교육원")
}

func TestStartPersonalizedUnknownProfile(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/interview/start-personalized",
		`{"profile_id":"missing"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEndUnknownSession(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/interview/end?session_id=missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRespondValidation(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/interview/respond", `{"session_id":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginIssuesToken(t *testing.T) {
	r := newTestRouter(t)

	w, out := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"username":"tester","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, out["access_token"])
	assert.Equal(t, "bearer", out["token_type"])

	// the issued token is accepted by the protected group
	req := httptest.NewRequest(http.MethodGet, "/api/interview/types", nil)
	req.Header.Set("Authorization", "Bearer "+out["access_token"].(string))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSystemStatus(t *testing.T) {
	r := newTestRouter(t)

	w, out := doJSON(t, r, http.MethodGet, "/api/system/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), out["active_sessions"])
	assert.Equal(t, true, out["gemini_api_configured"])
}
