package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yoockh/mockview/internal/models"
	"github.com/yoockh/mockview/internal/services"
	"github.com/yoockh/mockview/internal/utils"
)

type InterviewHandler struct {
	interviews services.InterviewService
	profiles   services.ProfileService
}

func NewInterviewHandler(interviews services.InterviewService, profiles services.ProfileService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews, profiles: profiles}
}

type SaveProfileRequest struct {
	Profile models.InterviewProfile `json:"profile" binding:"required"`
}

type SaveProfileResponse struct {
	ProfileID string `json:"profile_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

func (h *InterviewHandler) SaveProfile(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.SaveProfile", "invalid request body", err))
		return
	}

	id, err := h.profiles.Save(c.Request.Context(), &req.Profile)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SaveProfileResponse{
		ProfileID: id,
		Status:    "success",
		Message:   "프로필이 성공적으로 저장되었습니다.",
	})
}

type StartPersonalizedRequest struct {
	ProfileID string                   `json:"profile_id"`
	Profile   *models.InterviewProfile `json:"profile"`
}

type StartInterviewResponse struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

func (h *InterviewHandler) StartPersonalized(c *gin.Context) {
	const op = "InterviewHandler.StartPersonalized"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req StartPersonalizedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}

	profile := req.Profile
	if profile == nil {
		if req.ProfileID == "" {
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "profile or profile_id is required", nil))
			return
		}
		p, err := h.profiles.Get(c.Request.Context(), req.ProfileID)
		if err != nil {
			writeError(c, err)
			return
		}
		profile = p
	}

	sessionID := uuid.NewString()
	question, err := h.interviews.Start(c.Request.Context(), sessionID, userID, profile)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, StartInterviewResponse{SessionID: sessionID, Question: question})
}

type StartLegacyRequest struct {
	InterviewType models.InstitutionKind `json:"interview_type" binding:"required"`
	UserProfile   struct {
		Interests []string `json:"interests"`
	} `json:"user_profile"`
}

// StartLegacy keeps the pre-personalization request shape working by
// wrapping it in a minimal profile.
func (h *InterviewHandler) StartLegacy(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req StartLegacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.StartLegacy", "invalid request body", err))
		return
	}

	fields := req.UserProfile.Interests
	if len(fields) == 0 {
		fields = []string{"일반"}
	}

	profile := &models.InterviewProfile{
		Kind:        req.InterviewType,
		Institution: "면접 기관",
		Fields:      fields,
		StyleNotes:  "표준 면접 진행",
	}

	sessionID := uuid.NewString()
	question, err := h.interviews.Start(c.Request.Context(), sessionID, userID, profile)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, StartInterviewResponse{SessionID: sessionID, Question: question})
}

type RespondRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Response  string `json:"response" binding:"required"`
}

type RespondResponse struct {
	Question string `json:"question"`
}

func (h *InterviewHandler) Respond(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Respond", "invalid request body", err))
		return
	}

	reply, err := h.interviews.ProcessTurn(c.Request.Context(), req.SessionID, req.Response)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, RespondResponse{Question: reply})
}

func (h *InterviewHandler) End(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	sessionID := c.Query("session_id")
	if sessionID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.End", "session_id is required", nil))
		return
	}

	report, err := h.interviews.End(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

type interviewTypeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *InterviewHandler) Types(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"interview_types": []interviewTypeInfo{
			{
				ID:          string(models.KindGiftedCenter),
				Name:        "영재교육원 면접",
				Description: "창의성과 탐구력 중심의 영재교육원 입학 면접",
			},
			{
				ID:          string(models.KindScienceHigh),
				Name:        "과학고 면접",
				Description: "과학적 사고력과 수학 능력 평가 면접",
			},
			{
				ID:          string(models.KindUniversity),
				Name:        "대학 입시 면접",
				Description: "전공 적합성과 학업 계획 중심의 대학 면접",
			},
		},
	})
}
