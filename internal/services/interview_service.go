package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/mockview/internal/live"
	"github.com/yoockh/mockview/internal/models"
	"github.com/yoockh/mockview/internal/prompts"
	"github.com/yoockh/mockview/internal/providers/llm"
	"github.com/yoockh/mockview/internal/repositories/memory"
	"github.com/yoockh/mockview/internal/utils"
)

// fallbackQuestions keeps the interview moving when the model is
// unreachable. Selected by candidate-turn number, clamped to the last entry.
var fallbackQuestions = []string{
	"좀 더 구체적인 예시를 들어주실 수 있을까요?",
	"그 경험에서 가장 중요하게 배운 점은 무엇인가요?",
	"앞으로의 계획이나 목표에 대해 말씀해주세요.",
	"마지막으로 하고 싶은 말씀이 있다면 자유롭게 해주세요.",
}

const (
	firstTurnInstruction = "위 답변을 바탕으로 자연스러운 후속 질문이나 피드백을 해주세요. 개인화된 정보를 고려하여 면접을 이어가주세요."
	laterTurnInstruction = "위 답변을 바탕으로 자연스러운 후속 질문이나 피드백을 해주세요. 이전 대화 맥락을 고려하여 면접을 이어가주세요."

	analysisFailedNotice = "AI 피드백 생성 중 오류가 발생했습니다."
	analysisNoChatNotice = "면접 세션에 문제가 있어 AI 분석을 생성할 수 없습니다."

	feedbackActive   = "면접에 적극적으로 참여해주셨습니다. 답변이 구체적이고 성의있게 작성되었습니다."
	feedbackModerate = "면접에 참여해주셔서 감사합니다. 더 구체적인 예시와 경험을 공유해주시면 더 좋을 것 같습니다."
	feedbackSparse   = "더 구체적이고 상세한 답변을 통해 자신을 어필해보세요."
)

type InterviewService interface {
	// Start opens a model chat and creates the session. The opening
	// question is returned immediately; the persona prompt is deferred to
	// the first processed turn.
	Start(ctx context.Context, sessionID, userID string, profile *models.InterviewProfile) (openingQuestion string, err error)
	// ProcessTurn appends the candidate's answer, asks the model for a
	// follow-up, and returns it. Model failures degrade to a fixed
	// fallback question and are never surfaced to the caller.
	ProcessTurn(ctx context.Context, sessionID, answer string) (reply string, err error)
	// End produces the final report and removes the session. The session
	// id is invalid for all calls afterwards.
	End(ctx context.Context, sessionID string) (*models.InterviewReport, error)
	ActiveSessions() int
}

type interviewService struct {
	provider llm.Provider
	sessions memory.SessionRepository
	hub      *live.Hub
	log      *logrus.Logger
}

func NewInterviewService(provider llm.Provider, sessions memory.SessionRepository, hub *live.Hub, log *logrus.Logger) InterviewService {
	return &interviewService{provider: provider, sessions: sessions, hub: hub, log: log}
}

func (s *interviewService) Start(ctx context.Context, sessionID, userID string, profile *models.InterviewProfile) (string, error) {
	const op = "InterviewService.Start"

	if sessionID == "" || userID == "" || profile == nil {
		return "", utils.E(utils.CodeInvalidArgument, op, "session_id, user_id, and profile are required", nil)
	}
	if s.provider == nil {
		return "", utils.E(utils.CodeUnavailable, op, "llm provider is not configured", nil)
	}

	// Empty prior history. The persona prompt rides along with the first
	// candidate answer instead, so starting a session costs no model call.
	chat, err := s.provider.OpenChat(ctx)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to open model chat", err)
	}

	opening := prompts.RenderOpeningQuestion(profile)
	now := time.Now().UTC()

	sess := &models.InterviewSession{
		SessionID: sessionID,
		UserID:    userID,
		Kind:      profile.Kind,
		Stage:     models.StageOpening,
		Profile:   profile.Clone(),
		Chat:      chat,
		CreatedAt: now,
		History: []models.ConversationTurn{
			{Role: models.RoleInterviewer, Content: opening, Timestamp: now},
		},
	}

	if err := s.sessions.Create(sess); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to store session", err)
	}

	s.log.WithFields(logrus.Fields{
		"session_id":  sessionID,
		"institution": profile.Institution,
		"type":        profile.Kind,
	}).Info("interview started")

	return opening, nil
}

func (s *interviewService) ProcessTurn(ctx context.Context, sessionID, answer string) (string, error) {
	const op = "InterviewService.ProcessTurn"

	if sessionID == "" || answer == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "session_id and answer are required", nil)
	}

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", utils.E(utils.CodeNotFound, op, "session not found", err)
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	// the session may have been ended while we waited for the lock
	if _, err := s.sessions.Get(sessionID); err != nil {
		return "", utils.E(utils.CodeNotFound, op, "session not found", err)
	}

	sess.History = append(sess.History, models.ConversationTurn{
		Role:      models.RoleCandidate,
		Content:   answer,
		Timestamp: time.Now().UTC(),
	})

	var message string
	if sess.Stage == models.StageOpening {
		// First candidate answer: inject the full persona exactly once.
		system := prompts.RenderSystemPrompt(sess.Profile)
		message = fmt.Sprintf("[시스템] %s\n\n[지원자 첫 번째 답변] %s\n\n%s", system, answer, firstTurnInstruction)
		sess.Stage = models.StageInProgress
	} else {
		message = fmt.Sprintf("[지원자 답변] %s\n\n%s", answer, laterTurnInstruction)
	}

	reply, err := sess.Chat.Send(ctx, message)
	if err != nil {
		s.log.WithError(err).WithField("session_id", sessionID).Warn("model call failed, using fallback question")
		reply = fallbackQuestion(sess.CandidateTurns())
	}
	reply = strings.TrimSpace(reply)

	now := time.Now().UTC()
	sess.History = append(sess.History, models.ConversationTurn{
		Role:      models.RoleInterviewer,
		Content:   reply,
		Timestamp: now,
	})

	s.hub.Publish(sessionID, live.Event{
		Type:      live.EventQuestion,
		Content:   reply,
		Timestamp: now.Format(time.RFC3339),
	})

	return reply, nil
}

func (s *interviewService) End(ctx context.Context, sessionID string) (*models.InterviewReport, error) {
	const op = "InterviewService.End"

	if sessionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "session not found", err)
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	if _, err := s.sessions.Get(sessionID); err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "session not found", err)
	}

	if sess.Stage == models.StageOpening {
		// Ended before any candidate turn: the persona prompt was never
		// sent, so the analysis sees only the opening question.
		s.log.WithField("session_id", sessionID).Warn("interview ended without candidate turns")
	}

	aiFeedback := analysisNoChatNotice
	if sess.Chat != nil {
		out, err := sess.Chat.Send(ctx, analysisPrompt(sess.History))
		if err != nil {
			s.log.WithError(err).WithField("session_id", sessionID).Warn("analysis generation failed")
			aiFeedback = analysisFailedNotice
		} else {
			aiFeedback = strings.TrimSpace(out)
		}
	}

	institution := "미상"
	if sess.Profile != nil && sess.Profile.Institution != "" {
		institution = sess.Profile.Institution
	}

	exchanges := sess.CandidateTurns()
	minutes := int(time.Since(sess.CreatedAt).Minutes())
	if minutes < 0 {
		minutes = 0
	}

	report := &models.InterviewReport{
		SessionID:       sessionID,
		Kind:            sess.Kind,
		Institution:     institution,
		DurationMinutes: minutes,
		TotalExchanges:  exchanges,
		ConversationLog: sess.History,
		AIFeedback:      aiFeedback,
		BasicFeedback:   basicFeedback(exchanges),
	}

	// removal happens exactly once, analysis outcome notwithstanding
	s.sessions.Delete(sessionID)

	s.hub.Publish(sessionID, live.Event{Type: live.EventEnded, Analysis: report})

	s.log.WithFields(logrus.Fields{
		"session_id":       sessionID,
		"total_exchanges":  exchanges,
		"duration_minutes": minutes,
	}).Info("interview ended")

	return report, nil
}

func (s *interviewService) ActiveSessions() int { return s.sessions.Count() }

func fallbackQuestion(candidateTurns int) string {
	idx := candidateTurns - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(fallbackQuestions) {
		idx = len(fallbackQuestions) - 1
	}
	return fallbackQuestions[idx]
}

func basicFeedback(candidateTurns int) string {
	switch {
	case candidateTurns >= 5:
		return feedbackActive
	case candidateTurns >= 3:
		return feedbackModerate
	default:
		return feedbackSparse
	}
}

func formatTranscript(history []models.ConversationTurn) string {
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		label := "지원자"
		if turn.Role == models.RoleInterviewer {
			label = "면접관"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, turn.Content))
	}
	return strings.Join(lines, "\n\n")
}

func analysisPrompt(history []models.ConversationTurn) string {
	return fmt.Sprintf(`다음은 방금 진행된 면접의 전체 대화입니다:

%s

이 면접을 바탕으로 다음 형식으로 분석해주세요:

**면접 분석 결과**
1. **답변 품질**: 전반적인 답변의 구체성과 성의
2. **전공 적합성**: 지원 분야에 대한 이해도와 열정
3. **성장 가능성**: 잠재력과 발전 가능성
4. **개선 제안**: 향후 면접이나 준비 시 고려사항
5. **총평**: 한줄 요약

객관적이고 건설적인 피드백을 제공해주세요.`, formatTranscript(history))
}
