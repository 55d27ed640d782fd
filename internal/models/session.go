package models

import (
	"sync"
	"time"

	"github.com/yoockh/mockview/internal/providers/llm"
)

type TurnRole string

const (
	RoleInterviewer TurnRole = "assistant"
	RoleCandidate   TurnRole = "user"
)

type SessionStage string

const (
	StageOpening    SessionStage = "opening"
	StageInProgress SessionStage = "in_progress"
)

// ConversationTurn is one message in the interview. Turns are append-only;
// the slice order is the conversation order.
type ConversationTurn struct {
	Role      TurnRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// InterviewSession is the live state of one interview. It exclusively owns
// its history and chat handle; only the interview service mutates it.
type InterviewSession struct {
	SessionID string             `json:"session_id"`
	UserID    string             `json:"user_id"`
	Kind      InstitutionKind    `json:"interview_type"`
	Stage     SessionStage       `json:"stage"`
	History   []ConversationTurn `json:"conversation_history"`
	Profile   *InterviewProfile  `json:"-"`
	Chat      llm.Chat           `json:"-"`
	CreatedAt time.Time          `json:"created_at"`

	// Mu serializes turn processing and termination on this session.
	// Distinct sessions never contend.
	Mu sync.Mutex `json:"-"`
}

// CandidateTurns counts candidate messages in the history.
func (s *InterviewSession) CandidateTurns() int {
	n := 0
	for _, t := range s.History {
		if t.Role == RoleCandidate {
			n++
		}
	}
	return n
}
