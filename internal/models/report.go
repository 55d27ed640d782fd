package models

// InterviewReport is the consolidated result returned when an interview
// ends. BasicFeedback is computed locally and is always present; AIFeedback
// degrades to a fixed notice when the model is unreachable.
type InterviewReport struct {
	SessionID       string             `json:"session_id"`
	Kind            InstitutionKind    `json:"interview_type"`
	Institution     string             `json:"institution"`
	DurationMinutes int                `json:"duration_minutes"`
	TotalExchanges  int                `json:"total_exchanges"`
	ConversationLog []ConversationTurn `json:"conversation_log"`
	AIFeedback      string             `json:"ai_feedback"`
	BasicFeedback   string             `json:"basic_feedback"`
}
