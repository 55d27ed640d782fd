package prompts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/mockview/internal/models"
	"github.com/yoockh/mockview/internal/prompts"
)

func baseProfile() *models.InterviewProfile {
	return &models.InterviewProfile{
		Kind:        models.KindUniversity,
		Institution: "서울대학교 공과대학",
		Fields:      []string{"컴퓨터과학", "인공지능"},
		Keywords:    []string{"머신러닝", "딥러닝"},
		StyleNotes:  "논리적이고 체계적인 질문을 선호합니다.",
		Difficulty:  models.TierHigh,
	}
}

func TestRenderSystemPromptContainsPersonaAndDifficulty(t *testing.T) {
	cases := []struct {
		kind    models.InstitutionKind
		persona string
	}{
		{models.KindGiftedCenter, "영재교육원 전문 면접관"},
		{models.KindScienceHigh, "과학고 입학 면접관"},
		{models.KindUniversity, "대학교 입학 면접관"},
	}

	for _, tc := range cases {
		p := baseProfile()
		p.Kind = tc.kind

		out := prompts.RenderSystemPrompt(p)
		assert.Contains(t, out, tc.persona)
		assert.Contains(t, out, "고등 수준 (17-19세)")
		assert.Contains(t, out, p.Institution)
	}
}

func TestRenderSystemPromptUnknownKind(t *testing.T) {
	p := baseProfile()
	p.Kind = models.InstitutionKind("trade_school")

	out := prompts.RenderSystemPrompt(p)
	require.NotEmpty(t, out)
	// persona is empty but the difficulty calibration block still renders
	assert.Contains(t, out, "난이도별 면접 가이드라인")
}

func TestRenderSystemPromptDefaultsToHighTier(t *testing.T) {
	p := baseProfile()
	p.Difficulty = ""

	out := prompts.RenderSystemPrompt(p)
	assert.Contains(t, out, "고등 수준 (17-19세)")
}

func TestRenderSystemPromptTruncatesReferences(t *testing.T) {
	long := strings.Repeat("가", 250)
	p := baseProfile()
	p.References = []models.UploadedReference{
		{Name: "자기소개서.txt", MediaType: "text/plain", Content: long, SizeBytes: int64(len(long))},
		{Name: "short.txt", MediaType: "text/plain", Content: "짧은 내용", SizeBytes: 12},
	}

	out := prompts.RenderSystemPrompt(p)
	assert.Contains(t, out, strings.Repeat("가", 200)+"...")
	assert.NotContains(t, out, strings.Repeat("가", 201))
	assert.Contains(t, out, "short.txt: 짧은 내용")
}

func TestRenderSystemPromptKeywordGuidance(t *testing.T) {
	p := baseProfile()
	out := prompts.RenderSystemPrompt(p)
	assert.Contains(t, out, "머신러닝, 딥러닝")
	assert.Contains(t, out, "키워드를 직접 언급하지 말고")

	p.Keywords = nil
	out = prompts.RenderSystemPrompt(p)
	assert.NotContains(t, out, "키워드 활용 가이드라인")
}

func TestRenderingIsDeterministic(t *testing.T) {
	p := baseProfile()
	assert.Equal(t, prompts.RenderSystemPrompt(p), prompts.RenderSystemPrompt(p))
	assert.Equal(t, prompts.RenderOpeningQuestion(p), prompts.RenderOpeningQuestion(p))
}

func TestRenderOpeningQuestionTiers(t *testing.T) {
	p := baseProfile()

	p.Difficulty = models.TierElementary
	out := prompts.RenderOpeningQuestion(p)
	assert.Contains(t, out, "안녕!")
	assert.Contains(t, out, p.Institution)

	p.Difficulty = models.TierMiddle
	out = prompts.RenderOpeningQuestion(p)
	assert.Contains(t, out, "이름, 학년")

	// professional shares the default wording with high and public
	p.Difficulty = models.TierProfessional
	out = prompts.RenderOpeningQuestion(p)
	assert.Contains(t, out, "잠재력과 가능성을 발견하는 것이 제 목표입니다")
	assert.Contains(t, out, "대학교")
}

func TestRenderOpeningQuestionUnknownKindLabel(t *testing.T) {
	p := baseProfile()
	p.Kind = models.KindOther

	out := prompts.RenderOpeningQuestion(p)
	assert.Contains(t, out, "교육기관")
}
