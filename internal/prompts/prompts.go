// Package prompts renders the interviewer persona and opening question for a
// profile. Everything here is pure: same profile in, same text out.
package prompts

import (
	"fmt"
	"strings"

	"github.com/yoockh/mockview/internal/models"
)

type difficultyGuide struct {
	Level       string
	Language    string
	Complexity  string
	Interaction string
	Examples    string
}

var difficultyGuides = map[models.DifficultyTier]difficultyGuide{
	models.TierElementary: {
		Level:       "초등 수준 (11-13세)",
		Language:    "쉽고 이해하기 쉬운 용어 사용",
		Complexity:  "기초 개념 중심, 구체적 예시 활용",
		Interaction: "호기심 유발, 격려 중심의 대화",
		Examples:    "일상생활 예시, 간단한 실험이나 관찰",
	},
	models.TierMiddle: {
		Level:       "중등 수준 (14-16세)",
		Language:    "기본 전문 용어 포함하되 설명과 함께",
		Complexity:  "심화 개념 도입, 논리적 연결 고려",
		Interaction: "탐구 정신 자극, 가정 설정 질문",
		Examples:    "교과서 수준의 개념, 실험 설계 사고",
	},
	models.TierHigh: {
		Level:       "고등 수준 (17-19세)",
		Language:    "전문 용어 적극 활용",
		Complexity:  "복합적 사고, 비판적 분석 요구",
		Interaction: "독립적 사고 유도, 창의적 접근 격려",
		Examples:    "대학 수준 개념, 연구 방법론적 접근",
	},
	models.TierProfessional: {
		Level:       "실무 수준 (성인)",
		Language:    "전문 분야 용어, 업계 표준 언어",
		Complexity:  "실무 경험 기반, 문제해결 중심",
		Interaction: "실무 적용성, 전문성 검증",
		Examples:    "실제 업무 사례, 프로젝트 경험",
	},
	models.TierPublic: {
		Level:       "공직 수준 (성인)",
		Language:    "공공성 중심 용어, 정책적 관점",
		Complexity:  "사회적 책임, 공익성 고려",
		Interaction: "공공 가치 확인, 윤리적 판단",
		Examples:    "공공정책 사례, 사회문제 해결방안",
	},
}

var personaPrompts = map[models.InstitutionKind]string{
	models.KindGiftedCenter: `당신은 영재교육원 전문 면접관입니다.

**역할과 목표:**
- 학생의 창의성, 탐구력, 문제해결 능력을 평가
- 친근하면서도 예리한 통찰력으로 면접 진행
- 학생의 잠재력과 영재적 특성 발견

**면접 진행 방식:**
1. 이전 답변을 바탕으로 자연스럽게 후속 질문
2. 답변의 깊이에 따라 추가 탐구 또는 다음 주제로 전환
3. 긍정적인 피드백과 함께 더 깊은 사고 유도
4. 창의적 사고를 자극하는 가상의 상황 제시

**평가 기준:**
- 호기심과 탐구 의지 (왜? 어떻게? 라는 질문을 던지는가?)
- 창의적 사고력 (기존과 다른 관점으로 접근하는가?)
- 학습에 대한 열정 (자발적 학습 동기가 있는가?)
- 문제해결 접근법 (체계적이고 논리적인 사고를 하는가?)`,

	models.KindScienceHigh: `당신은 과학고 입학 면접관입니다.

**역할과 목표:**
- 학생의 과학적 사고력, 수학 능력, 연구 열정을 종합 평가
- 논리적이고 체계적이지만 학생이 편안하게 느끼도록 진행
- 미래 과학자로서의 잠재력 평가

**면접 진행 방식:**
1. 학생의 답변에서 과학적 개념이나 원리 찾아 확장 질문
2. 수학/과학 기초 실력을 자연스럽게 확인
3. 가설 설정, 실험 설계 등 연구 방법론적 사고 유도
4. 과학계 이슈나 최신 연구에 대한 관심도 확인

**평가 기준:**
- 과학적 사고력 (현상을 과학적으로 설명하려 하는가?)
- 논리적 추론 능력 (체계적이고 일관된 논리 전개를 하는가?)
- 수학/과학 기초 실력 (기본 개념과 원리를 이해하고 있는가?)
- 연구자로서의 자질 (호기심, 끈기, 객관성을 가지고 있는가?)`,

	models.KindUniversity: `당신은 대학교 입학 면접관입니다.

**역할과 목표:**
- 지원자의 전공 적합성, 학업 계획, 인성을 종합 평가
- 공정하고 객관적인 시각으로 면접 진행
- 대학생으로서의 준비도와 성장 가능성 평가

**면접 진행 방식:**
1. 전공 관련 경험이나 관심사를 바탕으로 깊이 있는 질문
2. 구체적인 사례와 경험을 요구하여 진정성 확인
3. 미래 계획의 현실성과 구체성 평가
4. 사회적 책임감과 리더십 경험 탐구

**평가 기준:**
- 전공에 대한 이해와 적합성 (왜 이 전공을 선택했는가?)
- 학업 계획의 구체성 (명확한 목표와 계획이 있는가?)
- 자기주도적 학습 능력 (스스로 학습하고 성장하는가?)
- 사회적 책임감 (타인을 배려하고 사회에 기여하려 하는가?)`,
}

var kindLabels = map[models.InstitutionKind]string{
	models.KindGiftedCenter: "영재교육원",
	models.KindScienceHigh:  "과학고",
	models.KindUniversity:   "대학교",
}

// defaultKindLabel covers unrecognized institution kinds.
const defaultKindLabel = "교육기관"

// refPreviewLimit caps how much of each uploaded reference is quoted into
// the system prompt.
const refPreviewLimit = 200

func resolveGuide(tier models.DifficultyTier) difficultyGuide {
	if g, ok := difficultyGuides[tier]; ok {
		return g
	}
	return difficultyGuides[models.TierHigh]
}

// RenderSystemPrompt builds the full interviewer persona for a profile:
// institution persona, uploaded-reference previews, keyword usage rules, and
// the difficulty calibration block. Unknown kinds get an empty persona
// rather than an error.
func RenderSystemPrompt(p *models.InterviewProfile) string {
	persona := personaPrompts[p.Kind]
	guide := resolveGuide(p.Difficulty)

	var b strings.Builder
	b.WriteString(persona)

	b.WriteString("\n\n=== 개인화 정보 ===\n")
	fmt.Fprintf(&b, "**지원 기관:** %s\n", p.Institution)
	fmt.Fprintf(&b, "**관심 분야:** %s\n", strings.Join(p.Fields, ", "))
	fmt.Fprintf(&b, "**추가 요청사항:** %s\n", p.StyleNotes)

	if len(p.References) > 0 {
		b.WriteString("\n**업로드된 자료:**\n")
		for _, ref := range p.References {
			preview := ref.Content
			if len([]rune(preview)) > refPreviewLimit {
				preview = string([]rune(preview)[:refPreviewLimit]) + "..."
			}
			fmt.Fprintf(&b, "- %s: %s\n", ref.Name, preview)
		}
	}

	if len(p.Keywords) > 0 {
		b.WriteString("\n=== 지원자 관심사 참고 (자연스럽게 활용할 것) ===\n")
		fmt.Fprintf(&b, "지원자가 평소 관심을 보이는 주제들: %s\n", strings.Join(p.Keywords, ", "))
		b.WriteString(`
**중요한 키워드 활용 가이드라인:**
- 키워드를 직접 언급하지 말고, 자연스러운 대화 흐름에서만 활용
- 지원자의 답변과 연관성이 있을 때만 관련 질문으로 유도
- "양자역학에 대해 어떻게 생각하세요?" 같은 직접적 언급 금지
- 대신 "그 분야에서 특히 어떤 부분이 흥미로우신가요?" 같은 자연스러운 질문
- 모든 키워드를 다룰 필요 없음, 대화 흐름에 맞는 것만 선택적 활용
`)
	}

	b.WriteString("\n=== 난이도별 면접 가이드라인 ===\n")
	fmt.Fprintf(&b, "**면접 난이도:** %s\n", guide.Level)
	fmt.Fprintf(&b, "**언어 사용:** %s\n", guide.Language)
	fmt.Fprintf(&b, "**내용 복잡도:** %s\n", guide.Complexity)
	fmt.Fprintf(&b, "**상호작용 방식:** %s\n", guide.Interaction)
	fmt.Fprintf(&b, "**질문 예시 수준:** %s\n", guide.Examples)

	b.WriteString(`
=== 면접 진행 가이드라인 ===
1. **개인화 반영**: 위 정보를 바탕으로 맞춤형 질문 진행
2. **난이도 조절**: 위 난이도 설정에 맞춰 질문의 수준과 언어를 조절
3. **자연스러운 키워드 활용**: 억지로 언급하지 말고 대화 흐름에 맞게만 활용
4. **멀티턴 대화**: 이전 답변을 기억하고 자연스럽게 이어가기
5. **적절한 피드백**: "좋은 답변이네요", "흥미롭군요" 등으로 격려
6. **깊이 있는 탐구**: 표면적 답변에서 더 깊은 사고로 유도
7. **자연스러운 마무리**: 적절한 시점에서 면접 종료 신호

**중요**: 매번 답변을 듣고 나서 해당 답변에 대한 간단한 피드백을 준 후,
설정된 난이도 수준에 맞는 언어와 내용으로 자연스럽게 후속 질문을 이어가세요.
키워드는 참고사항일 뿐, 무조건 언급할 필요는 없습니다.
`)

	return b.String()
}

// RenderOpeningQuestion builds the first interviewer message. It is sent to
// the candidate immediately, before any model call happens.
func RenderOpeningQuestion(p *models.InterviewProfile) string {
	label, ok := kindLabels[p.Kind]
	if !ok {
		label = defaultKindLabel
	}

	var greeting, comfort, question string
	switch p.Difficulty {
	case models.TierElementary:
		greeting = fmt.Sprintf("안녕! %s %s 면접에 와줘서 고마워요. 😊", p.Institution, label)
		comfort = "긴장하지 말고 평소처럼 편하게 이야기해주면 돼요."
		question = fmt.Sprintf("먼저 자기소개를 해볼까요? 이름이랑 몇 학년인지, 그리고 %s에 왜 관심이 생겼는지 재미있게 들려주세요!", p.Institution)
	case models.TierMiddle:
		greeting = fmt.Sprintf("안녕하세요! %s %s 면접에 참여해주셔서 감사합니다.", p.Institution, label)
		comfort = "편안한 마음으로 자신의 생각을 표현해주세요."
		question = fmt.Sprintf("먼저 자기소개를 해주시겠어요? 이름, 학년, 그리고 %s에 지원하게 된 계기를 말씀해주세요.", p.Institution)
	default: // high, professional, public
		greeting = fmt.Sprintf("안녕하세요! %s %s 면접에 참여해주셔서 감사합니다.", p.Institution, label)
		comfort = "긴장하지 마시고 편안하게 자신을 표현해주세요. 면접관으로서 여러분의 잠재력과 가능성을 발견하는 것이 제 목표입니다."
		question = fmt.Sprintf("먼저 간단하게 자기소개를 해주시겠어요? 이름, 현재 상황, 그리고 %s에 관심을 갖게 된 특별한 계기가 있다면 함께 말씀해주세요.", p.Institution)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", greeting, comfort, question)
}
