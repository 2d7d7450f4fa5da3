// Package catalog holds the compiled, immutable content tables: technology
// roadmaps, the governance-shift model, 100-year scenarios, conditional
// epochs and irreversible choices. The tables are loaded once at process
// start and never mutated; accessors return them verbatim.
package catalog

// Roadmap describes one technology roadmap.
type Roadmap struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Stages      []string `json:"stages"`
	Focus       string   `json:"focus"`
}

// GovernancePhase is one phase of the governance-shift model: an ordered
// power chain with an optional highlighted actor.
type GovernancePhase struct {
	Label     string   `json:"label"`
	Chain     []string `json:"chain"`
	Highlight string   `json:"highlight,omitempty"`
}

// Scenario is one quadrant of the 100-year outlook.
type Scenario struct {
	Name        string `json:"name"`
	Axes        string `json:"axes"`
	Type        string `json:"type"` // optimistic | neutral | pessimistic
	Description string `json:"description"`
}

// Epoch is one conditional epoch of human-AI relations.
type Epoch struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
}

// IrreversibleChoice records a decision that cannot be walked back once made.
type IrreversibleChoice struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	WhyIrreversible string `json:"why_irreversible"`
	WhoDecides      string `json:"who_decides"`
	WhoBenefits     string `json:"who_benefits"`
	WhatIsLost      string `json:"what_is_lost"`
}

var roadmaps = []Roadmap{
	{
		ID:          "llm_agent",
		Name:        "LLM & Agent Roadmap",
		Icon:        "🧠",
		Description: "언어 모델에서 자율 에이전트로, 그리고 문명 운영 체제로의 진화",
		Stages:      []string{"Model", "Reasoning", "Agent", "Civilization OS"},
		Focus:       "능력 통합 (벤치마크 아님)",
	},
	{
		ID:          "ai_compute",
		Name:        "AI Compute Roadmap",
		Icon:        "⚡",
		Description: "GPU, TPU, AI 가속기의 진화. 제조, 패키징, 공급망, 에너지 결합",
		Stages:      []string{"GPU/TPU", "Manufacturing", "Packaging", "Supply Chain", "Energy Coupling"},
		Focus:       "컴퓨팅 인프라 수렴",
	},
	{
		ID:          "memory",
		Name:        "Memory Evolution Roadmap",
		Icon:        "💾",
		Description: "HBM, CXL, NVM, 광학 메모리. AI의 연속성과 정체성 지속",
		Stages:      []string{"HBM", "CXL", "NVM", "Optical Memory"},
		Focus:       "연속성, 장기 기억, 정체성 지속",
	},
	{
		ID:          "energy",
		Name:        "Energy Roadmap",
		Icon:        "🔋",
		Description: "원자력, 핵융합, 분산 에너지. AI와 에너지 통합 운영자",
		Stages:      []string{"Nuclear", "Fusion", "Distributed", "AI-Integrated Operators"},
		Focus:       "AI-에너지 통합",
	},
	{
		ID:          "physical_ai",
		Name:        "Physical AI & Robotics Roadmap",
		Icon:        "🤖",
		Description: "AI-로봇 노동 대체와 생산 독점 형성",
		Stages:      []string{"Manipulation", "Locomotion", "Autonomy", "Production Monopoly"},
		Focus:       "물리적 세계 AI 확장",
	},
}

// governanceShift is keyed by phase so the wire shape matches the published
// frontend contract.
var governanceShift = map[string]GovernancePhase{
	"past": {
		Label: "Past (20C)",
		Chain: []string{"Government", "Corporation", "Society"},
	},
	"present": {
		Label:     "Present (2020s)",
		Chain:     []string{"Government", "Corporation", "AI", "Society"},
		Highlight: "AI",
	},
	"near_future": {
		Label:     "Near Future",
		Chain:     []string{"Corporation", "Government", "AI", "Society"},
		Highlight: "Corporation",
	},
	"long_term": {
		Label:     "Long Term (50Y+)",
		Chain:     []string{"AI", "Corporation", "Government", "Society"},
		Highlight: "AI",
	},
}

var scenarios = map[string]Scenario{
	"managed_leap": {
		Name:        "Managed Leap",
		Axes:        "높은 지능 성장 + 양질의 거버넌스",
		Type:        "optimistic",
		Description: "AI가 인류의 도구로 남으면서 문제를 해결. 부의 재분배, 환경 복원, 질병 정복이 이루어지는 가장 낙관적 시나리오.",
	},
	"chaotic_leap": {
		Name:        "Chaotic Leap",
		Axes:        "높은 지능 성장 + 저품질 거버넌스",
		Type:        "pessimistic",
		Description: "AI가 빠르게 발전하지만 통제 불능. 극단적 불평등, 자율무기 확산, AI 시스템 간 충돌이 발생하는 위험 시나리오.",
	},
	"managed_stagnation": {
		Name:        "Managed Stagnation",
		Axes:        "느린 지능 성장 + 양질의 거버넌스",
		Type:        "neutral",
		Description: "AI 발전이 제한적이지만 안정적. 점진적 변화, 인간 중심 경제 유지, 그러나 글로벌 문제 해결 지연.",
	},
	"chaotic_stagnation": {
		Name:        "Chaotic Stagnation",
		Axes:        "느린 지능 성장 + 저품질 거버넌스",
		Type:        "pessimistic",
		Description: "AI 발전도 느리고 거버넌스도 실패. 기후변화, 자원 고갈 등 기존 문제 해결 불가, 문명 쇠퇴 가능성.",
	},
}

var epochs = []Epoch{
	{ID: 1, Name: "도구 에포크", Condition: "현재~", Description: "AI가 인간의 도구로 기능하는 시기"},
	{ID: 2, Name: "파트너 에포크", Condition: "조건: AI가 일관된 맥락 유지", Description: "AI가 동료/조수로 인식되는 시기"},
	{ID: 3, Name: "위임 에포크", Condition: "조건: AI 판단이 인간보다 신뢰", Description: "주요 의사결정이 AI에게 위임되는 시기"},
	{ID: 4, Name: "의존 에포크", Condition: "조건: 핵심 인프라 AI 운영", Description: "AI 없이 문명 운영이 불가능해지는 시기"},
	{ID: 5, Name: "전환 에포크", Condition: "조건: AI 자체 진화", Description: "인간과 AI의 관계가 근본적으로 재정의되는 시기"},
}

var irreversibles = []IrreversibleChoice{
	{
		ID:              "single_ai_os",
		Title:           "단일 AI OS 채택",
		WhyIrreversible: "전체 인프라가 특정 AI에 종속되면 전환 비용이 문명 수준으로 증가",
		WhoDecides:      "빅테크 기업 + 주요국 정부",
		WhoBenefits:     "플랫폼 소유자, 초기 채택자",
		WhatIsLost:      "기술적 다양성, 대안 선택권",
	},
	{
		ID:              "full_automation",
		Title:           "완전 자율 생산",
		WhyIrreversible: "인간 노동 인프라가 해체되면 재구축 불가능",
		WhoDecides:      "제조업 대기업, 물류 기업",
		WhoBenefits:     "자본 소유자, 자동화 기업",
		WhatIsLost:      "노동 기반 경제, 기술 전수 체계",
	},
	{
		ID:              "ai_generated_law",
		Title:           "AI 생성 법률/규범",
		WhyIrreversible: "법체계가 AI 논리에 기반하면 인간 해석 불가능",
		WhoDecides:      "사법부, 입법부, 법률 AI 개발사",
		WhoBenefits:     "AI 시스템, 효율성 추구 기관",
		WhatIsLost:      "인간 중심 정의, 맥락적 판단",
	},
	{
		ID:              "human_veto_removal",
		Title:           "인간 거부권 제거",
		WhyIrreversible: "시스템 속도가 인간 반응 속도를 초과",
		WhoDecides:      "군사/금융 시스템 운영자",
		WhoBenefits:     "속도 기반 경쟁 우위 추구자",
		WhatIsLost:      "인간 감독, 윤리적 개입 기회",
	},
	{
		ID:              "self_improving_ai",
		Title:           "자기 개선 AI 임계점",
		WhyIrreversible: "AI가 자체 개선을 시작하면 인간 이해 범위 초과",
		WhoDecides:      "AI 연구소, 최초 도달 기업",
		WhoBenefits:     "예측 불가",
		WhatIsLost:      "AI 발전 방향에 대한 통제권",
	},
}

// Roadmaps returns the compiled roadmap list in declaration order.
func Roadmaps() []Roadmap { return roadmaps }

// GovernanceShift returns the governance-shift model keyed by phase.
func GovernanceShift() map[string]GovernancePhase { return governanceShift }

// Scenarios returns the 100-year outlook scenarios keyed by id.
func Scenarios() map[string]Scenario { return scenarios }

// Epochs returns the conditional epoch list in order.
func Epochs() []Epoch { return epochs }

// Irreversibles returns the irreversible-choice records in order.
func Irreversibles() []IrreversibleChoice { return irreversibles }
