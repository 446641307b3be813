package services

// The survey is a fixed questionnaire: four categories, three questions each.
// The catalog is static configuration, not stored data; clients receive it
// verbatim when a session starts.

type Category string

const (
	CategoryHealth   Category = "health"
	CategoryLiving   Category = "living"
	CategoryEconomic Category = "economic"
	CategorySocial   Category = "social"
)

// CategoryOrder is the wizard order the client walks through.
var CategoryOrder = []Category{CategoryHealth, CategoryLiving, CategoryEconomic, CategorySocial}

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryHealth, CategoryLiving, CategoryEconomic, CategorySocial:
		return Category(s), true
	}
	return "", false
}

type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// QuestionSet mirrors the JSON shape clients expect: one array per category.
type QuestionSet struct {
	Health   []Question `json:"health"`
	Living   []Question `json:"living"`
	Economic []Question `json:"economic"`
	Social   []Question `json:"social"`
}

var surveyQuestions = map[Category][]Question{
	CategoryHealth: {
		{ID: 1, Text: "현재 건강상태는 어떠신가요?", Type: "radio", Options: []string{"매우 좋음", "좋음", "보통", "나쁨", "매우 나쁨"}},
		{ID: 2, Text: "만성질환을 앓고 계신가요?", Type: "radio", Options: []string{"없음", "1개", "2개", "3개 이상"}},
		{ID: 3, Text: "일상생활에 도움이 필요하신가요?", Type: "radio", Options: []string{"전혀 필요없음", "약간 필요", "많이 필요", "항상 필요"}},
	},
	CategoryLiving: {
		{ID: 4, Text: "현재 거주 형태는?", Type: "radio", Options: []string{"독거", "부부", "자녀와 함께", "기타"}},
		{ID: 5, Text: "주거환경에 만족하십니까?", Type: "radio", Options: []string{"매우 만족", "만족", "보통", "불만족", "매우 불만족"}},
		{ID: 6, Text: "외출 빈도는 어떻게 되시나요?", Type: "radio", Options: []string{"매일", "주 3-4회", "주 1-2회", "월 1-2회", "거의 없음"}},
	},
	CategoryEconomic: {
		{ID: 7, Text: "현재 경제상태는?", Type: "radio", Options: []string{"여유로움", "보통", "약간 부족", "매우 부족"}},
		{ID: 8, Text: "주요 소득원은?", Type: "radio", Options: []string{"근로소득", "연금", "자녀지원", "기타"}},
		{ID: 9, Text: "의료비 부담은?", Type: "radio", Options: []string{"부담없음", "약간 부담", "상당한 부담", "매우 부담"}},
	},
	CategorySocial: {
		{ID: 10, Text: "사회활동 참여 정도는?", Type: "radio", Options: []string{"매우 활발", "활발", "보통", "소극적", "거의 없음"}},
		{ID: 11, Text: "가족/친구와의 관계는?", Type: "radio", Options: []string{"매우 좋음", "좋음", "보통", "좋지 않음", "매우 좋지 않음"}},
		{ID: 12, Text: "지역사회 활동에 관심이 있으신가요?", Type: "radio", Options: []string{"매우 관심", "관심", "보통", "관심없음", "전혀 없음"}},
	},
}

// SurveyQuestions returns the full fixed catalog.
func SurveyQuestions() QuestionSet {
	return QuestionSet{
		Health:   questionsFor(CategoryHealth),
		Living:   questionsFor(CategoryLiving),
		Economic: questionsFor(CategoryEconomic),
		Social:   questionsFor(CategorySocial),
	}
}

func questionsFor(c Category) []Question {
	return append([]Question(nil), surveyQuestions[c]...)
}

// QuestionInCategory resolves a question id within one category's fixed set.
func QuestionInCategory(c Category, id int) (Question, bool) {
	for _, q := range surveyQuestions[c] {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// answerScores maps known option strings to an ordinal 1..5.
// Options absent from the table score neutral (3).
var answerScores = map[string]int{
	"매우 좋음": 5, "좋음": 4, "보통": 3, "나쁨": 2, "매우 나쁨": 1,
	"없음": 5, "1개": 4, "2개": 3, "3개 이상": 2,
	"전혀 필요없음": 5, "약간 필요": 4, "많이 필요": 2, "항상 필요": 1,
	"여유로움": 5, "약간 부족": 2, "매우 부족": 1,
	"매우 활발": 5, "활발": 4, "소극적": 2, "거의 없음": 1,
}

const neutralScore = 3

// AnswerScore maps a selected option string to its ordinal score.
func AnswerScore(answer string) int {
	if v, ok := answerScores[answer]; ok {
		return v
	}
	return neutralScore
}

// DefaultWelfareCatalog is the initial set of welfare programs. The admin API
// can extend or edit the catalog afterwards.
func DefaultWelfareCatalog() []*WelfareService {
	return []*WelfareService{
		{
			Name: "기초연금", Category: "경제지원",
			Description: "65세 이상 어르신의 안정적인 소득 보장", Benefits: "월 최대 342,510원 지급",
			Requirements: "65세 이상, 소득 하위 70%", ContactInfo: "국민연금공단 1355",
			IsNational: true, TargetAgeMin: 65, TargetAgeMax: 150,
		},
		{
			Name: "노인맞춤돌봄서비스", Category: "돌봄지원",
			Description: "남해군 특화 맞춤형 돌봄 서비스", Benefits: "월 40시간 무료 돌봄 서비스",
			Requirements: "65세 이상 독거노인 또는 고위험군", ContactInfo: "남해군청 055-860-3000",
			IsNational: false, TargetAgeMin: 65, TargetAgeMax: 150,
		},
		{
			Name: "노인일자리 사업", Category: "일자리",
			Description: "어르신 맞춤형 일자리 제공", Benefits: "월 최대 594,000원",
			Requirements: "65세 이상, 건강상태 양호", ContactInfo: "남해군시니어클럽 055-863-8808",
			IsNational: true, TargetAgeMin: 65, TargetAgeMax: 150,
		},
		{
			Name: "의료비 지원", Category: "의료지원",
			Description: "노인성 질환 치료비 지원", Benefits: "연간 최대 120만원",
			Requirements: "65세 이상, 기초생활수급자", ContactInfo: "남해군보건소 055-860-8000",
			IsNational: false, TargetAgeMin: 65, TargetAgeMax: 150,
		},
		{
			Name: "치매검진 서비스", Category: "의료지원",
			Description: "치매 조기 발견 및 관리", Benefits: "무료 치매검진, 예방교육",
			Requirements: "60세 이상", ContactInfo: "남해군치매안심센터 055-860-8750",
			IsNational: true, TargetAgeMin: 60, TargetAgeMax: 150,
		},
	}
}
