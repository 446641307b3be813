package services

import "testing"

func TestSurveyQuestionsShape(t *testing.T) {
	qs := SurveyQuestions()
	sets := map[Category][]Question{
		CategoryHealth:   qs.Health,
		CategoryLiving:   qs.Living,
		CategoryEconomic: qs.Economic,
		CategorySocial:   qs.Social,
	}
	if len(sets) != len(CategoryOrder) {
		t.Fatalf("expected %d categories, got %d", len(CategoryOrder), len(sets))
	}
	seen := map[int]bool{}
	for cat, list := range sets {
		if len(list) != 3 {
			t.Fatalf("category %s has %d questions, want 3", cat, len(list))
		}
		for _, q := range list {
			if seen[q.ID] {
				t.Fatalf("duplicate question id %d", q.ID)
			}
			seen[q.ID] = true
			if q.Text == "" || len(q.Options) == 0 {
				t.Fatalf("question %d missing text or options", q.ID)
			}
		}
	}
}

func TestQuestionInCategory(t *testing.T) {
	if _, ok := QuestionInCategory(CategoryHealth, 1); !ok {
		t.Fatalf("question 1 should belong to health")
	}
	if _, ok := QuestionInCategory(CategoryHealth, 4); ok {
		t.Fatalf("question 4 belongs to living, not health")
	}
	if _, ok := QuestionInCategory(CategorySocial, 99); ok {
		t.Fatalf("unknown question id accepted")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range CategoryOrder {
		if got, ok := ParseCategory(string(c)); !ok || got != c {
			t.Fatalf("ParseCategory(%q) failed", c)
		}
	}
	if _, ok := ParseCategory("finance"); ok {
		t.Fatalf("ParseCategory accepted unknown category")
	}
}

func TestAnswerScore(t *testing.T) {
	cases := []struct {
		answer string
		want   int
	}{
		{"매우 좋음", 5},
		{"좋음", 4},
		{"보통", 3},
		{"나쁨", 2},
		{"매우 나쁨", 1},
		{"없음", 5},
		{"3개 이상", 2},
		{"항상 필요", 1},
		{"여유로움", 5},
		{"매우 활발", 5},
		{"모르겠음", 3}, // unmapped option defaults to neutral
		{"", 3},
	}
	for _, c := range cases {
		if got := AnswerScore(c.answer); got != c.want {
			t.Fatalf("AnswerScore(%q)=%d, want %d", c.answer, got, c.want)
		}
	}
}

func TestDefaultWelfareCatalog(t *testing.T) {
	catalog := DefaultWelfareCatalog()
	if len(catalog) != 5 {
		t.Fatalf("expected 5 seed programs, got %d", len(catalog))
	}
	for _, ws := range catalog {
		if ws.Name == "" || ws.Category == "" {
			t.Fatalf("seed entry missing name or category: %+v", ws)
		}
		if ws.TargetAgeMin > ws.TargetAgeMax {
			t.Fatalf("seed entry %s has inverted age range", ws.Name)
		}
	}
}
