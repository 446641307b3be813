//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL() string {
	if v := os.Getenv("WELFARE_TEST_BASE_URL"); strings.TrimSpace(v) != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://127.0.0.1:18080"
}

func TestSurveyJourneyIntegration(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	base := baseURL()

	var registerResp struct {
		Success  bool   `json:"success"`
		UserID   string `json:"user_id"`
		UserKey  string `json:"user_key"`
		AgeGroup string `json:"age_group"`
	}
	doPost(t, client, base+"/api/users", map[string]any{
		"name":          fmt.Sprintf("통합테스트 %d", time.Now().UnixNano()),
		"birth_date":    "1950-01-01",
		"address":       "경상남도 남해군 남해읍",
		"district_code": "4884",
	}, &registerResp)
	if !registerResp.Success || len(registerResp.UserKey) != 32 {
		t.Fatalf("unexpected register response: %+v", registerResp)
	}

	var startResp struct {
		Success   bool                        `json:"success"`
		SessionID string                      `json:"session_id"`
		Questions map[string][]map[string]any `json:"questions"`
	}
	doPost(t, client, base+"/api/survey/start", map[string]string{
		"user_key": registerResp.UserKey,
	}, &startResp)
	if startResp.SessionID == "" || len(startResp.Questions) != 4 {
		t.Fatalf("unexpected start response: %+v", startResp)
	}

	answers := map[string][]map[string]any{
		"health":   {{"question_id": 1, "answer": "나쁨"}, {"question_id": 2, "answer": "2개"}, {"question_id": 3, "answer": "약간 필요"}},
		"living":   {{"question_id": 4, "answer": "독거"}, {"question_id": 5, "answer": "보통"}, {"question_id": 6, "answer": "주 1-2회"}},
		"economic": {{"question_id": 7, "answer": "약간 부족"}, {"question_id": 8, "answer": "연금"}, {"question_id": 9, "answer": "상당한 부담"}},
		"social":   {{"question_id": 10, "answer": "소극적"}, {"question_id": 11, "answer": "보통"}, {"question_id": 12, "answer": "관심"}},
	}
	var answerResp struct {
		Success       bool   `json:"success"`
		SessionStatus string `json:"session_status"`
	}
	for _, cat := range []string{"health", "living", "economic", "social"} {
		doPost(t, client, base+"/api/survey/answer", map[string]any{
			"session_id": startResp.SessionID,
			"category":   cat,
			"answers":    answers[cat],
		}, &answerResp)
		if !answerResp.Success {
			t.Fatalf("answer submit failed for %s", cat)
		}
	}
	if answerResp.SessionStatus != "completed" {
		t.Fatalf("session not completed after all categories: %q", answerResp.SessionStatus)
	}

	var recResp struct {
		Success         bool `json:"success"`
		Recommendations []struct {
			Name   string  `json:"name"`
			Score  float64 `json:"score"`
			Reason string  `json:"reason"`
		} `json:"recommendations"`
		UserInfo struct {
			AgeGroup string `json:"age_group"`
			Age      int    `json:"age"`
		} `json:"user_info"`
	}
	doPost(t, client, base+"/api/recommendations", map[string]string{
		"session_id": startResp.SessionID,
	}, &recResp)
	if len(recResp.Recommendations) == 0 || len(recResp.Recommendations) > 5 {
		t.Fatalf("expected 1..5 recommendations, got %d", len(recResp.Recommendations))
	}
	for _, rec := range recResp.Recommendations {
		if rec.Name == "" || rec.Reason == "" {
			t.Fatalf("recommendation missing name or reason: %+v", rec)
		}
		if rec.Score < 0.7 || rec.Score >= 1.0 {
			t.Fatalf("score %f outside expected range", rec.Score)
		}
	}
	if recResp.UserInfo.Age < 65 {
		t.Fatalf("unexpected user age: %d", recResp.UserInfo.Age)
	}

	resultsURL := base + "/api/results/" + registerResp.UserKey
	resp, err := client.Get(resultsURL)
	if err != nil {
		t.Fatalf("results lookup failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("results status %d body %s", resp.StatusCode, string(body))
	}
	var resultsResp struct {
		Success   bool `json:"success"`
		HasSurvey bool `json:"has_survey"`
		UserInfo  struct {
			Name string `json:"name"`
		} `json:"user_info"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&resultsResp); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if !resultsResp.HasSurvey || resultsResp.UserInfo.Name == "" {
		t.Fatalf("unexpected results response: %+v", resultsResp)
	}
}

func doPost(t *testing.T, client *http.Client, url string, body any, out any) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http post %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}
