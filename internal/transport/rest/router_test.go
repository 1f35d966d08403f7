package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"selectra/internal/cache"
	"selectra/internal/repository"
	"selectra/internal/rubric"
	"selectra/internal/scoring"
	"selectra/internal/service"
)

const goodAnswer = "I have solid experience building software in a team. " +
	"For example, I led projects where we developed and managed systems together. " +
	"My skills cover design, engineering, and programming. " +
	"I successfully grew into the role through university work and real company experience."

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zap.NewNop()
	sessions := cache.NewMemorySessionStore()
	questions := repository.NewStaticQuestionRepo(rubric.DefaultQuestions())
	engine := scoring.NewEngine(rubric.Default())

	router := NewRouter(&Container{
		EvaluationService: service.NewEvaluationService(questions, sessions, engine, logger),
		ReportService:     service.NewReportService(sessions, logger),
		Logger:            logger,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatal(err)
	}
}

func TestQuestionsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/questions")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Questions []map[string]interface{} `json:"questions"`
		Total     int                      `json:"total"`
	}
	decodeBody(t, resp, &body)

	if body.Total != 5 || len(body.Questions) != 5 {
		t.Fatalf("expected 5 questions, got total=%d len=%d", body.Total, len(body.Questions))
	}
	// Keywords are rubric-internal and must never reach clients.
	for _, q := range body.Questions {
		if _, ok := q["keywords"]; ok {
			t.Fatalf("question leaked keywords: %v", q)
		}
	}
}

func TestEvaluateEmptyAnswer(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/evaluate", map[string]interface{}{
		"sessionId":  "s1",
		"questionId": 1,
		"answer":     "   ",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestEvaluateUnknownQuestion(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/evaluate", map[string]interface{}{
		"sessionId":  "s1",
		"questionId": 99,
		"answer":     "a perfectly fine answer",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestEvaluateMintsSessionID(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/evaluate", map[string]interface{}{
		"questionId": 1,
		"answer":     goodAnswer,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		SessionID string `json:"sessionId"`
	}
	decodeBody(t, resp, &body)

	if body.SessionID == "" {
		t.Fatal("expected a minted session id")
	}
}

func TestInterviewFlow(t *testing.T) {
	srv := newTestServer(t)

	for _, qid := range []int{1, 4} {
		resp := postJSON(t, srv.URL+"/api/evaluate", map[string]interface{}{
			"sessionId":  "flow",
			"questionId": qid,
			"answer":     goodAnswer,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("evaluate question %d: status = %d", qid, resp.StatusCode)
		}

		var eval struct {
			SessionID string `json:"sessionId"`
			Scores    struct {
				Clarity float64 `json:"clarity"`
			} `json:"scores"`
			RunningAverages struct {
				Overall float64 `json:"overall"`
			} `json:"runningAverages"`
			Readiness struct {
				Label string `json:"label"`
			} `json:"readiness"`
		}
		decodeBody(t, resp, &eval)

		if eval.SessionID != "flow" {
			t.Fatalf("session id = %q", eval.SessionID)
		}
		if eval.Scores.Clarity <= 0 {
			t.Fatalf("clarity not scored: %v", eval.Scores.Clarity)
		}
		if eval.RunningAverages.Overall <= 0 {
			t.Fatalf("running overall not computed: %v", eval.RunningAverages.Overall)
		}
		if eval.Readiness.Label == "" {
			t.Fatal("readiness missing")
		}
	}

	resp := postJSON(t, srv.URL+"/api/final-report", map[string]interface{}{
		"sessionId":   "flow",
		"interviewer": map[string]string{"name": "Dana", "email": "dana@example.com"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("final report: status = %d", resp.StatusCode)
	}

	var report struct {
		AppName      string  `json:"appName"`
		OverallScore float64 `json:"overallScore"`
		Interviewer  struct {
			Name string `json:"name"`
		} `json:"interviewer"`
		Responses []struct {
			QuestionID int `json:"questionId"`
		} `json:"responses"`
		InterviewInsights struct {
			ActionableNextSteps []string `json:"actionableNextSteps"`
		} `json:"interviewInsights"`
	}
	decodeBody(t, resp, &report)

	if report.AppName != "Selectra" {
		t.Fatalf("app name = %q", report.AppName)
	}
	if report.OverallScore <= 0 {
		t.Fatalf("overall score = %v", report.OverallScore)
	}
	if report.Interviewer.Name != "Dana" {
		t.Fatalf("interviewer = %q", report.Interviewer.Name)
	}
	if len(report.Responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(report.Responses))
	}
	if len(report.InterviewInsights.ActionableNextSteps) != 3 {
		t.Fatalf("expected 3 next steps, got %v", report.InterviewInsights.ActionableNextSteps)
	}
}

func TestResetClearsSession(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/evaluate", map[string]interface{}{
		"sessionId":  "s1",
		"questionId": 1,
		"answer":     goodAnswer,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("evaluate: status = %d", resp.StatusCode)
	}

	resp = postJSON(t, srv.URL+"/api/reset", map[string]string{"sessionId": "s1"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reset: status = %d", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["message"] != "Session reset successfully" {
		t.Fatalf("unexpected reset body %v", body)
	}

	resp = postJSON(t, srv.URL+"/api/final-report", map[string]string{"sessionId": "s1"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("report after reset: status = %d, want 404", resp.StatusCode)
	}
}

func TestFinalReportEmptySession(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/final-report", map[string]string{"sessionId": "nobody"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestEvaluateInvalidBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/evaluate", "application/json", bytes.NewReader([]byte("{broken")))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/evaluate", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("preflight status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin = %q", got)
	}
}
