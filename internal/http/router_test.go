package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	httpserver "github.com/banglanlp/dialect-eval-backend/internal/http"
	httpH "github.com/banglanlp/dialect-eval-backend/internal/http/handlers"
	httpMW "github.com/banglanlp/dialect-eval-backend/internal/http/middleware"
	"github.com/banglanlp/dialect-eval-backend/internal/data/repos"
	"github.com/banglanlp/dialect-eval-backend/internal/data/repos/testutil"
	"github.com/banglanlp/dialect-eval-backend/internal/domain"
	"github.com/banglanlp/dialect-eval-backend/internal/services"
	"gorm.io/gorm"
)

type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
	auth   services.StaffAuthService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)

	pairRepo := repos.NewDialectPairRepo(db, log)
	itemRepo := repos.NewPlausibilityItemRepo(db, log)
	dialectEvals := repos.NewDialectEvaluationRepo(db, log)
	plausEvals := repos.NewPlausibilityEvaluationRepo(db, log)
	submissionRepo := repos.NewSubmissionRepo(db, log)
	staffRepo := repos.NewStaffUserRepo(db, log)

	sampling := services.NewSamplingService(db, log, pairRepo, itemRepo)
	submission := services.NewSubmissionService(db, log, pairRepo, itemRepo, dialectEvals, plausEvals, submissionRepo)
	export := services.NewExportService(db, log, pairRepo, itemRepo, dialectEvals, plausEvals)
	auth := services.NewStaffAuthService(db, log, staffRepo, "test-secret", time.Hour)

	engine := httpserver.NewRouter(httpserver.RouterConfig{
		Log:              log,
		SurveyHandler:    httpH.NewSurveyHandler(log, sampling, submission),
		ExportHandler:    httpH.NewExportHandler(log, export),
		StaffAuthHandler: httpH.NewStaffAuthHandler(log, auth, 3600),
		HealthHandler:    httpH.NewHealthHandler(),
		StaffMiddleware:  httpMW.NewStaffMiddleware(log, auth),
	})
	return &testServer{engine: engine, db: db, auth: auth}
}

func (s *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) staffToken(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	if _, err := s.auth.CreateStaff(ctx, "staff@example.com", "hunter22"); err != nil {
		t.Fatalf("create staff: %v", err)
	}
	token, err := s.auth.Login(ctx, "staff@example.com", "hunter22")
	if err != nil {
		t.Fatalf("staff login: %v", err)
	}
	return token
}

func TestHealthcheck(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHomePageListsDialects(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, dialect := range domain.KnownDialects() {
		if !bytes.Contains([]byte(body), []byte(dialect)) {
			t.Fatalf("home page missing dialect %q", dialect)
		}
	}
}

func TestGetDialectDataRequiresDialect(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/api/get-dialect-data/", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected an error message")
	}
}

func TestGetDialectDataReturnsSample(t *testing.T) {
	s := newTestServer(t)
	testutil.SeedDialectPairs(t, context.Background(), s.db, domain.DialectSylheti, 15)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/api/get-dialect-data/?dialect=sylheti", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if len(body.Data) != services.SampleSize {
		t.Fatalf("expected %d pairs, got %d", services.SampleSize, len(body.Data))
	}
	if _, ok := body.Data[0]["ai_generated_dialect_text"]; !ok {
		t.Fatal("pair missing ai_generated_dialect_text")
	}
}

func TestGetDialectDataInsufficient(t *testing.T) {
	s := newTestServer(t)
	testutil.SeedDialectPairs(t, context.Background(), s.db, domain.DialectRangpur, 5)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/api/get-dialect-data/?dialect=rangpur", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitEvaluationRoundTrip(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	pair := testutil.SeedDialectPair(t, ctx, s.db, domain.DialectSylheti, "original", "generated")

	payload := map[string]any{
		"evaluator_email": "rater@example.com",
		"dialect_evaluations": []map[string]any{{
			"dialect_data_id":    pair.ID.String(),
			"accuracy_rating":    4,
			"naturalness_rating": 5,
		}},
	}
	raw, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/submit-evaluation/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := s.do(t, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if !body.Success || body.SessionID == "" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Message != "Evaluation submitted successfully!" {
		t.Fatalf("unexpected message %q", body.Message)
	}

	// Same email again: whole batch rejected.
	req = httptest.NewRequest(http.MethodPost, "/api/submit-evaluation/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w = s.do(t, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate email, got %d", w.Code)
	}
	var dup struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &dup); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if dup.Success || dup.Error == "" {
		t.Fatalf("unexpected duplicate body: %+v", dup)
	}
}

func TestExportRedirectsNonStaff(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/export/?type=dialect_data", nil))
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
}

func TestExportServesAttachmentForStaff(t *testing.T) {
	s := newTestServer(t)
	token := s.staffToken(t)
	testutil.SeedDialectPairs(t, context.Background(), s.db, domain.DialectBarishal, 2)

	req := httptest.NewRequest(http.MethodGet, "/export/?type=dialect_data", nil)
	req.AddCookie(&http.Cookie{Name: httpMW.StaffCookieName, Value: token})
	w := s.do(t, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="dialect_data.json"` {
		t.Fatalf("unexpected Content-Disposition %q", cd)
	}

	var rows []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 exported rows, got %d", len(rows))
	}
}

func TestExportPageForStaff(t *testing.T) {
	s := newTestServer(t)
	token := s.staffToken(t)

	req := httptest.NewRequest(http.MethodGet, "/export/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := s.do(t, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("all_evaluation_data")) &&
		!bytes.Contains(w.Body.Bytes(), []byte("type=all")) {
		t.Fatal("export page missing download links")
	}
}

func TestStaffLoginSetsCookie(t *testing.T) {
	s := newTestServer(t)
	if _, err := s.auth.CreateStaff(context.Background(), "staff@example.com", "hunter22"); err != nil {
		t.Fatalf("create staff: %v", err)
	}

	raw := []byte(`{"email":"staff@example.com","password":"hunter22"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/staff/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := s.do(t, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	found := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == httpMW.StaffCookieName && cookie.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s cookie to be set", httpMW.StaffCookieName)
	}
}

func TestStaffLoginBadCredentials(t *testing.T) {
	s := newTestServer(t)

	raw := []byte(`{"email":"staff@example.com","password":"nope"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/staff/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := s.do(t, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
