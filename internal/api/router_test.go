package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

const testSecret = "test-secret"

// fakeAuthService implements ports.AuthService with canned behaviour.
type fakeAuthService struct{}

func (fakeAuthService) Login(_ context.Context, username, password string) (string, *domain.User, error) {
	if username == "admin" && password == "admin123" {
		return "token", &domain.User{Username: "admin", Role: domain.RoleAdmin}, nil
	}
	return "", nil, domain.ErrInvalidCredentials
}

func (fakeAuthService) Logout(context.Context, ports.Actor) error { return nil }

func (fakeAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "taken" {
		return nil, domain.ErrUserExists
	}
	return &domain.User{Username: input.Username, Password: input.Password, Role: input.Role}, nil
}

func (fakeAuthService) DeleteUser(context.Context, ports.Actor, string) error { return nil }

func (fakeAuthService) ListUsers(context.Context, ports.Actor) ([]*domain.User, error) {
	return nil, nil
}

// fakeTaskService records whether a mutation reached it.
type fakeTaskService struct {
	added bool
}

func (s *fakeTaskService) AddTask(_ context.Context, input ports.AddTaskInput) (*domain.Task, error) {
	s.added = true
	return &domain.Task{ID: "t1", Name: input.Name, Priority: input.Priority, Status: domain.TaskToBeDone}, nil
}

func (s *fakeTaskService) ListTasks(context.Context) ([]*domain.Task, error) {
	return []*domain.Task{{ID: "t1", Name: "one"}}, nil
}

func (s *fakeTaskService) SearchTasks(context.Context, string) ([]*domain.Task, error) {
	return nil, nil
}

func (s *fakeTaskService) UpdateTaskStatus(context.Context, ports.UpdateTaskStatusInput) (*domain.Task, error) {
	return nil, domain.ErrTaskNotFound
}

func (s *fakeTaskService) DeleteTask(context.Context, ports.Actor, string) error {
	return domain.ErrTaskNotFound
}

func (s *fakeTaskService) DeleteAllTasks(context.Context, ports.Actor) error { return nil }

type fakeLeaveService struct{}

func (fakeLeaveService) Apply(context.Context, ports.ApplyLeaveInput) (*domain.LeaveApplication, error) {
	return &domain.LeaveApplication{ID: "l1", Status: domain.LeavePending}, nil
}

func (fakeLeaveService) Decide(context.Context, ports.DecideLeaveInput) (*domain.LeaveApplication, error) {
	return nil, domain.ErrLeaveNotFound
}

func (fakeLeaveService) StatusFor(context.Context, string) ([]*domain.LeaveApplication, error) {
	return nil, nil
}

func (fakeLeaveService) ListAll(context.Context, ports.Actor) ([]*domain.LeaveApplication, error) {
	return nil, nil
}

type fakeAttendanceService struct{}

func (fakeAttendanceService) CheckIn(context.Context, ports.Actor) (*domain.AttendanceRecord, error) {
	return nil, domain.ErrAlreadyCheckedIn
}

func (fakeAttendanceService) CheckOut(context.Context, ports.Actor) (*domain.AttendanceRecord, error) {
	return nil, domain.ErrNotCheckedIn
}

func (fakeAttendanceService) Filter(context.Context, ports.Actor, ports.AttendanceFilter) ([]*domain.AttendanceRecord, error) {
	return nil, nil
}

type fakeAuditService struct{}

func (fakeAuditService) Record(context.Context, string, string) error { return nil }

func (fakeAuditService) Filter(context.Context, ports.Actor, ports.AuditFilter) ([]*domain.AuditEvent, error) {
	return []*domain.AuditEvent{{
		Username:  "admin",
		Action:    domain.ActionLogin,
		Timestamp: time.Date(2026, 7, 1, 9, 30, 0, 0, time.Local),
	}}, nil
}

func (fakeAuditService) Today(context.Context, ports.Actor) ([]*domain.AuditEvent, error) {
	return nil, nil
}

func (fakeAuditService) Clear(context.Context, ports.Actor) error { return nil }

type fakeDocumentService struct{}

func (fakeDocumentService) Upload(context.Context, ports.Actor, string, string, []byte) (*ports.DocumentInfo, error) {
	return nil, domain.ErrDocumentLimit
}

func (fakeDocumentService) List(context.Context, ports.Actor, string) ([]ports.DocumentInfo, error) {
	return nil, nil
}

func (fakeDocumentService) Delete(context.Context, ports.Actor, string, string) error {
	return nil
}

func newTestRouter(t *testing.T, tasks ports.TaskService) http.Handler {
	t.Helper()
	return NewRouter(Dependencies{
		Auth:            fakeAuthService{},
		Tasks:           tasks,
		Leaves:          fakeLeaveService{},
		Attendance:      fakeAttendanceService{},
		Audit:           fakeAuditService{},
		Documents:       fakeDocumentService{},
		JWTSecret:       testSecret,
		AuditTimeFormat: "02/01/2006 15:04",
		DataDir:         t.TempDir(),
		Logger:          zerolog.Nop(),
	})
}

func signToken(t *testing.T, username, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func doRequest(handler http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_LoginMapsInvalidCredentials(t *testing.T) {
	e := newTestRouter(t, &fakeTaskService{})

	rec := doRequest(e, http.MethodPost, "/auth/login", "", `{"username":"admin","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] == "" {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
}

func TestRouter_LoginSuccess(t *testing.T) {
	e := newTestRouter(t, &fakeTaskService{})

	rec := doRequest(e, http.MethodPost, "/auth/login", "", `{"username":"admin","password":"admin123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token"`) {
		t.Fatalf("expected a token in the response: %s", rec.Body.String())
	}
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	e := newTestRouter(t, &fakeTaskService{})

	rec := doRequest(e, http.MethodGet, "/v1/tasks", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRouter_RBACBlocksEmployeeTaskCreation(t *testing.T) {
	tasks := &fakeTaskService{}
	e := newTestRouter(t, tasks)
	token := signToken(t, "bob", domain.RoleEmployee)

	body := `{"task":"x","priority":"High","employee_name":"bob","employee_role":"Staff"}`
	rec := doRequest(e, http.MethodPost, "/v1/tasks", token, body)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
	if tasks.added {
		t.Fatalf("service must not be reached when RBAC blocks")
	}
}

func TestRouter_AdminCreatesTask(t *testing.T) {
	tasks := &fakeTaskService{}
	e := newTestRouter(t, tasks)
	token := signToken(t, "root", domain.RoleAdmin)

	body := `{"task":"report","priority":"High","employee_name":"bob","employee_role":"Staff"}`
	rec := doRequest(e, http.MethodPost, "/v1/tasks", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !tasks.added {
		t.Fatalf("service not reached")
	}
}

func TestRouter_ValidationErrorsAre400(t *testing.T) {
	e := newTestRouter(t, &fakeTaskService{})
	token := signToken(t, "root", domain.RoleAdmin)

	// Unknown priority fails request validation before the service runs.
	body := `{"task":"report","priority":"Urgent","employee_name":"bob","employee_role":"Staff"}`
	rec := doRequest(e, http.MethodPost, "/v1/tasks", token, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_DomainNotFoundIs404(t *testing.T) {
	e := newTestRouter(t, &fakeTaskService{})
	token := signToken(t, "root", domain.RoleAdmin)

	rec := doRequest(e, http.MethodDelete, "/v1/tasks/ghost", token, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_AuditUsesConfiguredTimeFormat(t *testing.T) {
	e := newTestRouter(t, &fakeTaskService{})
	token := signToken(t, "root", domain.RoleAdmin)

	rec := doRequest(e, http.MethodGet, "/v1/audit", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "01/07/2026 09:30") {
		t.Fatalf("timestamp not rendered with configured format: %s", rec.Body.String())
	}
}

func TestRouter_ConflictIs409(t *testing.T) {
	e := newTestRouter(t, &fakeTaskService{})
	token := signToken(t, "bob", domain.RoleEmployee)

	rec := doRequest(e, http.MethodPost, "/v1/attendance/check-in", token, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_HealthIsPublic(t *testing.T) {
	e := newTestRouter(t, &fakeTaskService{})

	rec := doRequest(e, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodGet, "/health/ready", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 readiness, got %d: %s", rec.Code, rec.Body.String())
	}
}
