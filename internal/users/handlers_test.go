package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(newTestRepo(t)))
	return r
}

func postUser(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/store-user", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestStoreUserHandler(t *testing.T) {
	r := newTestServer(t)

	rec := postUser(r, `{"fullName":"Maria Rodriguez","email":"maria@example.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Status string `json:"status"`
		Data   User   `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != "success" || body.Data.Email != "maria@example.com" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestStoreUserHandler_Duplicate(t *testing.T) {
	r := newTestServer(t)

	payload := `{"fullName":"Maria Rodriguez","email":"maria@example.com"}`
	if rec := postUser(r, payload); rec.Code != http.StatusCreated {
		t.Fatalf("first status = %d, want 201", rec.Code)
	}
	rec := postUser(r, payload)
	if rec.Code != http.StatusConflict {
		t.Fatalf("second status = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"error"`) {
		t.Errorf("expected error envelope, got %s", rec.Body.String())
	}
}

func TestStoreUserHandler_InvalidPayload(t *testing.T) {
	r := newTestServer(t)

	tests := []string{
		`{}`,
		`{"fullName":"No Email"}`,
		`{"fullName":"Bad Email","email":"not-an-email"}`,
		`not json`,
	}
	for _, body := range tests {
		if rec := postUser(r, body); rec.Code != http.StatusBadRequest {
			t.Errorf("payload %q: status = %d, want 400", body, rec.Code)
		}
	}
}
