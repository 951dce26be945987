package common

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
)

func TestRootHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, NewHandler(nil, false, false))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != StatusSuccess || body.Message != "Backend is running!" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHealthHandler(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	defer db.Close()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, NewHandler(db, true, false))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Status string         `json:"status"`
		Data   HealthResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != StatusSuccess {
		t.Errorf("status = %q", body.Status)
	}
	if body.Data.Dependencies["users_store"] != "ok" {
		t.Errorf("users_store = %q, want ok", body.Data.Dependencies["users_store"])
	}
	if body.Data.Dependencies["sheets"] != "configured" {
		t.Errorf("sheets = %q, want configured", body.Data.Dependencies["sheets"])
	}
	if body.Data.Dependencies["mail"] != "unconfigured" {
		t.Errorf("mail = %q, want unconfigured", body.Data.Dependencies["mail"])
	}
}
