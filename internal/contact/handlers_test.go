package contact

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parlamento/internal/mailer"

	"github.com/gin-gonic/gin"
)

type fakeNotifier struct {
	enqueued []mailer.Message
}

func (f *fakeNotifier) Enqueue(msg mailer.Message) {
	f.enqueued = append(f.enqueued, msg)
}

func newTestServer(notifier Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(notifier))
	return r
}

func postContact(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestContactHandler(t *testing.T) {
	notifier := &fakeNotifier{}
	r := newTestServer(notifier)

	rec := postContact(r, `{"name":"Maria","email":"maria@example.com","subject":"Reserva","message":"Hola"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"success"`) {
		t.Errorf("expected success envelope, got %s", rec.Body.String())
	}
	if len(notifier.enqueued) != 1 {
		t.Fatalf("enqueued = %d, want 1", len(notifier.enqueued))
	}
	if !strings.Contains(notifier.enqueued[0].Body, "Nombre: Maria") {
		t.Errorf("rendered body missing sender name:\n%s", notifier.enqueued[0].Body)
	}
}

func TestContactHandler_InvalidForm(t *testing.T) {
	notifier := &fakeNotifier{}
	r := newTestServer(notifier)

	rec := postContact(r, `{"name":"Maria"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(notifier.enqueued) != 0 {
		t.Errorf("enqueued = %d, want 0", len(notifier.enqueued))
	}
}
