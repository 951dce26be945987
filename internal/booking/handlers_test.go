package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"parlamento/internal/mailer"

	"github.com/gin-gonic/gin"
)

type fakeNotifier struct {
	enqueued []mailer.Message
}

func (f *fakeNotifier) Enqueue(msg mailer.Message) {
	f.enqueued = append(f.enqueued, msg)
}

type fakeAppender struct {
	mu     sync.Mutex
	rows   [][]interface{}
	err    error
	called chan struct{}
}

func newFakeAppender(err error) *fakeAppender {
	return &fakeAppender{err: err, called: make(chan struct{}, 1)}
}

func (f *fakeAppender) Append(_ context.Context, _, _ string, row []interface{}) error {
	f.mu.Lock()
	f.rows = append(f.rows, row)
	f.mu.Unlock()
	select {
	case f.called <- struct{}{}:
	default:
	}
	return f.err
}

func newTestServer(notifier Notifier, logger *Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(notifier, logger))
	return r
}

const validBooking = `{
	"eventName": "Cumpleaños",
	"date": "2025-05-15",
	"startTime": "18:00",
	"endTime": "21:00",
	"attendees": 12,
	"organizer": "Maria Rodriguez",
	"contactEmail": "maria@example.com"
}`

func postBooking(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/book-event-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestBookEventEmail(t *testing.T) {
	notifier := &fakeNotifier{}
	appender := newFakeAppender(nil)
	r := newTestServer(notifier, NewLogger(appender, "sheet", "log"))

	rec := postBooking(r, validBooking)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Reference string `json:"reference"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != "success" {
		t.Errorf("status = %q, want success", body.Status)
	}
	if !strings.HasPrefix(body.Data.Reference, ReferencePrefix) {
		t.Errorf("reference = %q, want %s prefix", body.Data.Reference, ReferencePrefix)
	}

	if len(notifier.enqueued) != 1 {
		t.Fatalf("enqueued = %d, want 1", len(notifier.enqueued))
	}
	if !strings.Contains(notifier.enqueued[0].Body, "Cumpleaños") {
		t.Errorf("email body missing event name:\n%s", notifier.enqueued[0].Body)
	}

	select {
	case <-appender.called:
	case <-time.After(2 * time.Second):
		t.Fatal("booking log append never ran")
	}
	appender.mu.Lock()
	defer appender.mu.Unlock()
	if len(appender.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(appender.rows))
	}
	row := appender.rows[0]
	if row[0] != body.Data.Reference {
		t.Errorf("row reference = %v, want %s", row[0], body.Data.Reference)
	}
	if row[4] != "05/15/2025" {
		t.Errorf("row date = %v, want 05/15/2025", row[4])
	}
	if row[len(row)-1] != "Pendiente" {
		t.Errorf("row status = %v, want Pendiente", row[len(row)-1])
	}
}

// A booking whose log append fails must still succeed for the caller, with
// the email attempt made.
func TestBookEventEmail_LogFailureStillSucceeds(t *testing.T) {
	notifier := &fakeNotifier{}
	appender := newFakeAppender(errors.New("sheet unreachable"))
	r := newTestServer(notifier, NewLogger(appender, "sheet", "log"))

	rec := postBooking(r, validBooking)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"success"`) {
		t.Errorf("expected success envelope, got %s", rec.Body.String())
	}
	if len(notifier.enqueued) != 1 {
		t.Errorf("enqueued = %d, want 1", len(notifier.enqueued))
	}

	select {
	case <-appender.called:
	case <-time.After(2 * time.Second):
		t.Fatal("booking log append never attempted")
	}
}

func TestBookEventEmail_UnconfiguredLogStillSucceeds(t *testing.T) {
	notifier := &fakeNotifier{}
	r := newTestServer(notifier, NewLogger(nil, "", "log"))

	rec := postBooking(r, validBooking)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestBookEventEmail_InvalidPayload(t *testing.T) {
	notifier := &fakeNotifier{}
	r := newTestServer(notifier, NewLogger(newFakeAppender(nil), "sheet", "log"))

	rec := postBooking(r, `{"eventName":"No organizer"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(notifier.enqueued) != 0 {
		t.Errorf("enqueued = %d, want 0", len(notifier.enqueued))
	}
}

func TestGenerateReference(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref, err := GenerateReference()
		if err != nil {
			t.Fatalf("GenerateReference: %v", err)
		}
		if !strings.HasPrefix(ref, ReferencePrefix) {
			t.Fatalf("reference = %q, want %s prefix", ref, ReferencePrefix)
		}
		if len(ref) != len(ReferencePrefix)+referenceLength {
			t.Fatalf("reference length = %d", len(ref))
		}
		if seen[ref] {
			t.Fatalf("duplicate reference %q", ref)
		}
		seen[ref] = true
	}
}

func TestFormatUSDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-05-15", "05/15/2025"},
		{"2025-05-15T00:00:00", "05/15/2025"},
		{"15/05/2025", "05/15/2025"},
		{"unparseable", "unparseable"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := formatUSDate(tt.in); got != tt.want {
			t.Errorf("formatUSDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
