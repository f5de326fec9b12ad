package resources

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/HendryAvila/lifeos/internal/calendar"
	"github.com/HendryAvila/lifeos/internal/discipline"
	"github.com/HendryAvila/lifeos/internal/journal"
	"github.com/HendryAvila/lifeos/internal/questions"
	"github.com/HendryAvila/lifeos/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

func newTestHandler(t *testing.T) (*Handler, *journal.SQLiteStore) {
	t.Helper()
	store, err := journal.New(journal.Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	clock := func() time.Time { return time.Date(2026, time.October, 15, 9, 0, 0, 0, time.Local) }
	return NewHandler(tracker.New(store, nil, tracker.WithClock(clock))), store
}

func readReq(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func onlyText(t *testing.T, contents []mcp.ResourceContents) mcp.TextResourceContents {
	t.Helper()
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("content is %T", contents[0])
	}
	return tc
}

func TestStatusResource_Definition(t *testing.T) {
	h, _ := newTestHandler(t)
	r := h.StatusResource()
	if r.URI != StatusURI || r.MIMEType != "application/json" {
		t.Errorf("resource = %+v", r)
	}
}

func TestHandleStatus_LockedStillReadable(t *testing.T) {
	h, store := newTestHandler(t)
	old := discipline.NewDayRecord(calendar.MustParse("2026-10-10"))
	if err := store.Upsert(old); err != nil {
		t.Fatal(err)
	}

	contents, err := h.HandleStatus(context.Background(), readReq(StatusURI))
	if err != nil {
		t.Fatal(err)
	}
	tc := onlyText(t, contents)
	if tc.URI != StatusURI || tc.MIMEType != "application/json" {
		t.Errorf("content = %+v", tc)
	}

	var st tracker.Status
	if err := json.Unmarshal([]byte(tc.Text), &st); err != nil {
		t.Fatalf("status is not JSON: %v", err)
	}
	if !st.Gates.Lockout.Locked || st.Gates.Lockout.DaysSinceLast != 5 {
		t.Errorf("Lockout = %+v", st.Gates.Lockout)
	}
	if st.Access[discipline.ViewDashboard] || !st.Access[discipline.ViewEntry] {
		t.Errorf("Access = %v", st.Access)
	}
}

func TestHandleQuestions(t *testing.T) {
	h, _ := newTestHandler(t)
	contents, err := h.HandleQuestions(context.Background(), readReq(QuestionsURI))
	if err != nil {
		t.Fatal(err)
	}
	var defs []questions.Definition
	if err := json.Unmarshal([]byte(onlyText(t, contents).Text), &defs); err != nil {
		t.Fatalf("catalog is not JSON: %v", err)
	}
	if len(defs) != questions.Default().Len() {
		t.Errorf("definitions = %d, want %d", len(defs), questions.Default().Len())
	}
}

func TestErrorResource(t *testing.T) {
	tc := onlyText(t, errorResource(StatusURI, "boom"))
	if tc.MIMEType != "text/plain" || tc.Text != "Error: boom" {
		t.Errorf("content = %+v", tc)
	}
}
