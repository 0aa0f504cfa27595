package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"scanintake/internal/domain"
	"scanintake/internal/roster"
	"scanintake/internal/service"
	"scanintake/internal/store"
)

func setupService(t *testing.T) (*service.Service, *store.Store, string) {
	t.Helper()

	dir := t.TempDir()
	db, err := store.Open("sqlite", "", filepath.Join(dir, "scans.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	st := store.New(db)
	if err := st.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}

	rosterPath := filepath.Join(dir, "employees.json")
	return service.New(st, roster.New(rosterPath)), st, rosterPath
}

func TestIngestAndList(t *testing.T) {
	svc, _, _ := setupService(t)

	res, err := svc.Ingest(context.Background(), []byte(`{"employee":"Jane","qrData":"ABC123"}`))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if res.Status != "stored" {
		t.Fatalf("expected status stored, got %q", res.Status)
	}

	views, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}

	view := views[0]
	if view.Employee != "Jane" {
		t.Fatalf("expected employee Jane, got %q", view.Employee)
	}
	if view.QRData == nil || *view.QRData != "ABC123" {
		t.Fatalf("expected qrData ABC123, got %v", view.QRData)
	}
	if view.BarcodeData != nil {
		t.Fatalf("expected nil barcodeData, got %v", *view.BarcodeData)
	}
	if _, err := time.Parse(domain.TimeLayout, view.Timestamp); err != nil {
		t.Fatalf("timestamp %q does not match layout: %v", view.Timestamp, err)
	}
}

func TestIngestValidation(t *testing.T) {
	svc, _, _ := setupService(t)

	cases := []struct {
		name string
		body []byte
		want error
	}{
		{"empty body", nil, service.ErrEmptyBody},
		{"not json", []byte("not json at all"), service.ErrMalformedJSON},
		{"json array", []byte(`[1,2,3]`), service.ErrMalformedJSON},
		{"json null", []byte(`null`), service.ErrMalformedJSON},
		{"whitespace employee", []byte(`{"employee":"  "}`), service.ErrMissingEmployee},
		{"absent employee", []byte(`{"qrData":"X"}`), service.ErrMissingEmployee},
		{"non-string employee", []byte(`{"employee":123}`), service.ErrMissingEmployee},
	}
	for _, tc := range cases {
		if _, err := svc.Ingest(context.Background(), tc.body); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	views, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("rejected submissions must not write records, found %d", len(views))
	}
}

func TestExtraRoundTrip(t *testing.T) {
	svc, _, _ := setupService(t)

	body := []byte(`{"employee":"Jane","location":"dock-3","count":2,"nested":{"a":[1,2]}}`)
	if _, err := svc.Ingest(context.Background(), body); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	views, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}

	got, err := json.Marshal(views[0].Extra)
	if err != nil {
		t.Fatalf("marshal extra: %v", err)
	}
	want := `{"count":2,"location":"dock-3","nested":{"a":[1,2]}}`
	if string(got) != want {
		t.Fatalf("extra round trip mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestNoExtraFieldsYieldsEmptyMapping(t *testing.T) {
	svc, _, _ := setupService(t)

	if _, err := svc.Ingest(context.Background(), []byte(`{"employee":"Jane"}`)); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	views, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got, err := json.Marshal(views[0].Extra)
	if err != nil {
		t.Fatalf("marshal extra: %v", err)
	}
	if string(got) != `{}` {
		t.Fatalf("expected empty extra mapping, got %s", got)
	}
}

func TestCorruptExtraBlobSurfacesRawString(t *testing.T) {
	svc, st, _ := setupService(t)

	corrupt := `{not valid json`
	rec := &domain.ScanRecord{
		CreatedAt: "2026-08-28T10:00:00.000000Z",
		Employee:  "Jane",
		Extra:     &corrupt,
	}
	if err := st.Scans().Insert(context.Background(), rec); err != nil {
		t.Fatalf("insert: %v", err)
	}

	views, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("a corrupt blob must not fail the listing: %v", err)
	}
	raw, ok := views[0].Extra.(string)
	if !ok || raw != corrupt {
		t.Fatalf("expected raw blob passthrough, got %#v", views[0].Extra)
	}
}

func TestListFilter(t *testing.T) {
	svc, _, _ := setupService(t)

	for _, body := range []string{
		`{"employee":"Alice","qrData":"A1"}`,
		`{"employee":"Bob","qrData":"B1"}`,
		`{"employee":"Alice","qrData":"A2"}`,
	} {
		if _, err := svc.Ingest(context.Background(), []byte(body)); err != nil {
			t.Fatalf("ingest %s: %v", body, err)
		}
	}

	alice, err := svc.List(context.Background(), "Alice")
	if err != nil {
		t.Fatalf("list alice: %v", err)
	}
	if len(alice) != 2 {
		t.Fatalf("expected 2 views for Alice, got %d", len(alice))
	}
	for _, v := range alice {
		if v.Employee != "Alice" {
			t.Fatalf("filter leaked view for %s", v.Employee)
		}
	}

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 views without filter, got %d", len(all))
	}
}

func TestEmployeesRoster(t *testing.T) {
	svc, _, rosterPath := setupService(t)

	if got := svc.Employees(); len(got) != 0 {
		t.Fatalf("missing roster file should yield empty list, got %v", got)
	}

	if err := os.WriteFile(rosterPath, []byte(`["Alice","Bob"]`), 0o644); err != nil {
		t.Fatalf("write roster: %v", err)
	}

	got := svc.Employees()
	if len(got) != 2 || got[0] != "Alice" || got[1] != "Bob" {
		t.Fatalf("unexpected roster: %v", got)
	}
}
