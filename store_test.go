package folio

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/eringen/folio/contact"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test_folio.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func delivery(id string, outcome contact.DeliveryOutcome, at time.Time) contact.Delivery {
	return contact.Delivery{
		ID:        id,
		Fields:    contact.Fields{Name: "Jane", Email: "jane@example.com", Message: "Hello " + id},
		Outcome:   outcome,
		CreatedAt: at,
	}
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
	n, err := s.CountDeliveries("")
	if err != nil || n != 0 {
		t.Fatalf("CountDeliveries = %d, %v; want empty log", n, err)
	}
}

func TestRecordAndListDeliveries(t *testing.T) {
	s := setupTestStore(t)
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	first := delivery("d1", contact.DeliverySent, base)
	second := delivery("d2", contact.DeliveryFailed, base.Add(time.Minute))
	second.Detail = "The Public Key is invalid"
	for _, d := range []contact.Delivery{first, second} {
		if err := s.RecordDelivery(d); err != nil {
			t.Fatalf("RecordDelivery(%s): %v", d.ID, err)
		}
	}

	got, err := s.ListDeliveries(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("ListDeliveries returned %d rows, want 2", len(got))
	}
	if got[0].ID != "d2" || got[1].ID != "d1" {
		t.Errorf("order = %s, %s; want newest first", got[0].ID, got[1].ID)
	}
	if got[0].Outcome != contact.DeliveryFailed || got[0].Detail != "The Public Key is invalid" {
		t.Errorf("failed delivery = %+v", got[0])
	}
	if got[1].Fields != first.Fields {
		t.Errorf("Fields = %+v, want %+v", got[1].Fields, first.Fields)
	}
	if !got[1].CreatedAt.Equal(base) {
		t.Errorf("CreatedAt = %v, want %v", got[1].CreatedAt, base)
	}

	limited, err := s.ListDeliveries(1)
	if err != nil || len(limited) != 1 || limited[0].ID != "d2" {
		t.Fatalf("ListDeliveries(1) = %v, %v", limited, err)
	}
}

func TestCountDeliveries(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now()
	for i, outcome := range []contact.DeliveryOutcome{contact.DeliverySent, contact.DeliverySent, contact.DeliveryFailed} {
		if err := s.RecordDelivery(delivery(string(rune('a'+i)), outcome, now)); err != nil {
			t.Fatal(err)
		}
	}
	tests := []struct {
		outcome contact.DeliveryOutcome
		want    int
	}{
		{"", 3},
		{contact.DeliverySent, 2},
		{contact.DeliveryFailed, 1},
	}
	for _, tt := range tests {
		got, err := s.CountDeliveries(tt.outcome)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("CountDeliveries(%q) = %d, want %d", tt.outcome, got, tt.want)
		}
	}
}

func TestDeleteDelivery(t *testing.T) {
	s := setupTestStore(t)
	if err := s.RecordDelivery(delivery("gone", contact.DeliverySent, time.Now())); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteDelivery("gone"); err != nil {
		t.Fatalf("DeleteDelivery: %v", err)
	}
	if err := s.DeleteDelivery("gone"); err != ErrNotFound {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
	if n, _ := s.CountDeliveries(""); n != 0 {
		t.Fatalf("%d deliveries left", n)
	}
}

func TestRecordDeliveryDuplicateID(t *testing.T) {
	s := setupTestStore(t)
	d := delivery("dup", contact.DeliverySent, time.Now())
	if err := s.RecordDelivery(d); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordDelivery(d); err == nil {
		t.Fatal("duplicate id should be rejected")
	}
}
