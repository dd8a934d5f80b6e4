package matching

import (
	"errors"
	"testing"
	"time"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/procurement"
)

var testReferenceDate = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

func itemDueIn(days int) *procurement.Item {
	return &procurement.Item{
		ID:           "item-1",
		Name:         "Test Item",
		DeliveryDate: testReferenceDate.AddDate(0, 0, days).Format("2006-01-02"),
	}
}

func TestClassifyWindowBoundary(t *testing.T) {
	policy := DefaultPolicy()

	urgency, err := Classify(itemDueIn(45), testReferenceDate, policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !urgency.IsUrgent {
		t.Fatalf("expected item due in 45 days to be urgent")
	}
	if urgency.DaysUntilDelivery != 45 {
		t.Fatalf("expected 45 days until delivery, got %d", urgency.DaysUntilDelivery)
	}

	urgency, err = Classify(itemDueIn(46), testReferenceDate, policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if urgency.IsUrgent {
		t.Fatalf("expected item due in 46 days to not be urgent")
	}
}

func TestClassifyPastDueIsUrgent(t *testing.T) {
	urgency, err := Classify(itemDueIn(-3), testReferenceDate, DefaultPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !urgency.IsUrgent {
		t.Fatalf("expected past-due item to be urgent")
	}
	if urgency.DaysUntilDelivery != -3 {
		t.Fatalf("expected -3 days until delivery, got %d", urgency.DaysUntilDelivery)
	}
}

func TestClassifyInvalidDate(t *testing.T) {
	item := &procurement.Item{ID: "item-1", DeliveryDate: "not a date"}

	_, err := Classify(item, testReferenceDate, DefaultPolicy())
	if err == nil {
		t.Fatalf("expected error for unparsable delivery date")
	}
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestParseDeliveryDateLayouts(t *testing.T) {
	want := time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2025-04-15", "2025/04/15", "15-Apr-2025", "04/15/2025", "April 15, 2025"} {
		got, err := ParseDeliveryDate(raw)
		if err != nil {
			t.Fatalf("parsing %q: %v", raw, err)
		}
		if !got.Equal(want) {
			t.Fatalf("parsing %q: expected %v, got %v", raw, want, got)
		}
	}
}
