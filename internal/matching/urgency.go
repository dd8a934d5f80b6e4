package matching

import (
	"errors"
	"fmt"
	"time"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/procurement"
)

// ErrInvalidDate marks a delivery date that cannot be interpreted as a
// calendar date. It is fatal for the item but never for the batch.
var ErrInvalidDate = errors.New("invalid delivery date")

// deliveryDateLayouts are the date formats accepted in uploaded files, in
// the order they are tried.
var deliveryDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-Jan-2006",
	"01/02/2006",
	"January 2, 2006",
}

// Urgency is the classification of one item against the reference date.
type Urgency struct {
	IsUrgent          bool `json:"is_urgent"`
	DaysUntilDelivery int  `json:"days_until_delivery"`
}

// Classify derives the urgency state of an item from its delivery date.
// Past-due items are urgent regardless of the policy window. Pure function
// of its inputs; the caller supplies the reference date.
func Classify(item *procurement.Item, referenceDate time.Time, policy *Policy) (Urgency, error) {
	delivery, err := ParseDeliveryDate(item.DeliveryDate)
	if err != nil {
		return Urgency{}, err
	}

	days := int(truncateToDay(delivery).Sub(truncateToDay(referenceDate)).Hours() / 24)

	return Urgency{
		IsUrgent:          days < 0 || days <= policy.UrgencyWindowDays,
		DaysUntilDelivery: days,
	}, nil
}

// ParseDeliveryDate interprets a raw delivery date field using the accepted
// layouts, wrapping ErrInvalidDate on failure.
func ParseDeliveryDate(raw string) (time.Time, error) {
	for _, layout := range deliveryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
