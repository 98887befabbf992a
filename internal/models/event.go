package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType представляет тип события
type EventType string

const (
	EventTypeQuoteComputed EventType = "quote_computed"
	EventTypeQuoteRejected EventType = "quote_rejected"
)

// Event представляет событие для публикации в Kafka
type Event struct {
	ID        uuid.UUID   `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// QuoteComputedData описывает рассчитанную котировку доставки
type QuoteComputedData struct {
	VenueSlug  string `json:"venue_slug"`
	CartValue  int    `json:"cart_value"`
	Distance   int    `json:"distance"`
	Fee        int    `json:"fee"`
	Surcharge  int    `json:"small_order_surcharge"`
	TotalPrice int    `json:"total_price"`
}

// QuoteRejectedData описывает отклонённый запрос котировки
type QuoteRejectedData struct {
	VenueSlug string `json:"venue_slug"`
	Distance  int    `json:"distance"`
	Reason    string `json:"reason"`
}
