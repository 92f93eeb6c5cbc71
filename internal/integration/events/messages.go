package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// ExpensesCreatedMessage is the wire format of an expenses created event.
type ExpensesCreatedMessage struct {
	OwnerID    uuid.UUID   `json:"owner_id"`
	ExpenseIDs []uuid.UUID `json:"expense_ids"`
	Total      string      `json:"total"`
	Source     string      `json:"source"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// NewExpensesCreatedMessage converts an event into its wire format.
func NewExpensesCreatedMessage(event adapter.ExpensesCreatedEvent) *ExpensesCreatedMessage {
	ids := event.ExpenseIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return &ExpensesCreatedMessage{
		OwnerID:    event.OwnerID,
		ExpenseIDs: ids,
		Total:      event.Total.StringFixed(2),
		Source:     string(event.Source),
		OccurredAt: event.OccurredAt.UTC(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ExpensesCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpensesCreatedMessageFromJSON decodes a message from JSON bytes.
func ExpensesCreatedMessageFromJSON(data []byte) (*ExpensesCreatedMessage, error) {
	var msg ExpensesCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
