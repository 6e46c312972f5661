package entity

import (
	"time"

	"github.com/google/uuid"
)

// BehavioralEvent é uma interação registrada pelo boundary de ingestão de
// eventos (site, calculadoras). Append-only: nunca sofre update.
type BehavioralEvent struct {
	ID             string    `json:"id"`
	LeadID         int64     `json:"lead_id"`
	Name           string    `json:"event_name"`
	CalculatorType string    `json:"calculator_type,omitempty"`
	Value          string    `json:"event_value,omitempty"` // JSON livre do conector
	CreatedAt      time.Time `json:"created_at"`
}

// NewBehavioralEvent preenche id e timestamp na construção.
func NewBehavioralEvent(leadID int64, name, calculatorType, value string) *BehavioralEvent {
	return &BehavioralEvent{
		ID:             uuid.New().String(),
		LeadID:         leadID,
		Name:           name,
		CalculatorType: calculatorType,
		Value:          value,
		CreatedAt:      time.Now().UTC(),
	}
}
