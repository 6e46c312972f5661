package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/xavierca1/lead-engine/internal/entity"
)

// EventRepository é o dono da tabela lead_events. Append-only: eventos
// nunca sofrem update nem delete por aqui.
//
//	lead_events(id UUID PK, lead_id, event_name, calculator_type,
//	            event_value, created_at)
type EventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Save(ctx context.Context, event *entity.BehavioralEvent) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO lead_events (id, lead_id, event_name, calculator_type, event_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		event.ID,
		event.LeadID,
		event.Name,
		nullString(event.CalculatorType),
		nullString(event.Value),
		event.CreatedAt,
	)
	return err
}

func (r *EventRepository) ListByLead(ctx context.Context, leadID int64) ([]entity.BehavioralEvent, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, lead_id, event_name, calculator_type, event_value, created_at
		FROM lead_events
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []entity.BehavioralEvent
	for rows.Next() {
		var ev entity.BehavioralEvent
		var calculatorType, value sql.NullString

		if err := rows.Scan(&ev.ID, &ev.LeadID, &ev.Name, &calculatorType, &value, &ev.CreatedAt); err != nil {
			return nil, err
		}
		ev.CalculatorType = calculatorType.String
		ev.Value = value.String
		events = append(events, ev)
	}

	return events, rows.Err()
}

// LeadIDsWithEventsSince é o lookback limitado do rescoring worker:
// só leads com evento recente, nunca full scan.
func (r *EventRepository) LeadIDsWithEventsSince(ctx context.Context, since time.Time) ([]int64, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT DISTINCT lead_id
		FROM lead_events
		WHERE created_at > $1
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
