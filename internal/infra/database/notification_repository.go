package database

import (
	"context"
	"database/sql"
)

// NotificationLedger persiste a idempotência dos alertas de lead quente.
// Por ser tabela e não estado em memória, a garantia de "notifica uma vez
// só" vale entre restarts e entre réplicas.
//
//	lead_notifications(lead_id, tier, notified_at, PK(lead_id, tier))
type NotificationLedger struct {
	DB *sql.DB
}

func NewNotificationLedger(db *sql.DB) *NotificationLedger {
	return &NotificationLedger{DB: db}
}

// MarkNotified tenta reivindicar (lead, tier). Retorna true se este
// caller ganhou o direito de notificar, false se alguém já notificou.
// One-way por design: lead que sai de hot e volta não re-notifica.
func (l *NotificationLedger) MarkNotified(ctx context.Context, leadID int64, tier string) (bool, error) {
	result, err := l.DB.ExecContext(ctx, `
		INSERT INTO lead_notifications (lead_id, tier, notified_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (lead_id, tier) DO NOTHING
	`, leadID, tier)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
