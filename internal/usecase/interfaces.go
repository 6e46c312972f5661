package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/lead-engine/internal/entity"
	"github.com/xavierca1/lead-engine/internal/infra/queue"
)

// LeadRepositoryInterface é o contrato de storage de leads. Os quatro
// finders de identidade retornam (nil, nil) quando não há match -
// ausência não é erro.
type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id int64) (*entity.Lead, error)
	FindBySourceID(ctx context.Context, source, sourceID string) (*entity.Lead, error)
	FindByEmail(ctx context.Context, email string) (*entity.Lead, error)
	FindByPhoneSuffix(ctx context.Context, suffix string) (*entity.Lead, error)
	FindByUsername(ctx context.Context, username, source string) (*entity.Lead, error)

	// Update persiste a cópia completa com check otimista de versão.
	// Retorna entity.ErrLeadNotFound se o lead sumiu,
	// entity.ErrVersionConflict se outra escrita chegou antes.
	Update(ctx context.Context, lead *entity.Lead) error

	// UpdateScore grava score/tier sem mexer no resto do registro.
	UpdateScore(ctx context.Context, id int64, score int, tier string) error

	RecordAudit(ctx context.Context, leadID int64, kind, content string) error
}

// EventRepositoryInterface é o contrato do stream append-only de eventos
// comportamentais.
type EventRepositoryInterface interface {
	Save(ctx context.Context, event *entity.BehavioralEvent) error
	ListByLead(ctx context.Context, leadID int64) ([]entity.BehavioralEvent, error)
	LeadIDsWithEventsSince(ctx context.Context, since time.Time) ([]int64, error)
}

// NotificationLedgerInterface é o ledger persistido de idempotência de
// alertas. MarkNotified retorna false se (lead, tier) já foi notificado
// - por qualquer réplica, em qualquer vida do processo.
type NotificationLedgerInterface interface {
	MarkNotified(ctx context.Context, leadID int64, tier string) (bool, error)
}

type QueueProducerInterface interface {
	PublishHotLead(ctx context.Context, payload queue.HotLeadPayload) error
}
