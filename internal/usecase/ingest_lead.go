package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/xavierca1/lead-engine/internal/entity"
	"github.com/xavierca1/lead-engine/internal/scoring"
)

// Tentativas de ingestão antes de desistir. Conflito de versão ou alvo
// deletado no meio do caminho re-resolve e tenta de novo.
const maxIngestAttempts = 3

// IngestLeadUseCase executa o caminho síncrono de ingestão:
// RawLead -> resolução de identidade -> merge ou create -> score de
// texto -> persistência. O score comportamental entra depois, via
// rescoring worker.
type IngestLeadUseCase struct {
	Repo     LeadRepositoryInterface
	Resolver *IdentityResolver
	Scorer   *scoring.Scorer
	Config   *scoring.Config
}

func NewIngestLeadUseCase(repo LeadRepositoryInterface, scorer *scoring.Scorer, cfg *scoring.Config) *IngestLeadUseCase {
	return &IngestLeadUseCase{
		Repo:     repo,
		Resolver: NewIdentityResolver(repo),
		Scorer:   scorer,
		Config:   cfg,
	}
}

type IngestLeadOutput struct {
	Lead    *entity.Lead
	Created bool
}

func (uc *IngestLeadUseCase) Execute(ctx context.Context, raw entity.RawLead) (*IngestLeadOutput, error) {
	if raw.Source == "" {
		return nil, &DomainError{Code: "MISSING_SOURCE", Message: "raw lead sem source"}
	}

	for attempt := 0; attempt < maxIngestAttempts; attempt++ {
		existing, err := uc.Resolver.Resolve(ctx, raw)
		if err != nil {
			return nil, err
		}

		if existing == nil {
			return uc.create(ctx, raw)
		}

		merged := MergeLead(*existing, raw)
		uc.applyScore(&merged)

		err = uc.Repo.Update(ctx, &merged)
		switch {
		case err == nil:
			uc.audit(ctx, merged.ID, "merge", fmt.Sprintf("Merged data from %s", raw.Source))
			return &IngestLeadOutput{Lead: &merged, Created: false}, nil

		case errors.Is(err, entity.ErrLeadNotFound):
			// Alvo deletado entre resolução e merge: re-resolve e
			// trata como create. Nunca engolir a perda.
			continue

		case errors.Is(err, entity.ErrVersionConflict):
			// Outra ingestão ganhou a corrida; re-resolve em cima do
			// estado novo.
			continue

		default:
			return nil, err
		}
	}

	return nil, &TechnicalError{
		Code:    "INGEST_RETRIES_EXHAUSTED",
		Message: fmt.Sprintf("ingestão desistiu após %d tentativas (source=%s)", maxIngestAttempts, raw.Source),
	}
}

func (uc *IngestLeadUseCase) create(ctx context.Context, raw entity.RawLead) (*IngestLeadOutput, error) {
	now := time.Now().UTC()
	lead := &entity.Lead{
		Source:    raw.Source,
		SourceID:  raw.SourceID,
		Name:      raw.Name,
		Email:     NormalizeEmail(raw.Email),
		Phone:     raw.Phone,
		Username:  raw.Username,
		Bio:       raw.Bio,
		Notes:     raw.Notes,
		Messages:  raw.Messages,
		Comments:  raw.Comments,
		RawData:   raw.RawData,
		Status:    entity.StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	uc.applyScore(lead)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	uc.audit(ctx, lead.ID, "import", fmt.Sprintf("Imported from %s", raw.Source))
	return &IngestLeadOutput{Lead: lead, Created: true}, nil
}

func (uc *IngestLeadUseCase) applyScore(lead *entity.Lead) {
	result := uc.Scorer.ScoreLead(lead)
	lead.Score = result.Total
	lead.Tier = scoring.Tier(result.Total, uc.Config)
	lead.ScoreBreakdown = result.Breakdown()
}

// audit é rastreabilidade, não correção: falha vira log, nunca erro.
func (uc *IngestLeadUseCase) audit(ctx context.Context, leadID int64, kind, content string) {
	if err := uc.Repo.RecordAudit(ctx, leadID, kind, content); err != nil {
		log.Printf("⚠️ Falha ao gravar audit do lead %d: %v", leadID, err)
	}
}
