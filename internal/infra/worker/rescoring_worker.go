package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/lead-engine/internal/entity"
	"github.com/xavierca1/lead-engine/internal/infra/queue"
	"github.com/xavierca1/lead-engine/internal/scoring"
	"github.com/xavierca1/lead-engine/internal/usecase"
)

// RescoringWorker recombina score de texto + comportamental para leads
// com eventos recentes e detecta transições de tier. Roda desacoplado do
// caminho de request: nunca bloqueia ingestão.
type RescoringWorker struct {
	Leads    usecase.LeadRepositoryInterface
	Events   usecase.EventRepositoryInterface
	Ledger   usecase.NotificationLedgerInterface
	Producer usecase.QueueProducerInterface
	Scorer   *scoring.Scorer
	Config   *scoring.Config

	tickInterval time.Duration
}

func NewRescoringWorker(
	leads usecase.LeadRepositoryInterface,
	events usecase.EventRepositoryInterface,
	ledger usecase.NotificationLedgerInterface,
	producer usecase.QueueProducerInterface,
	scorer *scoring.Scorer,
	cfg *scoring.Config,
	interval time.Duration,
) *RescoringWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &RescoringWorker{
		Leads:        leads,
		Events:       events,
		Ledger:       ledger,
		Producer:     producer,
		Scorer:       scorer,
		Config:       cfg,
		tickInterval: interval,
	}
}

func (w *RescoringWorker) Start(ctx context.Context) {
	log.Printf("🕒 Rescoring Worker iniciado (intervalo: %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.rescoreRecent(ctx, time.Now().UTC())

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Rescoring Worker encerrado")
			return
		case <-ticker.C:
			w.rescoreRecent(ctx, time.Now().UTC())
		}
	}
}

// rescoreRecent processa leads com eventos mais novos que 2x o intervalo
// de polling - lookback limitado, nunca full scan. Erro em um lead é
// logado e pulado; o lote segue e o lead volta no próximo ciclo.
func (w *RescoringWorker) rescoreRecent(ctx context.Context, now time.Time) {
	since := now.Add(-2 * w.tickInterval)

	ids, err := w.Events.LeadIDsWithEventsSince(ctx, since)
	if err != nil {
		log.Printf("❌ Erro ao buscar leads com eventos recentes: %v", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	rescored := 0
	for _, id := range ids {
		if err := w.rescoreLead(ctx, id, now); err != nil {
			log.Printf("⚠️ Rescoring do lead %d falhou, pulando: %v", id, err)
			continue
		}
		rescored++
	}

	if rescored > 0 {
		log.Printf("✅ %d lead(s) reavaliados", rescored)
	}
}

func (w *RescoringWorker) rescoreLead(ctx context.Context, id int64, now time.Time) error {
	lead, err := w.Leads.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return nil // deletado no meio do caminho; nada a fazer
	}

	textResult := w.Scorer.ScoreLead(lead)

	events, err := w.Events.ListByLead(ctx, id)
	if err != nil {
		return err
	}
	behavioral := scoring.ScoreEventsAt(events, now)

	combined := textResult.Total + behavioral
	newTier := scoring.Tier(combined, w.Config)

	// Persiste só quando mudou, para não gerar churn de updated_at.
	if combined != lead.Score || newTier != lead.Tier {
		if err := w.Leads.UpdateScore(ctx, id, combined, newTier); err != nil {
			return err
		}
	}

	if newTier == entity.TierHot && lead.Tier != entity.TierHot {
		w.notifyHot(ctx, lead, combined)
	}

	return nil
}

// notifyHot emite no máximo um alerta por (lead, tier), garantido pelo
// ledger persistido. Falha de publicação depois do claim vira log:
// alerta é fire-and-forget.
func (w *RescoringWorker) notifyHot(ctx context.Context, lead *entity.Lead, score int) {
	claimed, err := w.Ledger.MarkNotified(ctx, lead.ID, entity.TierHot)
	if err != nil {
		log.Printf("⚠️ Ledger de notificação falhou para lead %d: %v", lead.ID, err)
		return
	}
	if !claimed {
		return // já notificado por este processo ou por outra réplica
	}

	payload := queue.HotLeadPayload{
		LeadID: lead.ID,
		Name:   lead.DisplayName(),
		Email:  lead.Email,
		Phone:  lead.Phone,
		Score:  score,
		Source: lead.Source,
	}
	if err := w.Producer.PublishHotLead(ctx, payload); err != nil {
		log.Printf("❌ Falha ao publicar alerta do lead %d: %v", lead.ID, err)
		return
	}

	log.Printf("🔥 Lead %d virou HOT (score=%d), alerta publicado", lead.ID, score)
}
