package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/lead-engine/internal/entity"
)

var behavioralNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func eventAt(name string, age time.Duration) entity.BehavioralEvent {
	return entity.BehavioralEvent{
		Name:      name,
		CreatedAt: behavioralNow.Add(-age),
	}
}

func TestScoreEventsEmpty(t *testing.T) {
	assert.Equal(t, 0, ScoreEventsAt(nil, behavioralNow))
}

func TestScoreEventsUnknownEvent(t *testing.T) {
	events := []entity.BehavioralEvent{eventAt("something_else", time.Hour)}

	// evento desconhecido vale 0 de base, mas conta para engajamento
	assert.Equal(t, 0, ScoreEventsAt(events, behavioralNow))
}

func TestScoreEventsBaseScores(t *testing.T) {
	events := []entity.BehavioralEvent{
		eventAt("schedule_showing", 30*24*time.Hour),
		eventAt("contact_submit", 30*24*time.Hour),
	}

	// fora da janela de 7 dias: só a base, sem bônus de engajamento
	assert.Equal(t, 90+75, ScoreEventsAt(events, behavioralNow))
}

// Bônus de engajamento: 1→0, 2→10, 3→20, 4→20, 5→35. Sempre o maior
// tier qualificado, nunca a soma.
func TestScoreEventsEngagementTiers(t *testing.T) {
	cases := []struct {
		pageViews int
		expected  int
	}{
		{1, 0},
		{2, 10},
		{3, 20},
		{4, 20},
		{5, 35},
		{7, 35},
	}

	for _, tc := range cases {
		events := make([]entity.BehavioralEvent, 0, tc.pageViews)
		for i := 0; i < tc.pageViews; i++ {
			events = append(events, eventAt("page_view", time.Duration(i+1)*time.Hour))
		}

		assert.Equal(t, tc.expected, ScoreEventsAt(events, behavioralNow),
			"%d page views", tc.pageViews)
	}
}

func TestScoreEventsOldEventsDontCountForEngagement(t *testing.T) {
	events := []entity.BehavioralEvent{
		eventAt("page_view", time.Hour),
		eventAt("page_view", 8*24*time.Hour),
		eventAt("page_view", 9*24*time.Hour),
	}

	// só 1 evento recente: nenhum bônus
	assert.Equal(t, 0, ScoreEventsAt(events, behavioralNow))
}

func TestScoreEventsCalculatorAboveThreshold(t *testing.T) {
	ev := eventAt("calculator_submit", time.Hour)
	ev.CalculatorType = "mortgage"
	ev.Value = `{"amount": 300000}`

	assert.Equal(t, 40+10, ScoreEventsAt([]entity.BehavioralEvent{ev}, behavioralNow))
}

func TestScoreEventsCalculatorBelowThreshold(t *testing.T) {
	ev := eventAt("calculator_submit", time.Hour)
	ev.CalculatorType = "mortgage"
	ev.Value = `{"amount": 100000}`

	assert.Equal(t, 40, ScoreEventsAt([]entity.BehavioralEvent{ev}, behavioralNow))
}

func TestScoreEventsCommissionSavings(t *testing.T) {
	ev := eventAt("calculator_submit", time.Hour)
	ev.CalculatorType = "commission_savings"
	ev.Value = `{"savings": 6500}`

	assert.Equal(t, 40+20, ScoreEventsAt([]entity.BehavioralEvent{ev}, behavioralNow))
}

func TestScoreEventsCalculatorBadPayload(t *testing.T) {
	ev := eventAt("calculator_submit", time.Hour)
	ev.CalculatorType = "home_value"
	ev.Value = `{{not json`

	// payload podre não derruba o scoring: só perde o bônus
	assert.Equal(t, 40, ScoreEventsAt([]entity.BehavioralEvent{ev}, behavioralNow))
}

func TestScoreEventsCalculatorUnknownType(t *testing.T) {
	ev := eventAt("calculator_submit", time.Hour)
	ev.CalculatorType = "net_worth"
	ev.Value = `{"value": 9999999}`

	assert.Equal(t, 40, ScoreEventsAt([]entity.BehavioralEvent{ev}, behavioralNow))
}

func TestScoreEventsCombined(t *testing.T) {
	events := []entity.BehavioralEvent{
		eventAt("schedule_showing", time.Hour),
		eventAt("home_value_request", 2*time.Hour),
		eventAt("page_view", 3*time.Hour),
	}

	// 90 + 80 + 0, 3 eventos recentes → +20
	assert.Equal(t, 190, ScoreEventsAt(events, behavioralNow))
}
