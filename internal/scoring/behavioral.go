package scoring

import (
	"encoding/json"
	"time"

	"github.com/xavierca1/lead-engine/internal/entity"
)

// Scores base por nome de evento. Page view vale zero de propósito:
// só conta para o bônus de engajamento.
var eventBaseScores = map[string]int{
	"contact_submit":        75,
	"home_value_request":    80,
	"schedule_showing":      90,
	"schedule_consultation": 85,
	"calculator_submit":     40,
	"property_inquiry":      50,
	"saved_search":          35,
	"newsletter_signup":     15,
	"blog_subscription":     10,
	"page_view":             0,
}

// Bônus de calculadora: só dispara se o resultado numérico cruza o
// threshold. Não é proporcional ao valor.
type calculatorModifier struct {
	Threshold float64
	Bonus     int
}

var calculatorModifiers = map[string]calculatorModifier{
	"commission_savings": {Threshold: 5000, Bonus: 20},
	"home_value":         {Threshold: 200000, Bonus: 15},
	"mortgage":           {Threshold: 250000, Bonus: 10},
}

// Bônus de engajamento recorrente em janela de 7 dias. Aplica-se só o
// maior tier qualificado, nunca a soma.
var engagementTiers = []struct {
	MinEvents int
	Bonus     int
}{
	{2, 10},
	{3, 20},
	{5, 35},
}

const engagementWindow = 7 * 24 * time.Hour

// ScoreEvents pontua os eventos comportamentais de um lead, independente
// do score de texto.
func ScoreEvents(events []entity.BehavioralEvent) int {
	return ScoreEventsAt(events, time.Now().UTC())
}

// ScoreEventsAt é a variante com relógio explícito, usada pelo rescoring
// worker e pelos testes.
func ScoreEventsAt(events []entity.BehavioralEvent, now time.Time) int {
	if len(events) == 0 {
		return 0
	}

	score := 0
	windowStart := now.Add(-engagementWindow)
	recentCount := 0

	for _, ev := range events {
		score += eventBaseScores[ev.Name]

		if ev.Name == "calculator_submit" && ev.CalculatorType != "" {
			if mod, ok := calculatorModifiers[ev.CalculatorType]; ok {
				if calculatorResult(ev.Value) >= mod.Threshold {
					score += mod.Bonus
				}
			}
		}

		if ev.CreatedAt.After(windowStart) {
			recentCount++
		}
	}

	bonus := 0
	for _, tier := range engagementTiers {
		if recentCount >= tier.MinEvents {
			bonus = tier.Bonus
		}
	}

	return score + bonus
}

// calculatorResult extrai o valor numérico do payload do evento.
// Payload podre retorna 0 e segue o baile - scoring é total.
func calculatorResult(value string) float64 {
	if value == "" {
		return 0
	}

	var payload struct {
		Savings float64 `json:"savings"`
		Value   float64 `json:"value"`
		Amount  float64 `json:"amount"`
	}
	if err := json.Unmarshal([]byte(value), &payload); err != nil {
		return 0
	}

	if payload.Savings != 0 {
		return payload.Savings
	}
	if payload.Value != 0 {
		return payload.Value
	}
	return payload.Amount
}
