package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/lead-engine/internal/entity"
)

func newDefaultScorer() *Scorer {
	return NewScorer(DefaultConfig())
}

func TestScoreTextEmpty(t *testing.T) {
	result := newDefaultScorer().ScoreText("")

	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Matches)
	assert.Empty(t, result.ByCategory)
}

func TestScoreTextNoSignals(t *testing.T) {
	result := newDefaultScorer().ScoreText("nothing relevant in here")

	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Matches)
}

// Frase repetida conta uma vez só: repetição não infla score.
func TestScoreTextPhraseDedup(t *testing.T) {
	result := newDefaultScorer().ScoreText("ready to buy, I said I am ready to buy")

	assert.Equal(t, 90, result.Total)
	assert.Len(t, result.Matches, 1)
	assert.Equal(t, "ready to buy", result.Matches[0].Phrase)
}

// Sinal negativo forte + sinal positivo: soma com sinal, sem piso.
func TestScoreTextSignedCombination(t *testing.T) {
	result := newDefaultScorer().ScoreText("I'm a realtor but my client is ready to buy")

	assert.Equal(t, -10, result.Total)
	assert.Equal(t, entity.TierNegative, Tier(result.Total, DefaultConfig()))
}

func TestScoreTextNoFloor(t *testing.T) {
	// "unsubscribe" (-100) derruba um lead que seria quente; o peso
	// negativo forte funciona como blacklist.
	result := newDefaultScorer().ScoreText("preapproved, mortgage approved... unsubscribe")

	assert.Less(t, result.Total, 90)
	matches := map[string]int{}
	for _, m := range result.Matches {
		matches[m.Phrase] = m.Weight
	}
	assert.Equal(t, -100, matches["unsubscribe"])
}

func TestScoreTextCaseInsensitive(t *testing.T) {
	result := newDefaultScorer().ScoreText("READY TO BUY")

	assert.Equal(t, 90, result.Total)
}

func TestScoreTextWordBoundary(t *testing.T) {
	scorer := newDefaultScorer()

	// "ohioan" não contém o sinal "ohio" como palavra
	assert.Equal(t, 0, scorer.ScoreText("proud ohioan here").Total)
	assert.Equal(t, 10, scorer.ScoreText("moving out of ohio").Total)
}

func TestScoreTextCategoryBreakdown(t *testing.T) {
	cfg := DefaultConfig()
	result := NewScorer(cfg).ScoreText("preapproved and relocating asap")

	// timeline 1.2 e life_event 1.1 aplicados por categoria
	assert.Equal(t, 90, result.ByCategory[entity.CategoryBuyerActive])
	assert.Equal(t, 77, result.ByCategory[entity.CategoryLifeEvent]) // int(70 * 1.1)
	assert.Equal(t, 84, result.ByCategory[entity.CategoryTimeline])  // int(70 * 1.2)
	assert.Equal(t, 90+77+84, result.Total)
}

// Mesma entrada, mesma saída: o breakdown persistido tem que ser
// reconstruível a qualquer momento.
func TestScoreTextIdempotent(t *testing.T) {
	scorer := newDefaultScorer()
	text := "first time homebuyer, preapproved, looking in Powell asap"

	first := scorer.ScoreText(text)
	second := scorer.ScoreText(text)

	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Matches, second.Matches)
	assert.Equal(t, first.ByCategory, second.ByCategory)
}

func TestScoreTextOverrideThenMultiplier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SignalWeightOverrides["asap"] = 100

	result := NewScorerWithSignals(cfg, entity.IntentCatalog).ScoreText("call me asap")

	// multiplicador (timeline 1.2) incide sobre o override, não o contrário
	assert.Equal(t, 120, result.Total)
}

func TestScoreLeadConcatenatesAllText(t *testing.T) {
	lead := &entity.Lead{
		Bio:      "thinking about buying",
		Notes:    "lease is up",
		Messages: []string{"ready to buy"},
		Comments: []string{"love powell"},
	}

	result := newDefaultScorer().ScoreLead(lead)

	assert.Len(t, result.Matches, 4)
	// 50 + int(75*1.2)=90 + 90 + 30
	assert.Equal(t, 50+90+90+30, result.Total)
}

func TestTierBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, entity.TierHot, Tier(150, cfg))
	assert.Equal(t, entity.TierWarm, Tier(149, cfg))
	assert.Equal(t, entity.TierWarm, Tier(75, cfg))
	assert.Equal(t, entity.TierLukewarm, Tier(25, cfg))
	assert.Equal(t, entity.TierCold, Tier(24, cfg))
	assert.Equal(t, entity.TierCold, Tier(0, cfg))
	assert.Equal(t, entity.TierNegative, Tier(-1, cfg))
}

func TestBreakdownDocument(t *testing.T) {
	result := newDefaultScorer().ScoreText("ready to buy")
	breakdown := result.Breakdown()

	assert.Len(t, breakdown.Matches, 1)
	assert.Equal(t, "ready to buy", breakdown.Matches[0].Phrase)
	assert.Equal(t, 90, breakdown.Matches[0].Weight)
	assert.Equal(t, entity.CategoryBuyerActive, breakdown.Matches[0].Category)
	assert.Equal(t, 90, breakdown.CategoryScores[entity.CategoryBuyerActive])
}
