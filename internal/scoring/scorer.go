package scoring

import (
	"regexp"

	"github.com/xavierca1/lead-engine/internal/entity"
)

// Result é a saída de uma passada de scoring sobre texto.
type Result struct {
	Total      int
	Matches    []entity.SignalMatch
	ByCategory map[entity.SignalCategory]int
}

// Breakdown converte o resultado no documento de explicabilidade
// persistido junto do lead.
func (r Result) Breakdown() *entity.ScoreBreakdown {
	return &entity.ScoreBreakdown{
		Matches:        r.Matches,
		CategoryScores: r.ByCategory,
	}
}

type signalPattern struct {
	re     *regexp.Regexp
	signal entity.IntentSignal
	weight int // peso efetivo, congelado na construção do índice
}

// Scorer casa frases do catálogo contra texto livre. O índice de padrões
// é compilado uma vez a partir de (catálogo, config); mudou a config,
// constrói-se um Scorer novo - o índice nunca é mutado.
type Scorer struct {
	patterns []signalPattern
}

// NewScorer constrói o índice com o catálogo padrão.
func NewScorer(cfg *Config) *Scorer {
	return NewScorerWithSignals(cfg, entity.IntentCatalog)
}

// NewScorerWithSignals constrói o índice com um catálogo customizado.
func NewScorerWithSignals(cfg *Config, signals []entity.IntentSignal) *Scorer {
	patterns := make([]signalPattern, 0, len(signals))
	for _, sig := range signals {
		// Case-insensitive com word boundary: "ohio" não casa "ohioan".
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(sig.Phrase) + `\b`)
		patterns = append(patterns, signalPattern{
			re:     re,
			signal: sig,
			weight: cfg.EffectiveWeight(sig),
		})
	}
	return &Scorer{patterns: patterns}
}

// ScoreText pontua um blob de texto. Cada frase distinta conta no máximo
// uma vez por passada - repetição não infla score. Pesos negativos podem
// levar o total abaixo de zero; não existe piso.
func (s *Scorer) ScoreText(text string) Result {
	result := Result{ByCategory: map[entity.SignalCategory]int{}}
	if text == "" {
		return result
	}

	for _, p := range s.patterns {
		if !p.re.MatchString(text) {
			continue
		}
		result.Matches = append(result.Matches, entity.SignalMatch{
			Phrase:   p.signal.Phrase,
			Weight:   p.weight,
			Category: p.signal.Category,
		})
		result.Total += p.weight
		result.ByCategory[p.signal.Category] += p.weight
	}

	return result
}

// ScoreLead concatena bio + notes + messages + comments e pontua.
func (s *Scorer) ScoreLead(lead *entity.Lead) Result {
	return s.ScoreText(lead.AllText())
}
