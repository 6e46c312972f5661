package scoring

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/xavierca1/lead-engine/internal/entity"
)

// Config é um snapshot imutável da configuração de scoring. É passado
// explicitamente para cada chamada - nada de estado global mutável.
// Qualquer mudança de config exige reconstruir o Scorer (ver NewScorer).
type Config struct {
	HotThreshold      int `json:"hot_threshold"`
	WarmThreshold     int `json:"warm_threshold"`
	LukewarmThreshold int `json:"lukewarm_threshold"`

	CategoryMultipliers map[string]float64 `json:"category_multipliers"`
	SourceMultipliers   map[string]float64 `json:"source_multipliers"`

	// Overrides por frase, sem mutar o catálogo.
	SignalWeightOverrides map[string]int `json:"signal_weight_overrides"`
}

// DefaultConfig retorna os valores embutidos usados quando o arquivo de
// config falha ou não existe.
func DefaultConfig() *Config {
	return &Config{
		HotThreshold:      150,
		WarmThreshold:     75,
		LukewarmThreshold: 25,
		CategoryMultipliers: map[string]float64{
			"buyer_active":   1.0,
			"buyer_passive":  1.0,
			"seller_active":  1.0,
			"seller_passive": 1.0,
			"investor":       1.0,
			"timeline":       1.2, // urgência vale mais
			"location":       1.0,
			"life_event":     1.1,
			"financial":      1.0,
			"negative":       1.0,
		},
		SourceMultipliers: map[string]float64{
			"instagram":       1.0,
			"facebook":        1.0,
			"linkedin":        1.1,
			"zillow":          1.2,
			"google_ads":      1.2,
			"google_forms":    1.1,
			"google_business": 1.1,
			"nextdoor":        1.0,
			"website":         1.1,
			"manual":          1.0,
			"csv":             1.0,
		},
		SignalWeightOverrides: map[string]int{},
	}
}

// Validate rejeita configs inválidas na carga, nunca na hora de pontuar.
func (c *Config) Validate() error {
	if !(c.HotThreshold > c.WarmThreshold && c.WarmThreshold > c.LukewarmThreshold && c.LukewarmThreshold >= 0) {
		return fmt.Errorf("thresholds fora de ordem: hot=%d warm=%d lukewarm=%d (exige hot > warm > lukewarm >= 0)",
			c.HotThreshold, c.WarmThreshold, c.LukewarmThreshold)
	}
	for cat, m := range c.CategoryMultipliers {
		if m <= 0 {
			return fmt.Errorf("multiplicador de categoria %q deve ser > 0 (got %v)", cat, m)
		}
	}
	for src, m := range c.SourceMultipliers {
		if m <= 0 {
			return fmt.Errorf("multiplicador de source %q deve ser > 0 (got %v)", src, m)
		}
	}
	return nil
}

// Load lê a config de um arquivo JSON. Qualquer falha (arquivo ausente,
// JSON inválido, invariante violada) é logada e cai nos defaults:
// disponibilidade vale mais que correção estrita aqui.
func Load(path string) *Config {
	if path == "" {
		return DefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ Config de scoring não carregada (%v), usando defaults", err)
		return DefaultConfig()
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("⚠️ Config de scoring inválida (%v), usando defaults", err)
		return DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("⚠️ Config de scoring rejeitada: %v - usando defaults", err)
		return DefaultConfig()
	}

	return cfg
}

// EffectiveWeight aplica override e multiplicador de categoria, nessa
// ordem: o multiplicador incide sobre o override, não o contrário.
// Truncamento para inteiro é contrato, não acidente.
func (c *Config) EffectiveWeight(signal entity.IntentSignal) int {
	weight := signal.Weight
	if override, ok := c.SignalWeightOverrides[signal.Phrase]; ok {
		weight = override
	}

	multiplier, ok := c.CategoryMultipliers[string(signal.Category)]
	if !ok {
		multiplier = 1.0
	}
	return int(float64(weight) * multiplier)
}

// SourceMultiplier expõe o peso de qualidade da origem para consumidores
// externos (roteamento). Não entra no score de texto.
func (c *Config) SourceMultiplier(source string) float64 {
	if m, ok := c.SourceMultipliers[source]; ok {
		return m
	}
	return 1.0
}
