package scoring

import "github.com/xavierca1/lead-engine/internal/entity"

// Tier classifica um score combinado. Função pura: a ordenação dos
// thresholds já foi garantida na carga da config, não se reverifica aqui.
func Tier(score int, cfg *Config) string {
	switch {
	case score < 0:
		return entity.TierNegative
	case score >= cfg.HotThreshold:
		return entity.TierHot
	case score >= cfg.WarmThreshold:
		return entity.TierWarm
	case score >= cfg.LukewarmThreshold:
		return entity.TierLukewarm
	default:
		return entity.TierCold
	}
}
