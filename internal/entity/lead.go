package entity

import (
	"strings"
	"time"
)

// Tiers de classificação consumidos pelo roteamento downstream.
const (
	TierHot      = "hot"
	TierWarm     = "warm"
	TierLukewarm = "lukewarm"
	TierCold     = "cold"
	TierNegative = "negative"
)

const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusNurturing = "nurturing"
	StatusConverted = "converted"
	StatusLost      = "lost"
)

// RawLead é o registro cru vindo de um conector externo (form, import,
// evento de site). Imutável depois de construído - resolver e merge
// nunca escrevem de volta aqui.
type RawLead struct {
	Source   string   `json:"source"`
	SourceID string   `json:"source_id,omitempty"`
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Username string   `json:"username,omitempty"`
	Bio      string   `json:"bio,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Messages []string `json:"messages,omitempty"`
	Comments []string `json:"comments,omitempty"`
	RawData  string   `json:"raw_data,omitempty"`
}

// AllText junta todo o texto pontuável do registro cru.
func (r RawLead) AllText() string {
	all := append([]string{r.Bio, r.Notes}, append(r.Messages, r.Comments...)...)
	parts := make([]string, 0, len(all))
	for _, p := range all {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Lead é o registro durável de identidade, dono exclusivo da camada de
// storage. Scoring e merge recebem e devolvem cópias completas, nunca
// patches parciais.
type Lead struct {
	ID       int64  `json:"id"`
	Source   string `json:"source"`
	SourceID string `json:"source_id,omitempty"`

	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Username string `json:"username,omitempty"`

	Bio      string   `json:"bio,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Messages []string `json:"messages,omitempty"`
	Comments []string `json:"comments,omitempty"`

	Score          int             `json:"score"`
	Tier           string          `json:"tier"`
	ScoreBreakdown *ScoreBreakdown `json:"score_breakdown,omitempty"`

	Status  string `json:"status"`
	RawData string `json:"raw_data,omitempty"`

	// Version é o check otimista de concorrência no storage.
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AllText junta todo o texto pontuável do lead persistido.
func (l Lead) AllText() string {
	raw := RawLead{Bio: l.Bio, Notes: l.Notes, Messages: l.Messages, Comments: l.Comments}
	return raw.AllText()
}

// DisplayName retorna o melhor nome disponível para logs e alertas.
func (l Lead) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	if l.Username != "" {
		return l.Username
	}
	if l.Email != "" {
		return l.Email
	}
	return "Unknown"
}

// SignalMatch é um sinal do catálogo que bateu no texto, já com o peso
// efetivo (override + multiplicador de categoria) aplicado.
type SignalMatch struct {
	Phrase   string         `json:"phrase"`
	Weight   int            `json:"weight"`
	Category SignalCategory `json:"category"`
}

// ScoreBreakdown é o artefato de explicabilidade persistido junto do lead.
// Sempre reconstruível a partir de (texto, catálogo, config).
type ScoreBreakdown struct {
	Matches        []SignalMatch          `json:"matches"`
	CategoryScores map[SignalCategory]int `json:"category_scores"`
}

// AuditEntry registra imports e merges para rastreabilidade.
type AuditEntry struct {
	ID        string    `json:"id"`
	LeadID    int64     `json:"lead_id"`
	Kind      string    `json:"kind"` // import, merge
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
