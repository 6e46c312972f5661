package usecase

import (
	"strings"

	"github.com/xavierca1/lead-engine/internal/entity"
)

// MergeLead dobra dados crus novos num lead existente sem destruir nada.
// Função pura: recebe cópia, devolve cópia. Regras por campo:
//   - escalar vazio + valor novo não-vazio => preenche;
//   - bio/notes => append, mas só se o texto novo ainda não é substring
//     do existente (reprocessar o mesmo registro cru é idempotente);
//   - messages/comments => união por valor.
func MergeLead(existing entity.Lead, raw entity.RawLead) entity.Lead {
	merged := existing

	if merged.Name == "" && raw.Name != "" {
		merged.Name = raw.Name
	}
	if merged.Email == "" && raw.Email != "" {
		merged.Email = NormalizeEmail(raw.Email)
	}
	if merged.Phone == "" && raw.Phone != "" {
		merged.Phone = raw.Phone
	}
	if merged.Username == "" && raw.Username != "" {
		merged.Username = raw.Username
	}
	if merged.SourceID == "" && raw.SourceID != "" && merged.Source == raw.Source {
		merged.SourceID = raw.SourceID
	}

	merged.Bio = appendText(merged.Bio, raw.Bio)
	merged.Notes = appendText(merged.Notes, raw.Notes)
	merged.Messages = unionStrings(merged.Messages, raw.Messages)
	merged.Comments = unionStrings(merged.Comments, raw.Comments)

	return merged
}

func appendText(existing, incoming string) string {
	if incoming == "" {
		return existing
	}
	if existing == "" {
		return incoming
	}
	if strings.Contains(existing, incoming) {
		return existing
	}
	return existing + "\n" + incoming
}

// unionStrings preserva a ordem do existente e anexa só o que for novo.
// A ordem não é significativa para scoring, mas determinismo facilita
// os testes de idempotência.
func unionStrings(existing, incoming []string) []string {
	if len(incoming) == 0 {
		return existing
	}

	seen := make(map[string]bool, len(existing))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, s := range existing {
		seen[s] = true
		merged = append(merged, s)
	}
	for _, s := range incoming {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	return merged
}
