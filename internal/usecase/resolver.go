package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/lead-engine/internal/entity"
)

// IdentityResolver decide se um registro cru pertence a um contato já
// conhecido. Puro read: nenhum efeito colateral.
type IdentityResolver struct {
	Repo LeadRepositoryInterface
}

func NewIdentityResolver(repo LeadRepositoryInterface) *IdentityResolver {
	return &IdentityResolver{Repo: repo}
}

// Resolve tenta os quatro sinais de identidade em ordem estrita de
// prioridade - o primeiro match ganha, sem best-score. Falso positivo de
// sinal fraco é pior que um merge perdido ocasional. Campos ausentes
// simplesmente não casam; retorna (nil, nil) quando nada bate.
func (r *IdentityResolver) Resolve(ctx context.Context, raw entity.RawLead) (*entity.Lead, error) {
	// 1. (source, source_id): unicidade garantida pela plataforma.
	if raw.SourceID != "" {
		lead, err := r.Repo.FindBySourceID(ctx, raw.Source, raw.SourceID)
		if err != nil || lead != nil {
			return lead, err
		}
	}

	// 2. Email normalizado, case-insensitive.
	if email := NormalizeEmail(raw.Email); email != "" {
		lead, err := r.Repo.FindByEmail(ctx, email)
		if err != nil || lead != nil {
			return lead, err
		}
	}

	// 3. Últimos 10 dígitos do telefone. Tolera código de país e
	// pontuação; colisão entre países com o mesmo sufixo é limitação
	// conhecida e aceita.
	if suffix := PhoneSuffix(raw.Phone); suffix != "" {
		lead, err := r.Repo.FindByPhoneSuffix(ctx, suffix)
		if err != nil || lead != nil {
			return lead, err
		}
	}

	// 4. (username, source), case-insensitive.
	if raw.Username != "" {
		lead, err := r.Repo.FindByUsername(ctx, strings.ToLower(raw.Username), raw.Source)
		if err != nil || lead != nil {
			return lead, err
		}
	}

	return nil, nil
}

// NormalizeEmail baixa caixa e apara espaços.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// PhoneSuffix reduz o telefone aos últimos 10 dígitos, descartando tudo
// que não for dígito.
func PhoneSuffix(phone string) string {
	var digits strings.Builder
	for _, c := range phone {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}
	d := digits.String()
	if len(d) > 10 {
		d = d[len(d)-10:]
	}
	return d
}
