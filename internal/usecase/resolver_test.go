package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/lead-engine/internal/entity"
)

func TestResolveBySourceIDWinsOverEmail(t *testing.T) {
	repo := new(MockLeadRepository)
	bySourceID := &entity.Lead{ID: 1, Source: "instagram", SourceID: "@buyer"}
	repo.On("FindBySourceID", context.Background(), "instagram", "@buyer").Return(bySourceID, nil)

	resolver := NewIdentityResolver(repo)
	lead, err := resolver.Resolve(context.Background(), entity.RawLead{
		Source:   "instagram",
		SourceID: "@buyer",
		Email:    "other@person.com", // identidade mais fraca, nem consultada
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), lead.ID)
	repo.AssertNotCalled(t, "FindByEmail", context.Background(), "other@person.com")
}

func TestResolveByEmailIsCaseInsensitive(t *testing.T) {
	repo := new(MockLeadRepository)
	byEmail := &entity.Lead{ID: 2, Email: "jane@example.com"}
	repo.On("FindByEmail", context.Background(), "jane@example.com").Return(byEmail, nil)

	resolver := NewIdentityResolver(repo)
	lead, err := resolver.Resolve(context.Background(), entity.RawLead{
		Source: "website",
		Email:  "  Jane@Example.COM ",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), lead.ID)
	repo.AssertExpectations(t)
}

func TestResolveByPhoneSuffix(t *testing.T) {
	repo := new(MockLeadRepository)
	byPhone := &entity.Lead{ID: 3, Phone: "614-555-0123"}
	repo.On("FindByPhoneSuffix", context.Background(), "6145550123").Return(byPhone, nil)

	resolver := NewIdentityResolver(repo)
	lead, err := resolver.Resolve(context.Background(), entity.RawLead{
		Source: "manual",
		Phone:  "+1 (614) 555-0123", // código de país descartado
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), lead.ID)
}

func TestResolveByUsernameAndSource(t *testing.T) {
	repo := new(MockLeadRepository)
	byUsername := &entity.Lead{ID: 4, Username: "househunter614"}
	repo.On("FindByUsername", context.Background(), "househunter614", "instagram").Return(byUsername, nil)

	resolver := NewIdentityResolver(repo)
	lead, err := resolver.Resolve(context.Background(), entity.RawLead{
		Source:   "instagram",
		Username: "HouseHunter614",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(4), lead.ID)
}

// Sem nenhum identificador: não consulta nada e devolve (nil, nil).
func TestResolveNoIdentifiers(t *testing.T) {
	repo := new(MockLeadRepository)

	resolver := NewIdentityResolver(repo)
	lead, err := resolver.Resolve(context.Background(), entity.RawLead{
		Source: "csv",
		Name:   "Anonymous Commenter",
		Bio:    "ready to buy",
	})

	assert.NoError(t, err)
	assert.Nil(t, lead)
	repo.AssertExpectations(t)
}

// Identidade forte sem match cai para a próxima, não desiste.
func TestResolveFallsThroughInOrder(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindBySourceID", context.Background(), "facebook", "fb-99").Return(nil, nil)
	repo.On("FindByEmail", context.Background(), "bob@example.com").Return(nil, nil)
	byPhone := &entity.Lead{ID: 5}
	repo.On("FindByPhoneSuffix", context.Background(), "6145559999").Return(byPhone, nil)

	resolver := NewIdentityResolver(repo)
	lead, err := resolver.Resolve(context.Background(), entity.RawLead{
		Source:   "facebook",
		SourceID: "fb-99",
		Email:    "bob@example.com",
		Phone:    "614.555.9999",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), lead.ID)
	repo.AssertExpectations(t)
}

func TestPhoneSuffix(t *testing.T) {
	assert.Equal(t, "6145550123", PhoneSuffix("+1 (614) 555-0123"))
	assert.Equal(t, "6145550123", PhoneSuffix("6145550123"))
	assert.Equal(t, "145550123", PhoneSuffix("145550123")) // menos de 10 dígitos fica como está
	assert.Equal(t, "", PhoneSuffix(""))
	assert.Equal(t, "", PhoneSuffix("no digits here"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
