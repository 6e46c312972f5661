package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/lead-engine/internal/entity"
)

// ============ MOCKS ============

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if lead, ok := args.Get(0).(*entity.Lead); ok {
		return lead, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeadRepository) FindBySourceID(ctx context.Context, source, sourceID string) (*entity.Lead, error) {
	args := m.Called(ctx, source, sourceID)
	if lead, ok := args.Get(0).(*entity.Lead); ok {
		return lead, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if lead, ok := args.Get(0).(*entity.Lead); ok {
		return lead, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeadRepository) FindByPhoneSuffix(ctx context.Context, suffix string) (*entity.Lead, error) {
	args := m.Called(ctx, suffix)
	if lead, ok := args.Get(0).(*entity.Lead); ok {
		return lead, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeadRepository) FindByUsername(ctx context.Context, username, source string) (*entity.Lead, error) {
	args := m.Called(ctx, username, source)
	if lead, ok := args.Get(0).(*entity.Lead); ok {
		return lead, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateScore(ctx context.Context, id int64, score int, tier string) error {
	args := m.Called(ctx, id, score, tier)
	return args.Error(0)
}

func (m *MockLeadRepository) RecordAudit(ctx context.Context, leadID int64, kind, content string) error {
	args := m.Called(ctx, leadID, kind, content)
	return args.Error(0)
}
