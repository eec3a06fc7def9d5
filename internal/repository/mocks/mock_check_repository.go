package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"complyapi/internal/model"
	"complyapi/internal/repository"
)

type MockCheckRepository struct {
	mock.Mock
}

func (m *MockCheckRepository) Create(ctx context.Context, check *model.ComplianceCheck) (*model.ComplianceCheck, error) {
	args := m.Called(ctx, check)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ComplianceCheck), args.Error(1)
}

func (m *MockCheckRepository) FindByID(ctx context.Context, id string) (*model.ComplianceCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ComplianceCheck), args.Error(1)
}

func (m *MockCheckRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ComplianceCheck], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ComplianceCheck]), args.Error(1)
}

func (m *MockCheckRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
