package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"complyapi/internal/compliance"
	"complyapi/internal/model"
	"complyapi/internal/service"
)

type MockComplianceService struct {
	mock.Mock
}

func (m *MockComplianceService) Check(ctx context.Context, sub service.Submission, adTypes []string) (*model.Report, error) {
	args := m.Called(ctx, sub, adTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockComplianceService) Classify(ctx context.Context, sub service.Submission) (*model.Classification, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Classification), args.Error(1)
}

func (m *MockComplianceService) Guidelines() []*compliance.Guideline {
	args := m.Called()
	return args.Get(0).([]*compliance.Guideline)
}

func (m *MockComplianceService) List(ctx context.Context, limit, offset int) (*service.CheckListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckListResult), args.Error(1)
}

func (m *MockComplianceService) Get(ctx context.Context, id string) (*model.ComplianceCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ComplianceCheck), args.Error(1)
}

func (m *MockComplianceService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockComplianceService) SourceURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
