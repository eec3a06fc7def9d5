package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"complyapi/internal/compliance"
	"complyapi/internal/model"
)

type MockPerceiver struct {
	mock.Mock
}

func (m *MockPerceiver) Perceive(ctx context.Context, chunk string, guidelines []*compliance.Guideline) (*compliance.LLMPerception, error) {
	args := m.Called(ctx, chunk, guidelines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compliance.LLMPerception), args.Error(1)
}

func (m *MockPerceiver) Classify(ctx context.Context, chunk string) (model.AdType, error) {
	args := m.Called(ctx, chunk)
	return args.Get(0).(model.AdType), args.Error(1)
}

func (m *MockPerceiver) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}
