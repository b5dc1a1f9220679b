// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pizza-service/internal/domain/model"
)

type MockCartsRepositoryInterface struct {
	mock.Mock
}

func NewMockCartsRepositoryInterface(t TestingT) *MockCartsRepositoryInterface {
	m := &MockCartsRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCartsRepositoryInterface) Load(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartLine), args.Error(1)
}

func (m *MockCartsRepositoryInterface) Save(ctx context.Context, sessionID string, lines []model.CartLine) error {
	args := m.Called(ctx, sessionID, lines)
	return args.Error(0)
}

func (m *MockCartsRepositoryInterface) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
