// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pizza-service/internal/domain/model"
)

type MockCache struct {
	mock.Mock
}

func NewMockCache(t TestingT) *MockCache {
	m := &MockCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCache) Get(key string) (model.Quote, bool) {
	args := m.Called(key)
	return args.Get(0).(model.Quote), args.Bool(1)
}

func (m *MockCache) Set(key string, value model.Quote) {
	m.Called(key, value)
}

func (m *MockCache) Invalidate(key string) {
	m.Called(key)
}

func (m *MockCache) Clear() {
	m.Called()
}

func (m *MockCache) Stop() {
	m.Called()
}
