// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/pizza-service/internal/domain/dto"
	"github.com/guttosm/pizza-service/internal/domain/model"
)

type MockAuthService struct {
	mock.Mock
}

func NewMockAuthService(t TestingT) *MockAuthService {
	m := &MockAuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, password)
	var pair *dto.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) Register(ctx context.Context, email, username, password, name string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, username, password, name)
	var pair *dto.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenPair), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

func (m *MockAuthService) InvalidateToken(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

func (m *MockAuthService) InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	args := m.Called(ctx, accessToken, refreshToken)
	return args.Error(0)
}
