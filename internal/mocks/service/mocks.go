// Package service provides testify mocks of the domain service interfaces.
package service

import (
	"context"
	"testing"
	"time"

	"prepai/internal/domain/entity"
	"prepai/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock that asserts its expectations when the test ends.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock that asserts its expectations when the test ends.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Sign(token *entity.SessionToken) (string, error) {
	args := m.Called(token)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Parse(tokenString string) (*entity.SessionToken, error) {
	args := m.Called(tokenString)
	token, _ := args.Get(0).(*entity.SessionToken)

	return token, args.Error(1)
}

func (m *MockTokenService) TTL() time.Duration {
	args := m.Called()
	ttl, _ := args.Get(0).(time.Duration)

	return ttl
}

// MockOAuthService is a mock of service.OAuthService.
type MockOAuthService struct {
	mock.Mock
}

// NewMockOAuthService creates a mock that asserts its expectations when the test ends.
func NewMockOAuthService(t *testing.T) *MockOAuthService {
	m := &MockOAuthService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOAuthService) NewState() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

func (m *MockOAuthService) ValidateState(state string) bool {
	return m.Called(state).Bool(0)
}

func (m *MockOAuthService) AuthCodeURL(state string) string {
	return m.Called(state).String(0)
}

func (m *MockOAuthService) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	args := m.Called(ctx, code)
	user, _ := args.Get(0).(*service.OAuthUser)

	return user, args.Error(1)
}

func (m *MockOAuthService) Provider() entity.ProviderType {
	args := m.Called()
	provider, _ := args.Get(0).(entity.ProviderType)

	return provider
}

// MockSeedSource is a mock of service.SeedSource.
type MockSeedSource struct {
	mock.Mock
}

// NewMockSeedSource creates a mock that asserts its expectations when the test ends.
func NewMockSeedSource(t *testing.T) *MockSeedSource {
	m := &MockSeedSource{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSeedSource) Problems() ([]*entity.DSAProblem, error) {
	args := m.Called()
	problems, _ := args.Get(0).([]*entity.DSAProblem)

	return problems, args.Error(1)
}

func (m *MockSeedSource) Questions() ([]*entity.InterviewQuestion, error) {
	args := m.Called()
	questions, _ := args.Get(0).([]*entity.InterviewQuestion)

	return questions, args.Error(1)
}
