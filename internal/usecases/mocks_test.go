package usecases_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"scheme-sense.backend/internal/domain/entities"
	"scheme-sense.backend/internal/usecases"
	"scheme-sense.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	os.Exit(m.Run())
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.UserProfile) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserProfile), args.Error(1)
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phone string) (*entities.UserProfile, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserProfile), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.UserProfile) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Mock SchemeRepository
type MockSchemeRepository struct {
	mock.Mock
}

func (m *MockSchemeRepository) CreateBatch(ctx context.Context, schemes []*entities.Scheme) error {
	args := m.Called(ctx, schemes)
	return args.Error(0)
}

func (m *MockSchemeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Scheme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Scheme), args.Error(1)
}

func (m *MockSchemeRepository) List(ctx context.Context) ([]*entities.Scheme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Scheme), args.Error(1)
}

func (m *MockSchemeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *entities.SchemeApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.SchemeApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SchemeApplication), args.Error(1)
}

func (m *MockApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.SchemeApplication, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.SchemeApplication), args.Int(1), args.Error(2)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// Mock MatchCache
type MockMatchCache struct {
	mock.Mock
}

func (m *MockMatchCache) Put(ctx context.Context, userID uuid.UUID, schemeIDs []uuid.UUID) error {
	args := m.Called(ctx, userID, schemeIDs)
	return args.Error(0)
}

func (m *MockMatchCache) Get(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]uuid.UUID), args.Bool(1), args.Error(2)
}

func (m *MockMatchCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Mock AdvisoryClient
type MockAdvisoryClient struct {
	mock.Mock
}

func (m *MockAdvisoryClient) GenerateAdvice(ctx context.Context, systemInstruction, prompt string) (string, error) {
	args := m.Called(ctx, systemInstruction, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockAdvisoryClient) OpenConversation(ctx context.Context, systemInstruction string) (usecases.AdvisoryConversation, error) {
	args := m.Called(ctx, systemInstruction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecases.AdvisoryConversation), args.Error(1)
}

// Mock AdvisoryConversation
type MockAdvisoryConversation struct {
	mock.Mock

	// chunks are fed to onChunk when SendMessage succeeds
	chunks []string
}

func (m *MockAdvisoryConversation) SendMessage(ctx context.Context, message string, onChunk func(text string) error) error {
	args := m.Called(ctx, message)
	if err := args.Error(0); err != nil {
		return err
	}
	for _, chunk := range m.chunks {
		if err := onChunk(chunk); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockAdvisoryConversation) Close() {
	m.Called()
}
