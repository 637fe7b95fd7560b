package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pupperhq/pupper-api/internal/domain"
	"github.com/pupperhq/pupper-api/internal/submission"
)

type MockDogStore struct {
	mock.Mock
}

func (m *MockDogStore) Get(ctx context.Context, id string) (*domain.Dog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dog), args.Error(1)
}

func (m *MockDogStore) List(ctx context.Context, limit int32, nextToken string) ([]domain.Dog, string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Dog), args.String(1), args.Error(2)
}

type MockInteractionStore struct {
	mock.Mock
}

func (m *MockInteractionStore) Put(ctx context.Context, in *domain.Interaction) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockInteractionStore) LikedDogIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, req *submission.Request) (*domain.Dog, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dog), args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, description string) (string, error) {
	args := m.Called(ctx, description)
	return args.String(0), args.Error(1)
}
