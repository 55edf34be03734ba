package queries_test

import (
	"context"

	"dispatchops/internal/core/domain/model/audit"
	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) AllOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) OrderByID(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockClientReader struct{ mock.Mock }

func (m *MockClientReader) AllClients(ctx context.Context) ([]*client.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.Client), args.Error(1)
}

type MockExecutorReader struct{ mock.Mock }

func (m *MockExecutorReader) AllExecutors(ctx context.Context) ([]*executor.Executor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*executor.Executor), args.Error(1)
}

type MockAuditReader struct{ mock.Mock }

func (m *MockAuditReader) AllEntries(ctx context.Context) ([]audit.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]audit.Entry), args.Error(1)
}

func (m *MockAuditReader) EntriesForEntity(ctx context.Context, entityID string) ([]audit.Entry, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]audit.Entry), args.Error(1)
}

type MockRevocationReader struct{ mock.Mock }

func (m *MockRevocationReader) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	args := m.Called(ctx, tokenHash)
	return args.Bool(0), args.Error(1)
}
