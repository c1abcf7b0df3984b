package mocks

import (
	"context"
	"time"

	"counter-service/internal/domain"
	"counter-service/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id uint64, status domain.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdatePaid(id uint64, paid bool) error {
	args := m.Called(id, paid)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id uint64) (*domain.Order, error) {
	args := m.Called(id)
	if o := args.Get(0); o != nil {
		return o.(*domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) FindAll(status domain.OrderStatus) ([]domain.Order, error) {
	args := m.Called(status)
	if o := args.Get(0); o != nil {
		return o.([]domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPromoRepository struct {
	mock.Mock
}

func (m *MockPromoRepository) FindAll() ([]domain.Promo, error) {
	args := m.Called()
	if p := args.Get(0); p != nil {
		return p.([]domain.Promo), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

// MockStore hands the same repositories to every unit of work and counts
// how many connections were checked out and returned.
type MockStore struct {
	Orders   *MockOrderRepository
	Promos   *MockPromoRepository
	Err      error
	Acquired int
	Released int
}

func NewMockStore() *MockStore {
	return &MockStore{
		Orders: new(MockOrderRepository),
		Promos: new(MockPromoRepository),
	}
}

func (s *MockStore) Conn(_ context.Context, fn func(repository.Conn) error) error {
	if s.Err != nil {
		return s.Err
	}
	s.Acquired++
	defer func() { s.Released++ }()
	return fn(mockConn{s})
}

type mockConn struct {
	s *MockStore
}

func (c mockConn) Orders() repository.OrderRepository { return c.s.Orders }

func (c mockConn) Promos() repository.PromoRepository { return c.s.Promos }

var (
	_ repository.OrderRepository = (*MockOrderRepository)(nil)
	_ repository.PromoRepository = (*MockPromoRepository)(nil)
	_ repository.Store           = (*MockStore)(nil)
)
