package repository

import (
	"context"

	"counter-service/internal/domain"
)

// OrderRepository reads and writes the orders table. FindByID returns
// (nil, nil) when the order does not exist.
type OrderRepository interface {
	Save(order *domain.Order) error
	Update(order *domain.Order) error
	UpdateStatus(id uint64, status domain.OrderStatus) error
	UpdatePaid(id uint64, paid bool) error
	FindByID(id uint64) (*domain.Order, error)
	FindAll(status domain.OrderStatus) ([]domain.Order, error)
}

type PromoRepository interface {
	FindAll() ([]domain.Promo, error)
}

// Conn exposes the repositories bound to a single database connection.
type Conn interface {
	Orders() OrderRepository
	Promos() PromoRepository
}

// Store hands out one connection per unit of work. The connection is
// released when fn returns, on every path.
type Store interface {
	Conn(ctx context.Context, fn func(Conn) error) error
}
