package mysql

import (
	"context"

	"counter-service/internal/repository"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Conn checks out a dedicated connection from the pool and returns it once
// fn is done, whether fn fails or not.
func (s *Store) Conn(ctx context.Context, fn func(repository.Conn) error) error {
	return s.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		// tx carries the checked-out connection; NewDB keeps statements
		// from one query leaking into the next.
		return fn(conn{db: tx.Session(&gorm.Session{NewDB: true})})
	})
}

type conn struct {
	db *gorm.DB
}

func (c conn) Orders() repository.OrderRepository { return NewOrderRepository(c.db) }

func (c conn) Promos() repository.PromoRepository { return NewPromoRepository(c.db) }

var _ repository.Store = (*Store)(nil)
