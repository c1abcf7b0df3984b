package mysql

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"counter-service/internal/domain"
	"counter-service/internal/logger"
	"counter-service/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// The MySQL enum columns are plain TEXT here.
const (
	ordersTable = `CREATE TABLE orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cliente_nombre TEXT NOT NULL,
		telefono TEXT,
		detalle TEXT NOT NULL,
		salsas TEXT,
		palitos_pares INTEGER NOT NULL DEFAULT 0,
		medio_pago TEXT NOT NULL,
		modalidad TEXT NOT NULL,
		direccion TEXT,
		comuna TEXT,
		monto_total_clp INTEGER NOT NULL DEFAULT 0,
		estado TEXT DEFAULT 'nuevo',
		observaciones TEXT,
		pagado BOOLEAN NOT NULL DEFAULT 0,
		hora_creacion DATETIME
	)`
	promosTable = `CREATE TABLE promos (
		promo_nro INTEGER PRIMARY KEY,
		detalle TEXT NOT NULL,
		monto INTEGER NOT NULL DEFAULT 0
	)`
)

var baseTime = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.NewGormLogger(gormlogger.Silent, 0),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: opens a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec(ordersTable).Error)
	require.NoError(t, db.Exec(promosTable).Error)
	return NewStore(db)
}

func withOrders(t *testing.T, s *Store, fn func(repo repository.OrderRepository)) {
	t.Helper()
	err := s.Conn(context.Background(), func(c repository.Conn) error {
		fn(c.Orders())
		return nil
	})
	require.NoError(t, err)
}

func testOrder(name string, status domain.OrderStatus, created time.Time) *domain.Order {
	return &domain.Order{
		CustomerName:  name,
		Detail:        "Promo 3",
		PaymentMethod: "efectivo",
		Mode:          domain.ModePickup,
		Total:         12990,
		Status:        status,
		CreatedAt:     created,
	}
}

// rawCondiments reads the stored salsas column, bypassing Condiments.Scan.
func rawCondiments(t *testing.T, s *Store, id uint64) sql.NullString {
	t.Helper()
	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	var v sql.NullString
	require.NoError(t, sqlDB.QueryRow("SELECT salsas FROM orders WHERE id = ?", id).Scan(&v))
	return v
}

func ids(orders []domain.Order) []uint64 {
	out := make([]uint64, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestOrderRepo_FindAll(t *testing.T) {
	s := newTestStore(t)
	withOrders(t, s, func(repo repository.OrderRepository) {
		require.NoError(t, repo.Save(testOrder("Ana", domain.StatusNew, baseTime.Add(3*time.Minute))))
		require.NoError(t, repo.Save(testOrder("Beto", domain.StatusReady, baseTime.Add(2*time.Minute))))
		require.NoError(t, repo.Save(testOrder("Carla", domain.StatusNew, baseTime.Add(time.Minute))))
		require.NoError(t, repo.Save(testOrder("Dani", domain.StatusNew, baseTime.Add(time.Minute))))
	})

	tests := []struct {
		name     string
		status   domain.OrderStatus
		expected []uint64
	}{
		{name: "only matching status, oldest first", status: domain.StatusNew, expected: []uint64{3, 4, 1}},
		{name: "single match", status: domain.StatusReady, expected: []uint64{2}},
		{name: "no match", status: domain.StatusCancelled, expected: []uint64{}},
		{name: "no filter", status: "", expected: []uint64{3, 4, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withOrders(t, s, func(repo repository.OrderRepository) {
				orders, err := repo.FindAll(tt.status)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, ids(orders))
				for _, o := range orders {
					if tt.status != "" {
						assert.Equal(t, tt.status, o.Status)
					}
				}
			})
		})
	}
}

func TestOrderRepo_SaveAndFindByID(t *testing.T) {
	s := newTestStore(t)
	phone := "+56911112222"
	order := testOrder("Ana", domain.StatusNew, baseTime)
	order.Phone = &phone
	order.Condiments = domain.Condiments{Normal: 2, Sweet: 1}
	order.ChopstickPairs = 3

	withOrders(t, s, func(repo repository.OrderRepository) {
		require.NoError(t, repo.Save(order))
		assert.Equal(t, uint64(1), order.ID)

		found, err := repo.FindByID(order.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Ana", found.CustomerName)
		assert.Equal(t, &phone, found.Phone)
		assert.Nil(t, found.Address)
		assert.Equal(t, domain.Condiments{Normal: 2, Sweet: 1}, found.Condiments)
		assert.Equal(t, 3, found.ChopstickPairs)
		assert.Equal(t, int64(12990), found.Total)
		assert.Equal(t, domain.ModePickup, found.Mode)
		assert.False(t, found.Paid)
		assert.True(t, baseTime.Equal(found.CreatedAt))

		missing, err := repo.FindByID(99)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	salsas := rawCondiments(t, s, order.ID)
	assert.True(t, salsas.Valid)
	assert.Equal(t, "normal:2;dulce:1", salsas.String)
}

func TestOrderRepo_Update(t *testing.T) {
	s := newTestStore(t)
	order := testOrder("Ana", domain.StatusNew, baseTime)
	order.Condiments = domain.Condiments{Normal: 1}

	withOrders(t, s, func(repo repository.OrderRepository) {
		require.NoError(t, repo.Save(order))
		require.NoError(t, repo.UpdateStatus(order.ID, domain.StatusReady))
		require.NoError(t, repo.UpdatePaid(order.ID, true))

		address, commune := "Av. Matta 1234", "Santiago"
		edited := &domain.Order{
			ID:            order.ID,
			CustomerName:  "Ana María",
			Detail:        "Promo 7",
			PaymentMethod: "transferencia",
			Mode:          domain.ModeDelivery,
			Address:       &address,
			Commune:       &commune,
			Total:         15990,
		}
		require.NoError(t, repo.Update(edited))

		found, err := repo.FindByID(order.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Ana María", found.CustomerName)
		assert.Equal(t, "Promo 7", found.Detail)
		assert.Equal(t, domain.ModeDelivery, found.Mode)
		assert.Equal(t, &address, found.Address)
		assert.Equal(t, int64(15990), found.Total)
		assert.True(t, found.Condiments.Empty())
		assert.Equal(t, domain.StatusReady, found.Status)
		assert.True(t, found.Paid)
		assert.True(t, baseTime.Equal(found.CreatedAt))
	})

	assert.False(t, rawCondiments(t, s, order.ID).Valid)
}

func TestPromoRepo_FindAll(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.db.Create(&[]domain.Promo{
		{Number: 7, Detail: "40 piezas", Amount: 21990},
		{Number: 1, Detail: "20 piezas", Amount: 11990},
	}).Error)

	err := s.Conn(context.Background(), func(c repository.Conn) error {
		promos, err := c.Promos().FindAll()
		require.NoError(t, err)
		if assert.Len(t, promos, 2) {
			assert.Equal(t, 1, promos[0].Number)
			assert.Equal(t, 7, promos[1].Number)
			assert.Equal(t, int64(21990), promos[1].Amount)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestStore_ConnReturnsError(t *testing.T) {
	s := newTestStore(t)
	boom := errors.New("boom")

	err := s.Conn(context.Background(), func(repository.Conn) error { return boom })
	assert.ErrorIs(t, err, boom)

	// the single pooled connection must be free again
	withOrders(t, s, func(repo repository.OrderRepository) {
		orders, err := repo.FindAll("")
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}
