package mysql

import (
	"errors"
	"fmt"

	"counter-service/internal/domain"
	"counter-service/internal/logger"
	"counter-service/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(order *domain.Order) error {
	result := r.db.Create(order)
	if result.Error != nil {
		logger.Log.Error("save order", zap.Error(result.Error))
		return fmt.Errorf("save order: %w", result.Error)
	}
	if order.ID == 0 {
		return errors.New("save order: no id assigned")
	}
	logger.Log.Debug("order saved", zap.Uint64("id", order.ID))
	return nil
}

// Update overwrites every editable column. Status, payment flag and
// creation time are left alone.
func (r *orderRepo) Update(order *domain.Order) error {
	err := r.db.Model(&domain.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"cliente_nombre":  order.CustomerName,
			"telefono":        order.Phone,
			"detalle":         order.Detail,
			"salsas":          order.Condiments,
			"palitos_pares":   order.ChopstickPairs,
			"medio_pago":      order.PaymentMethod,
			"modalidad":       order.Mode,
			"direccion":       order.Address,
			"comuna":          order.Commune,
			"monto_total_clp": order.Total,
			"observaciones":   order.Notes,
		}).Error
	if err != nil {
		logger.Log.Error("update order", zap.Uint64("id", order.ID), zap.Error(err))
		return fmt.Errorf("update order %d: %w", order.ID, err)
	}
	return nil
}

func (r *orderRepo) UpdateStatus(id uint64, status domain.OrderStatus) error {
	if err := r.db.Model(&domain.Order{}).Where("id = ?", id).Update("estado", status).Error; err != nil {
		logger.Log.Error("update order status", zap.Uint64("id", id), zap.Error(err))
		return fmt.Errorf("update status of order %d: %w", id, err)
	}
	return nil
}

func (r *orderRepo) UpdatePaid(id uint64, paid bool) error {
	if err := r.db.Model(&domain.Order{}).Where("id = ?", id).Update("pagado", paid).Error; err != nil {
		logger.Log.Error("update order payment", zap.Uint64("id", id), zap.Error(err))
		return fmt.Errorf("update payment of order %d: %w", id, err)
	}
	return nil
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Log.Error("find order", zap.Uint64("id", id), zap.Error(err))
		return nil, fmt.Errorf("find order %d: %w", id, err)
	}
	return &o, nil
}

// FindAll lists orders oldest first. An empty status lists every order.
func (r *orderRepo) FindAll(status domain.OrderStatus) ([]domain.Order, error) {
	out := []domain.Order{}
	q := r.db.Order("hora_creacion ASC").Order("id ASC")
	if status != "" {
		q = q.Where("estado = ?", status)
	}
	if err := q.Find(&out).Error; err != nil {
		logger.Log.Error("list orders", zap.String("estado", string(status)), zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}
