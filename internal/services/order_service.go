package services

import (
	"context"
	"errors"
	"time"

	"counter-service/internal/domain"
	rabbit "counter-service/internal/infra/rabbitmq"
	"counter-service/internal/logger"
	"counter-service/internal/repository"

	"go.uber.org/zap"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	repo      repository.OrderRepository
	publisher rabbit.PublisherInterface
	now       func() time.Time
}

func NewOrderService(r repository.OrderRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		publisher: pub,
		now:       time.Now,
	}
}

func (u *OrderService) CreateOrder(ctx context.Context, in OrderInput) (*domain.Order, error) {
	fields, err := in.Normalize()
	if err != nil {
		return nil, err
	}

	order := &fields
	order.Status = domain.StatusNew
	order.Paid = false
	order.CreatedAt = u.now()

	if err := u.repo.Save(order); err != nil {
		return nil, err
	}

	u.publish(ctx, domain.EventOrderCreated, order, "")
	return order, nil
}

func (u *OrderService) GetOrderById(id uint64) (*domain.Order, error) {
	o, err := u.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// ListOrders returns orders oldest first, all of them when status is empty.
func (u *OrderService) ListOrders(status domain.OrderStatus) ([]domain.Order, error) {
	return u.repo.FindAll(status)
}

// UpdateOrder replaces the editable fields of an existing order.
func (u *OrderService) UpdateOrder(ctx context.Context, id uint64, in OrderInput) (*domain.Order, error) {
	fields, err := in.Normalize()
	if err != nil {
		return nil, err
	}

	order, err := u.GetOrderById(id)
	if err != nil {
		return nil, err
	}

	order.CustomerName = fields.CustomerName
	order.Phone = fields.Phone
	order.Detail = fields.Detail
	order.Condiments = fields.Condiments
	order.ChopstickPairs = fields.ChopstickPairs
	order.PaymentMethod = fields.PaymentMethod
	order.Mode = fields.Mode
	order.Address = fields.Address
	order.Commune = fields.Commune
	order.Total = fields.Total
	order.Notes = fields.Notes

	if err := u.repo.Update(order); err != nil {
		return nil, err
	}

	u.publish(ctx, domain.EventOrderUpdated, order, "")
	return order, nil
}

// ApplyAction moves the order through the kitchen workflow, or sets its
// payment flag for domain.ActionSetPaid.
//
// The status is read and then written without a row lock. Two concurrent
// "next" actions land on the same status; "next" racing "cancel" keeps
// whichever write lands last.
func (u *OrderService) ApplyAction(ctx context.Context, id uint64, action domain.Action, paid *bool) (*domain.Order, error) {
	order, err := u.GetOrderById(id)
	if err != nil {
		return nil, err
	}

	if action == domain.ActionSetPaid {
		if paid == nil {
			return nil, &ValidationError{Field: "paid", Reason: "is required for set_paid"}
		}
		if err := u.repo.UpdatePaid(id, *paid); err != nil {
			return nil, err
		}
		order.Paid = *paid
		u.publish(ctx, domain.EventOrderPaymentChanged, order, "")
		return order, nil
	}

	next, err := domain.Advance(order.Status, action)
	if err != nil {
		return nil, err
	}
	if err := u.repo.UpdateStatus(id, next); err != nil {
		return nil, err
	}

	previous := order.Status
	order.Status = next
	u.publish(ctx, domain.EventOrderStatusChanged, order, previous)
	return order, nil
}

// publish is best effort: the order is already stored, so a broker failure
// is logged and swallowed.
func (u *OrderService) publish(ctx context.Context, pattern string, order *domain.Order, previous domain.OrderStatus) {
	evt := domain.NewOrderEvent(order, previous, u.now())
	if err := u.publisher.Publish(ctx, pattern, evt); err != nil {
		logger.Log.Warn("failed to publish order event",
			zap.String("pattern", pattern),
			zap.Uint64("orderId", order.ID),
			zap.Error(err),
		)
	}
}
