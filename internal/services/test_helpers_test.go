package services

import (
	"time"

	"counter-service/internal/domain"
)

var testNow = time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)

func CreateMockOrder(id uint64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:            id,
		CustomerName:  TestCustomerName,
		Detail:        TestDetail,
		PaymentMethod: "efectivo",
		Mode:          domain.ModePickup,
		Total:         TestTotal,
		Status:        status,
		CreatedAt:     testNow.Add(-10 * time.Minute),
	}
}

func validInput() OrderInput {
	return OrderInput{
		CustomerName:  "  " + TestCustomerName + " ",
		Detail:        TestDetail,
		PaymentMethod: "efectivo",
		Mode:          string(domain.ModePickup),
		Total:         "12990",
		NormalSoy:     "2",
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

const (
	TestOrderID      = uint64(1)
	TestCustomerName = "Camila"
	TestDetail       = "Promo 3: 40 piezas"
	TestTotal        = int64(12990)
)
