package services

import (
	"fmt"
	"strconv"
	"strings"

	"counter-service/internal/domain"
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// OrderInput is an order as typed at the counter, before any cleanup.
type OrderInput struct {
	CustomerName   string
	Phone          string
	Detail         string
	NormalSoy      string
	SweetSoy       string
	ChopstickPairs string
	PaymentMethod  string
	Mode           string
	Address        string
	Commune        string
	Total          string
	Notes          string
}

// Normalize validates the input and returns the order fields it describes.
// Address and commune are kept only for deliveries.
func (in OrderInput) Normalize() (domain.Order, error) {
	o := domain.Order{
		CustomerName:  strings.TrimSpace(in.CustomerName),
		Detail:        strings.TrimSpace(in.Detail),
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Mode:          domain.FulfillmentMode(strings.TrimSpace(in.Mode)),
	}

	if o.CustomerName == "" {
		return domain.Order{}, &ValidationError{Field: "cliente_nombre", Reason: "is required"}
	}
	if o.Detail == "" {
		return domain.Order{}, &ValidationError{Field: "detalle", Reason: "is required"}
	}
	if !o.Mode.Valid() {
		return domain.Order{}, &ValidationError{
			Field:  "modalidad",
			Reason: fmt.Sprintf("must be %q or %q", domain.ModePickup, domain.ModeDelivery),
		}
	}
	if o.PaymentMethod == "" {
		return domain.Order{}, &ValidationError{Field: "medio_pago", Reason: "is required"}
	}

	if o.Mode == domain.ModeDelivery {
		o.Address = optional(in.Address)
		o.Commune = optional(in.Commune)
	}

	o.Phone = optional(in.Phone)
	o.Notes = optional(in.Notes)
	o.Total = parseAmount(in.Total)
	o.ChopstickPairs = domain.ParseCount(strings.TrimSpace(in.ChopstickPairs))
	o.Condiments = domain.Condiments{
		Normal: domain.ParseCount(strings.TrimSpace(in.NormalSoy)),
		Sweet:  domain.ParseCount(strings.TrimSpace(in.SweetSoy)),
	}
	return o, nil
}

// parseAmount treats a missing or unreadable amount as 0. Negative amounts
// are kept as typed.
func parseAmount(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
