package http

import (
	"html/template"
	"strings"
	"time"

	"counter-service/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Which orders the counter table shows.
const (
	viewPending   = "pending"
	viewDelivered = "delivered"
	viewAll       = "all"
)

type orderRow struct {
	domain.Order
	Overdue bool
}

func rows(orders []domain.Order, keep func(domain.Order) bool, now time.Time, lateAfter time.Duration) []orderRow {
	out := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		if keep != nil && !keep(o) {
			continue
		}
		out = append(out, orderRow{Order: o, Overdue: o.Late(now, lateAfter)})
	}
	return out
}

func counterFilter(view string) func(domain.Order) bool {
	switch view {
	case viewDelivered:
		return func(o domain.Order) bool { return o.Status.HandedOver() }
	case viewAll:
		return nil
	}
	return func(o domain.Order) bool { return !o.Status.HandedOver() }
}

var templateFuncs = template.FuncMap{
	"clp":     formatCLP,
	"hhmm":    func(t time.Time) string { return t.Format("15:04") },
	"payment": paymentLabel,
	"status":  statusLabel,
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

var clpPrinter = message.NewPrinter(language.MustParse("es-CL"))

// formatCLP renders whole pesos the way Chilean receipts do: "$12.990".
func formatCLP(amount int64) string {
	s := clpPrinter.Sprintf("%d", amount)
	if digits, neg := strings.CutPrefix(s, "-"); neg {
		return "-$" + digits
	}
	return "$" + s
}

func paymentLabel(method string) string {
	switch strings.ToLower(method) {
	case "efectivo":
		return "Efectivo"
	case "transferencia":
		return "Transferencia"
	case "debito_credito":
		return "Débito/Crédito"
	case "":
		return "-"
	}
	return method
}

func statusLabel(s domain.OrderStatus) string {
	switch s {
	case domain.StatusNew:
		return "Nuevo"
	case domain.StatusPreparing:
		return "En preparación"
	case domain.StatusReady:
		return "Listo"
	case domain.StatusDispatched:
		return "Despachado"
	case domain.StatusDelivered:
		return "Entregado"
	case domain.StatusPickedUp:
		return "Retirado"
	case domain.StatusCancelled:
		return "Cancelado"
	}
	return string(s)
}
