package domain

import "time"

type OrderStatus string

const (
	StatusNew        OrderStatus = "nuevo"
	StatusPreparing  OrderStatus = "en_preparacion"
	StatusReady      OrderStatus = "listo"
	StatusDispatched OrderStatus = "despachado"
	StatusDelivered  OrderStatus = "entregado"
	StatusPickedUp   OrderStatus = "retirado"
	StatusCancelled  OrderStatus = "cancelado"
)

// HandedOver reports whether the order has left the counter.
func (s OrderStatus) HandedOver() bool {
	switch s {
	case StatusDispatched, StatusDelivered, StatusPickedUp:
		return true
	}
	return false
}

type FulfillmentMode string

const (
	ModePickup   FulfillmentMode = "retiro"
	ModeDelivery FulfillmentMode = "despacho"
)

func (m FulfillmentMode) Valid() bool {
	return m == ModePickup || m == ModeDelivery
}

type Order struct {
	ID             uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerName   string          `json:"cliente_nombre" gorm:"column:cliente_nombre;not null"`
	Phone          *string         `json:"telefono" gorm:"column:telefono"`
	Detail         string          `json:"detalle" gorm:"column:detalle;type:text;not null"`
	Condiments     Condiments      `json:"salsas" gorm:"column:salsas;type:varchar(64)"`
	ChopstickPairs int             `json:"palitos_pares" gorm:"column:palitos_pares;not null;default:0"`
	PaymentMethod  string          `json:"medio_pago" gorm:"column:medio_pago;not null"`
	Mode           FulfillmentMode `json:"modalidad" gorm:"column:modalidad;type:enum('retiro','despacho');not null"`
	Address        *string         `json:"direccion" gorm:"column:direccion"`
	Commune        *string         `json:"comuna" gorm:"column:comuna"`
	Total          int64           `json:"monto_total_clp" gorm:"column:monto_total_clp;not null;default:0"`
	Status         OrderStatus     `json:"estado" gorm:"column:estado;type:enum('nuevo','en_preparacion','listo','despachado','entregado','retirado','cancelado');default:'nuevo';index"`
	Notes          *string         `json:"observaciones" gorm:"column:observaciones;type:text"`
	Paid           bool            `json:"pagado" gorm:"column:pagado;not null;default:false"`
	CreatedAt      time.Time       `json:"hora_creacion" gorm:"column:hora_creacion;autoCreateTime;index"`
}

func (Order) TableName() string { return "orders" }

// Late reports whether the order has been waiting at least threshold.
func (o Order) Late(now time.Time, threshold time.Duration) bool {
	if o.CreatedAt.IsZero() || threshold <= 0 {
		return false
	}
	return now.Sub(o.CreatedAt) >= threshold
}
