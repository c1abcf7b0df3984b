package domain

type Promo struct {
	Number int    `json:"promo_nro" gorm:"column:promo_nro;primaryKey;autoIncrement:false"`
	Detail string `json:"detalle" gorm:"column:detalle;type:text;not null"`
	Amount int64  `json:"monto" gorm:"column:monto;not null;default:0"`
}

func (Promo) TableName() string { return "promos" }
