package http

import "counter-service/internal/services"

// OrderForm is the body of the create and edit forms.
type OrderForm struct {
	CustomerName   string `form:"cliente_nombre" binding:"required"`
	Phone          string `form:"telefono"`
	Detail         string `form:"detalle" binding:"required"`
	NormalSoy      string `form:"soya_normal"`
	SweetSoy       string `form:"soya_dulce"`
	ChopstickPairs string `form:"palitos_pares"`
	PaymentMethod  string `form:"medio_pago" binding:"required"`
	Mode           string `form:"modalidad" binding:"required"`
	Address        string `form:"direccion"`
	Commune        string `form:"comuna"`
	Total          string `form:"monto_total_clp"`
	Notes          string `form:"observaciones"`
}

func (f OrderForm) Input() services.OrderInput {
	return services.OrderInput{
		CustomerName:   f.CustomerName,
		Phone:          f.Phone,
		Detail:         f.Detail,
		NormalSoy:      f.NormalSoy,
		SweetSoy:       f.SweetSoy,
		ChopstickPairs: f.ChopstickPairs,
		PaymentMethod:  f.PaymentMethod,
		Mode:           f.Mode,
		Address:        f.Address,
		Commune:        f.Commune,
		Total:          f.Total,
		Notes:          f.Notes,
	}
}

type ActionRequest struct {
	Action string `json:"action" binding:"required"`
	Paid   *bool  `json:"paid"`
}
