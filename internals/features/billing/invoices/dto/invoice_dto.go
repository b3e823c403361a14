package dto

import (
	"time"

	contractService "armonia_backend/internals/features/billing/contracts/service"
	"armonia_backend/internals/features/billing/invoices/model"
)

// InvoiceResponse agrega display_status: igual al estado persistido salvo
// "atrasado", que solo existe al leer (pendiente y con el mes ya vencido).
type InvoiceResponse struct {
	model.InvoiceModel
	DisplayStatus string `json:"display_status"`
}

func FromModel(m model.InvoiceModel, today time.Time) InvoiceResponse {
	display := string(m.InvoiceStatus)
	if m.InvoiceStatus == model.InvoiceStatusPendiente &&
		contractService.IsOverdue(m.InvoiceMonth, today) {
		display = "atrasado"
	}
	return InvoiceResponse{InvoiceModel: m, DisplayStatus: display}
}

func FromModels(list []model.InvoiceModel, today time.Time) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m, today))
	}
	return out
}
