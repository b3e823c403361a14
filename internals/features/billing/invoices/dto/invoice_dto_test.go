package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"armonia_backend/internals/features/billing/invoices/model"
)

func invoice(status model.InvoiceStatusEnum, year int, month time.Month) model.InvoiceModel {
	return model.InvoiceModel{
		InvoiceStatus: status,
		InvoiceMonth:  time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestFromModelDisplayStatus(t *testing.T) {
	today := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		inv  model.InvoiceModel
		want string
	}{
		{"pendiente del mes en curso", invoice(model.InvoiceStatusPendiente, 2024, time.June), "pendiente"},
		{"pendiente de un mes futuro", invoice(model.InvoiceStatusPendiente, 2024, time.August), "pendiente"},
		{"pendiente con el mes vencido", invoice(model.InvoiceStatusPendiente, 2024, time.April), "atrasado"},
		{"pagada nunca se muestra atrasada", invoice(model.InvoiceStatusPagado, 2024, time.January), "pagado"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromModel(tt.inv, today)
			assert.Equal(t, tt.want, got.DisplayStatus)
		})
	}
}

func TestFromModelLastDayOfMonthWithClock(t *testing.T) {
	// time.Now() llega con hora; el 30 de junio por la tarde la factura de
	// junio todavía no está atrasada
	today := time.Date(2024, time.June, 30, 18, 45, 0, 0, time.UTC)
	got := FromModel(invoice(model.InvoiceStatusPendiente, 2024, time.June), today)
	assert.Equal(t, "pendiente", got.DisplayStatus)

	nextDay := time.Date(2024, time.July, 1, 0, 30, 0, 0, time.UTC)
	got = FromModel(invoice(model.InvoiceStatusPendiente, 2024, time.June), nextDay)
	assert.Equal(t, "atrasado", got.DisplayStatus)
}

func TestFromModels(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	list := []model.InvoiceModel{
		invoice(model.InvoiceStatusPendiente, 2024, time.May),
		invoice(model.InvoiceStatusPagado, 2024, time.May),
	}

	got := FromModels(list, today)
	assert.Len(t, got, 2)
	assert.Equal(t, "atrasado", got[0].DisplayStatus)
	assert.Equal(t, "pagado", got[1].DisplayStatus)
}
