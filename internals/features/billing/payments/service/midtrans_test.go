package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignNotification(t *testing.T) {
	got := SignNotification("FACT-1700000000000000000", "200", "150000.00", "sk-prueba")
	assert.Equal(t,
		"c9688e98d0e453e16455ad84e9b21c5093023f0405ba1d2ea5888f8dc07a2b71030ab1be3385cad499122e37895ccdb8f45aeefb0cf8935cb7286084dcc48fb0",
		got)
}

func TestVerifyNotification(t *testing.T) {
	InitMidtrans("sk-prueba")

	orderID := "FACT-1700000000000000000"
	firma := SignNotification(orderID, "200", "150000.00", "sk-prueba")

	assert.True(t, VerifyNotification(orderID, "200", "150000.00", firma))

	// cualquier campo alterado invalida la firma
	assert.False(t, VerifyNotification(orderID, "200", "1.00", firma))
	assert.False(t, VerifyNotification("FACT-otro", "200", "150000.00", firma))
	assert.False(t, VerifyNotification(orderID, "201", "150000.00", firma))
	assert.False(t, VerifyNotification(orderID, "200", "150000.00", ""))
}
