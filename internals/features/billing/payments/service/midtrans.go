package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	invoiceModel "armonia_backend/internals/features/billing/invoices/model"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var (
	SnapClient snap.Client
	serverKey  string
)

// InitMidtrans inicializa el cliente Snap con el server key del entorno.
func InitMidtrans(key string) {
	serverKey = key
	SnapClient.New(key, midtrans.Sandbox)
}

// SignNotification calcula la firma de un webhook de Midtrans:
// sha512(order_id + status_code + gross_amount + server_key) en hex.
func SignNotification(orderID, statusCode, grossAmount, key string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + key))
	return hex.EncodeToString(sum[:])
}

// VerifyNotification compara el signature_key del webhook contra el calculado
// con el server key configurado.
func VerifyNotification(orderID, statusCode, grossAmount, signatureKey string) bool {
	expected := SignNotification(orderID, statusCode, grossAmount, serverKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signatureKey)) == 1
}

// GenerateSnapToken crea el token Snap para pagar una factura.
func GenerateSnapToken(orderID string, invoice invoiceModel.InvoiceModel, name, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(invoice.InvoiceAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
