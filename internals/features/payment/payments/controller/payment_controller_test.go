package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapMidtransStatus(t *testing.T) {
	cases := []struct {
		name   string
		notif  midtransNotif
		expect string
	}{
		{"settlement settles", midtransNotif{TransactionStatus: "settlement"}, "settled"},
		{"accepted capture settles", midtransNotif{TransactionStatus: "capture", FraudStatus: "accept"}, "settled"},
		{"challenged capture stays pending", midtransNotif{TransactionStatus: "capture", FraudStatus: "challenge"}, ""},
		{"deny fails", midtransNotif{TransactionStatus: "deny"}, "failed"},
		{"cancel fails", midtransNotif{TransactionStatus: "cancel"}, "failed"},
		{"expire fails", midtransNotif{TransactionStatus: "expire"}, "failed"},
		{"failure fails", midtransNotif{TransactionStatus: "failure"}, "failed"},
		{"pending is a no-op", midtransNotif{TransactionStatus: "pending"}, ""},
		{"unknown is a no-op", midtransNotif{TransactionStatus: "refund"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, mapMidtransStatus(tc.notif))
		})
	}
}

func TestWebhookSignature(t *testing.T) {
	// worked example from the Midtrans docs formula:
	// SHA512(order_id + status_code + gross_amount + server_key)
	got := sha512sum("order-1" + "200" + "150000.00" + "secret")
	again := sha512sum("order-1" + "200" + "150000.00" + "secret")

	assert.Equal(t, got, again)
	assert.Len(t, got, 128) // hex-encoded sha512
	assert.NotEqual(t, got, sha512sum("order-1"+"200"+"150000.00"+"other-secret"))
}
