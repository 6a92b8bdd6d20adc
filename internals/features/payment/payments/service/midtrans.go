package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"quranku_backend/internals/configs"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans must be called once at bootstrap, after LoadEnv.
func InitMidtrans(serverKey string) {
	if configs.GetEnv("APP_ENV", "development") == "production" {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Generate Snap Token
========================================================= */

type CustomerInput struct {
	Name  string
	Email string
}

func GenerateSnapToken(orderID string, amount int64, plan string, cust CustomerInput) (string, error) {
	if amount <= 0 {
		return "", errors.New("invalid amount")
	}
	if orderID == "" {
		return "", errors.New("order id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       orderID,
				Price:    amount,
				Qty:      1,
				Name:     plan + " plan subscription",
				Category: "subscription",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
