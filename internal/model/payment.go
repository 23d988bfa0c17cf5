package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentGroup is the categorical tag on a payment report row.
type PaymentGroup string

const (
	GroupPurchase PaymentGroup = "purchase"
	GroupRefund   PaymentGroup = "refund"
)

// PaymentReport represents one row of the payment report dataset.
type PaymentReport struct {
	ReportID  string
	Group     PaymentGroup
	SourceID  string // originating channel/system
	ProductID int
	Amount    decimal.Decimal
	Date      time.Time
}
