package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one row of the transaction dataset.
// TypeCode and MerchantID are the raw codes (transType / merchant_id)
// that the classifier turns into a human-readable label.
type Transaction struct {
	TransactionID string
	TypeCode      int
	MerchantID    int
	Amount        decimal.Decimal
	SenderID      string
	ReceiverID    string
	Timestamp     time.Time
}
