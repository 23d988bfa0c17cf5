package transactions

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paylens-dev/paylens/internal/model"
)

// Header is the CSV header for the transaction dataset.
const Header = "transaction_id,transaction_type_code,merchant_id,amount,sender_id,receiver_id,timestamp"

const (
	numFields    = 7
	colTxnID     = 0
	colTypeCode  = 1
	colMerchant  = 2
	colAmount    = 3
	colSender    = 4
	colReceiver  = 5
	colTimestamp = 6
)

// ReadTransactions reads all transaction rows from r.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transaction rows to w (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colTxnID] = txn.TransactionID
	row[colTypeCode] = strconv.Itoa(txn.TypeCode)
	row[colMerchant] = strconv.Itoa(txn.MerchantID)
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colSender] = txn.SenderID
	row[colReceiver] = txn.ReceiverID
	row[colTimestamp] = txn.Timestamp.Format(time.RFC3339)
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	typeCode, err := strconv.Atoi(record[colTypeCode])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing transaction_type_code %q: %w", record[colTypeCode], err)
	}

	merchantID, err := strconv.Atoi(record[colMerchant])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing merchant_id %q: %w", record[colMerchant], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return model.Transaction{
		TransactionID: record[colTxnID],
		TypeCode:      typeCode,
		MerchantID:    merchantID,
		Amount:        amount,
		SenderID:      record[colSender],
		ReceiverID:    record[colReceiver],
		Timestamp:     ts,
	}, nil
}
