package transactions

import (
	"fmt"
	"os"

	"github.com/paylens-dev/paylens/internal/model"
)

// Service provides in-memory access to the transaction dataset.
type Service struct {
	txns []model.Transaction
}

// NewService creates a Service from a slice of transactions.
func NewService(txns []model.Transaction) *Service {
	return &Service{txns: txns}
}

// Load reads a transaction CSV from path and returns a Service.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transactions dataset: %w", err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading transactions dataset: %w", err)
	}
	return NewService(txns), nil
}

// All returns all transactions in input order.
func (s *Service) All() []model.Transaction {
	return s.txns
}
