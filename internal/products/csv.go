package products

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paylens-dev/paylens/internal/model"
)

// Header is the CSV header for the product catalog.
const Header = "product_id,product_name,team_own"

const (
	numFields = 3
	colID     = 0
	colName   = 1
	colTeam   = 2
)

// ReadProducts reads all catalog rows from r.
func ReadProducts(r io.Reader) ([]model.Product, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading products CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var products []model.Product
	for i, rec := range records[1:] {
		product, err := UnmarshalProduct(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		products = append(products, product)
	}
	return products, nil
}

// WriteProducts writes catalog rows to w (including header).
func WriteProducts(w io.Writer, products []model.Product) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, product := range products {
		if err := cw.Write(MarshalProduct(product)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalProduct converts a Product to a CSV row.
func MarshalProduct(product model.Product) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(product.ID)
	row[colName] = product.Name
	row[colTeam] = product.TeamOwn
	return row
}

// UnmarshalProduct converts a CSV row to a Product.
func UnmarshalProduct(record []string) (model.Product, error) {
	if len(record) != numFields {
		return model.Product{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Product{}, fmt.Errorf("parsing product_id %q: %w", record[colID], err)
	}

	return model.Product{
		ID:      id,
		Name:    record[colName],
		TeamOwn: record[colTeam],
	}, nil
}
