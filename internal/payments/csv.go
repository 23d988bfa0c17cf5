package payments

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

// Header is the CSV header for the payment report dataset.
const Header = "report_id,payment_group,source_id,product_id,amount,date"

const (
	numFields   = 6
	dateFormat  = "2006-01-02"
	colReportID = 0
	colGroup    = 1
	colSource   = 2
	colProduct  = 3
	colAmount   = 4
	colDate     = 5
)

// ReadReports reads all payment report rows from r.
func ReadReports(r io.Reader) ([]model.PaymentReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading payments CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var reports []model.PaymentReport
	for i, rec := range records[1:] {
		report, err := UnmarshalReport(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// WriteReports writes payment report rows to w (including header).
func WriteReports(w io.Writer, reports []model.PaymentReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, report := range reports {
		if err := cw.Write(MarshalReport(report)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalReport converts a PaymentReport to a CSV row.
func MarshalReport(report model.PaymentReport) []string {
	row := make([]string, numFields)
	row[colReportID] = report.ReportID
	row[colGroup] = string(report.Group)
	row[colSource] = report.SourceID
	row[colProduct] = strconv.Itoa(report.ProductID)
	row[colAmount] = report.Amount.StringFixed(2)
	row[colDate] = report.Date.Format(dateFormat)
	return row
}

// UnmarshalReport converts a CSV row to a PaymentReport.
func UnmarshalReport(record []string) (model.PaymentReport, error) {
	if len(record) != numFields {
		return model.PaymentReport{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	productID, err := strconv.Atoi(record[colProduct])
	if err != nil {
		return model.PaymentReport{}, fmt.Errorf("parsing product_id %q: %w", record[colProduct], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.PaymentReport{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.PaymentReport{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	return model.PaymentReport{
		ReportID:  record[colReportID],
		Group:     model.PaymentGroup(record[colGroup]),
		SourceID:  record[colSource],
		ProductID: productID,
		Amount:    amount,
		Date:      date,
	}, nil
}
