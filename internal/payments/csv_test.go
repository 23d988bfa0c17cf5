package payments

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paylens-dev/paylens/internal/model"
)

const sampleCSV = `report_id,payment_group,source_id,product_id,amount,date
r-001,purchase,app,101,25.00,2025-03-01
r-002,refund,web,101,10.50,2025-03-02
r-003,purchase,web,102,99.99,2025-03-02
`

func TestReadReports(t *testing.T) {
	reports, err := ReadReports(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, "r-001", reports[0].ReportID)
	assert.Equal(t, model.GroupPurchase, reports[0].Group)
	assert.Equal(t, "app", reports[0].SourceID)
	assert.Equal(t, 101, reports[0].ProductID)
	assert.True(t, reports[0].Amount.Equal(decimal.RequireFromString("25.00")))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), reports[0].Date)

	assert.Equal(t, model.GroupRefund, reports[1].Group)
}

func TestReadReports_HeaderOnly(t *testing.T) {
	reports, err := ReadReports(strings.NewReader("report_id,payment_group,source_id,product_id,amount,date\n"))
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestReadReports_BadAmount(t *testing.T) {
	bad := "report_id,payment_group,source_id,product_id,amount,date\nr-001,purchase,app,101,abc,2025-03-01\n"
	_, err := ReadReports(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "amount")
}

func TestReadReports_BadDate(t *testing.T) {
	bad := "report_id,payment_group,source_id,product_id,amount,date\nr-001,purchase,app,101,5.00,03/01/2025\n"
	_, err := ReadReports(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}

func TestWriteReports_RoundTrip(t *testing.T) {
	in, err := ReadReports(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReports(&buf, in))

	out, err := ReadReports(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
