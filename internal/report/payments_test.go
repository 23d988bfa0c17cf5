package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paylens-dev/paylens/internal/model"
)

func payment(group model.PaymentGroup, source string, productID int, amount string) model.PaymentReport {
	return model.PaymentReport{
		ReportID:  "r-" + source,
		Group:     group,
		SourceID:  source,
		ProductID: productID,
		Amount:    decimal.RequireFromString(amount),
		Date:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGroups(t *testing.T) {
	reports := []model.PaymentReport{
		payment(model.GroupPurchase, "app", 101, "25.00"),
		payment(model.GroupRefund, "web", 101, "10.00"),
		payment(model.GroupPurchase, "web", 102, "75.00"),
	}

	rows := Groups(reports)
	require.Len(t, rows, 2)

	assert.Equal(t, model.GroupPurchase, rows[0].Group)
	assert.Equal(t, 2, rows[0].Count)
	assert.True(t, rows[0].Total.Equal(decimal.RequireFromString("100.00")))

	assert.Equal(t, model.GroupRefund, rows[1].Group)
	assert.Equal(t, 1, rows[1].Count)
	assert.True(t, rows[1].Total.Equal(decimal.RequireFromString("10.00")))
}

func TestGroups_Empty(t *testing.T) {
	assert.Empty(t, Groups(nil))
}

func TestRefundShare(t *testing.T) {
	reports := []model.PaymentReport{
		payment(model.GroupPurchase, "app", 101, "90.00"),
		payment(model.GroupRefund, "web", 101, "10.00"),
	}

	share := RefundShare(reports)
	assert.True(t, share.Equal(decimal.RequireFromString("10.00")), "got %s", share)
}

func TestRefundShare_Rounds(t *testing.T) {
	reports := []model.PaymentReport{
		payment(model.GroupPurchase, "app", 101, "200.00"),
		payment(model.GroupRefund, "web", 101, "100.00"),
	}

	// 100/300 = 33.333... -> 33.33
	share := RefundShare(reports)
	assert.True(t, share.Equal(decimal.RequireFromString("33.33")), "got %s", share)
}

func TestRefundShare_ZeroTotal(t *testing.T) {
	assert.True(t, RefundShare(nil).IsZero())
	assert.True(t, RefundShare([]model.PaymentReport{
		payment(model.GroupPurchase, "app", 101, "0.00"),
	}).IsZero())
}

func TestSources_SortedByTotalDesc(t *testing.T) {
	reports := []model.PaymentReport{
		payment(model.GroupPurchase, "app", 101, "25.00"),
		payment(model.GroupPurchase, "web", 102, "75.00"),
		payment(model.GroupRefund, "app", 101, "10.00"),
		payment(model.GroupPurchase, "pos", 103, "75.00"),
	}

	rows := Sources(reports)
	require.Len(t, rows, 3)

	// pos and web tie at 75.00; tiebreak is source ID.
	assert.Equal(t, "pos", rows[0].SourceID)
	assert.Equal(t, "web", rows[1].SourceID)
	assert.Equal(t, "app", rows[2].SourceID)
	assert.Equal(t, 2, rows[2].Count)
	assert.True(t, rows[2].Total.Equal(decimal.RequireFromString("35.00")))
}
