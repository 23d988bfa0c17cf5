package products

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paylens-dev/paylens/internal/model"
)

func TestReadProducts(t *testing.T) {
	csv := "product_id,product_name,team_own\n" +
		"101,Wallet Pro,payments\n" +
		"102,Split It,social\n"

	prods, err := ReadProducts(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, prods, 2)
	assert.Equal(t, model.Product{ID: 101, Name: "Wallet Pro", TeamOwn: "payments"}, prods[0])
}

func TestReadProducts_BadID(t *testing.T) {
	csv := "product_id,product_name,team_own\nxyz,Wallet Pro,payments\n"
	_, err := ReadProducts(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestWriteProducts_RoundTrip(t *testing.T) {
	in := []model.Product{
		{ID: 101, Name: "Wallet Pro", TeamOwn: "payments"},
		{ID: 102, Name: "Split It", TeamOwn: "social"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteProducts(&buf, in))

	out, err := ReadProducts(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestServiceLookups(t *testing.T) {
	svc := NewService([]model.Product{
		{ID: 101, Name: "Wallet Pro", TeamOwn: "payments"},
		{ID: 102, Name: "Split It", TeamOwn: "social"},
	})

	team, ok := svc.TeamOf(101)
	require.True(t, ok)
	assert.Equal(t, "payments", team)

	_, ok = svc.TeamOf(999)
	assert.False(t, ok)

	p, ok := svc.Get(102)
	require.True(t, ok)
	assert.Equal(t, "Split It", p.Name)
}

func TestServiceDuplicateID_FirstWins(t *testing.T) {
	svc := NewService([]model.Product{
		{ID: 101, Name: "Wallet Pro", TeamOwn: "payments"},
		{ID: 101, Name: "Wallet Pro", TeamOwn: "growth"},
	})

	team, ok := svc.TeamOf(101)
	require.True(t, ok)
	assert.Equal(t, "payments", team)
}

func TestValidate_Clean(t *testing.T) {
	svc := NewService([]model.Product{
		{ID: 101, Name: "Wallet Pro", TeamOwn: "payments"},
		{ID: 102, Name: "Split It", TeamOwn: "social"},
	})
	assert.Empty(t, svc.Validate())
}

func TestValidate_ConflictingTeams(t *testing.T) {
	svc := NewService([]model.Product{
		{ID: 101, Name: "Wallet Pro", TeamOwn: "payments"},
		{ID: 101, Name: "Wallet Pro", TeamOwn: "growth"},
	})

	errs := svc.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, 101, errs[0].ProductID)
	assert.Contains(t, errs[0].Error(), "growth, payments")
}

func TestValidate_DuplicateRowsSameTeam(t *testing.T) {
	// Repeating a row is sloppy but not an ownership conflict.
	svc := NewService([]model.Product{
		{ID: 101, Name: "Wallet Pro", TeamOwn: "payments"},
		{ID: 101, Name: "Wallet Pro", TeamOwn: "payments"},
	})
	assert.Empty(t, svc.Validate())
}

func TestValidate_MissingTeam(t *testing.T) {
	svc := NewService([]model.Product{
		{ID: 103, Name: "Orphan", TeamOwn: ""},
	})

	errs := svc.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "missing team_own")
}
