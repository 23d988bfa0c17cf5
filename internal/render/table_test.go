package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Aligns(t *testing.T) {
	var buf bytes.Buffer
	err := Table(&buf, []string{"team", "total"}, [][]string{
		{"payments", "100.00"},
		{"social", "40.00"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "team")
	assert.Contains(t, out, "payments  100.00")
	assert.Contains(t, out, "social")
}

func TestTable_NoRows(t *testing.T) {
	var buf bytes.Buffer
	err := Table(&buf, []string{"a", "b"}, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "a")
}
