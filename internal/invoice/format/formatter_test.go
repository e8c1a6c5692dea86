package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInvoiceNumber(t *testing.T) {
	issued := time.Date(2026, time.March, 7, 10, 30, 0, 0, time.UTC)

	out, err := FormatInvoiceNumber(DefaultInvoiceNumberTemplate, issued, 42)
	require.NoError(t, err)
	assert.Equal(t, "INV-20260307-000042", out)
}

func TestFormatInvoiceNumberTokens(t *testing.T) {
	issued := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)

	out, err := FormatInvoiceNumber("{YY}/{MM}/{SEQ}", issued, 7)
	require.NoError(t, err)
	assert.Equal(t, "26/12/7", out)
}

func TestFormatInvoiceNumberErrors(t *testing.T) {
	issued := time.Now()

	_, err := FormatInvoiceNumber("", issued, 1)
	assert.Error(t, err)

	_, err = FormatInvoiceNumber("INV-{SEQ4}", issued, 0)
	assert.Error(t, err)

	_, err = FormatInvoiceNumber("INV-{UNKNOWN}", issued, 1)
	assert.Error(t, err)
}
