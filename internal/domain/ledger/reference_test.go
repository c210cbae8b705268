package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveReference(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		prefixes []string
		wantID   int64
		wantOK   bool
	}{
		{"dashed code", "EXP-0007", []string{PrefixExpense}, 7, true},
		{"undashed code", "EXP0007", []string{PrefixExpense}, 7, true},
		{"lower case", "exp-12", []string{PrefixExpense}, 12, true},
		{"surrounding space", "  BILL-3 ", []string{PrefixBill}, 3, true},
		{"unknown prefix", "VEN-0004", []string{PrefixExpense}, 0, false},
		{"free text", "electricity bill", []string{PrefixBill}, 0, false},
		{"digits only", "0007", []string{PrefixExpense}, 0, false},
		{"trailing text", "EXP-7 extra", []string{PrefixExpense}, 0, false},
		{"overflow", "EXP-99999999999999999999", []string{PrefixExpense}, 0, false},
		{"payment type prefix", "RENT-0042", PaymentReferencePrefixes(), 42, true},
		{"receipt prefix", "rcpt-5", PaymentReferencePrefixes(), 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ResolveReference(tt.search, tt.prefixes)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "EXP-0007", FormatReference(PrefixExpense, 7))
	assert.Equal(t, "BILL-0003", FormatReference(PrefixBill, 3))
	assert.Equal(t, "VEN-12345", FormatReference(PrefixVendor, 12345))
}

func TestFormatReference_RoundTrip(t *testing.T) {
	for _, id := range []int64{1, 7, 999, 10000} {
		id2, ok := ResolveReference(FormatReference(PrefixExpense, id), ExpenseSpec.ReferencePrefixes)
		assert.True(t, ok)
		assert.Equal(t, id, id2)
	}
}

func TestPaymentTypePrefix(t *testing.T) {
	assert.Equal(t, "RENT", PaymentTypePrefix("Rent"))
	assert.Equal(t, "DEP", PaymentTypePrefix("deposit"))
	assert.Equal(t, "UTIL", PaymentTypePrefix(" utilities "))
	assert.Equal(t, "MNT", PaymentTypePrefix("maintenance"))
	assert.Equal(t, "PAY", PaymentTypePrefix("donation"))
	assert.Equal(t, "PAY", PaymentTypePrefix(""))
}

func TestPaymentReferencePrefixes(t *testing.T) {
	prefixes := PaymentReferencePrefixes()
	for _, p := range []string{"RENT", "DEP", "UTIL", "MNT", "FEE", "PAY", "RCPT"} {
		assert.Contains(t, prefixes, p)
	}
	assert.IsIncreasing(t, prefixes)
}
