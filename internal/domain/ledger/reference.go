package ledger

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Reference prefixes synthesized for, and recognized in searches over, each kind
const (
	PrefixExpense = "EXP"
	PrefixBill    = "BILL"
	PrefixVendor  = "VEN"
	PrefixReceipt = "RCPT"
	PrefixPayment = "PAY"
)

var referencePattern = regexp.MustCompile(`(?i)^([a-z]+)-?(\d+)$`)

// paymentTypePrefixes maps a payment type to the prefix of its synthesized reference
var paymentTypePrefixes = map[string]string{
	"rent":        "RENT",
	"deposit":     "DEP",
	"security":    "DEP",
	"utility":     "UTIL",
	"utilities":   "UTIL",
	"electricity": "UTIL",
	"maintenance": "MNT",
	"fee":         "FEE",
	"fees":        "FEE",
	"mess":        "FEE",
}

// ResolveReference recognizes a PREFIX-digits reference code in a free-text
// search and returns the numeric id it points at. The dash is optional and the
// prefix is matched case-insensitively against prefixes.
func ResolveReference(search string, prefixes []string) (int64, bool) {
	m := referencePattern.FindStringSubmatch(strings.TrimSpace(search))
	if m == nil {
		return 0, false
	}
	prefix := strings.ToUpper(m[1])
	known := false
	for _, p := range prefixes {
		if strings.EqualFold(p, prefix) {
			known = true
			break
		}
	}
	if !known {
		return 0, false
	}
	id, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// FormatReference renders a PREFIX-0007 style reference code
func FormatReference(prefix string, id int64) string {
	return fmt.Sprintf("%s-%04d", prefix, id)
}

// PaymentTypePrefix returns the reference prefix for a payment type
func PaymentTypePrefix(paymentType string) string {
	if p, ok := paymentTypePrefixes[strings.ToLower(strings.TrimSpace(paymentType))]; ok {
		return p
	}
	return PrefixPayment
}

// PaymentReferencePrefixes lists every prefix a payment reference may carry
func PaymentReferencePrefixes() []string {
	seen := map[string]bool{PrefixPayment: true, PrefixReceipt: true}
	for _, p := range paymentTypePrefixes {
		seen[p] = true
	}
	prefixes := make([]string, 0, len(seen))
	for p := range seen {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	return prefixes
}
