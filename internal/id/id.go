package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateFormat = "20060102"

// FormatTransactionID returns an ID like "20241101-02": the posting date
// plus a 2-digit, 1-based same-day sequence number. Lexicographic order on
// IDs matches posting order within a day, so sorting by (date, ID) is
// chronological.
func FormatTransactionID(date time.Time, seq int) string {
	return fmt.Sprintf("%s-%02d", date.Format(dateFormat), seq)
}

// ParseTransactionID splits an ID into its date and sequence parts.
func ParseTransactionID(txnID string) (date time.Time, seq int, err error) {
	parts := strings.SplitN(txnID, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid transaction ID format: %q", txnID)
	}

	date, err = time.ParseInLocation(dateFormat, parts[0], time.UTC)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid date in transaction ID %q: %w", txnID, err)
	}

	seq, err = strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid sequence in transaction ID %q: %w", txnID, err)
	}

	return date, seq, nil
}
