package billing

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountingNotifier records a subscription-driven billing event with the
// accounting subsystem. The call is at-most-once with no retry: callers treat
// delivery as best-effort and must not fail their own workflow on error.
type AccountingNotifier interface {
	RecordSubscription(ctx context.Context, productID string, amount decimal.Decimal, description string) error
}
