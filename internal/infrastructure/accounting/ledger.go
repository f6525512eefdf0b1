package accounting

import (
	"context"
	"fmt"
	"time"

	"github.com/clubhub/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LedgerEntryModel is the persistence model for recorded billing events
type LedgerEntryModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID   string          `gorm:"type:varchar(100);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Description string          `gorm:"type:text;not null"`
	RecordedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LedgerEntryModel) TableName() string {
	return "accounting_entries"
}

// GormLedgerNotifier records subscription billing events in the accounting
// ledger table. Callers treat RecordSubscription as best-effort; this
// implementation just reports failures and leaves the policy to them.
type GormLedgerNotifier struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormLedgerNotifier creates a new GormLedgerNotifier
func NewGormLedgerNotifier(db *gorm.DB, logger *zap.Logger) *GormLedgerNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormLedgerNotifier{db: db, logger: logger}
}

// RecordSubscription writes a ledger entry for a subscription billing event
func (n *GormLedgerNotifier) RecordSubscription(ctx context.Context, productID string, amount decimal.Decimal, description string) error {
	entry := &LedgerEntryModel{
		ID:          uuid.New(),
		ProductID:   productID,
		Amount:      amount,
		Description: description,
		RecordedAt:  time.Now(),
	}

	if err := n.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record accounting entry: %w", err)
	}

	n.logger.Debug("Recorded accounting entry",
		zap.String("product_id", productID),
		zap.String("amount", amount.String()))
	return nil
}

// Ensure GormLedgerNotifier implements billing.AccountingNotifier
var _ billing.AccountingNotifier = (*GormLedgerNotifier)(nil)
