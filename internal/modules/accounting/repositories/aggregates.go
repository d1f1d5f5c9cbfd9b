package repositories

import "github.com/shopspring/decimal"

// AccountTotal is a posted-total grouped by analytical account.
type AccountTotal struct {
	AccountID string          `gorm:"column:account_id"`
	Total     decimal.Decimal `gorm:"column:total"`
}

// TradeAggregate summarizes posted documents over a period.
type TradeAggregate struct {
	Count       int64           `gorm:"column:count"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount"`
	TotalPaid   decimal.Decimal `gorm:"column:total_paid"`
	TotalDue    decimal.Decimal `gorm:"column:total_due"`
}
