package billing

import "time"

// Receipt is the entitlement record: exactly one row per payer email,
// overwritten in full by every successful capture. Existence of a row is
// what "has paid" means — not a count, not a history.
type Receipt struct {
	Email     string    `gorm:"primaryKey" json:"email"`
	Reference string    `gorm:"not null" json:"reference"`
	AmountKES int64     `gorm:"column:amount_kes;not null" json:"amount_kes"`
	PaidAt    time.Time `json:"paid_at"`
	UpdatedAt time.Time `json:"-"`
}

// PaymentEvent is the append-only capture log behind the payment history
// view. Receipts answer "may this email read?", events answer "who paid
// what, when".
type PaymentEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"index;not null" json:"email"`
	Reference string    `gorm:"not null;uniqueIndex:idx_payment_events_reference" json:"reference"`
	AmountKES int64     `gorm:"column:amount_kes;not null" json:"amount_kes"`
	PaidAt    time.Time `json:"paid_at"`
}
