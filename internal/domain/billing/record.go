package billing

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordCapture persists a successful payment: the per-email receipt is
// replaced wholesale (last capture wins) and an event is appended to the
// history log. The verify callback and the webhook can both report the same
// capture, so a reference that was already logged is a no-op.
func RecordCapture(db *gorm.DB, email, reference string, amountKES int64, paidAt time.Time) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var seen int64
		if err := tx.Model(&PaymentEvent{}).Where("reference = ?", reference).Count(&seen).Error; err != nil {
			return err
		}
		if seen > 0 {
			return nil
		}

		receipt := Receipt{
			Email:     email,
			Reference: reference,
			AmountKES: amountKES,
			PaidAt:    paidAt,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			UpdateAll: true,
		}).Create(&receipt).Error; err != nil {
			return err
		}

		event := PaymentEvent{
			Email:     email,
			Reference: reference,
			AmountKES: amountKES,
			PaidAt:    paidAt,
		}
		return tx.Create(&event).Error
	})

	if err != nil {
		// A concurrent writer can slip past the seen-check and win the
		// unique index on the reference; if the event exists now, this
		// capture was already recorded and the error is not one.
		var seen int64
		if cerr := db.Model(&PaymentEvent{}).Where("reference = ?", reference).Count(&seen).Error; cerr == nil && seen > 0 {
			return nil
		}
		return err
	}
	return nil
}

// HasPaid reports whether a receipt exists for the email.
func HasPaid(db *gorm.DB, email string) (bool, error) {
	var n int64
	if err := db.Model(&Receipt{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
