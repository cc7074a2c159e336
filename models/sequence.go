package models

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SequenceOrderNumber is the counter that issues order numbers.
const SequenceOrderNumber = "orderNumber"

// Sequence is a named durable counter holding the last issued value.
type Sequence struct {
	Name string `gorm:"primaryKey;type:varchar(64)" json:"name"`
	Seq  int64  `gorm:"not null;default:0" json:"seq"`
}

// NextSequence atomically increments the named counter and returns the new
// value, creating the counter on first use. The upsert and the read-back
// run in one transaction: MySQL holds the row lock from the ON DUPLICATE
// KEY update until commit and SQLite admits a single writer, so concurrent
// callers always observe distinct, consecutive values.
func NextSequence(db *gorm.DB, name string) (int64, error) {
	var seq Sequence
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"seq": gorm.Expr("seq + 1")}),
		}).Create(&Sequence{Name: name, Seq: 1}).Error; err != nil {
			return err
		}
		return tx.Where("name = ?", name).First(&seq).Error
	})
	if err != nil {
		return 0, fmt.Errorf("sequence %q: %w", name, err)
	}
	return seq.Seq, nil
}
