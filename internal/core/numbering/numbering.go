// Package numbering hands out sequential document numbers of the form
// PREFIX-YYYYMM-NNNN, with an independent counter per document type per
// calendar month.
package numbering

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Generator interface {
	Next(prefix string, at time.Time) (string, error)
}

type generator struct {
	db *gorm.DB
}

func NewGenerator(db *gorm.DB) Generator {
	return &generator{db: db}
}

// Next increments the counter for (prefix, month) and formats the number.
// The upsert executes atomically in Postgres, so concurrent callers never
// see the same sequence value.
func (g *generator) Next(prefix string, at time.Time) (string, error) {
	key := fmt.Sprintf("%s_%s", prefix, at.Format("200601"))

	var seq int64
	err := g.db.Raw(`
		INSERT INTO document_counters (counter_key, seq)
		VALUES (?, 1)
		ON CONFLICT (counter_key)
		DO UPDATE SET seq = document_counters.seq + 1
		RETURNING seq
	`, key).Scan(&seq).Error
	if err != nil {
		return "", fmt.Errorf("failed to generate document number: %w", err)
	}

	return fmt.Sprintf("%s-%s-%04d", prefix, at.Format("200601"), seq), nil
}
