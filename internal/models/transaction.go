package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a canonical transaction produced by the ingestion
// pipeline or entered manually.
//
// Amount always equals Expense: it is the unified expense magnitude all
// spending analytics operate on. Income-classified rows carry their
// magnitude in Income instead. Currency is always the base currency,
// conversion happens during ingestion.
type Transaction struct {
	Model
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Expense     decimal.Decimal `json:"expense" gorm:"type:DECIMAL(20,8)"`
	Income      decimal.Decimal `json:"income" gorm:"type:DECIMAL(20,8)"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`

	// ImportID groups the transactions of one ingestion run. It is
	// uuid.Nil for manual entries.
	ImportID uuid.UUID `json:"importId"`

	// Source preserves the cells of the raw record whose columns were
	// not consumed by the pipeline.
	Source SourceFields `json:"source,omitempty" gorm:"serializer:json"`
}

// SourceFields maps original column names to the raw cell values.
type SourceFields map[string]string

// BeforeSave stores the date in UTC. Reports convert back to the
// target timezone when filtering.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// AfterFind updates the date to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}
