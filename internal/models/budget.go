package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the monthly spending limit for one category.
type Budget struct {
	Model
	Category string          `json:"category" gorm:"uniqueIndex"`
	Limit    decimal.Decimal `json:"limit" gorm:"type:DECIMAL(20,8)"`
}

// Budgets returns the budget mapping used by the analytics layer.
func Budgets(db *gorm.DB) (map[string]decimal.Decimal, error) {
	var budgets []Budget
	if err := db.Find(&budgets).Error; err != nil {
		return nil, err
	}

	mapping := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		mapping[b.Category] = b.Limit
	}

	return mapping, nil
}

// ReplaceBudgets replaces the complete budget mapping.
func ReplaceBudgets(db *gorm.DB, mapping map[string]decimal.Decimal) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Budget{}).Error; err != nil {
			return err
		}

		for category, limit := range mapping {
			if err := tx.Create(&Budget{Category: category, Limit: limit}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// SeedBudgets writes the default budget mapping if no budgets exist yet.
func SeedBudgets(db *gorm.DB, defaults map[string]float64) error {
	var count int64
	if err := db.Model(&Budget{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	for category, limit := range defaults {
		err := db.Create(&Budget{Category: category, Limit: decimal.NewFromFloat(limit)}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
