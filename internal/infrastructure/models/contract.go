package models

import (
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// Contract is one row of the contracts table. Dates stay as raw
// YYYY-MM-DD text here; parsing happens when mapping to the entity. Amount
// is nullable on disk because rows written by other tools may omit it.
type Contract struct {
	ID           int64               `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string              `gorm:"column:name;type:varchar(255);not null"`
	CreatedDate  null.String         `gorm:"column:created_date;type:text"`
	EndDate      null.String         `gorm:"column:end_date;type:text"`
	Amount       decimal.NullDecimal `gorm:"column:amount;type:decimal(15,2)"`
	PartyOne     string              `gorm:"column:party_one;type:varchar(255);not null"`
	PartyTwo     null.String         `gorm:"column:party_two;type:varchar(255)"`
	DocumentPath null.String         `gorm:"column:document_path;type:text"`
}

func (Contract) TableName() string { return "contracts" }
