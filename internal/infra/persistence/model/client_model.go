package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientModel is the GORM-specific struct for the 'clients' table.
type ClientModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CompanyName        string          `gorm:"type:varchar(255);not null"`
	MonthlyBudget      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Currency           string          `gorm:"type:varchar(3);not null;default:'MYR'"`
	Status             string          `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	Notes              *string         `gorm:"type:text"`
	GoogleCustomerID   *string         `gorm:"type:varchar(20);index"`
	GoogleConnectionID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	GoogleConnection *GoogleConnectionModel `gorm:"foreignKey:GoogleConnectionID"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}
