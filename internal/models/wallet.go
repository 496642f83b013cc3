package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletStatusActive is the status of every newly provisioned wallet.
const WalletStatusActive = "active"

type Wallet struct {
	ID        uint            `gorm:"primarykey"`
	UserID    uint            `gorm:"uniqueIndex;not null"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	Currency  string          `gorm:"size:3;default:'USD'"`
	Status    string          `gorm:"default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// Ensure balance starts at 0
	w.Balance = decimal.Zero
	return nil
}

// WalletDTO is the wallet shape returned across the service boundary.
type WalletDTO struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
