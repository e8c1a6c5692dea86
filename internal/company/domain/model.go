package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Profile is the single seller identity printed on every invoice: legal
// details, jurisdiction, and the remittance bank block.
type Profile struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	Address   string       `gorm:"type:text" json:"address"`
	GSTIN     string       `gorm:"type:text" json:"gstin"`
	State     string       `gorm:"type:text;not null" json:"state"`
	StateCode string       `gorm:"type:text;not null" json:"state_code"`
	Phone     string       `gorm:"type:text" json:"phone,omitempty"`
	Email     string       `gorm:"type:text" json:"email,omitempty"`

	BankAccountHolderName string `gorm:"type:text" json:"bank_account_holder_name,omitempty"`
	BankName              string `gorm:"type:text" json:"bank_name,omitempty"`
	BankAccountNumber     string `gorm:"type:text" json:"bank_account_number,omitempty"`
	BankBranch            string `gorm:"type:text" json:"bank_branch,omitempty"`
	BankIFSCCode          string `gorm:"column:bank_ifsc_code;type:text" json:"bank_ifsc_code,omitempty"`

	DefaultNotes string `gorm:"type:text" json:"default_notes,omitempty"`
	DefaultTerms string `gorm:"type:text" json:"default_terms,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Profile) TableName() string { return "company_profiles" }
