package domain

import "context"

// UpdateProfileRequest replaces the stored profile wholesale; the profile is
// a singleton so partial patch semantics buy nothing here.
type UpdateProfileRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	GSTIN     string `json:"gstin"`
	State     string `json:"state"`
	StateCode string `json:"state_code"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`

	BankAccountHolderName string `json:"bank_account_holder_name"`
	BankName              string `json:"bank_name"`
	BankAccountNumber     string `json:"bank_account_number"`
	BankBranch            string `json:"bank_branch"`
	BankIFSCCode          string `json:"bank_ifsc_code"`

	DefaultNotes string `json:"default_notes"`
	DefaultTerms string `json:"default_terms"`
}

type Service interface {
	Get(ctx context.Context) (Profile, error)
	Update(ctx context.Context, req UpdateProfileRequest) (Profile, error)
}
