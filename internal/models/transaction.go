package models

import "time"

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

// Supported transaction statuses
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusCancelled TransactionStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status transition is allowed from s.
func (s TransactionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Transaction is a single drive-through cash or transfer operation.
// swagger:model Transaction
type Transaction struct {
	ID            string            `json:"id"`                      // Opaque unique identifier
	Type          string            `json:"type"`                    // Category label, e.g. "Pembayaran Digital"
	CustomerName  string            `json:"customerName"`            // Filled by the customer form
	Amount        int64             `json:"amount"`                  // IDR, 0 means not yet specified
	Status        TransactionStatus `json:"status"`                  // pending, completed or cancelled
	Date          time.Time         `json:"date"`                    // Creation timestamp
	Notes         string            `json:"notes,omitempty"`         // Optional free text
	Bank          string            `json:"bank,omitempty"`          // Optional bank name
	AccountNumber string            `json:"accountNumber,omitempty"` // Optional account number
}

// NewTransaction holds the caller-supplied fields of a transaction being created.
type NewTransaction struct {
	Type          string
	CustomerName  string
	Amount        int64
	Notes         string
	Bank          string
	AccountNumber string
}

// TransactionPatch is a partial update merged onto a stored transaction.
// Nil fields are left untouched.
type TransactionPatch struct {
	Type          *string
	CustomerName  *string
	Amount        *int64
	Status        *TransactionStatus
	Notes         *string
	Bank          *string
	AccountNumber *string
}

// Apply merges the non-nil fields of p into tx.
func (p TransactionPatch) Apply(tx *Transaction) {
	if p.Type != nil {
		tx.Type = *p.Type
	}
	if p.CustomerName != nil {
		tx.CustomerName = *p.CustomerName
	}
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}
	if p.Status != nil {
		tx.Status = *p.Status
	}
	if p.Notes != nil {
		tx.Notes = *p.Notes
	}
	if p.Bank != nil {
		tx.Bank = *p.Bank
	}
	if p.AccountNumber != nil {
		tx.AccountNumber = *p.AccountNumber
	}
}

// TransactionUpdate is one of the update kinds accepted from the outside:
// StatusUpdate (cashier) or DetailUpdate (customer form).
type TransactionUpdate interface {
	Patch() TransactionPatch
}

// StatusUpdate changes the status of a transaction.
type StatusUpdate struct {
	Status TransactionStatus
}

// Patch implements TransactionUpdate.
func (u StatusUpdate) Patch() TransactionPatch {
	status := u.Status
	return TransactionPatch{Status: &status}
}

// DetailUpdate fills in the customer's name and amount.
type DetailUpdate struct {
	CustomerName string
	Amount       int64
}

// Patch implements TransactionUpdate.
func (u DetailUpdate) Patch() TransactionPatch {
	name, amount := u.CustomerName, u.Amount
	return TransactionPatch{CustomerName: &name, Amount: &amount}
}
