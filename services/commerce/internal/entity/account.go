package entity

import "time"

type AuditReason string

const (
	ReasonGeneration AuditReason = "generation"
	ReasonUnlock     AuditReason = "unlock"
	ReasonDownload   AuditReason = "download"
	ReasonGrant      AuditReason = "grant"
)

// ValidSpendReason reports whether a reason is accepted for debits
// requested directly by clients.
func ValidSpendReason(r AuditReason) bool {
	switch r {
	case ReasonGeneration, ReasonUnlock, ReasonDownload:
		return true
	}
	return false
}

type Account struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuditEntry struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Amount    int         `json:"amount"`
	Reason    AuditReason `json:"reason"`
	Ref       string      `json:"ref,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
