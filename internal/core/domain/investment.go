package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentStatus represents the lifecycle state of an investment.
type InvestmentStatus string

const (
	InvestmentPending   InvestmentStatus = "pending"
	InvestmentApproved  InvestmentStatus = "approved"
	InvestmentRejected  InvestmentStatus = "rejected"
	InvestmentCompleted InvestmentStatus = "completed"
	InvestmentCancelled InvestmentStatus = "cancelled"
)

// conventionalTransitions is the documented status graph. It is advisory: the
// store accepts any write, and callers that rely on free-form transitions keep
// working. Unconventional transitions are logged, not rejected.
var conventionalTransitions = map[InvestmentStatus][]InvestmentStatus{
	InvestmentPending:  {InvestmentApproved, InvestmentRejected, InvestmentCancelled},
	InvestmentApproved: {InvestmentCompleted, InvestmentCancelled},
}

// IsConventionalTransition reports whether moving from s to next follows the
// documented graph.
func (s InvestmentStatus) IsConventionalTransition(next InvestmentStatus) bool {
	for _, allowed := range conventionalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Investment is an ownership record tying a user to an asset. Records are
// created and mutated, never deleted.
type Investment struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	AssetID         string           `json:"asset_id"`
	Amount          decimal.Decimal  `json:"amount"`
	Status          InvestmentStatus `json:"status"`
	KYCRequired     bool             `json:"kyc_required"`
	KYCCompleted    bool             `json:"kyc_completed"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
	Documents       []string         `json:"documents,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
}
