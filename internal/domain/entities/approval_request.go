package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ApprovalStatus represents approval request status
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// MinRejectionReasonLength is the minimum accepted length for an admin
// rejection reason.
const MinRejectionReasonLength = 10

// ApprovalRequest is the admin-queue record for a pending seller decision.
// At most one PENDING request exists per seller profile; a resolved request
// is terminal.
type ApprovalRequest struct {
	ID         uuid.UUID      `json:"id"`
	SellerID   uuid.UUID      `json:"sellerId"` // SellerProfile ID
	Status     ApprovalStatus `json:"status"`
	ResolvedBy uuid.NullUUID  `json:"resolvedBy,omitempty"`
	ResolvedAt null.Time      `json:"resolvedAt,omitempty"`
	Notes      null.String    `json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// IsResolved reports whether the request already received a decision.
func (r *ApprovalRequest) IsResolved() bool {
	return r.Status != ApprovalStatusPending
}

// RejectInput carries the admin rejection payload
type RejectInput struct {
	Reason string `json:"reason" binding:"required,min=10"`
}

// PendingApproval is an approval request joined with its seller context for
// the admin review list.
type PendingApproval struct {
	Request   *ApprovalRequest  `json:"request"`
	Seller    *SellerProfile    `json:"seller"`
	User      *User             `json:"user"`
	Documents []*SellerDocument `json:"documents"`
}

// ApprovalSummary is returned after an admin resolves a request
type ApprovalSummary struct {
	RequestID   uuid.UUID      `json:"requestId"`
	SellerID    uuid.UUID      `json:"sellerId"`
	CompanyName string         `json:"companyName"`
	Status      ApprovalStatus `json:"status"`
	ResolvedBy  uuid.UUID      `json:"resolvedBy"`
	ResolvedAt  time.Time      `json:"resolvedAt"`
	Notes       null.String    `json:"notes,omitempty"`
}
