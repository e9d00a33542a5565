package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// SellerStatus represents the onboarding lifecycle state of a seller profile
type SellerStatus string

const (
	SellerStatusInProgress    SellerStatus = "IN_PROGRESS"
	SellerStatusPendingReview SellerStatus = "PENDING_REVIEW"
	SellerStatusApproved      SellerStatus = "APPROVED"
	SellerStatusRejected      SellerStatus = "REJECTED"
)

// SellerAction is an event that may advance a seller profile's status.
type SellerAction string

const (
	SellerActionSubmit   SellerAction = "SUBMIT"
	SellerActionApprove  SellerAction = "APPROVE"
	SellerActionReject   SellerAction = "REJECT"
	SellerActionResubmit SellerAction = "RESUBMIT"
)

// sellerTransitions is the single source of truth for status changes.
// Anything not listed here is an invalid transition.
var sellerTransitions = map[SellerStatus]map[SellerAction]SellerStatus{
	SellerStatusInProgress: {
		SellerActionSubmit: SellerStatusPendingReview,
	},
	SellerStatusPendingReview: {
		SellerActionApprove: SellerStatusApproved,
		SellerActionReject:  SellerStatusRejected,
	},
	SellerStatusRejected: {
		SellerActionResubmit: SellerStatusInProgress,
	},
}

// NextSellerStatus resolves the status reached by applying action to current.
// Returns false when the transition is not allowed, which covers both
// "wrong precondition state" and "already resolved".
func NextSellerStatus(current SellerStatus, action SellerAction) (SellerStatus, bool) {
	next, ok := sellerTransitions[current][action]
	return next, ok
}

// CanEditProfile reports whether onboarding data may still be changed.
func (s SellerStatus) CanEditProfile() bool {
	return s == SellerStatusInProgress
}

// CanListProducts reports whether the seller may create product listings.
func (s SellerStatus) CanListProducts() bool {
	return s == SellerStatusApproved
}

// IsTerminal reports whether the status can only change via an explicit
// resubmission (REJECTED) or not at all (APPROVED).
func (s SellerStatus) IsTerminal() bool {
	return s == SellerStatusApproved || s == SellerStatusRejected
}

// SellerProfile represents the business-facing extension of a SELLER account
type SellerProfile struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"userId"`
	CompanyName     string       `json:"companyName"`
	BusinessType    string       `json:"businessType"`
	AddressLine     null.String  `json:"addressLine,omitempty"`
	City            null.String  `json:"city,omitempty"`
	State           null.String  `json:"state,omitempty"`
	PostalCode      null.String  `json:"postalCode,omitempty"`
	Country         null.String  `json:"country,omitempty"`
	TaxID           null.String  `json:"taxId,omitempty"`
	Website         null.String  `json:"website,omitempty"`
	Bio             null.String  `json:"bio,omitempty"`
	LogoURL         null.String  `json:"logoUrl,omitempty"`
	Status          SellerStatus `json:"status"`
	RejectionReason null.String  `json:"rejectionReason,omitempty"`
	SubmittedAt     null.Time    `json:"submittedAt,omitempty"`
	ReviewedAt      null.Time    `json:"reviewedAt,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	DeletedAt       null.Time    `json:"-"`
}

// BusinessInfoInput represents onboarding step 2 (business info + logo)
type BusinessInfoInput struct {
	CompanyName  string `json:"companyName" binding:"required,min=2,max=255"`
	BusinessType string `json:"businessType" binding:"required"`
	LogoURL      string `json:"logoUrl" binding:"required,url"`
	AddressLine  string `json:"addressLine,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country,omitempty"`
	TaxID        string `json:"taxId,omitempty"`
	Website      string `json:"website,omitempty" binding:"omitempty,url"`
	Bio          string `json:"bio,omitempty"`
}

// FinalSubmissionInput represents onboarding step 5
type FinalSubmissionInput struct {
	TermsAccepted bool `json:"termsAccepted"`
}

// RegistrationStatusResponse reports where a seller is in the wizard
type RegistrationStatusResponse struct {
	ProfileID       uuid.UUID    `json:"profileId"`
	Status          SellerStatus `json:"status"`
	NextStep        string       `json:"nextStep,omitempty"`
	CompanyName     string       `json:"companyName,omitempty"`
	RejectionReason null.String  `json:"rejectionReason,omitempty"`
	SubmittedAt     null.Time    `json:"submittedAt,omitempty"`
	ReviewedAt      null.Time    `json:"reviewedAt,omitempty"`
}
