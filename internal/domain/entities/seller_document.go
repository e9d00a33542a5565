package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DocumentSubject distinguishes who a verification document belongs to.
// Seller documents hang off a SellerProfile; buyer identity documents hang
// off the Account directly.
type DocumentSubject string

const (
	DocumentSubjectSeller DocumentSubject = "SELLER"
	DocumentSubjectBuyer  DocumentSubject = "BUYER"
)

// DocumentType represents accepted identity/business document kinds
type DocumentType string

const (
	DocumentTypeNationalID      DocumentType = "NATIONAL_ID"
	DocumentTypePassport        DocumentType = "PASSPORT"
	DocumentTypeDriversLicense  DocumentType = "DRIVERS_LICENSE"
	DocumentTypeBusinessLicense DocumentType = "BUSINESS_LICENSE"
)

// DocumentStatus represents document verification status
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "PENDING"
	DocumentStatusApproved DocumentStatus = "APPROVED"
	DocumentStatusRejected DocumentStatus = "REJECTED"
)

// MaxDocumentSize is the upload size cap for identity documents (5 MB).
const MaxDocumentSize = 5 << 20

var allowedDocumentMIME = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"application/pdf": {},
}

// IsAllowedDocumentMIME reports whether an uploaded file's content type is
// accepted for identity documents.
func IsAllowedDocumentMIME(contentType string) bool {
	_, ok := allowedDocumentMIME[contentType]
	return ok
}

// IsIdentityDocumentType reports whether a type is valid for the onboarding
// identity step (business licenses are uploaded elsewhere).
func IsIdentityDocumentType(t DocumentType) bool {
	return t == DocumentTypePassport || t == DocumentTypeNationalID
}

// SellerDocument represents an uploaded verification document
type SellerDocument struct {
	ID              uuid.UUID       `json:"id"`
	SubjectType     DocumentSubject `json:"subjectType"`
	SubjectID       uuid.UUID       `json:"subjectId"`
	Type            DocumentType    `json:"type"`
	Number          string          `json:"number"`
	URL             string          `json:"url"`
	ExpiresAt       null.Time       `json:"expiresAt,omitempty"`
	Status          DocumentStatus  `json:"status"`
	RejectionReason null.String     `json:"rejectionReason,omitempty"`
	VerifiedAt      null.Time       `json:"verifiedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// IdentityDocumentInput represents document metadata submitted with an upload
type IdentityDocumentInput struct {
	Type      DocumentType `form:"type" json:"type" binding:"required,oneof=PASSPORT NATIONAL_ID"`
	Number    string       `form:"number" json:"number" binding:"required"`
	ExpiresAt *time.Time   `form:"expiresAt" json:"expiresAt,omitempty"`
}

// DocumentMetadataInput represents the metadata-only upsert (onboarding
// step 4), which accepts the full document type set.
type DocumentMetadataInput struct {
	Type      DocumentType `json:"type" binding:"required,oneof=PASSPORT NATIONAL_ID DRIVERS_LICENSE BUSINESS_LICENSE"`
	Number    string       `json:"number" binding:"required"`
	URL       string       `json:"url,omitempty" binding:"omitempty,url"`
	ExpiresAt *time.Time   `json:"expiresAt,omitempty"`
}
