package usecases

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/domain/repositories"
	"tradeport.backend/internal/infrastructure/storage"
)

// Onboarding wizard step names reported to the client.
const (
	StepBusinessInfo = "BUSINESS_INFO"
	StepIdentityDoc  = "IDENTITY_DOCUMENT"
	StepFinalSubmit  = "FINAL_SUBMISSION"
	StepAwaitReview  = "AWAITING_REVIEW"
	StepResubmit     = "RESUBMIT"
	StepComplete     = "COMPLETE"
)

// OnboardingUsecase walks a seller through the registration wizard
type OnboardingUsecase struct {
	sellerRepo   repositories.SellerProfileRepository
	documentRepo repositories.SellerDocumentRepository
	approvalRepo repositories.ApprovalRequestRepository
	uow          repositories.UnitOfWork
	store        storage.ObjectStore
}

// NewOnboardingUsecase creates a new onboarding usecase
func NewOnboardingUsecase(
	sellerRepo repositories.SellerProfileRepository,
	documentRepo repositories.SellerDocumentRepository,
	approvalRepo repositories.ApprovalRequestRepository,
	uow repositories.UnitOfWork,
	store storage.ObjectStore,
) *OnboardingUsecase {
	return &OnboardingUsecase{
		sellerRepo:   sellerRepo,
		documentRepo: documentRepo,
		approvalRepo: approvalRepo,
		uow:          uow,
		store:        store,
	}
}

// profileForEdit loads the caller's seller profile and enforces that the
// wizard data may still change.
func (u *OnboardingUsecase) profileForEdit(ctx context.Context, userID uuid.UUID) (*entities.SellerProfile, error) {
	profile, err := u.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.Status.CanEditProfile() {
		return nil, domainerrors.ErrWrongState
	}
	return profile, nil
}

// SubmitBusinessInfo records wizard step 2 (company details and logo)
func (u *OnboardingUsecase) SubmitBusinessInfo(ctx context.Context, userID uuid.UUID, input *entities.BusinessInfoInput) (*entities.SellerProfile, error) {
	profile, err := u.profileForEdit(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.CompanyName = input.CompanyName
	profile.BusinessType = input.BusinessType
	profile.LogoURL = null.StringFrom(input.LogoURL)
	profile.AddressLine = null.NewString(input.AddressLine, input.AddressLine != "")
	profile.City = null.NewString(input.City, input.City != "")
	profile.State = null.NewString(input.State, input.State != "")
	profile.PostalCode = null.NewString(input.PostalCode, input.PostalCode != "")
	profile.Country = null.NewString(input.Country, input.Country != "")
	profile.TaxID = null.NewString(input.TaxID, input.TaxID != "")
	profile.Website = null.NewString(input.Website, input.Website != "")
	profile.Bio = null.NewString(input.Bio, input.Bio != "")

	if err := u.sellerRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UploadIdentityDocument handles wizard step 3. The identity file is pushed
// to object storage, and because a verified identity is the last thing review
// waits on, this step also terminates onboarding: the profile moves to
// PENDING_REVIEW and the approval request is queued, all in one transaction.
// The metadata variant (steps 4 and 5) reaches the same end through an
// explicit final submission instead.
func (u *OnboardingUsecase) UploadIdentityDocument(ctx context.Context, userID uuid.UUID, input *entities.IdentityDocumentInput, filename, contentType string, file io.Reader) (*entities.SellerDocument, error) {
	profile, err := u.profileForEdit(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !entities.IsIdentityDocumentType(input.Type) {
		return nil, domainerrors.NewValidationError("type", "identity document must be a passport or national id")
	}

	next, ok := entities.NextSellerStatus(profile.Status, entities.SellerActionSubmit)
	if !ok {
		return nil, domainerrors.ErrWrongState
	}
	if err := u.guardNoPendingRequest(ctx, profile.ID); err != nil {
		return nil, err
	}

	key := storage.DocumentKey(profile.ID, filename)
	url, err := u.store.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, err
	}

	doc := &entities.SellerDocument{
		SubjectType: entities.DocumentSubjectSeller,
		SubjectID:   profile.ID,
		Type:        input.Type,
		Number:      input.Number,
		URL:         url,
		ExpiresAt:   null.TimeFromPtr(input.ExpiresAt),
		Status:      entities.DocumentStatusPending,
	}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.documentRepo.Upsert(txCtx, doc); err != nil {
			return err
		}
		if err := u.sellerRepo.UpdateStatus(txCtx, profile.ID, next, null.String{}, time.Time{}); err != nil {
			return err
		}
		return u.approvalRepo.Create(txCtx, &entities.ApprovalRequest{
			SellerID: profile.ID,
			Status:   entities.ApprovalStatusPending,
		})
	})
	if err != nil {
		return nil, err
	}

	profile.Status = next
	return doc, nil
}

// guardNoPendingRequest enforces at most one live approval request per
// seller across both onboarding variants.
func (u *OnboardingUsecase) guardNoPendingRequest(ctx context.Context, sellerID uuid.UUID) error {
	_, err := u.approvalRepo.GetPendingBySellerID(ctx, sellerID)
	if err == nil {
		return domainerrors.Conflict("a review request is already pending for this seller")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	return nil
}

// SaveDocumentMetadata handles wizard step 4: a metadata-only upsert for
// documents referenced by URL rather than uploaded here.
func (u *OnboardingUsecase) SaveDocumentMetadata(ctx context.Context, userID uuid.UUID, input *entities.DocumentMetadataInput) (*entities.SellerDocument, error) {
	profile, err := u.profileForEdit(ctx, userID)
	if err != nil {
		return nil, err
	}

	doc := &entities.SellerDocument{
		SubjectType: entities.DocumentSubjectSeller,
		SubjectID:   profile.ID,
		Type:        input.Type,
		Number:      input.Number,
		URL:         input.URL,
		ExpiresAt:   null.TimeFromPtr(input.ExpiresAt),
		Status:      entities.DocumentStatusPending,
	}
	if err := u.documentRepo.Upsert(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FinalizeRegistration handles wizard step 5. The profile moves to
// PENDING_REVIEW and the approval request lands in the admin queue, both in
// one transaction, so the queue can never reference a profile that did not
// actually submit.
func (u *OnboardingUsecase) FinalizeRegistration(ctx context.Context, userID uuid.UUID, input *entities.FinalSubmissionInput) (*entities.SellerProfile, error) {
	if !input.TermsAccepted {
		return nil, domainerrors.NewValidationError("termsAccepted", "terms must be accepted before submission")
	}

	profile, err := u.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, ok := entities.NextSellerStatus(profile.Status, entities.SellerActionSubmit)
	if !ok {
		return nil, domainerrors.ErrWrongState
	}

	if profile.CompanyName == "" || !profile.LogoURL.Valid {
		return nil, domainerrors.NewValidationError("companyName", "business information must be completed before submission")
	}
	docs, err := u.documentRepo.ListBySubject(ctx, entities.DocumentSubjectSeller, profile.ID)
	if err != nil {
		return nil, err
	}
	if !hasIdentityDocument(docs) {
		return nil, domainerrors.NewValidationError("document", "an identity document must be uploaded before submission")
	}

	if err := u.guardNoPendingRequest(ctx, profile.ID); err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.sellerRepo.UpdateStatus(txCtx, profile.ID, next, null.String{}, time.Time{}); err != nil {
			return err
		}
		request := &entities.ApprovalRequest{
			SellerID: profile.ID,
			Status:   entities.ApprovalStatusPending,
		}
		return u.approvalRepo.Create(txCtx, request)
	})
	if err != nil {
		return nil, err
	}

	profile.Status = next
	profile.SubmittedAt = null.TimeFrom(time.Now().UTC())
	return profile, nil
}

// Resubmit reopens a rejected registration for editing
func (u *OnboardingUsecase) Resubmit(ctx context.Context, userID uuid.UUID) (*entities.SellerProfile, error) {
	profile, err := u.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, ok := entities.NextSellerStatus(profile.Status, entities.SellerActionResubmit)
	if !ok {
		return nil, domainerrors.ErrWrongState
	}

	if err := u.sellerRepo.UpdateStatus(ctx, profile.ID, next, null.String{}, time.Time{}); err != nil {
		return nil, err
	}
	profile.Status = next
	profile.RejectionReason = null.String{}
	return profile, nil
}

// RegistrationStatus reports where the seller is in the wizard
func (u *OnboardingUsecase) RegistrationStatus(ctx context.Context, userID uuid.UUID) (*entities.RegistrationStatusResponse, error) {
	profile, err := u.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &entities.RegistrationStatusResponse{
		ProfileID:       profile.ID,
		Status:          profile.Status,
		CompanyName:     profile.CompanyName,
		RejectionReason: profile.RejectionReason,
		SubmittedAt:     profile.SubmittedAt,
		ReviewedAt:      profile.ReviewedAt,
	}

	switch profile.Status {
	case entities.SellerStatusInProgress:
		resp.NextStep, err = u.nextWizardStep(ctx, profile)
		if err != nil {
			return nil, err
		}
	case entities.SellerStatusPendingReview:
		resp.NextStep = StepAwaitReview
	case entities.SellerStatusRejected:
		resp.NextStep = StepResubmit
	case entities.SellerStatusApproved:
		resp.NextStep = StepComplete
	}
	return resp, nil
}

func (u *OnboardingUsecase) nextWizardStep(ctx context.Context, profile *entities.SellerProfile) (string, error) {
	if profile.CompanyName == "" || !profile.LogoURL.Valid {
		return StepBusinessInfo, nil
	}
	docs, err := u.documentRepo.ListBySubject(ctx, entities.DocumentSubjectSeller, profile.ID)
	if err != nil {
		return "", err
	}
	if !hasIdentityDocument(docs) {
		return StepIdentityDoc, nil
	}
	return StepFinalSubmit, nil
}

func hasIdentityDocument(docs []*entities.SellerDocument) bool {
	for _, doc := range docs {
		if entities.IsIdentityDocumentType(doc.Type) {
			return true
		}
	}
	return false
}
