package usecases

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/domain/repositories"
	"tradeport.backend/internal/infrastructure/storage"
)

// VerificationUsecase handles buyer identity verification. Buyers are not
// reviewed by an admin: a well-formed document verifies the account
// immediately.
type VerificationUsecase struct {
	userRepo     repositories.UserRepository
	documentRepo repositories.SellerDocumentRepository
	uow          repositories.UnitOfWork
	store        storage.ObjectStore
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	userRepo repositories.UserRepository,
	documentRepo repositories.SellerDocumentRepository,
	uow repositories.UnitOfWork,
	store storage.ObjectStore,
) *VerificationUsecase {
	return &VerificationUsecase{
		userRepo:     userRepo,
		documentRepo: documentRepo,
		uow:          uow,
		store:        store,
	}
}

// VerifyIdentity stores the buyer's identity document and marks the account
// verified, atomically.
func (u *VerificationUsecase) VerifyIdentity(ctx context.Context, userID uuid.UUID, input *entities.IdentityDocumentInput, filename, contentType string, file io.Reader) (*entities.SellerDocument, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != entities.UserRoleBuyer {
		return nil, domainerrors.Forbidden("identity verification is only available to buyer accounts")
	}
	if user.IsVerified {
		return nil, domainerrors.Conflict("account is already verified")
	}

	key := storage.DocumentKey(userID, filename)
	url, err := u.store.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := &entities.SellerDocument{
		SubjectType: entities.DocumentSubjectBuyer,
		SubjectID:   userID,
		Type:        input.Type,
		Number:      input.Number,
		URL:         url,
		ExpiresAt:   null.TimeFromPtr(input.ExpiresAt),
		Status:      entities.DocumentStatusApproved,
		VerifiedAt:  null.TimeFrom(now),
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.documentRepo.Upsert(txCtx, doc); err != nil {
			return err
		}
		// Upsert resets status to PENDING; buyers skip manual review.
		if err := u.documentRepo.ResolvePending(txCtx, entities.DocumentSubjectBuyer, userID, entities.DocumentStatusApproved, null.String{}, now); err != nil {
			return err
		}
		return u.userRepo.SetVerified(txCtx, userID, true)
	})
	if err != nil {
		return nil, err
	}

	doc.Status = entities.DocumentStatusApproved
	doc.VerifiedAt = null.TimeFrom(now)
	return doc, nil
}
