package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/domain/repositories"
)

// ApprovalUsecase handles the admin review queue for seller registrations
type ApprovalUsecase struct {
	approvalRepo repositories.ApprovalRequestRepository
	sellerRepo   repositories.SellerProfileRepository
	documentRepo repositories.SellerDocumentRepository
	userRepo     repositories.UserRepository
	uow          repositories.UnitOfWork
}

// NewApprovalUsecase creates a new approval usecase
func NewApprovalUsecase(
	approvalRepo repositories.ApprovalRequestRepository,
	sellerRepo repositories.SellerProfileRepository,
	documentRepo repositories.SellerDocumentRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
) *ApprovalUsecase {
	return &ApprovalUsecase{
		approvalRepo: approvalRepo,
		sellerRepo:   sellerRepo,
		documentRepo: documentRepo,
		userRepo:     userRepo,
		uow:          uow,
	}
}

// ListPending returns the review queue, oldest submission first
func (u *ApprovalUsecase) ListPending(ctx context.Context) ([]*entities.PendingApproval, error) {
	return u.approvalRepo.ListPending(ctx)
}

// Approve resolves a pending request in the seller's favor. The request, the
// profile status, and the document statuses all move in one transaction.
// Resolving an already-resolved request is a conflict, not a repeat.
func (u *ApprovalUsecase) Approve(ctx context.Context, requestID, adminID uuid.UUID) (*entities.ApprovalSummary, error) {
	return u.resolve(ctx, requestID, adminID, entities.SellerActionApprove, "")
}

// Reject resolves a pending request against the seller, recording the
// reason. The seller may later resubmit.
func (u *ApprovalUsecase) Reject(ctx context.Context, requestID, adminID uuid.UUID, reason string) (*entities.ApprovalSummary, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) < entities.MinRejectionReasonLength {
		return nil, domainerrors.NewValidationError("reason", "rejection reason must be at least 10 characters")
	}
	return u.resolve(ctx, requestID, adminID, entities.SellerActionReject, reason)
}

func (u *ApprovalUsecase) resolve(ctx context.Context, requestID, adminID uuid.UUID, action entities.SellerAction, reason string) (*entities.ApprovalSummary, error) {
	request, err := u.approvalRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.IsResolved() {
		return nil, domainerrors.ErrAlreadyResolved
	}

	seller, err := u.sellerRepo.GetByID(ctx, request.SellerID)
	if err != nil {
		return nil, err
	}

	nextStatus, ok := entities.NextSellerStatus(seller.Status, action)
	if !ok {
		return nil, domainerrors.ErrWrongState
	}

	var (
		approvalStatus = entities.ApprovalStatusApproved
		documentStatus = entities.DocumentStatusApproved
		notes          null.String
		rejection      null.String
	)
	if action == entities.SellerActionReject {
		approvalStatus = entities.ApprovalStatusRejected
		documentStatus = entities.DocumentStatusRejected
		notes = null.StringFrom(reason)
		rejection = null.StringFrom(reason)
	}

	now := time.Now().UTC()
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		// Resolve only flips a PENDING row; a concurrent resolution makes
		// this report ErrNotFound and rolls the transaction back.
		if err := u.approvalRepo.Resolve(txCtx, requestID, approvalStatus, adminID, notes, now); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.ErrAlreadyResolved
			}
			return err
		}
		if err := u.sellerRepo.UpdateStatus(txCtx, seller.ID, nextStatus, rejection, now); err != nil {
			return err
		}
		if err := u.documentRepo.ResolvePending(txCtx, entities.DocumentSubjectSeller, seller.ID, documentStatus, rejection, now); err != nil {
			return err
		}
		// Approval verifies the owning account; rejection leaves it untouched.
		if action == entities.SellerActionApprove {
			return u.userRepo.SetVerified(txCtx, seller.UserID, true)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entities.ApprovalSummary{
		RequestID:   requestID,
		SellerID:    seller.ID,
		CompanyName: seller.CompanyName,
		Status:      approvalStatus,
		ResolvedBy:  adminID,
		ResolvedAt:  now,
		Notes:       notes,
	}, nil
}

// ListSellers returns seller profiles, optionally filtered by status
func (u *ApprovalUsecase) ListSellers(ctx context.Context, status entities.SellerStatus) ([]*entities.SellerProfile, error) {
	return u.sellerRepo.ListByStatus(ctx, status)
}

// SetUserBlocked blocks or unblocks an account
func (u *ApprovalUsecase) SetUserBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error {
	return u.userRepo.SetBlocked(ctx, userID, blocked)
}

// ListUsers returns accounts, optionally narrowed by role and a name/email
// search term.
func (u *ApprovalUsecase) ListUsers(ctx context.Context, role entities.UserRole, search string) ([]*entities.User, error) {
	return u.userRepo.List(ctx, role, strings.TrimSpace(search))
}

// DeleteUser soft-deletes an account. Admin accounts cannot be deleted
// through the API.
func (u *ApprovalUsecase) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role == entities.UserRoleAdmin {
		return domainerrors.Forbidden("admin accounts cannot be deleted")
	}
	return u.userRepo.SoftDelete(ctx, userID)
}
