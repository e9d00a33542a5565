package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/interfaces/http/middleware"
	"tradeport.backend/internal/interfaces/http/response"
	"tradeport.backend/internal/usecases"
	"tradeport.backend/pkg/utils"
)

// AdminHandler handles the admin review queue and account management
type AdminHandler struct {
	approvalUsecase *usecases.ApprovalUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(approvalUsecase *usecases.ApprovalUsecase) *AdminHandler {
	return &AdminHandler{
		approvalUsecase: approvalUsecase,
	}
}

// ListPendingApprovals returns the review queue
// GET /api/v1/admin/seller-approvals/pending
func (h *AdminHandler) ListPendingApprovals(c *gin.Context) {
	pending, err := h.approvalUsecase.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"approvals": pending,
		"count":     len(pending),
	})
}

// ApproveSeller resolves a request in the seller's favor
// POST /api/v1/admin/seller-approvals/:id/approve
func (h *AdminHandler) ApproveSeller(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	requestID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid approval request id"))
		return
	}

	summary, err := h.approvalUsecase.Approve(c.Request.Context(), requestID, adminID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "seller approved", summary)
}

// RejectSeller resolves a request against the seller
// POST /api/v1/admin/seller-approvals/:id/reject
func (h *AdminHandler) RejectSeller(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	requestID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid approval request id"))
		return
	}

	var input entities.RejectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	summary, err := h.approvalUsecase.Reject(c.Request.Context(), requestID, adminID, input.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "seller rejected", summary)
}

// ListSellers returns seller profiles, optionally filtered by status
// GET /api/v1/admin/sellers?status=
func (h *AdminHandler) ListSellers(c *gin.Context) {
	status := entities.SellerStatus(c.Query("status"))

	sellers, err := h.approvalUsecase.ListSellers(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"sellers": sellers,
		"count":   len(sellers),
	})
}

// ListUsers returns accounts, optionally filtered by role and a search term
// GET /api/v1/admin/users?role=&search=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	role := entities.UserRole(c.Query("role"))

	users, err := h.approvalUsecase.ListUsers(c.Request.Context(), role, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

// DeleteUser soft-deletes an account
// DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	if err := h.approvalUsecase.DeleteUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "account deleted", nil)
}

// BlockUser blocks an account
// POST /api/v1/admin/users/:id/block
func (h *AdminHandler) BlockUser(c *gin.Context) {
	h.setBlocked(c, true, "account blocked")
}

// UnblockUser unblocks an account
// POST /api/v1/admin/users/:id/unblock
func (h *AdminHandler) UnblockUser(c *gin.Context) {
	h.setBlocked(c, false, "account unblocked")
}

func (h *AdminHandler) setBlocked(c *gin.Context, blocked bool, message string) {
	userID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	if err := h.approvalUsecase.SetUserBlocked(c.Request.Context(), userID, blocked); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, message, nil)
}
