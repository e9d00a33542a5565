package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/interfaces/http/middleware"
	"tradeport.backend/internal/interfaces/http/response"
	"tradeport.backend/internal/usecases"
)

// VerificationHandler handles buyer identity verification endpoints
type VerificationHandler struct {
	verificationUsecase *usecases.VerificationUsecase
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase *usecases.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{
		verificationUsecase: verificationUsecase,
	}
}

// VerifyIdentity accepts the buyer's identity document upload
// POST /api/v1/buyer/verify-identity
func (h *VerificationHandler) VerifyIdentity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.IdentityDocumentInput
	if err := c.ShouldBind(&input); err != nil {
		response.BindError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.NewValidationError("file", "document file is required"))
		return
	}
	if fileHeader.Size > entities.MaxDocumentSize {
		response.Error(c, domainerrors.NewValidationError("file", "document must not exceed 5 MB"))
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !entities.IsAllowedDocumentMIME(contentType) {
		response.Error(c, domainerrors.NewValidationError("file", "document must be a JPEG, PNG, WebP, or PDF"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	doc, err := h.verificationUsecase.VerifyIdentity(c.Request.Context(), userID, &input, fileHeader.Filename, contentType, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "identity verified", gin.H{
		"document": doc,
	})
}
