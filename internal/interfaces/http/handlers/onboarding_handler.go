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

// OnboardingHandler handles the seller registration wizard endpoints
type OnboardingHandler struct {
	onboardingUsecase *usecases.OnboardingUsecase
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboardingUsecase *usecases.OnboardingUsecase) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUsecase: onboardingUsecase,
	}
}

// SubmitBusinessInfo handles wizard step 2
// PUT /api/v1/seller/register/business
func (h *OnboardingHandler) SubmitBusinessInfo(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.BusinessInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	profile, err := h.onboardingUsecase.SubmitBusinessInfo(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// UploadIdentityDocument handles wizard step 3 (multipart upload)
// POST /api/v1/seller/register/identity
func (h *OnboardingHandler) UploadIdentityDocument(c *gin.Context) {
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

	doc, err := h.onboardingUsecase.UploadIdentityDocument(c.Request.Context(), userID, &input, fileHeader.Filename, contentType, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"document": doc})
}

// SaveDocumentMetadata handles wizard step 4 (metadata upsert)
// PUT /api/v1/seller/register/identity
func (h *OnboardingHandler) SaveDocumentMetadata(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.DocumentMetadataInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	doc, err := h.onboardingUsecase.SaveDocumentMetadata(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"document": doc})
}

// FinalizeRegistration handles wizard step 5
// POST /api/v1/seller/register/submit
func (h *OnboardingHandler) FinalizeRegistration(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.FinalSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	profile, err := h.onboardingUsecase.FinalizeRegistration(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "registration submitted for review", gin.H{
		"profile": profile,
	})
}

// Resubmit reopens a rejected registration
// POST /api/v1/seller/register/resubmit
func (h *OnboardingHandler) Resubmit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	profile, err := h.onboardingUsecase.Resubmit(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// RegistrationStatus reports wizard progress
// GET /api/v1/seller/register/status
func (h *OnboardingHandler) RegistrationStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	status, err := h.onboardingUsecase.RegistrationStatus(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}
