package handler

import (
	"net/http"
	"strings"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/application/service"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/enum"
	infraRepo "github.com/Zitro-Services-LLC/zforms-sub001/internal/infrastructure/repository"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/apperror"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler serves generated PDF documents. The endpoint predates the
// rest of the API and keeps its own flat error shape and bearer check so
// existing clients keep working.
type DocumentHandler struct {
	documentService *service.DocumentService
	jwtManager      *utils.JWTManager
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, jwtManager *utils.JWTManager) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		jwtManager:      jwtManager,
	}
}

// RenderPDF renders the requested document as a PDF download
// @Summary Render Document PDF
// @Description Generate and download a PDF for an estimate, invoice or contract
// @Tags documents
// @Security BearerAuth
// @Produce application/pdf
// @Param type query string true "Document type (estimate, invoice, contract)"
// @Param id query string true "Document ID"
// @Success 200 {file} binary
// @Router /documents/pdf [get]
func (h *DocumentHandler) RenderPDF(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization header"})
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
		return
	}

	claims, err := h.jwtManager.ValidateAccessToken(parts[1])
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	docType, err := enum.ParseDocumentType(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document type"})
		return
	}

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document id"})
		return
	}

	ctx := infraRepo.WithContractor(c.Request.Context(), claims.ContractorID)

	doc, err := h.documentService.RenderDocument(ctx, docType, id)
	if err != nil {
		appErr := apperror.GetAppError(err)
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}
