package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/grievance-service/internal/service"
)

type DocumentHandler struct {
	svc service.DocumentServicer
}

func NewDocumentHandler(svc service.DocumentServicer) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

type documentUploadRequest struct {
	FileName       string `json:"file_name" binding:"required"`
	FileType       string `json:"file_type"`
	FileDataBase64 string `json:"file_data_base64" binding:"required"`
}

func (h *DocumentHandler) Upload(c *gin.Context) {
	grievanceID, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	userID, ok := callerID(c)
	if !ok {
		badRequest(c, "missing or invalid X-User-Id")
		return
	}
	role, ok := callerRole(c)
	if !ok {
		badRequest(c, "missing or unknown X-User-Role")
		return
	}
	var req documentUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	meta, err := h.svc.Upload(c.Request.Context(), service.DocumentUploadInput{
		GrievanceID:    grievanceID,
		FileName:       req.FileName,
		FileType:       req.FileType,
		FileDataBase64: req.FileDataBase64,
		UploadedBy:     userID,
		UploadedByRole: role,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "Document uploaded successfully", meta)
}

func (h *DocumentHandler) List(c *gin.Context) {
	grievanceID, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	docs, err := h.svc.List(c.Request.Context(), grievanceID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Documents fetched successfully", docs)
}

func (h *DocumentHandler) Get(c *gin.Context) {
	docID, ok := pathID(c, "docId")
	if !ok {
		badRequest(c, "invalid document id")
		return
	}
	doc, err := h.svc.Get(c.Request.Context(), docID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Document fetched successfully", doc)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	docID, ok := pathID(c, "docId")
	if !ok {
		badRequest(c, "invalid document id")
		return
	}
	userID, ok := callerID(c)
	if !ok {
		badRequest(c, "missing or invalid X-User-Id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), docID, userID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Document deleted successfully", nil)
}
