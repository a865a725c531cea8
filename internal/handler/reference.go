package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/grievance-service/internal/service"
)

type ReferenceHandler struct {
	svc service.ReferenceServicer
}

func NewReferenceHandler(svc service.ReferenceServicer) *ReferenceHandler {
	return &ReferenceHandler{svc: svc}
}

func refID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type departmentRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
}

func (h *ReferenceHandler) Departments(c *gin.Context) {
	items, err := h.svc.Departments(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Departments fetched successfully", items)
}

func (h *ReferenceHandler) Department(c *gin.Context) {
	id, ok := refID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	d, err := h.svc.Department(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Department fetched successfully", d)
}

func (h *ReferenceHandler) CreateDepartment(c *gin.Context) {
	var req departmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	d, err := h.svc.CreateDepartment(c.Request.Context(), req.Name, req.Description, req.ContactEmail)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "Department created successfully", d)
}

func (h *ReferenceHandler) UpdateDepartment(c *gin.Context) {
	id, ok := refID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	var req departmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	d, err := h.svc.UpdateDepartment(c.Request.Context(), id, req.Name, req.Description, req.ContactEmail)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Department updated successfully", d)
}

func (h *ReferenceHandler) DeleteDepartment(c *gin.Context) {
	id, ok := refID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	if err := h.svc.DeleteDepartment(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Department deleted successfully", nil)
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *ReferenceHandler) Categories(c *gin.Context) {
	items, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Categories fetched successfully", items)
}

func (h *ReferenceHandler) DepartmentCategories(c *gin.Context) {
	id, ok := refID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	items, err := h.svc.CategoriesByDepartment(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Categories fetched successfully", items)
}

func (h *ReferenceHandler) CreateCategory(c *gin.Context) {
	id, ok := refID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	cat, err := h.svc.CreateCategory(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "Category created successfully", cat)
}

func (h *ReferenceHandler) DeleteCategory(c *gin.Context) {
	id, ok := refID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Category deleted successfully", nil)
}
