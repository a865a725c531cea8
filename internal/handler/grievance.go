package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/grievance-service/internal/model"
	"github.com/psds-microservice/grievance-service/internal/repository"
	"github.com/psds-microservice/grievance-service/internal/service"
)

type GrievanceHandler struct {
	svc service.GrievanceServicer
}

func NewGrievanceHandler(svc service.GrievanceServicer) *GrievanceHandler {
	return &GrievanceHandler{svc: svc}
}

type lodgeRequest struct {
	DepartmentID int64  `json:"department_id" binding:"required"`
	CategoryID   int64  `json:"category_id" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Priority     string `json:"priority"`
}

func (h *GrievanceHandler) Lodge(c *gin.Context) {
	citizenID, ok := callerID(c)
	if !ok {
		badRequest(c, "missing or invalid X-User-Id")
		return
	}
	var req lodgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	priority := model.Priority(req.Priority)
	if req.Priority != "" {
		switch priority {
		case model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityCritical:
		default:
			badRequest(c, "unknown priority")
			return
		}
	}
	g, err := h.svc.Lodge(c.Request.Context(), service.LodgeInput{
		CitizenID:    citizenID,
		DepartmentID: req.DepartmentID,
		CategoryID:   req.CategoryID,
		Title:        req.Title,
		Description:  req.Description,
		Priority:     priority,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "Grievance lodged successfully", g)
}

func (h *GrievanceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	g, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Grievance fetched successfully", g)
}

// List — фильтрованный листинг: department_id, category_id, status,
// officer_id + limit/offset.
func (h *GrievanceHandler) List(c *gin.Context) {
	var f repository.GrievanceFilter
	if v := c.Query("department_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			badRequest(c, "invalid department_id")
			return
		}
		f.DepartmentID = &id
	}
	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			badRequest(c, "invalid category_id")
			return
		}
		f.CategoryID = &id
	}
	if v := c.Query("officer_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			badRequest(c, "invalid officer_id")
			return
		}
		f.OfficerID = &id
	}
	if v := c.Query("status"); v != "" {
		status, err := model.ParseStatus(v)
		if err != nil {
			badRequest(c, "unknown status")
			return
		}
		f.Status = &status
	}
	h.list(c, f)
}

// My — обращения текущего гражданина.
func (h *GrievanceHandler) My(c *gin.Context) {
	citizenID, ok := callerID(c)
	if !ok {
		badRequest(c, "missing or invalid X-User-Id")
		return
	}
	f := repository.GrievanceFilter{CitizenID: &citizenID}
	h.list(c, f)
}

// Supervisor — обращения департамента для руководителя (+фильтр статуса).
func (h *GrievanceHandler) Supervisor(c *gin.Context) {
	var f repository.GrievanceFilter
	v := c.Query("department_id")
	if v == "" {
		badRequest(c, "department_id is required")
		return
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		badRequest(c, "invalid department_id")
		return
	}
	f.DepartmentID = &id
	if sv := c.Query("status"); sv != "" {
		status, err := model.ParseStatus(sv)
		if err != nil {
			badRequest(c, "unknown status")
			return
		}
		f.Status = &status
	}
	h.list(c, f)
}

func (h *GrievanceHandler) list(c *gin.Context, f repository.GrievanceFilter) {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)
	items, total, err := h.svc.List(c.Request.Context(), f, limit, offset)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Grievances fetched successfully", gin.H{
		"grievances": items,
		"total":      total,
	})
}

func (h *GrievanceHandler) Assign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	officerID, err := strconv.ParseInt(c.Param("officerId"), 10, 64)
	if err != nil || officerID <= 0 {
		badRequest(c, "invalid officer id")
		return
	}
	if err := h.svc.Assign(c.Request.Context(), id, officerID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Grievance assigned successfully", nil)
}

func (h *GrievanceHandler) AutoAssign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	officerID, err := h.svc.AutoAssign(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Grievance assigned successfully", gin.H{"officer_id": officerID})
}

type statusUpdateRequest struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

func (h *GrievanceHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	actorID, ok := callerID(c)
	if !ok {
		badRequest(c, "missing or invalid X-User-Id")
		return
	}
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	status, err := model.ParseStatus(req.Status)
	if err != nil {
		badRequest(c, "unknown status")
		return
	}
	if err := h.svc.UpdateStatus(c.Request.Context(), id, status, req.Remarks, actorID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Status updated successfully", nil)
}

func (h *GrievanceHandler) Escalate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	citizenID, ok := callerID(c)
	if !ok {
		badRequest(c, "missing or invalid X-User-Id")
		return
	}
	if err := h.svc.Escalate(c.Request.Context(), id, citizenID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Grievance escalated successfully", nil)
}

func (h *GrievanceHandler) Withdraw(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	citizenID, ok := callerID(c)
	if !ok {
		badRequest(c, "missing or invalid X-User-Id")
		return
	}
	if err := h.svc.Withdraw(c.Request.Context(), id, citizenID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Grievance withdrawn successfully", nil)
}

func (h *GrievanceHandler) History(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	history, err := h.svc.History(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "History fetched successfully", history)
}

func (h *GrievanceHandler) Dashboard(c *gin.Context) {
	officerID, ok := callerID(c)
	if !ok {
		badRequest(c, "missing or invalid X-User-Id")
		return
	}
	stats, err := h.svc.Dashboard(c.Request.Context(), officerID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Dashboard stats fetched successfully", stats)
}

func (h *GrievanceHandler) DepartmentReport(c *gin.Context) {
	report, err := h.svc.DepartmentReport(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Department-wise report generated", report)
}

func (h *GrievanceHandler) CategoryReport(c *gin.Context) {
	report, err := h.svc.CategoryReport(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Category-wise report generated", report)
}

func (h *GrievanceHandler) ResolutionTimeReport(c *gin.Context) {
	report, err := h.svc.AverageResolutionTime(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Average resolution time calculated", report)
}

type commentRequest struct {
	Message    string `json:"message" binding:"required"`
	IsInternal bool   `json:"is_internal"`
}

func (h *GrievanceHandler) AddComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	senderID, ok := callerID(c)
	if !ok {
		badRequest(c, "missing or invalid X-User-Id")
		return
	}
	role, ok := callerRole(c)
	if !ok {
		badRequest(c, "missing or unknown X-User-Role")
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	comment, err := h.svc.AddComment(c.Request.Context(), id, senderID, role, req.Message, req.IsInternal)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "Comment added successfully", comment)
}

func (h *GrievanceHandler) Comments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid id")
		return
	}
	comments, err := h.svc.Comments(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Comments fetched successfully", comments)
}
