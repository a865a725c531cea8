package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/grievance-service/internal/errs"
)

// Response — единый конверт ответа, его же отдаёт остальная платформа.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: status < http.StatusBadRequest, Message: message, Data: data})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Message: message})
}

// fail переводит доменные ошибки в HTTP-коды: NotFound → 404,
// Unauthorized → 403, InvalidState/дубликат имени → 409 (штатный отказ,
// success=false), остальное → 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrGrievanceNotFound),
		errors.Is(err, errs.ErrDepartmentNotFound),
		errors.Is(err, errs.ErrCategoryNotFound),
		errors.Is(err, errs.ErrDocumentNotFound):
		c.JSON(http.StatusNotFound, Response{Success: false, Message: err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusForbidden, Response{Success: false, Message: err.Error()})
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrDuplicateName):
		c.JSON(http.StatusConflict, Response{Success: false, Message: err.Error()})
	default:
		log.Printf("handler: unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, Response{Success: false, Message: "internal error"})
	}
}
