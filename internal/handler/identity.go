package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/grievance-service/internal/model"
)

// Идентичность приходит от шлюза платформы в заголовках X-User-Id и
// X-User-Role; сама аутентификация живёт снаружи.

func callerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.GetHeader("X-User-Id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func callerRole(c *gin.Context) (model.Role, bool) {
	role, err := model.ParseRole(c.GetHeader("X-User-Role"))
	if err != nil {
		return "", false
	}
	return role, true
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) int {
	if v := c.Query(name); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return def
}
