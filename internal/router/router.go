package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/grievance-service/api"
	"github.com/psds-microservice/grievance-service/internal/handler"
	"github.com/psds-microservice/helpy/paths"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func New(grievances *handler.GrievanceHandler, documents *handler.DocumentHandler, reference *handler.ReferenceHandler) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET(paths.PathHealth, gin.WrapF(handler.Health))
	r.GET(paths.PathReady, gin.WrapF(handler.Ready))
	r.GET(paths.PathSwagger+"/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		if strings.TrimPrefix(c.Param("any"), "/") == "" {
			c.Request.URL.Path = paths.PathSwagger + "/index.html"
			c.Request.RequestURI = paths.PathSwagger + "/index.html"
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	v1 := r.Group("/api/v1")
	{
		g := v1.Group("/grievances")
		{
			g.POST("", grievances.Lodge)
			g.GET("", grievances.List)
			g.GET("/my", grievances.My)
			g.GET("/dashboard/officer", grievances.Dashboard)
			g.GET("/reports/departments", grievances.DepartmentReport)
			g.GET("/reports/categories", grievances.CategoryReport)
			g.GET("/reports/resolution-time", grievances.ResolutionTimeReport)
			g.GET("/documents/:docId", documents.Get)
			g.DELETE("/documents/:docId", documents.Delete)
			g.GET("/:id", grievances.Get)
			g.PATCH("/:id/assign/:officerId", grievances.Assign)
			g.POST("/:id/auto-assign", grievances.AutoAssign)
			g.PATCH("/:id/status", grievances.UpdateStatus)
			g.POST("/:id/escalate", grievances.Escalate)
			g.DELETE("/:id", grievances.Withdraw)
			g.GET("/:id/history", grievances.History)
			g.POST("/:id/comments", grievances.AddComment)
			g.GET("/:id/comments", grievances.Comments)
			g.POST("/:id/documents", documents.Upload)
			g.GET("/:id/documents", documents.List)
		}
		v1.GET("/supervisor/grievances", grievances.Supervisor)

		d := v1.Group("/departments")
		{
			d.GET("", reference.Departments)
			d.GET("/categories", reference.Categories)
			d.DELETE("/categories/:id", reference.DeleteCategory)
			d.GET("/:id", reference.Department)
			d.POST("", reference.CreateDepartment)
			d.PUT("/:id", reference.UpdateDepartment)
			d.DELETE("/:id", reference.DeleteDepartment)
			d.GET("/:id/categories", reference.DepartmentCategories)
			d.POST("/:id/categories", reference.CreateCategory)
		}
	}

	return r
}
