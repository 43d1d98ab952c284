package http

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/inventory-manager/internal/http/controller"
	"github.com/iyhunko/inventory-manager/internal/http/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageTemplate parses the embedded page templates.
func PageTemplate() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

func InitRouter(server *gin.Engine, con *controller.Controller, managerCtr *controller.ManagerController) *gin.Engine {
	// Logger goes first so requests that panic are logged with their final status
	server.Use(middleware.Logger())
	server.Use(middleware.Recovery())
	server.Use(middleware.CORS())

	server.SetHTMLTemplate(PageTemplate())

	server.GET("/", managerCtr.Index)
	server.GET("/ping", con.Ping)

	api := server.Group("/api")
	{
		api.GET("/state", managerCtr.State)

		api.PUT("/search", managerCtr.Search)
		api.POST("/search/flush", managerCtr.FlushSearch)

		api.PUT("/view", managerCtr.SetViewMode)

		api.POST("/pages/next", managerCtr.NextPage)
		api.POST("/pages/prev", managerCtr.PrevPage)
		api.POST("/pages/:page", managerCtr.GoToPage)

		api.POST("/modal", managerCtr.OpenCreate)
		api.DELETE("/modal", managerCtr.CloseModal)
		api.PUT("/modal/draft", managerCtr.UpdateDraft)
		api.POST("/modal/submit", managerCtr.Submit)
		api.POST("/modal/:id", managerCtr.OpenEdit)

		api.GET("/products/:id", managerCtr.GetProduct)
		api.DELETE("/products/:id", managerCtr.DeleteProduct)
	}

	return server
}
