package routes

import (
	"github.com/gin-gonic/gin"

	producthandler "trackd/internal/interfaces/http/handlers/product"
	resourcehandler "trackd/internal/interfaces/http/handlers/resource"
	tickethandler "trackd/internal/interfaces/http/handlers/ticket"
)

// ProductRouteConfig holds the handlers for product-scoped routes.
type ProductRouteConfig struct {
	ProductHandler   *producthandler.Handler
	TicketHandler    *tickethandler.Handler
	ComponentHandler *resourcehandler.ComponentHandler
	MilestoneHandler *resourcehandler.MilestoneHandler
	VersionHandler   *resourcehandler.VersionHandler
	EnumHandler      *resourcehandler.EnumHandler
}

// SetupProductRoutes configures the product tree. Every resource is
// addressed through its owning product prefix; tickets additionally by
// their per-product number.
func SetupProductRoutes(api *gin.RouterGroup, cfg *ProductRouteConfig) {
	products := api.Group("/products")
	{
		products.POST("", cfg.ProductHandler.CreateProduct)
		products.GET("", cfg.ProductHandler.ListProducts)

		products.GET("/:prefix", cfg.ProductHandler.GetProduct)
		products.PUT("/:prefix", cfg.ProductHandler.UpdateProduct)
		products.DELETE("/:prefix", cfg.ProductHandler.DeleteProduct)

		tickets := products.Group("/:prefix/tickets")
		{
			tickets.POST("", cfg.TicketHandler.CreateTicket)
			tickets.GET("", cfg.TicketHandler.ListTickets)

			// Register specific paths BEFORE the bare parameterized path
			// so gin does not shadow them.
			tickets.GET("/:tid/changes", cfg.TicketHandler.ListChanges)
			tickets.GET("/:tid/render", cfg.TicketHandler.RenderDescription)

			tickets.GET("/:tid", cfg.TicketHandler.GetTicket)
			tickets.PUT("/:tid", cfg.TicketHandler.UpdateTicket)
			tickets.DELETE("/:tid", cfg.TicketHandler.DeleteTicket)
		}

		products.GET("/:prefix/changes", cfg.TicketHandler.ListProductChanges)
		products.GET("/:prefix/changes/:time", cfg.TicketHandler.GetChange)

		components := products.Group("/:prefix/components")
		{
			components.POST("", cfg.ComponentHandler.Create)
			components.GET("", cfg.ComponentHandler.List)
			components.GET("/:name", cfg.ComponentHandler.Get)
			components.PUT("/:name", cfg.ComponentHandler.Update)
			components.DELETE("/:name", cfg.ComponentHandler.Delete)
		}

		milestones := products.Group("/:prefix/milestones")
		{
			milestones.POST("", cfg.MilestoneHandler.Create)
			milestones.GET("", cfg.MilestoneHandler.List)
			milestones.GET("/:name", cfg.MilestoneHandler.Get)
			milestones.PUT("/:name", cfg.MilestoneHandler.Update)
			milestones.DELETE("/:name", cfg.MilestoneHandler.Delete)
		}

		versions := products.Group("/:prefix/versions")
		{
			versions.POST("", cfg.VersionHandler.Create)
			versions.GET("", cfg.VersionHandler.List)
			versions.GET("/:name", cfg.VersionHandler.Get)
			versions.PUT("/:name", cfg.VersionHandler.Update)
			versions.DELETE("/:name", cfg.VersionHandler.Delete)
		}

		enums := products.Group("/:prefix/enums")
		{
			enums.GET("", cfg.EnumHandler.List)
			enums.POST("/:type", cfg.EnumHandler.Create)
			enums.GET("/:type", cfg.EnumHandler.List)
			enums.GET("/:type/:name", cfg.EnumHandler.Get)
			enums.PUT("/:type/:name", cfg.EnumHandler.Update)
			enums.DELETE("/:type/:name", cfg.EnumHandler.Delete)
		}
	}
}
