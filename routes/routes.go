package routes

import (
	"cafe-counter-api/handlers"
	"cafe-counter-api/middleware"
	"cafe-counter-api/models"
	"cafe-counter-api/repository"
	"cafe-counter-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers and registers
// every route group with its role gate.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	users := repository.NewUserRepository(db)
	menu := repository.NewMenuRepository(db)
	orders := repository.NewOrderRepository(db)

	auth := &handlers.AuthHandler{Accounts: services.NewAccountService(users)}
	menuH := &handlers.MenuHandler{Menu: services.NewMenuService(db, menu, orders)}
	cart := &handlers.CartHandler{Cart: services.NewCartService(db, menu, orders)}
	orderH := &handlers.OrderHandler{Admin: services.NewOrderAdminService(db, menu, orders)}
	history := &handlers.HistoryHandler{History: services.NewHistoryService(orders)}
	payments := &handlers.PaymentHandler{Payments: services.NewPaymentService(orders)}

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", auth.Register)
		public.POST("/auth/login", auth.Login)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes (any role) ────────────────────────────
	authed := r.Group("/api")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("/profile", auth.GetProfile)
		authed.PUT("/profile", auth.UpdateProfile)

		// Menu browsing is open to every role
		authed.GET("/menu", menuH.ListAll)
		authed.GET("/menu/search", menuH.Search)

		// Draft assembly; any logged-in user orders at the counter
		authed.POST("/cart", cart.Open)
		authed.POST("/cart/items", cart.AddItem)
		authed.DELETE("/cart/items/:name", cart.RemoveItem)
		authed.POST("/cart/place", cart.Place)
		authed.POST("/cart/cancel", cart.Cancel)

		// Post-placement editing by order id; ownership and paid
		// locking are enforced in the service preconditions
		authed.GET("/orders/:id", orderH.Get)
		authed.POST("/orders/:id/items", orderH.AddItem)
		authed.DELETE("/orders/:id/items/:name", orderH.RemoveItem)
		authed.DELETE("/orders/:id", orderH.Cancel)

		authed.GET("/my/orders", history.MyRecent)
	}

	// ── Staff routes ───────────────────────────────────────────────
	staff := r.Group("/api/staff")
	staff.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleEmployee, models.RoleManager))
	{
		staff.GET("/orders/unpaid", history.UnpaidRecent)
		staff.PUT("/orders/:id/paid", payments.SetPaid)
	}

	// ── Manager routes ─────────────────────────────────────────────
	manager := r.Group("/api/manager")
	manager.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleManager))
	{
		manager.POST("/menu", menuH.AddItem)
		manager.PUT("/menu/:name", menuH.UpdateItem)
		manager.DELETE("/menu/:name", menuH.DeleteItem)

		manager.PUT("/users/:login", auth.UpdateUser)
	}
}
