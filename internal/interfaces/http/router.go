package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-pro/internal/application/analytics"
	"github.com/tu-usuario/pos-pro/internal/application/auth"
	"github.com/tu-usuario/pos-pro/internal/application/inventory"
	"github.com/tu-usuario/pos-pro/internal/application/sales"
	"github.com/tu-usuario/pos-pro/internal/application/usecase"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	BranchUC    *usecase.BranchUseCase
	CategoryUC  *usecase.CategoryUseCase
	CustomerUC  *usecase.CustomerUseCase
	UserUC      *usecase.UserUseCase
	SettingsUC  *usecase.SettingsUseCase
	StockQuery  *inventory.StockQueryUseCase
	AdjustUC    *inventory.AdjustStockUseCase
	TransferUC  *inventory.TransferUseCase
	CheckoutUC  *sales.CheckoutUseCase
	SaleQuery   *sales.SaleQueryUseCase
	ReturnUC    *sales.ReturnSaleUseCase
	ReceiptUC   *sales.ReceiptPDFUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Roles
	staff := []string{entity.RoleAdmin, entity.RoleManager, entity.RoleCajero}
	managers := []string{entity.RoleAdmin, entity.RoleManager}

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	inventoryHandler := NewInventoryHandler(deps.StockQuery, deps.AdjustUC, deps.TransferUC)

	// Products (lectura: todos; escritura: admin/manager)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequireRole(staff...), productHandler.List)
	products.Get("/:id", RequireRole(staff...), productHandler.GetByID)
	products.Get("/:id/stock", RequireRole(staff...), inventoryHandler.ProductStock)
	products.Post("/", RequireRole(managers...), productHandler.Create)
	products.Put("/:id", RequireRole(managers...), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Branches (lectura: todos; escritura: admin)
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", RequireRole(staff...), branchHandler.List)
	branches.Get("/:id", RequireRole(staff...), branchHandler.GetByID)
	branches.Post("/", RequireRole(entity.RoleAdmin), branchHandler.Create)
	branches.Put("/:id", RequireRole(entity.RoleAdmin), branchHandler.Update)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", RequireRole(staff...), categoryHandler.List)
	categories.Post("/", RequireRole(managers...), categoryHandler.Create)

	// Customers (cualquier rol: el cajero los registra en caja)
	customers := protected.Group("/customers", RequireRole(staff...))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Inventory (lecturas: todos; ajustes/traslados: admin/manager)
	invGroup := protected.Group("/inventory")
	invGroup.Get("/stock", RequireRole(staff...), inventoryHandler.ListStock)
	invGroup.Get("/stock/:product_id/:branch_id", RequireRole(staff...), inventoryHandler.GetStock)
	invGroup.Get("/movements", RequireRole(staff...), inventoryHandler.Movements)
	invGroup.Get("/low-stock", RequireRole(staff...), inventoryHandler.LowStock)
	invGroup.Post("/adjust", RequireRole(managers...), inventoryHandler.Adjust)
	invGroup.Post("/transfer", RequireRole(managers...), inventoryHandler.Transfer)
	invGroup.Put("/reorder-level", RequireRole(managers...), inventoryHandler.UpdateReorderLevel)
	invGroup.Get("/export", RequireRole(managers...), inventoryHandler.ExportCSV)

	// Sales (checkout: cualquier rol; devoluciones: admin/manager)
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.CheckoutUC, deps.SaleQuery, deps.ReturnUC, deps.ReceiptUC)
	salesGroup.Post("/checkout", RequireRole(staff...), salesHandler.Checkout)
	salesGroup.Get("/:id", RequireRole(staff...), salesHandler.GetByID)
	salesGroup.Get("/:id/receipt", RequireRole(staff...), salesHandler.ReceiptPDF)
	salesGroup.Post("/:id/return", RequireRole(managers...), salesHandler.Return)

	// Users (administración: solo admin; el cambio de contraseña exige la
	// contraseña actual, así que queda abierto a cualquier rol autenticado)
	userHandler := NewUserHandler(deps.UserUC)
	protected.Post("/users/:id/change-password", RequireRole(staff...), userHandler.ChangePassword)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id/status", userHandler.UpdateStatus)

	// Settings (lectura: todos; edición: admin)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/settings", RequireRole(staff...), settingsHandler.Get)
	protected.Put("/settings", RequireRole(entity.RoleAdmin), settingsHandler.Update)

	// Dashboard y reportes (admin/manager)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", RequireRole(managers...), dashboardHandler.Stats)
	protected.Get("/dashboard/revenue", RequireRole(managers...), dashboardHandler.Revenue)
	protected.Get("/reports/sales", RequireRole(managers...), dashboardHandler.SalesReport)
}
