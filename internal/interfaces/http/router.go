package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elparadero/inventario-api/internal/application/auth"
	"github.com/elparadero/inventario-api/internal/application/dataset"
	"github.com/elparadero/inventario-api/internal/application/usecase"
	"github.com/elparadero/inventario-api/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	ProductUC     *usecase.ProductUseCase
	CatalogUC     *usecase.CatalogUseCase
	TransactionUC *usecase.TransactionUseCase
	ExportUC      *dataset.ExportUseCase
	ImportUC      *dataset.ImportUseCase
	ReportUC      *dataset.ReportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Cada grupo protegido exige el permiso
// que corresponde al verbo HTTP: GET→view, POST→add, PUT/PATCH→edit, DELETE→delete.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout y me requieren token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	canView := RequirePermission(rbac.ActionView)
	canAdd := RequirePermission(rbac.ActionAdd)
	canEdit := RequirePermission(rbac.ActionEdit)
	canDelete := RequirePermission(rbac.ActionDelete)

	// Users: la administración de cuentas es edición/eliminación de datos,
	// reservada al rol admin por la tabla de permisos.
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", canView, userHandler.List)
	users.Post("/", canEdit, userHandler.Create)
	users.Get("/:id", canView, userHandler.GetByID)
	users.Put("/:id", canEdit, userHandler.Update)
	users.Patch("/:id/toggle-active", canEdit, userHandler.ToggleActive)
	users.Delete("/:id", canDelete, userHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", canView, productHandler.List)
	products.Post("/", canAdd, productHandler.Create)
	products.Get("/:id", canView, productHandler.GetByID)
	products.Put("/:id", canEdit, productHandler.Update)
	products.Delete("/:id", canDelete, productHandler.Delete)

	// Categories, brands, suppliers
	catalogHandler := NewCatalogHandler(deps.CatalogUC)

	categories := protected.Group("/categories")
	categories.Get("/", canView, catalogHandler.ListCategories)
	categories.Post("/", canAdd, catalogHandler.CreateCategory)
	categories.Put("/:id", canEdit, catalogHandler.UpdateCategory)
	categories.Delete("/:id", canDelete, catalogHandler.DeleteCategory)

	brands := protected.Group("/brands")
	brands.Get("/", canView, catalogHandler.ListBrands)
	brands.Post("/", canAdd, catalogHandler.CreateBrand)
	brands.Put("/:id", canEdit, catalogHandler.UpdateBrand)
	brands.Delete("/:id", canDelete, catalogHandler.DeleteBrand)

	suppliers := protected.Group("/suppliers")
	suppliers.Get("/", canView, catalogHandler.ListSuppliers)
	suppliers.Post("/", canAdd, catalogHandler.CreateSupplier)
	suppliers.Put("/:id", canEdit, catalogHandler.UpdateSupplier)
	suppliers.Delete("/:id", canDelete, catalogHandler.DeleteSupplier)

	// Transactions
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Get("/", canView, transactionHandler.List)
	transactions.Post("/", canAdd, transactionHandler.Create)
	transactions.Get("/:id", canView, transactionHandler.GetByID)
	transactions.Delete("/:id", canDelete, transactionHandler.Delete)

	// Dataset: exportar y el reporte son lecturas; importar reemplaza todo,
	// así que exige el permiso de eliminación.
	ds := protected.Group("/dataset")
	datasetHandler := NewDatasetHandler(deps.ExportUC, deps.ImportUC, deps.ReportUC)
	ds.Get("/export", canView, datasetHandler.Export)
	ds.Get("/report", canView, datasetHandler.Report)
	ds.Post("/import", canDelete, datasetHandler.Import)
}
