package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/polyplus/inventory-api/internal/application/images"
	"github.com/polyplus/inventory-api/internal/application/usecase"
)

// RouterDeps dependencies for the router. A non-empty JWTSecret protects the
// inventory and image routes with the bearer middleware; empty leaves them
// open (identity then only lives in request bodies, as in the original
// deployment).
type RouterDeps struct {
	StoreUC      *usecase.StoreUseCase
	InventoryUC  *usecase.InventoryUseCase
	Storage      images.Storage
	Resolver     *images.Resolver
	UploadPrefix string
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	storeHandler := NewStoreHandler(deps.StoreUC)
	inventoryHandler := NewInventoryHandler(deps.StoreUC, deps.InventoryUC)

	// Store setup stays open: it runs before any token-bound store exists.
	app.Post("/stores", storeHandler.Create)
	app.Get("/stores/by-user/:uid", storeHandler.GetByOwner)

	guarded := func(group fiber.Router) fiber.Router {
		if deps.JWTSecret != "" {
			group.Use(AuthMiddleware(deps.JWTSecret))
		}
		return group
	}

	inv := guarded(app.Group("/inventory"))
	inv.Get("/", inventoryHandler.ListStores)
	inv.Get("/:storeId", inventoryHandler.GetMeta)
	inv.Get("/:storeId/stats", inventoryHandler.Stats)
	inv.Get("/:storeId/products", inventoryHandler.ListProducts)
	inv.Post("/:storeId/products", inventoryHandler.AddProduct)
	inv.Delete("/:storeId/products", inventoryHandler.RemoveProduct)
	inv.Patch("/:storeId/products/:sku", inventoryHandler.UpdateProduct)
	inv.Patch("/:storeId/products/:sku/quantity", inventoryHandler.AdjustQuantity)
	inv.Patch("/:storeId/products/:sku/price", inventoryHandler.UpdatePrice)

	if deps.Storage != nil {
		imageHandler := NewImageHandler(deps.Storage, deps.Resolver, deps.UploadPrefix)
		img := guarded(app.Group("/images"))
		img.Get("/file-url", imageHandler.FileURL)
		img.Get("/resolve", imageHandler.ResolveRef)
		img.Get("/files", imageHandler.Files)
		img.Post("/upload/:storeId", imageHandler.Upload)
		img.Delete("/file/:key", imageHandler.Delete)
	}
}
