package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyplus/inventory-api/internal/application/usecase"
	"github.com/polyplus/inventory-api/internal/infrastructure/memory"
	apphttp "github.com/polyplus/inventory-api/internal/interfaces/http"
)

// buildApp wires a Fiber app over in-memory repositories. Image routes stay
// off (no storage); jwtSecret "" leaves the API open like the default config.
func buildApp(jwtSecret string) *fiber.App {
	stores := memory.NewStoreRepository()
	products := memory.NewProductRepository()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		StoreUC:     usecase.NewStoreUseCase(stores, products),
		InventoryUC: usecase.NewInventoryUseCase(stores, products),
		JWTSecret:   jwtSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func createStore(t *testing.T, app *fiber.App, uid, name string) string {
	t.Helper()
	resp, body := doJSON(t, app, fiber.MethodPost, "/stores", fiber.Map{"uid": uid, "name": name})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestEndToEnd_StoreProductLifecycle(t *testing.T) {
	app := buildApp("")

	storeID := createStore(t, app, "u1", "Shop")

	// Numeric strings must coerce: price "5.50" and quantity "10".
	resp, product := doJSON(t, app, fiber.MethodPost, "/inventory/"+storeID+"/products", fiber.Map{
		"name":     "Tea",
		"SKU":      "T-1",
		"price":    "5.50",
		"quantity": "10",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 5.5, product["price"], "price must serialize as a JSON number")
	assert.Equal(t, float64(10), product["total_quantity"])
	assert.Equal(t, float64(10), product["quantity"])
	assert.NotEmpty(t, product["id"])

	resp, removed := doJSON(t, app, fiber.MethodDelete, "/inventory/"+storeID+"/products", fiber.Map{"SKU": "T-1"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, removed["ok"])
	assert.Equal(t, "T-1", removed["removedSKU"])

	req := httptest.NewRequest(fiber.MethodGet, "/inventory/"+storeID+"/products", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)
	raw, err := io.ReadAll(listResp.Body)
	require.NoError(t, err)
	var items []any
	require.NoError(t, json.Unmarshal(raw, &items))
	assert.Empty(t, items)
}

func TestCreateStore_Conflicts(t *testing.T) {
	app := buildApp("")

	createStore(t, app, "u1", "Shop")

	resp, body := doJSON(t, app, fiber.MethodPost, "/stores", fiber.Map{"uid": "u1", "name": "Another"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ALREADY_EXISTS", body["code"])
}

func TestCreateStore_MissingFields(t *testing.T) {
	app := buildApp("")

	resp, body := doJSON(t, app, fiber.MethodPost, "/stores", fiber.Map{"name": "Shop"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestGetStoreByOwner(t *testing.T) {
	app := buildApp("")

	resp, _ := doJSON(t, app, fiber.MethodGet, "/stores/by-user/u1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "no store means the owner needs setup")

	createStore(t, app, "u1", "Shop")
	resp, body := doJSON(t, app, fiber.MethodGet, "/stores/by-user/u1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Shop", body["name"])
	assert.Equal(t, "u1", body["owner_uid"])
}

func TestStoreMeta(t *testing.T) {
	app := buildApp("")
	storeID := createStore(t, app, "u1", "Shop")

	resp, body := doJSON(t, app, fiber.MethodGet, "/inventory/"+storeID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Shop", body["name"])
	_, hasInventory := body["inventory"]
	assert.False(t, hasInventory, "meta projection excludes the inventory")

	resp, _ = doJSON(t, app, fiber.MethodGet, "/inventory/no-such-store", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRemoveProduct_NotFoundDistinction(t *testing.T) {
	app := buildApp("")
	storeID := createStore(t, app, "u1", "Shop")

	resp, body := doJSON(t, app, fiber.MethodDelete, "/inventory/no-such-store/products", fiber.Map{"SKU": "GT-16-001"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "store not found", body["message"])

	resp, body = doJSON(t, app, fiber.MethodDelete, "/inventory/"+storeID+"/products", fiber.Map{"SKU": "GT-16-001"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "product SKU not found in this store", body["message"])

	resp, body = doJSON(t, app, fiber.MethodDelete, "/inventory/"+storeID+"/products", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestAddProduct_DuplicateSKUConflicts(t *testing.T) {
	app := buildApp("")
	storeID := createStore(t, app, "u1", "Shop")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/inventory/"+storeID+"/products", fiber.Map{"name": "Tea", "SKU": "T-1"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodPost, "/inventory/"+storeID+"/products", fiber.Map{"name": "Tea 2", "SKU": "T-1"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestPatchProduct_PartialAndRename(t *testing.T) {
	app := buildApp("")
	storeID := createStore(t, app, "u1", "Shop")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/inventory/"+storeID+"/products", fiber.Map{
		"name": "Tea", "SKU": "T-1", "price": 5, "quantity": 10,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodPatch, "/inventory/"+storeID+"/products/T-1", fiber.Map{
		"SKU": "T-2", "description": "loose leaf",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "T-2", body["SKU"])
	assert.Equal(t, "loose leaf", body["description"])
	assert.Equal(t, "Tea", body["name"], "absent fields stay untouched")
	assert.Equal(t, float64(10), body["total_quantity"])

	// The old SKU no longer matches.
	resp, _ = doJSON(t, app, fiber.MethodPatch, "/inventory/"+storeID+"/products/T-1", fiber.Map{"name": "X"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdjustQuantityRoute(t *testing.T) {
	app := buildApp("")
	storeID := createStore(t, app, "u1", "Shop")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/inventory/"+storeID+"/products", fiber.Map{
		"name": "Tea", "SKU": "T-1", "quantity": 3,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodPatch, "/inventory/"+storeID+"/products/T-1/quantity", fiber.Map{"delta": 5})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "T-1", body["SKU"])
	assert.Equal(t, float64(8), body["total_quantity"])

	// A delta that would go negative is rejected and nothing changes.
	resp, body = doJSON(t, app, fiber.MethodPatch, "/inventory/"+storeID+"/products/T-1/quantity", fiber.Map{"delta": -20})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])

	resp, body = doJSON(t, app, fiber.MethodPatch, "/inventory/"+storeID+"/products/T-1/quantity", fiber.Map{"delta": 0})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(8), body["total_quantity"])

	resp, body = doJSON(t, app, fiber.MethodPatch, "/inventory/"+storeID+"/products/T-1/quantity", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "delta is required", body["message"])
}

func TestEscapedSKUInPath(t *testing.T) {
	app := buildApp("")
	storeID := createStore(t, app, "u1", "Shop")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/inventory/"+storeID+"/products", fiber.Map{
		"name": "Gasket", "SKU": "GT 16", "quantity": 3,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	escaped := url.PathEscape("GT 16")

	resp, body := doJSON(t, app, fiber.MethodPatch, "/inventory/"+storeID+"/products/"+escaped+"/quantity", fiber.Map{"delta": 1})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "GT 16", body["SKU"])
	assert.Equal(t, float64(4), body["total_quantity"])

	resp, body = doJSON(t, app, fiber.MethodPatch, "/inventory/"+storeID+"/products/"+escaped+"/price", fiber.Map{"price": "2.50"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2.5, body["price"])

	resp, body = doJSON(t, app, fiber.MethodPatch, "/inventory/"+storeID+"/products/"+escaped, fiber.Map{"description": "16mm"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "16mm", body["description"])
	assert.Equal(t, "GT 16", body["SKU"])
}

func TestUpdatePriceRoute(t *testing.T) {
	app := buildApp("")
	storeID := createStore(t, app, "u1", "Shop")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/inventory/"+storeID+"/products", fiber.Map{"name": "Tea", "SKU": "T-1"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodPatch, "/inventory/"+storeID+"/products/T-1/price", fiber.Map{"price": "7.25"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 7.25, body["price"])
}

func TestListStores_SearchSurface(t *testing.T) {
	app := buildApp("")
	storeID := createStore(t, app, "u1", "Shop")

	for i := 1; i <= 2; i++ {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/inventory/"+storeID+"/products", fiber.Map{
			"name": fmt.Sprintf("Tea %d", i), "SKU": fmt.Sprintf("T-%d", i),
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, body := doJSON(t, app, fiber.MethodGet, "/inventory/?SKU=T-2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	storeList, ok := body["store_list"].([]any)
	require.True(t, ok)
	require.Len(t, storeList, 1)
	inventory := storeList[0].(map[string]any)["inventory"].([]any)
	require.Len(t, inventory, 1)
	assert.Equal(t, "T-2", inventory[0].(map[string]any)["SKU"])
}

func TestStatsRoute(t *testing.T) {
	app := buildApp("")
	storeID := createStore(t, app, "u1", "Shop")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/inventory/"+storeID+"/products", fiber.Map{
		"name": "Tea", "SKU": "T-1", "price": 2, "quantity": 5,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodGet, "/inventory/"+storeID+"/stats", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["product_count"])
	assert.Equal(t, float64(5), body["total_units"])
	assert.Equal(t, float64(10), body["inventory_value"])
}
