package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inatfood/pos-backend/models"
)

func seedCategory(t *testing.T, db *gorm.DB, nameEn, station string) *models.Category {
	t.Helper()
	cat := models.Category{NameAm: nameEn + " አም", NameEn: nameEn, PrepStation: station}
	require.NoError(t, db.Create(&cat).Error)
	return &cat
}

func TestCategoryListIsPublic(t *testing.T) {
	db, _, r := setupTestEnv(t)
	seedCategory(t, db, "Mains", models.StationKitchen)
	seedCategory(t, db, "Juices", models.StationJuiceBar)

	w := doJSON(r, http.MethodGet, "/api/v1/categories", "", nil)
	requireStatus(t, w, http.StatusOK)

	env := decodeEnvelope(t, w)
	assert.Equal(t, 2, env.Results)
}

func TestCategoryWritesAreOwnerOnly(t *testing.T) {
	db, _, r := setupTestEnv(t)
	_, waitressToken := seedUser(t, db, "Selam", "selam", models.RoleWaitress)

	body := map[string]string{"name_am": "ዋና", "name_en": "Mains", "prepStation": models.StationKitchen}

	w := doJSON(r, http.MethodPost, "/api/v1/categories", "", body)
	requireStatus(t, w, http.StatusUnauthorized)

	w = doJSON(r, http.MethodPost, "/api/v1/categories", waitressToken, body)
	requireStatus(t, w, http.StatusForbidden)
}

func TestCategoryCrud(t *testing.T) {
	db, _, r := setupTestEnv(t)
	_, ownerToken := seedUser(t, db, "Owner", "owner", models.RoleOwner)

	w := doJSON(r, http.MethodPost, "/api/v1/categories", ownerToken,
		map[string]string{"name_am": "ዋና", "name_en": "Mains", "prepStation": models.StationKitchen})
	requireStatus(t, w, http.StatusCreated)

	var cat models.Category
	decodeDoc(t, w, &cat)
	assert.Equal(t, models.StationKitchen, cat.PrepStation)

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/v1/categories/%d", cat.ID), ownerToken,
		map[string]string{"prepStation": models.StationJuiceBar})
	requireStatus(t, w, http.StatusOK)

	var updated models.Category
	decodeDoc(t, w, &updated)
	assert.Equal(t, models.StationJuiceBar, updated.PrepStation)
	assert.Equal(t, "Mains", updated.NameEn, "untouched fields survive a partial update")

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", cat.ID), ownerToken, nil)
	requireStatus(t, w, http.StatusNoContent)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/v1/categories/%d", cat.ID), ownerToken, nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestMenuItemListResolvesCategoryAndAddons(t *testing.T) {
	db, _, r := setupTestEnv(t)
	cat := seedCategory(t, db, "Mains", models.StationKitchen)

	addon := models.Addon{NameAm: "አይብ", NameEn: "Ayib", Price: 10}
	require.NoError(t, db.Create(&addon).Error)

	item := models.MenuItem{
		NameAm:          "ዶሮ ወጥ",
		NameEn:          "Doro Wot",
		Price:           50,
		CategoryID:      cat.ID,
		Image:           "https://example.com/doro.png",
		AvailableAddons: []models.Addon{addon},
	}
	require.NoError(t, db.Create(&item).Error)

	w := doJSON(r, http.MethodGet, "/api/v1/menu-items", "", nil)
	requireStatus(t, w, http.StatusOK)

	var items []models.MenuItem
	decodeDoc(t, w, &items)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Category, "category must be resolved so clients see the prep station")
	assert.Equal(t, models.StationKitchen, items[0].Category.PrepStation)
	require.Len(t, items[0].AvailableAddons, 1)
	assert.Equal(t, "Ayib", items[0].AvailableAddons[0].NameEn)
}

func TestMenuItemCreateWithRecipe(t *testing.T) {
	db, _, r := setupTestEnv(t)
	_, ownerToken := seedUser(t, db, "Owner", "owner", models.RoleOwner)
	cat := seedCategory(t, db, "Mains", models.StationKitchen)

	ingredient := models.Ingredient{NameAm: "ሽንኩርት", NameEn: "Onion", PurchasePrice: 30, PurchaseUnit: "kg"}
	require.NoError(t, db.Create(&ingredient).Error)

	w := doJSON(r, http.MethodPost, "/api/v1/menu-items", ownerToken, map[string]interface{}{
		"name_am":    "ዶሮ ወጥ",
		"name_en":    "Doro Wot",
		"price":      50,
		"categoryId": cat.ID,
		"image":      "https://example.com/doro.png",
		"recipe": []map[string]interface{}{
			{"ingredient": ingredient.ID, "quantity": 0.2, "unit": "kg"},
		},
	})
	requireStatus(t, w, http.StatusCreated)

	var created models.MenuItem
	decodeDoc(t, w, &created)
	assert.Equal(t, cat.ID, created.CategoryID)
	require.Len(t, created.Recipe, 1)
	assert.Equal(t, ingredient.ID, created.Recipe[0].IngredientID)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/v1/menu-items/%d", created.ID), ownerToken, nil)
	requireStatus(t, w, http.StatusOK)
}

func TestAddonCrudIsOwnerOnly(t *testing.T) {
	db, _, r := setupTestEnv(t)
	_, ownerToken := seedUser(t, db, "Owner", "owner", models.RoleOwner)
	_, kitchenToken := seedUser(t, db, "Chef", "chef", models.RoleKitchen)

	w := doJSON(r, http.MethodGet, "/api/v1/addons", kitchenToken, nil)
	requireStatus(t, w, http.StatusForbidden)

	w = doJSON(r, http.MethodPost, "/api/v1/addons", ownerToken,
		map[string]interface{}{"name_am": "አይብ", "name_en": "Ayib", "price": 10})
	requireStatus(t, w, http.StatusCreated)

	var addon models.Addon
	decodeDoc(t, w, &addon)
	assert.Equal(t, 10.0, addon.Price)
}

func TestStockItemCrud(t *testing.T) {
	db, _, r := setupTestEnv(t)
	_, ownerToken := seedUser(t, db, "Owner", "owner", models.RoleOwner)

	w := doJSON(r, http.MethodPost, "/api/v1/stock-items", ownerToken, map[string]interface{}{
		"name_am": "ሽንኩርት", "name_en": "Onion", "quantity": 25, "unit_am": "ኪግ", "unit_en": "kg",
	})
	requireStatus(t, w, http.StatusCreated)

	var stock models.StockItem
	decodeDoc(t, w, &stock)
	assert.Equal(t, 25.0, stock.Quantity)

	var stored models.StockItem
	require.NoError(t, db.First(&stored, stock.ID).Error)
	assert.Equal(t, 10.0, stored.LowStockThreshold, "threshold defaults when omitted")

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/v1/stock-items/%d", stock.ID), ownerToken,
		map[string]interface{}{"quantity": 5})
	requireStatus(t, w, http.StatusOK)

	var updated models.StockItem
	decodeDoc(t, w, &updated)
	assert.Equal(t, 5.0, updated.Quantity)
}

func TestGetOneUnknownIDIs404(t *testing.T) {
	db, _, r := setupTestEnv(t)
	_, ownerToken := seedUser(t, db, "Owner", "owner", models.RoleOwner)

	w := doJSON(r, http.MethodGet, "/api/v1/addons/999", ownerToken, nil)
	requireStatus(t, w, http.StatusNotFound)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "fail", env.Status)
	assert.Contains(t, env.Message, "no document found")
}
