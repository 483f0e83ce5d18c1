package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slime-shop/models"
	"slime-shop/repositories"
	"slime-shop/services"
	"slime-shop/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductFinder struct {
	products map[int]*models.Product
}

func (f *stubProductFinder) FindActiveByID(_ context.Context, id int) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrNotFound
}

type cartTestEnv struct {
	router *gin.Engine
	cookie *utils.CartCookie
	store  repositories.CartStore
}

func newCartTestEnv() *cartTestEnv {
	gin.SetMode(gin.TestMode)

	finder := &stubProductFinder{products: map[int]*models.Product{
		1: {ID: 1, Name: "Rainbow Butter", PriceCents: 999, StockQuantity: 10, IsActive: true},
		2: {ID: 2, Name: "Galaxy Glitter", PriceCents: 1299, StockQuantity: 5, IsActive: true},
	}}
	store := repositories.NewMemoryCartStore()
	cookie := utils.NewCartCookie([]byte("test-secret"), "slime_cart", 24*time.Hour, false)
	ctrl := NewCartController(services.NewCartService(finder, store), cookie)

	router := gin.New()
	router.GET("/api/cart", ctrl.GetCart)
	router.DELETE("/api/cart", ctrl.ClearCart)
	router.POST("/api/cart/items", ctrl.AddItem)
	router.PATCH("/api/cart/items/:productID", ctrl.UpdateItem)
	router.DELETE("/api/cart/items/:productID", ctrl.RemoveItem)

	return &cartTestEnv{router: router, cookie: cookie, store: store}
}

func (env *cartTestEnv) do(t *testing.T, method, path string, body interface{}, cartID string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cartID != "" {
		req.AddCookie(&http.Cookie{Name: "slime_cart", Value: env.cookie.Encode(cartID)})
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestGetCartMintsCookie(t *testing.T) {
	env := newCartTestEnv()

	w := env.do(t, "GET", "/api/cart", nil, "")
	require.Equal(t, 200, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 0, body["count"])
	assert.EqualValues(t, 0, body["total"])

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "first visit should set the cart cookie")
	assert.Equal(t, "slime_cart", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAddCartItem(t *testing.T) {
	env := newCartTestEnv()

	t.Run("AddsAndMergesLines", func(t *testing.T) {
		w := env.do(t, "POST", "/api/cart/items", gin.H{"product_id": 1, "quantity": 2}, "c1")
		require.Equal(t, 200, w.Code)

		w = env.do(t, "POST", "/api/cart/items", gin.H{"product_id": 1, "quantity": 1}, "c1")
		require.Equal(t, 200, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.EqualValues(t, 3, body["count"])
		assert.InDelta(t, 29.97, body["total"].(float64), 0.001)
		assert.Len(t, body["items"], 1)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		w := env.do(t, "POST", "/api/cart/items", gin.H{"product_id": 42}, "c2")
		require.Equal(t, 400, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Product not found or inactive", resp.Message)
	})

	t.Run("MissingProductID", func(t *testing.T) {
		w := env.do(t, "POST", "/api/cart/items", gin.H{"quantity": 1}, "c3")
		require.Equal(t, 400, w.Code)
	})
}

func TestUpdateCartItem(t *testing.T) {
	env := newCartTestEnv()

	w := env.do(t, "POST", "/api/cart/items", gin.H{"product_id": 1, "quantity": 2}, "c1")
	require.Equal(t, 200, w.Code)

	t.Run("SetsQuantity", func(t *testing.T) {
		w := env.do(t, "PATCH", "/api/cart/items/1", gin.H{"quantity": 5}, "c1")
		require.Equal(t, 200, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.EqualValues(t, 5, body["count"])
	})

	t.Run("ZeroRemovesLine", func(t *testing.T) {
		w := env.do(t, "PATCH", "/api/cart/items/1", gin.H{"quantity": 0}, "c1")
		require.Equal(t, 200, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.EqualValues(t, 0, body["count"])
	})

	t.Run("BadProductID", func(t *testing.T) {
		w := env.do(t, "PATCH", "/api/cart/items/abc", gin.H{"quantity": 1}, "c1")
		assert.Equal(t, 400, w.Code)
	})
}

func TestRemoveAndClearCart(t *testing.T) {
	env := newCartTestEnv()

	for _, id := range []int{1, 2} {
		w := env.do(t, "POST", "/api/cart/items", gin.H{"product_id": id, "quantity": 1}, "c1")
		require.Equal(t, 200, w.Code)
	}

	w := env.do(t, "DELETE", "/api/cart/items/1", nil, "c1")
	require.Equal(t, 200, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["count"])

	// Removing a line that is not there is a no-op, not an error.
	w = env.do(t, "DELETE", "/api/cart/items/99", nil, "c1")
	assert.Equal(t, 200, w.Code)

	w = env.do(t, "DELETE", "/api/cart", nil, "c1")
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 0, body["count"])
}

func TestTamperedCookieStartsFreshCart(t *testing.T) {
	env := newCartTestEnv()

	w := env.do(t, "POST", "/api/cart/items", gin.H{"product_id": 1, "quantity": 3}, "c1")
	require.Equal(t, 200, w.Code)

	// A forged cookie must not resolve to the existing cart.
	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "slime_cart", Value: "c1.forged-signature"})
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 0, body["count"])
}
