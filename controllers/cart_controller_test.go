package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-storefront/cart"
	"nexus-storefront/config"
	"nexus-storefront/middleware"
	"nexus-storefront/models"
	"nexus-storefront/repositories"
	"nexus-storefront/services"
)

type cartEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    models.CartView `json:"data"`
}

func newCartRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	config.AppConfig = &config.Config{
		AppEnv:        "test",
		SessionCookie: "cart_session",
		CartTTL:       time.Hour,
	}

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client := &repositories.APIClient{BaseURL: srv.URL, HTTP: srv.Client()}
	ctrl := &CartController{
		Carts:    cart.NewManager(nil),
		Checkout: services.NewCheckoutService(repositories.NewOrderRepository(client)),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.SessionMiddleware())
	router.GET("/cart", ctrl.GetCart)
	router.DELETE("/cart", ctrl.ClearCart)
	router.POST("/cart/items", ctrl.AddItem)
	router.POST("/cart/items/:id/increase", ctrl.IncreaseQuantity)
	router.POST("/cart/items/:id/decrease", ctrl.DecreaseQuantity)
	router.DELETE("/cart/items/:id", ctrl.RemoveItem)
	router.POST("/cart/checkout", ctrl.CheckoutCart)
	return router
}

// do issues a request carrying the session cookie and decodes the envelope.
func do(t *testing.T, router *gin.Engine, method, path, body, session string) (*httptest.ResponseRecorder, cartEnvelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "cart_session", Value: session})
	}
	router.ServeHTTP(w, req)

	var env cartEnvelope
	if w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestAddSameProductTwiceMergesLine(t *testing.T) {
	router := newCartRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	body := `{"id":"p1","name":"Lamp","price":19.99,"image_ref":"/img/p1.png"}`
	w, _ := do(t, router, http.MethodPost, "/cart/items", body, "sess-1")
	require.Equal(t, http.StatusOK, w.Code)

	w, env := do(t, router, http.MethodPost, "/cart/items", body, "sess-1")
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, env.Data.Lines, 1)
	assert.Equal(t, "p1", env.Data.Lines[0].ID)
	assert.Equal(t, 2, env.Data.Lines[0].Quantity)
	assert.Equal(t, 2, env.Data.TotalItems)
	assert.Equal(t, 39.98, env.Data.TotalPrice)
}

func TestAddWithExplicitQuantity(t *testing.T) {
	router := newCartRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	body := `{"id":"p1","name":"Lamp","price":5.00,"quantity":3}`
	w, env := do(t, router, http.MethodPost, "/cart/items", body, "sess-1")

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.Data.Lines, 1)
	assert.Equal(t, 3, env.Data.Lines[0].Quantity)
	assert.Equal(t, 15.0, env.Data.Lines[0].Subtotal)
}

func TestDecreaseToZeroRemovesLine(t *testing.T) {
	router := newCartRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	do(t, router, http.MethodPost, "/cart/items", `{"id":"p1","name":"Lamp","price":19.99}`, "sess-1")
	w, env := do(t, router, http.MethodPost, "/cart/items/p1/decrease", "", "sess-1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.Data.Lines)
	assert.Equal(t, 0, env.Data.TotalItems)
}

func TestMutationsOnAbsentIDAreNoOps(t *testing.T) {
	router := newCartRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	do(t, router, http.MethodPost, "/cart/items", `{"id":"p1","name":"Lamp","price":19.99}`, "sess-1")
	do(t, router, http.MethodPost, "/cart/items/ghost/increase", "", "sess-1")
	do(t, router, http.MethodPost, "/cart/items/ghost/decrease", "", "sess-1")
	do(t, router, http.MethodDelete, "/cart/items/ghost", "", "sess-1")

	_, env := do(t, router, http.MethodGet, "/cart", "", "sess-1")
	require.Len(t, env.Data.Lines, 1)
	assert.Equal(t, 1, env.Data.TotalItems)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	router := newCartRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	do(t, router, http.MethodPost, "/cart/items", `{"id":"p1","name":"Lamp","price":19.99}`, "sess-a")
	_, env := do(t, router, http.MethodGet, "/cart", "", "sess-b")

	assert.Empty(t, env.Data.Lines)
}

func TestCheckoutSuccessClearsCartAndReturnsOrderID(t *testing.T) {
	router := newCartRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.CreateOrderResponse{OrderID: 7})
	})

	do(t, router, http.MethodPost, "/cart/items", `{"id":"42","name":"Lamp","price":19.99}`, "sess-1")
	w, _ := do(t, router, http.MethodPost, "/cart/checkout", "", "sess-1")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"order_id":7`)

	_, env := do(t, router, http.MethodGet, "/cart", "", "sess-1")
	assert.Empty(t, env.Data.Lines)
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	router := newCartRouter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "stock conflict", http.StatusConflict)
	})

	do(t, router, http.MethodPost, "/cart/items", `{"id":"42","name":"Lamp","price":19.99}`, "sess-1")
	w, _ := do(t, router, http.MethodPost, "/cart/checkout", "", "sess-1")

	assert.Equal(t, http.StatusConflict, w.Code)

	_, env := do(t, router, http.MethodGet, "/cart", "", "sess-1")
	require.Len(t, env.Data.Lines, 1)
	assert.Equal(t, 1, env.Data.TotalItems)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	router := newCartRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	w, _ := do(t, router, http.MethodPost, "/cart/checkout", "", "sess-1")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddItemRejectsMissingFields(t *testing.T) {
	router := newCartRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	w, _ := do(t, router, http.MethodPost, "/cart/items", `{"price":1.00}`, "sess-1")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
