package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecofinds/internal/storage"
	"ecofinds/internal/store"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	backing := storage.NewMemory()
	st := store.New(context.Background(), backing, logger)
	return buildRouter(logger, st, backing)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(blob)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, router *gin.Engine, email string) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/auth/login", gin.H{"email": email, "password": "password123"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, rec.Code, rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/auth/login", gin.H{"email": "test@example.com", "password": "nope"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRegisterConflict(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/auth/register", gin.H{
		"email": "test@example.com", "password": "secret", "username": "dupe",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestMeRequiresSession(t *testing.T) {
	router := newTestRouter(t)
	if rec := doJSON(t, router, http.MethodGet, "/me", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestProductFilterQuery(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/products?category=Electronics&q=retro", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected 1 match, got %d", resp.Total)
	}
}

func TestSuggestReturnsTitles(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/products/suggest?q=retro", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0] != "Retro Bluetooth Speaker" {
		t.Fatalf("unexpected suggestions %v", resp.Suggestions)
	}
}

func TestGetProductNotFound(t *testing.T) {
	router := newTestRouter(t)
	if rec := doJSON(t, router, http.MethodGet, "/products/999", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateProductEnforcesOwnership(t *testing.T) {
	router := newTestRouter(t)
	loginAs(t, router, "test@example.com")

	// product 3 belongs to seller "2", the session user is "1"
	rec := doJSON(t, router, http.MethodPut, "/products/3", gin.H{
		"title": "Hijacked", "price": 1, "category": "Electronics",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteProductAsSeller(t *testing.T) {
	router := newTestRouter(t)
	loginAs(t, router, "seller@example.com")

	if rec := doJSON(t, router, http.MethodDelete, "/products/3", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodGet, "/products/3", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("deleted product still listed, got %d", rec.Code)
	}
}

func TestCheckoutFlow(t *testing.T) {
	router := newTestRouter(t)
	loginAs(t, router, "test@example.com")

	rec := doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"productId": "3"})
	if rec.Code != http.StatusOK {
		t.Fatalf("add to cart: %d body %s", rec.Code, rec.Body.String())
	}
	var cartResp struct {
		Items []json.RawMessage `json:"items"`
		Total float64           `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &cartResp); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(cartResp.Items) != 1 || cartResp.Total != 55.00 {
		t.Fatalf("unexpected cart %+v", cartResp)
	}

	rec = doJSON(t, router, http.MethodPost, "/checkout", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout: %d body %s", rec.Code, rec.Body.String())
	}
	var orderResp struct {
		Order struct {
			Total float64 `json:"total"`
		} `json:"order"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &orderResp); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if orderResp.Order.Total != 55.00 {
		t.Fatalf("expected total 55.00, got %v", orderResp.Order.Total)
	}

	if rec := doJSON(t, router, http.MethodGet, "/products/3", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("purchased product still listed, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/cart", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &cartResp); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(cartResp.Items) != 0 {
		t.Fatalf("cart not emptied: %+v", cartResp.Items)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	router := newTestRouter(t)
	loginAs(t, router, "test@example.com")

	if rec := doJSON(t, router, http.MethodPost, "/checkout", nil); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestLogoutEndsSession(t *testing.T) {
	router := newTestRouter(t)
	loginAs(t, router, "test@example.com")

	if rec := doJSON(t, router, http.MethodPost, "/auth/logout", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("logout: %d", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodGet, "/me", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}
