package httphandler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goldencart/storefront/internal/adapter/httphandler"
	"github.com/goldencart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOps records delegated calls and serves canned state.
type stubOps struct {
	loaded       bool
	criteria     domain.FilterCriteria
	pageSet      int
	nextCalls    int
	prevCalls    int
	cartAdds     []domain.CartLine
	removed      []int
	setQuantity  map[int]int
	toggled      []int
	inWishlist   bool
	notification domain.Notification
	notified     []string
}

func newStubOps() *stubOps {
	return &stubOps{setQuantity: make(map[int]int)}
}

func (s *stubOps) Load(context.Context) { s.loaded = true }

func (s *stubOps) Catalog() domain.CatalogState {
	return domain.CatalogState{
		Status: domain.CatalogLoaded,
		Items:  []domain.Product{{ID: 1, Title: "one", Price: 10}},
	}
}

func (s *stubOps) Products() domain.ProductsView {
	return domain.ProductsView{
		Items:      []domain.Product{{ID: 1, Title: "one", Price: 10}},
		Page:       1,
		TotalPages: 1,
		TotalItems: 1,
	}
}

func (s *stubOps) Filters() domain.FiltersView {
	return domain.FiltersView{Categories: []string{"beauty"}}
}

func (s *stubOps) SetCriteria(c domain.FilterCriteria) { s.criteria = c }
func (s *stubOps) NextPage()                           { s.nextCalls++ }
func (s *stubOps) PreviousPage()                       { s.prevCalls++ }
func (s *stubOps) SetPage(i int)                       { s.pageSet = i }

func (s *stubOps) AddToCart(_ context.Context, id, qty int) {
	s.cartAdds = append(s.cartAdds, domain.CartLine{ProductID: id, Quantity: qty})
}

func (s *stubOps) RemoveFromCart(_ context.Context, id int) {
	s.removed = append(s.removed, id)
}

func (s *stubOps) SetCartQuantity(_ context.Context, id, qty int) {
	s.setQuantity[id] = qty
}

func (s *stubOps) Cart() domain.CartView {
	return domain.CartView{
		Lines: []domain.ResolvedCartLine{{
			Line:    domain.CartLine{ProductID: 1, Quantity: 2},
			Product: domain.Product{ID: 1, Title: "one", Price: 10},
		}},
		TotalItems: 2,
		TotalPrice: 20,
	}
}

func (s *stubOps) ToggleWishlist(_ context.Context, id int) bool {
	s.toggled = append(s.toggled, id)
	return s.inWishlist
}

func (s *stubOps) Wishlist() []domain.WishlistItem {
	return []domain.WishlistItem{{ProductID: 1, Product: domain.Product{ID: 1}}}
}

func (s *stubOps) Notify(msg string) { s.notified = append(s.notified, msg) }

func (s *stubOps) Notification() domain.Notification { return s.notification }

func newTestMux(ops *stubOps) http.Handler {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, ops)
	httphandler.RegisterProducts(mux, ops)
	httphandler.RegisterCart(mux, ops)
	httphandler.RegisterWishlist(mux, ops)
	httphandler.RegisterNotification(mux, ops)
	return httphandler.AllowJSON(mux)
}

func doJSON(
	t *testing.T, h http.Handler, method, target, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCatalogHandler(t *testing.T) {

	t.Run("LoadAccepted", func(t *testing.T) {
		ops := newStubOps()
		rec := doJSON(t, newTestMux(ops), http.MethodPost, "/v1/catalog/load", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.True(t, ops.loaded)
	})

	t.Run("GetCatalog", func(t *testing.T) {
		rec := doJSON(t, newTestMux(newStubOps()), http.MethodGet, "/v1/catalog", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(
			t,
			`{"status":"loaded","total_items":1}`,
			rec.Body.String(),
		)
	})
}

func TestProductsHandler(t *testing.T) {

	t.Run("PutCriteria", func(t *testing.T) {
		ops := newStubOps()
		rec := doJSON(t, newTestMux(ops), http.MethodPut, "/v1/products/criteria",
			`{"search_term":"red","min_price":5,"max_price":50,"sort":"price-asc"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "red", ops.criteria.SearchTerm)
		assert.Equal(t, domain.SortPriceAsc, ops.criteria.Sort)
	})

	t.Run("PutCriteriaBadJSON", func(t *testing.T) {
		rec := doJSON(t, newTestMux(newStubOps()), http.MethodPut,
			"/v1/products/criteria", `{broken`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("PageNavigation", func(t *testing.T) {
		ops := newStubOps()
		mux := newTestMux(ops)

		doJSON(t, mux, http.MethodPost, "/v1/products/page/next", "")
		doJSON(t, mux, http.MethodPost, "/v1/products/page/previous", "")
		doJSON(t, mux, http.MethodPut, "/v1/products/page", `{"index":3}`)

		assert.Equal(t, 1, ops.nextCalls)
		assert.Equal(t, 1, ops.prevCalls)
		assert.Equal(t, 3, ops.pageSet)
	})
}

func TestCartHandler(t *testing.T) {

	t.Run("PostItem", func(t *testing.T) {
		ops := newStubOps()
		rec := doJSON(t, newTestMux(ops), http.MethodPost, "/v1/cart/items",
			`{"product_id":1,"quantity":2}`)

		require.Equal(t, http.StatusAccepted, rec.Code)
		require.Len(t, ops.cartAdds, 1)
		assert.Equal(t, domain.CartLine{ProductID: 1, Quantity: 2}, ops.cartAdds[0])
	})

	t.Run("PutItemBadID", func(t *testing.T) {
		rec := doJSON(t, newTestMux(newStubOps()), http.MethodPut,
			"/v1/cart/items/abc", `{"quantity":3}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("PutItem", func(t *testing.T) {
		ops := newStubOps()
		rec := doJSON(t, newTestMux(ops), http.MethodPut, "/v1/cart/items/1",
			`{"quantity":3}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, ops.setQuantity[1])
	})

	t.Run("DeleteItem", func(t *testing.T) {
		ops := newStubOps()
		rec := doJSON(t, newTestMux(ops), http.MethodDelete, "/v1/cart/items/7", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int{7}, ops.removed)
	})

	t.Run("GetCart", func(t *testing.T) {
		rec := doJSON(t, newTestMux(newStubOps()), http.MethodGet, "/v1/cart", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_items":2`)
		assert.Contains(t, rec.Body.String(), `"total_price":20`)
	})
}

func TestWishlistHandler(t *testing.T) {

	t.Run("ToggleReportsMembership", func(t *testing.T) {
		ops := newStubOps()
		ops.inWishlist = true
		rec := doJSON(t, newTestMux(ops), http.MethodPost, "/v1/wishlist/toggle",
			`{"product_id":5}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"in_wishlist":true}`, rec.Body.String())
		assert.Equal(t, []int{5}, ops.toggled)
	})
}

func TestNotificationHandler(t *testing.T) {

	t.Run("NoContentWhenCleared", func(t *testing.T) {
		rec := doJSON(t, newTestMux(newStubOps()), http.MethodGet,
			"/v1/notification", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("LiveNotification", func(t *testing.T) {
		ops := newStubOps()
		ops.notification = domain.Notification{
			Message: "Added to cart!",
			Phase:   domain.NotificationVisible,
		}
		rec := doJSON(t, newTestMux(ops), http.MethodGet, "/v1/notification", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(
			t,
			`{"message":"Added to cart!","phase":"visible"}`,
			rec.Body.String(),
		)
	})

	t.Run("PostNotification", func(t *testing.T) {
		ops := newStubOps()
		rec := doJSON(t, newTestMux(ops), http.MethodPost, "/v1/notification",
			`{"message":"hi"}`)

		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, []string{"hi"}, ops.notified)
	})
}

func TestAllowJSON(t *testing.T) {
	ops := newStubOps()
	mux := newTestMux(ops)

	req := httptest.NewRequest(http.MethodPost, "/v1/cart/items",
		strings.NewReader(`{"product_id":1}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Empty(t, ops.cartAdds)
}
