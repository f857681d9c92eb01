package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ashim-08/Nepali-Thali/lib/myhttp"
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
	"github.com/ashim-08/Nepali-Thali/lib/myuuid"
	"github.com/ashim-08/Nepali-Thali/services/catalog"
)

const sessionUID = "5f0c6d2e-8a41-4f6b-9d3c-7e2a1b0c4d58"

var momo = catalog.Product{
	ID:                 7,
	Name:               "Chicken Momo",
	Image:              "https://cdn.dummyjson.com/recipe-images/7.webp",
	Cuisine:            "Nepalese",
	MealType:           []string{"Snack"},
	CaloriesPerServing: 180,
	Rating:             4.8,
}

func TestCartService(t *testing.T) {

	t.Run("Get empty cart issues a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, uuider := setup(t, ctrl)

		// given
		uuider.EXPECT().Create().Return("new-session")

		// when
		response := send(t, router, http.MethodGet, "/api/cart", nil, "")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Header().Get("Set-Cookie"), myhttp.SessionCookieName+"=new-session")
		state := decodeState(t, response)
		assert.True(t, state.IsEmpty())
		assert.Contains(t, response.Body.String(), `"totalPrice": 0`)
	})

	t.Run("Add items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, registry, _, _ := setup(t, ctrl)

		// when
		send(t, router, http.MethodPost, "/api/cart/items", strings.NewReader(`{"id":"a","name":"Dal Bhat","unitPrice":100}`), sessionUID)
		send(t, router, http.MethodPost, "/api/cart/items", strings.NewReader(`{"id":"b","name":"Sel Roti","unitPrice":50}`), sessionUID)
		response := send(t, router, http.MethodPost, "/api/cart/items", strings.NewReader(`{"id":"a","name":"Dal Bhat","unitPrice":100}`), sessionUID)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Empty(t, response.Header().Get("Set-Cookie"))
		state := decodeState(t, response)
		assert.Equal(t, "a:2 b:1 ", quantities(state))
		assert.Equal(t, 3, state.TotalItems)
		assert.Equal(t, "250", state.TotalPrice.String())
		assert.Equal(t, "a:2 b:1 ", quantities(registry.StoreFor(ctx, sessionUID).State()))
	})

	t.Run("Add item keeps unknown display fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _ := setup(t, ctrl)

		// given
		send(t, router, http.MethodPost, "/api/cart/items", strings.NewReader(`{"id":"a","name":"Dal Bhat","unitPrice":100,"difficulty":"Easy","ingredients":["rice","lentils"],"quantity":40}`), sessionUID)

		// when
		response := send(t, router, http.MethodGet, "/api/cart", nil, sessionUID)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		state := decodeState(t, response)
		assert.Equal(t, "a:1 ", quantities(state))
		assert.JSONEq(t, `"Easy"`, string(state.Items[0].Extra["difficulty"]))
		assert.JSONEq(t, `["rice","lentils"]`, string(state.Items[0].Extra["ingredients"]))
		assert.NotContains(t, state.Items[0].Extra, "quantity")
	})

	t.Run("Add invalid product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _ := setup(t, ctrl)

		// when
		missingID := send(t, router, http.MethodPost, "/api/cart/items", strings.NewReader(`{"name":"Dal Bhat","unitPrice":100}`), sessionUID)
		notJSON := send(t, router, http.MethodPost, "/api/cart/items", strings.NewReader(`dal bhat`), sessionUID)

		// then
		assert.Equal(t, http.StatusBadRequest, missingID.Code)
		assert.Equal(t, http.StatusBadRequest, notJSON.Code)
	})

	t.Run("Add catalog product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, catalogMock, _ := setup(t, ctrl)

		// given
		catalogMock.EXPECT().Get(gomock.Any(), "7").Return(momo, true, nil)

		// when
		response := send(t, router, http.MethodPost, "/api/cart/products/7", nil, sessionUID)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		state := decodeState(t, response)
		assert.Equal(t, "7:1 ", quantities(state))
		assert.Equal(t, "Chicken Momo", state.Items[0].Name)
		assert.Equal(t, "180", state.Items[0].UnitPrice.String())
		assert.Equal(t, 4.8, state.Items[0].Rating)
		assert.JSONEq(t, "180", string(state.Items[0].Extra["caloriesPerServing"]))
	})

	t.Run("Add unknown catalog product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, catalogMock, _ := setup(t, ctrl)

		// given
		catalogMock.EXPECT().Get(gomock.Any(), "99").Return(catalog.Product{}, false, nil)

		// when
		response := send(t, router, http.MethodPost, "/api/cart/products/99", nil, sessionUID)

		// then
		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("Add catalog product while catalog unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, catalogMock, _ := setup(t, ctrl)

		// given
		catalogMock.EXPECT().Get(gomock.Any(), "7").Return(catalog.Product{}, false, fmt.Errorf("timeout"))

		// when
		response := send(t, router, http.MethodPost, "/api/cart/products/7", nil, sessionUID)

		// then
		assert.Equal(t, http.StatusServiceUnavailable, response.Code)
	})

	t.Run("Set quantity and remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, registry, _, _ := setup(t, ctrl)

		// given
		store := registry.StoreFor(ctx, sessionUID)
		store.AddItem(ctx, product("a", "100"))
		store.AddItem(ctx, product("a", "100"))
		store.AddItem(ctx, product("b", "50"))

		// when
		afterSet := send(t, router, http.MethodPut, "/api/cart/items/b/quantity/3", nil, sessionUID)
		afterRemove := send(t, router, http.MethodDelete, "/api/cart/items/a", nil, sessionUID)

		// then
		assert.Equal(t, http.StatusOK, afterSet.Code)
		state := decodeState(t, afterSet)
		assert.Equal(t, 5, state.TotalItems)
		assert.Equal(t, "350", state.TotalPrice.String())

		assert.Equal(t, http.StatusOK, afterRemove.Code)
		state = decodeState(t, afterRemove)
		assert.Equal(t, "b:3 ", quantities(state))
		assert.Equal(t, "150", state.TotalPrice.String())
	})

	t.Run("Unknown item is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, registry, _, _ := setup(t, ctrl)

		// given
		registry.StoreFor(ctx, sessionUID).AddItem(ctx, product("a", "100"))

		// when
		afterSet := send(t, router, http.MethodPut, "/api/cart/items/nonexistent/quantity/5", nil, sessionUID)
		afterRemove := send(t, router, http.MethodDelete, "/api/cart/items/nonexistent", nil, sessionUID)

		// then
		assert.Equal(t, http.StatusOK, afterSet.Code)
		assert.Equal(t, "a:1 ", quantities(decodeState(t, afterSet)))
		assert.Equal(t, http.StatusOK, afterRemove.Code)
		assert.Equal(t, "a:1 ", quantities(decodeState(t, afterRemove)))
	})

	t.Run("Invalid quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, registry, _, _ := setup(t, ctrl)

		// given
		registry.StoreFor(ctx, sessionUID).AddItem(ctx, product("a", "100"))

		// when
		notNumber := send(t, router, http.MethodPut, "/api/cart/items/a/quantity/many", nil, sessionUID)
		tooMany := send(t, router, http.MethodPut, "/api/cart/items/a/quantity/1000", nil, sessionUID)
		maxInt := send(t, router, http.MethodPut, "/api/cart/items/a/quantity/9223372036854775807", nil, sessionUID)
		maximum := send(t, router, http.MethodPut, "/api/cart/items/a/quantity/999", nil, sessionUID)

		// then
		assert.Equal(t, http.StatusBadRequest, notNumber.Code)
		assert.Equal(t, http.StatusBadRequest, tooMany.Code)
		assert.Equal(t, http.StatusBadRequest, maxInt.Code)
		assert.Equal(t, http.StatusOK, maximum.Code)
		assert.Equal(t, 999, decodeState(t, maximum).TotalItems)
	})

	t.Run("Contains", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, registry, _, _ := setup(t, ctrl)

		// given
		registry.StoreFor(ctx, sessionUID).AddItem(ctx, product("a", "100"))

		// when
		present := send(t, router, http.MethodGet, "/api/cart/items/a/contains", nil, sessionUID)
		absent := send(t, router, http.MethodGet, "/api/cart/items/b/contains", nil, sessionUID)

		// then
		assert.Contains(t, present.Body.String(), `"contains": true`)
		assert.Contains(t, absent.Body.String(), `"contains": false`)
	})

	t.Run("Clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, registry, _, _ := setup(t, ctrl)

		// given
		registry.StoreFor(ctx, sessionUID).AddItem(ctx, product("a", "100"))

		// when
		response := send(t, router, http.MethodDelete, "/api/cart", nil, sessionUID)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.True(t, decodeState(t, response).IsEmpty())
		assert.True(t, registry.StoreFor(ctx, sessionUID).State().IsEmpty())
	})

	t.Run("Forged session cookie gets a fresh session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, registry, _, uuider := setup(t, ctrl)

		// given
		uuider.EXPECT().Create().Return(sessionUID)

		// when
		response := send(t, router, http.MethodGet, "/api/cart", nil, "attacker-chosen-1")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Header().Get("Set-Cookie"), myhttp.SessionCookieName+"="+sessionUID)
		assert.Equal(t, 1, registry.Size())
		assert.Equal(t, SnapshotKeyFor(sessionUID), registry.StoreFor(context.TODO(), sessionUID).Key())
	})

	t.Run("Sessions are isolated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, registry, _, _ := setup(t, ctrl)

		// given
		registry.StoreFor(ctx, "other-session").AddItem(ctx, product("a", "100"))

		// when
		response := send(t, router, http.MethodGet, "/api/cart", nil, sessionUID)

		// then
		assert.True(t, decodeState(t, response).IsEmpty())
	})
}

func send(t *testing.T, router *mux.Router, method string, url string, body io.Reader, session string) *httptest.ResponseRecorder {
	request, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if session != "" {
		request.AddCookie(&http.Cookie{Name: myhttp.SessionCookieName, Value: session})
	}
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func decodeState(t *testing.T, response *httptest.ResponseRecorder) CartState {
	state := CartState{}
	err := json.Unmarshal(response.Body.Bytes(), &state)
	require.NoError(t, err)
	return state
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *Registry, *catalog.MockCatalog, *myuuid.MockUUIDer) {
	c := context.TODO()

	registry, err := NewRegistry(newInMemorySnapshotter(t), DefaultMaxCarts, mylog.New("cart"))
	require.NoError(t, err)
	catalogMock := catalog.NewMockCatalog(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)

	router := mux.NewRouter()
	sut := NewService(registry, catalogMock, uuider, mylog.New("cart"))
	sut.RegisterEndpoints(c, router)

	return c, router, registry, catalogMock, uuider
}
