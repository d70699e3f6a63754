package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/raflyryhnsyh/ApotekQu-sub001/events"
	"github.com/raflyryhnsyh/ApotekQu-sub001/models"
	"github.com/raflyryhnsyh/ApotekQu-sub001/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKatalogFailureUsesStaticMessage(t *testing.T) {
	pc := &PengadaanController{Katalog: fakeKatalog{err: errors.New("pq: function get_katalog_pengadaan() does not exist")}}
	r := newRouter()
	r.GET("/katalog", pc.GetKatalog)

	w := doJSON(r, http.MethodGet, "/katalog", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Gagal memuat katalog obat", body["error"])
	assert.NotContains(t, body, "details")
}

func TestKatalogComposesCheapestOffer(t *testing.T) {
	rows := []models.KatalogRow{
		{ID: 1, HargaBeli: decimal.NewFromInt(12000), NamaObat: "Paracetamol 500 mg", NamaSupplier: "A", SupplierID: 1},
		{ID: 2, HargaBeli: decimal.NewFromInt(11500), NamaObat: "Paracetamol 500 mg", NamaSupplier: "B", SupplierID: 2},
	}
	pc := &PengadaanController{Katalog: fakeKatalog{rows: rows}}
	r := newRouter()
	r.GET("/katalog", pc.GetKatalog)

	w := doJSON(r, http.MethodGet, "/katalog", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "B", data[0].(map[string]interface{})["supplier"])
}

func TestCheckoutMergesDuplicateItems(t *testing.T) {
	orders := &fakeOrders{}
	pub := &fakePublisher{}
	pc := &PengadaanController{Orders: orders, Events: pub}
	r := newRouter()
	r.POST("/checkout", withUser, pc.Checkout)

	w := doJSON(r, http.MethodPost, "/checkout", CheckoutInput{Items: []CheckoutItem{
		{ID: 2, Quantity: 3},
		{ID: 4, Quantity: 1},
		{ID: 2, Quantity: 2},
	}})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, testUserID, orders.userID)
	assert.Equal(t, []service.OrderLine{
		{PenyediaProdukID: 2, Kuantitas: 5},
		{PenyediaProdukID: 4, Kuantitas: 1},
	}, orders.lines)
	assert.Equal(t, []published{{topic: events.TopicPurchaseOrderCreated, key: "7"}}, pub.sent)
}

func TestCheckoutRejectsBadItems(t *testing.T) {
	cases := []struct {
		name  string
		items []CheckoutItem
		msg   string
	}{
		{"kosong", nil, "Keranjang kosong"},
		{"kuantitas nol", []CheckoutItem{{ID: 1, Quantity: 0}}, "Item keranjang tidak valid"},
		{"kuantitas terlalu besar", []CheckoutItem{{ID: 1, Quantity: maxQuantity + 1}}, "Item keranjang tidak valid"},
		{"tanpa id", []CheckoutItem{{Quantity: 1}}, "Item keranjang tidak valid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders := &fakeOrders{}
			pc := &PengadaanController{Orders: orders, Events: &fakePublisher{}}
			r := newRouter()
			r.POST("/checkout", withUser, pc.Checkout)

			w := doJSON(r, http.MethodPost, "/checkout", CheckoutInput{Items: tc.items})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.msg, decode(t, w)["error"])
			assert.Nil(t, orders.lines)
		})
	}
}

func TestCheckoutUnknownProduct(t *testing.T) {
	pc := &PengadaanController{Orders: &fakeOrders{createErr: service.ErrUnknownProduct}, Events: &fakePublisher{}}
	r := newRouter()
	r.POST("/checkout", withUser, pc.Checkout)

	w := doJSON(r, http.MethodPost, "/checkout", CheckoutInput{Items: []CheckoutItem{{ID: 99, Quantity: 1}}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutRequiresUser(t *testing.T) {
	pc := &PengadaanController{Orders: &fakeOrders{}, Events: &fakePublisher{}}
	r := newRouter()
	r.POST("/checkout", pc.Checkout)

	w := doJSON(r, http.MethodPost, "/checkout", CheckoutInput{Items: []CheckoutItem{{ID: 1, Quantity: 1}}})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutMergedQuantityIsBounded(t *testing.T) {
	orders := &fakeOrders{}
	pc := &PengadaanController{Orders: orders, Events: &fakePublisher{}}
	r := newRouter()
	r.POST("/checkout", withUser, pc.Checkout)

	w := doJSON(r, http.MethodPost, "/checkout", CheckoutInput{Items: []CheckoutItem{
		{ID: 1, Quantity: maxQuantity},
		{ID: 1, Quantity: maxQuantity},
	}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgItemInvalid, decode(t, w)["error"])
	assert.Nil(t, orders.lines)
}

func TestCheckoutItemCount(t *testing.T) {
	full := make([]CheckoutItem, maxCheckoutItem)
	for i := range full {
		full[i] = CheckoutItem{ID: uint(i + 1), Quantity: maxQuantity}
	}

	orders := &fakeOrders{}
	pc := &PengadaanController{Orders: orders, Events: &fakePublisher{}}
	r := newRouter()
	r.POST("/checkout", withUser, pc.Checkout)

	w := doJSON(r, http.MethodPost, "/checkout", CheckoutInput{Items: full})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, orders.lines, maxCheckoutItem)
	assert.Equal(t, maxQuantity, orders.lines[maxCheckoutItem-1].Kuantitas)

	orders.lines = nil
	tooMany := append(full, CheckoutItem{ID: 999, Quantity: 1})
	w = doJSON(r, http.MethodPost, "/checkout", CheckoutInput{Items: tooMany})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, orders.lines)
}

func TestCheckoutMalformedBody(t *testing.T) {
	pc := &PengadaanController{Orders: &fakeOrders{}, Events: &fakePublisher{}}
	r := newRouter()
	r.POST("/checkout", withUser, pc.Checkout)

	w := doJSON(r, http.MethodPost, "/checkout", `{"items": [`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Payload tidak valid", decode(t, w)["error"])
}
