package controllers

import (
	"net/http"
	"testing"

	"github.com/raflyryhnsyh/ApotekQu-sub001/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPurchaseOrdersAddsBadge(t *testing.T) {
	orders := &fakeOrders{list: []models.PurchaseOrder{
		{ID: 2, NomorPO: "PO-2026-000002", Status: models.StatusSelesai},
		{ID: 1, NomorPO: "PO-2026-000001", Status: models.StatusDiproses},
	}}
	pc := &PurchaseOrderController{Orders: orders}
	r := newRouter()
	r.GET("/po", pc.List)

	w := doJSON(r, http.MethodGet, "/po", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "PO-2026-000002", first["nomor_po"])
	assert.Equal(t, "success", first["badge"].(map[string]interface{})["variant"])
}

func TestDetailPurchaseOrder(t *testing.T) {
	orders := &fakeOrders{detail: []models.DetailPORow{
		{PenyediaProdukID: 1, ObatID: 1, NamaObat: "Paracetamol 500 mg", Kuantitas: 10, Harga: decimal.NewFromInt(12000)},
	}}
	pc := &PurchaseOrderController{Orders: orders}
	r := newRouter()
	r.GET("/po/:id/detail", pc.Detail)

	w := doJSON(r, http.MethodGet, "/po/1/detail", nil)
	require.Equal(t, http.StatusOK, w.Code)
	row := decode(t, w)["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Paracetamol 500 mg", row["nama_obat"])
	assert.Equal(t, "12000", row["harga"])

	w = doJSON(r, http.MethodGet, "/po/0/detail", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
