package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/raflyryhnsyh/ApotekQu-sub001/cart"
	"github.com/raflyryhnsyh/ApotekQu-sub001/events"
	"github.com/raflyryhnsyh/ApotekQu-sub001/katalog"
	"github.com/raflyryhnsyh/ApotekQu-sub001/service"
	"github.com/raflyryhnsyh/ApotekQu-sub001/utils"

	"github.com/gin-gonic/gin"
)

// batas ini juga tertulis di tag binding CheckoutInput dan CheckoutItem
const (
	maxQuantity     = 10000
	maxCheckoutItem = 100
	maxCheckoutBody = 64 << 10

	msgItemInvalid = "Item keranjang tidak valid"
)

type PengadaanController struct {
	Katalog service.KatalogStore
	Orders  service.PurchaseOrderStore
	Events  events.Publisher
}

func (pc *PengadaanController) GetKatalog(c *gin.Context) {
	rows, err := pc.Katalog.KatalogPengadaan(c.Request.Context())
	if err != nil {
		log.Printf("❌ katalog pengadaan: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal memuat katalog obat", nil)
		return
	}
	utils.Data(c, katalog.Compose(rows))
}

type CheckoutItem struct {
	ID       uint `json:"id" binding:"required"` // id penyedia_produk
	Quantity int  `json:"quantity" binding:"required,min=1,max=10000"`
}

type CheckoutInput struct {
	Items []CheckoutItem `json:"items" binding:"max=100,dive"`
}

// buildCart melipat item request ke keranjang; id yang sama digabung dan
// hasil gabungannya tetap dibatasi maxQuantity.
func buildCart(items []CheckoutItem) (cart.Store, error) {
	var store cart.Store
	for _, it := range items {
		store = store.AddQuantity(cart.Product{ID: strconv.FormatUint(uint64(it.ID), 10)}, it.Quantity)
	}
	for _, it := range store.Items() {
		if it.Quantity > maxQuantity {
			return cart.Store{}, utils.ValidationError(msgItemInvalid)
		}
	}
	return store, nil
}

func (pc *PengadaanController) Checkout(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.Fail(c, utils.AuthError("Unauthorized"))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCheckoutBody)
	var in CheckoutInput
	if err := bindJSON(c, &in, msgItemInvalid); err != nil {
		utils.Fail(c, err)
		return
	}

	store, err := buildCart(in.Items)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if store.Len() == 0 {
		utils.Fail(c, utils.ValidationError("Keranjang kosong"))
		return
	}

	lines := make([]service.OrderLine, 0, store.Len())
	for _, it := range store.Items() {
		id, _ := strconv.ParseUint(it.ID, 10, 64)
		lines = append(lines, service.OrderLine{PenyediaProdukID: uint(id), Kuantitas: it.Quantity})
	}

	po, err := pc.Orders.CreatePurchaseOrder(c.Request.Context(), userID, lines)
	if err != nil {
		if errors.Is(err, service.ErrUnknownProduct) {
			utils.Fail(c, utils.ValidationError("Ada produk di keranjang yang tidak ditemukan"))
			return
		}
		utils.Fail(c, utils.UpstreamError("Gagal membuat purchase order", err))
		return
	}

	if err := pc.Events.Publish(events.TopicPurchaseOrderCreated, strconv.FormatUint(uint64(po.ID), 10), po); err != nil {
		log.Printf("⚠️  publish %s: %v", events.TopicPurchaseOrderCreated, err)
	}

	utils.Success(c, http.StatusCreated, gin.H{
		"message": "Purchase order berhasil dibuat",
		"data":    po,
	})
}
