package controllers

import (
	"github.com/raflyryhnsyh/ApotekQu-sub001/models"
	"github.com/raflyryhnsyh/ApotekQu-sub001/service"
	"github.com/raflyryhnsyh/ApotekQu-sub001/ui"
	"github.com/raflyryhnsyh/ApotekQu-sub001/utils"

	"github.com/gin-gonic/gin"
)

type PurchaseOrderController struct {
	Orders service.PurchaseOrderStore
}

type purchaseOrderResponse struct {
	models.PurchaseOrder
	Badge ui.Badge `json:"badge"`
}

func (pc *PurchaseOrderController) List(c *gin.Context) {
	rows, err := pc.Orders.ListPurchaseOrders(c.Request.Context())
	if err != nil {
		utils.Fail(c, utils.UpstreamError("Gagal mengambil data purchase order", err))
		return
	}

	out := make([]purchaseOrderResponse, 0, len(rows))
	for _, po := range rows {
		out = append(out, purchaseOrderResponse{PurchaseOrder: po, Badge: ui.StatusBadge(po.Status)})
	}
	utils.Data(c, out)
}

// Detail: GET /purchase-order/:id/detail
func (pc *PurchaseOrderController) Detail(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	rows, err := pc.Orders.DetailPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		utils.Fail(c, utils.UpstreamError("Gagal mengambil detail purchase order", err))
		return
	}
	utils.Data(c, rows)
}
