package controllers

import (
	"errors"

	"github.com/raflyryhnsyh/ApotekQu-sub001/service"
	"github.com/raflyryhnsyh/ApotekQu-sub001/utils"

	"github.com/gin-gonic/gin"
)

type SupplierController struct {
	Suppliers      service.SupplierStore
	PenyediaProduk service.PenyediaProdukStore
}

func (sc *SupplierController) GetAllSupplier(c *gin.Context) {
	rows, err := sc.Suppliers.ListSuppliers(c.Request.Context())
	if err != nil {
		utils.Fail(c, utils.UpstreamError("Gagal mengambil data supplier", err))
		return
	}
	utils.Data(c, rows)
}

func (sc *SupplierController) GetPenyediaProdukByID(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	pp, err := sc.PenyediaProduk.PenyediaProdukByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.Fail(c, utils.NotFoundError("Penyedia produk tidak ditemukan"))
			return
		}
		utils.Fail(c, utils.UpstreamError("Gagal mengambil penyedia produk", err))
		return
	}
	utils.Data(c, pp)
}
