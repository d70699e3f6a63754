package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/raflyryhnsyh/ApotekQu-sub001/events"
	"github.com/raflyryhnsyh/ApotekQu-sub001/models"
	"github.com/raflyryhnsyh/ApotekQu-sub001/service"
	"github.com/raflyryhnsyh/ApotekQu-sub001/utils"

	"github.com/gin-gonic/gin"
)

type BarangDiterimaController struct {
	Store  service.BarangDiterimaStore
	Events events.Publisher
}

// pointer supaya field yang tidak dikirim bisa dibedakan dari nilai 0
type DetailBarangDiterimaInput struct {
	BarangDiterimaID *uint   `json:"id_barang_diterima" binding:"required"`
	DetailPOID       *uint   `json:"id_pp" binding:"required"`
	JumlahDiterima   *int    `json:"jumlah_diterima" binding:"required,gte=0"`
	NomorBatch       *string `json:"nomor_batch"`
}

func (bc *BarangDiterimaController) Create(c *gin.Context) {
	var in DetailBarangDiterimaInput
	if err := bindJSON(c, &in, "id_barang_diterima, id_pp, dan jumlah_diterima wajib diisi"); err != nil {
		utils.Fail(c, err)
		return
	}

	row := models.DetailBarangDiterima{
		BarangDiterimaID: *in.BarangDiterimaID,
		DetailPOID:       *in.DetailPOID,
		JumlahDiterima:   *in.JumlahDiterima,
	}
	if in.NomorBatch != nil && strings.TrimSpace(*in.NomorBatch) != "" {
		batch := strings.TrimSpace(*in.NomorBatch)
		row.NomorBatch = &batch
	}

	if err := bc.Store.CreateDetailBarangDiterima(c.Request.Context(), &row); err != nil {
		utils.Fail(c, utils.UpstreamError("Gagal menyimpan detail barang diterima", err))
		return
	}

	if err := bc.Events.Publish(events.TopicDetailBarangDiterimaCreate, strconv.FormatUint(uint64(row.ID), 10), row); err != nil {
		log.Printf("⚠️  publish %s: %v", events.TopicDetailBarangDiterimaCreate, err)
	}

	utils.Success(c, http.StatusCreated, gin.H{
		"message": "Detail barang diterima berhasil ditambahkan",
		"data":    row,
	})
}

type NomorBatchInput struct {
	NomorBatch *string `json:"nomor_batch" binding:"required"`
}

func (bc *BarangDiterimaController) UpdateNomorBatch(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	var in NomorBatchInput
	if err := bindJSON(c, &in, "nomor_batch wajib diisi"); err != nil {
		utils.Fail(c, err)
		return
	}
	if strings.TrimSpace(*in.NomorBatch) == "" {
		utils.Fail(c, utils.ValidationError("nomor_batch wajib diisi"))
		return
	}

	row, err := bc.Store.UpdateNomorBatch(c.Request.Context(), id, strings.TrimSpace(*in.NomorBatch))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.Fail(c, utils.NotFoundError("Detail barang diterima tidak ditemukan"))
			return
		}
		utils.Fail(c, utils.UpstreamError("Gagal memperbarui nomor batch", err))
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"message": "Nomor batch berhasil diperbarui",
		"data":    row,
	})
}
