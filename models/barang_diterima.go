package models

import "time"

type BarangDiterima struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	POID            uint      `gorm:"column:id_po;index" json:"id_po"`
	TanggalDiterima time.Time `gorm:"column:tanggal_diterima" json:"tanggal_diterima"`
}

func (BarangDiterima) TableName() string { return "barang_diterima" }

// DetailBarangDiterima dicatat sekali per baris penerimaan; nomor batch boleh diisi belakangan.
type DetailBarangDiterima struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	BarangDiterimaID uint    `gorm:"column:id_barang_diterima;index;not null" json:"id_barang_diterima"`
	DetailPOID       uint    `gorm:"column:id_pp;not null" json:"id_pp"` // baris detail PO yang diterima
	JumlahDiterima   int     `gorm:"column:jumlah_diterima;not null" json:"jumlah_diterima"`
	NomorBatch       *string `gorm:"column:nomor_batch;size:80" json:"nomor_batch"`
}

func (DetailBarangDiterima) TableName() string { return "detail_barang_diterima" }
