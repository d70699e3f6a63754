package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type POStatus string

const (
	StatusDiproses   POStatus = "diproses"
	StatusDikirim    POStatus = "dikirim"
	StatusSelesai    POStatus = "selesai"
	StatusDibatalkan POStatus = "dibatalkan"
)

type PurchaseOrder struct {
	ID        uint                  `gorm:"primaryKey" json:"id"`
	NomorPO   string                `gorm:"column:nomor_po;uniqueIndex;size:40" json:"nomor_po"` // PO-2026-000123
	UserID    uuid.UUID             `gorm:"column:id_user;type:uuid" json:"id_user"`
	Status    POStatus              `gorm:"size:20;index" json:"status"`
	Total     decimal.Decimal       `gorm:"type:numeric(14,2);not null" json:"total"`
	Items     []DetailPurchaseOrder `gorm:"foreignKey:POID" json:"items,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

func (PurchaseOrder) TableName() string { return "purchase_order" }

type DetailPurchaseOrder struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	POID             uint            `gorm:"column:id_po;index;not null" json:"id_po"`
	PenyediaProdukID uint            `gorm:"column:id_pp;not null" json:"id_pp"`
	PenyediaProduk   *PenyediaProduk `gorm:"foreignKey:PenyediaProdukID" json:"penyedia_produk,omitempty"`
	Kuantitas        int             `gorm:"not null" json:"kuantitas"`
	Harga            decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"harga"`
}

func (DetailPurchaseOrder) TableName() string { return "detail_purchase_order" }

// DetailPORow adalah baris flat hasil join detail PO -> penyedia produk -> obat.
type DetailPORow struct {
	PenyediaProdukID uint            `json:"id_pp"`
	ObatID           uint            `json:"id_obat"`
	NamaObat         string          `json:"nama_obat"`
	Kuantitas        int             `json:"kuantitas"`
	Harga            decimal.Decimal `json:"harga"`
}
