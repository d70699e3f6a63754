package models

import "github.com/shopspring/decimal"

// KatalogRow adalah satu baris hasil get_katalog_pengadaan().
type KatalogRow struct {
	ID           uint            `gorm:"column:id" json:"id"`
	HargaBeli    decimal.Decimal `gorm:"column:harga_beli" json:"harga_beli"`
	NamaObat     string          `gorm:"column:nama_obat" json:"nama_obat"`
	NamaSupplier string          `gorm:"column:nama_supplier" json:"nama_supplier"`
	SupplierID   uint            `gorm:"column:id_supplier" json:"id_supplier"`
}
