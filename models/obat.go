package models

import "github.com/shopspring/decimal"

// Obat merepresentasikan record di tabel `obat`
type Obat struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nama      string `gorm:"size:180;not null" json:"nama"`
	Kategori  string `gorm:"size:120" json:"kategori"`
	Komposisi string `gorm:"type:text" json:"komposisi"`
}

func (Obat) TableName() string { return "obat" }

// PenyediaProduk menghubungkan obat dengan supplier beserta harga belinya.
type PenyediaProduk struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	ObatID     uint            `gorm:"column:id_obat;not null" json:"id_obat"`
	Obat       *Obat           `gorm:"foreignKey:ObatID" json:"obat,omitempty"`
	SupplierID uint            `gorm:"column:id_supplier;not null" json:"id_supplier"`
	Supplier   *Supplier       `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	HargaBeli  decimal.Decimal `gorm:"column:harga_beli;type:numeric(14,2);not null" json:"harga_beli"`
}

func (PenyediaProduk) TableName() string { return "penyedia_produk" }
