package models

type Supplier struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nama   string `gorm:"size:180;not null" json:"nama"`
	Alamat string `gorm:"size:255" json:"alamat"`
}

func (Supplier) TableName() string { return "supplier" }
