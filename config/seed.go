package config

import (
	"log"
	"strings"

	"github.com/raflyryhnsyh/ApotekQu-sub001/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedDev mengisi data contoh untuk development (SEED_DEV=1).
func SeedDev(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		suppliers := []models.Supplier{
			{ID: 1, Nama: "PT Kimia Farma Trading", Alamat: "Jakarta"},
			{ID: 2, Nama: "PT Anugrah Argon Medica", Alamat: "Bandung"},
		}
		obat := []models.Obat{
			{ID: 1, Nama: "Paracetamol 500 mg", Kategori: "Analgesik", Komposisi: "Paracetamol"},
			{ID: 2, Nama: "Amoxicillin 500 mg", Kategori: "Antibiotik", Komposisi: "Amoxicillin trihydrate"},
			{ID: 3, Nama: "Salbutamol Inhaler 100 mcg", Kategori: "Bronkodilator", Komposisi: "Salbutamol sulfate"},
		}
		links := []models.PenyediaProduk{
			{ID: 1, ObatID: 1, SupplierID: 1, HargaBeli: decimal.NewFromInt(12000)},
			{ID: 2, ObatID: 1, SupplierID: 2, HargaBeli: decimal.NewFromInt(11500)},
			{ID: 3, ObatID: 2, SupplierID: 1, HargaBeli: decimal.NewFromInt(30000)},
			{ID: 4, ObatID: 3, SupplierID: 2, HargaBeli: decimal.NewFromInt(85000)},
		}
		for _, rows := range []interface{}{&suppliers, &obat, &links} {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error; err != nil {
				return err
			}
		}
		// id di-set manual, sequence perlu disusulkan
		for _, table := range []string{"supplier", "obat", "penyedia_produk"} {
			if err := tx.Exec("SELECT setval(pg_get_serial_sequence(?, 'id'), (SELECT MAX(id) FROM " + table + "))", table).Error; err != nil {
				return err
			}
		}

		email := "apoteker@apotekqu.local"
		hash, err := bcrypt.GenerateFromPassword([]byte("apoteker123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(email))
		user := models.AuthUser{ID: id, Email: strings.ToLower(email), PasswordHash: string(hash)}
		profile := models.Profile{ID: id, Email: user.Email, FullName: "Apoteker Demo", Role: "apoteker"}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&profile).Error; err != nil {
			return err
		}
		log.Println("✅ Seed data development selesai")
		return nil
	})
}
