package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/raflyryhnsyh/ApotekQu-sub001/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func withParam(dsn, key, value string) string {
	if strings.Contains(dsn, key+"=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + key + "=" + value
}

// DSN melengkapi DATABASE_URL dengan sslmode & search_path, atau fallback ke postgres lokal.
func (c Config) DSN() string {
	if c.DatabaseURL == "" {
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			"localhost", "postgres", "postgres", "apotekqu", "5432",
		)
	}
	dsn := withParam(c.DatabaseURL, "sslmode", "require")
	return withParam(dsn, "search_path", "public")
}

func ConnectDB(cfg Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("konek database: %w", err)
	}

	if err := db.Exec(`SET TIME ZONE 'UTC'`).Error; err != nil {
		log.Printf("⚠️  Gagal set timezone UTC: %v", err)
	}

	var dbName, currentUser string
	_ = db.Raw("SELECT current_database()").Scan(&dbName)
	_ = db.Raw("SELECT current_user").Scan(&currentUser)
	log.Printf("✅ DB connected: db=%s user=%s", dbName, currentUser)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.AuthUser{},
		&models.Profile{},
		&models.Supplier{},
		&models.Obat{},
		&models.PenyediaProduk{},
		&models.PurchaseOrder{},
		&models.DetailPurchaseOrder{},
		&models.BarangDiterima{},
		&models.DetailBarangDiterima{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec(katalogFunctionSQL).Error; err != nil {
		return fmt.Errorf("buat get_katalog_pengadaan: %w", err)
	}
	return nil
}

const katalogFunctionSQL = `
CREATE OR REPLACE FUNCTION get_katalog_pengadaan()
RETURNS TABLE (id bigint, harga_beli numeric, nama_obat text, nama_supplier text, id_supplier bigint)
LANGUAGE sql STABLE AS $$
	SELECT pp.id, pp.harga_beli, o.nama::text, s.nama::text, s.id
	FROM penyedia_produk pp
	JOIN obat o ON o.id = pp.id_obat
	JOIN supplier s ON s.id = pp.id_supplier
	ORDER BY pp.id
$$;`
