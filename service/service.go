package service

import (
	"context"
	"errors"

	"github.com/raflyryhnsyh/ApotekQu-sub001/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound dikembalikan kalau baris yang diminta tidak ada.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrUnknownProduct: id penyedia produk di keranjang tidak ada di database.
var ErrUnknownProduct = errors.New("penyedia produk tidak ditemukan")

// ===== Interface per resource =====

type AuthUserStore interface {
	AuthUserByEmail(ctx context.Context, email string) (models.AuthUser, error)
}

type ProfileStore interface {
	ProfileByID(ctx context.Context, id uuid.UUID) (models.Profile, error)
}

type SupplierStore interface {
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
}

type PenyediaProdukStore interface {
	PenyediaProdukByID(ctx context.Context, id uint) (models.PenyediaProduk, error)
}

type PurchaseOrderStore interface {
	ListPurchaseOrders(ctx context.Context) ([]models.PurchaseOrder, error)
	DetailPurchaseOrder(ctx context.Context, poID uint) ([]models.DetailPORow, error)
	CreatePurchaseOrder(ctx context.Context, userID uuid.UUID, lines []OrderLine) (models.PurchaseOrder, error)
}

type BarangDiterimaStore interface {
	CreateDetailBarangDiterima(ctx context.Context, row *models.DetailBarangDiterima) error
	UpdateNomorBatch(ctx context.Context, id uint, nomorBatch string) (models.DetailBarangDiterima, error)
}

type KatalogStore interface {
	KatalogPengadaan(ctx context.Context) ([]models.KatalogRow, error)
}

// OrderLine satu baris keranjang yang akan dijadikan detail PO.
type OrderLine struct {
	PenyediaProdukID uint
	Kuantitas        int
}

// ===== Implementasi gorm =====

type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }
