package service

import (
	"context"
	"fmt"
	"time"

	"github.com/raflyryhnsyh/ApotekQu-sub001/models"
	"github.com/raflyryhnsyh/ApotekQu-sub001/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const namaKosong = "N/A"

// detailPOJoin: kolom hasil LEFT JOIN, nama obat bisa NULL kalau relasinya hilang.
type detailPOJoin struct {
	IDPP      uint            `gorm:"column:id_pp"`
	IDObat    *uint           `gorm:"column:id_obat"`
	NamaObat  *string         `gorm:"column:nama_obat"`
	Kuantitas int             `gorm:"column:kuantitas"`
	Harga     decimal.Decimal `gorm:"column:harga"`
}

// flattenDetailPO meratakan hasil join; nama yang hilang diganti "N/A".
func flattenDetailPO(rows []detailPOJoin) []models.DetailPORow {
	out := make([]models.DetailPORow, 0, len(rows))
	for _, r := range rows {
		row := models.DetailPORow{
			PenyediaProdukID: r.IDPP,
			NamaObat:         namaKosong,
			Kuantitas:        r.Kuantitas,
			Harga:            r.Harga,
		}
		if r.IDObat != nil {
			row.ObatID = *r.IDObat
		}
		if r.NamaObat != nil {
			row.NamaObat = *r.NamaObat
		}
		out = append(out, row)
	}
	return out
}

func (s *Store) DetailPurchaseOrder(ctx context.Context, poID uint) ([]models.DetailPORow, error) {
	var rows []detailPOJoin
	err := s.db.WithContext(ctx).
		Table("detail_purchase_order dpo").
		Select(`
			dpo.id_pp     AS id_pp,
			pp.id_obat    AS id_obat,
			o.nama        AS nama_obat,
			dpo.kuantitas AS kuantitas,
			dpo.harga     AS harga
		`).
		Joins("LEFT JOIN penyedia_produk pp ON pp.id = dpo.id_pp").
		Joins("LEFT JOIN obat o ON o.id = pp.id_obat").
		Where("dpo.id_po = ?", poID).
		Order("dpo.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("detail purchase order %d: %w", poID, err)
	}
	return flattenDetailPO(rows), nil
}

func (s *Store) ListPurchaseOrders(ctx context.Context) ([]models.PurchaseOrder, error) {
	var rows []models.PurchaseOrder
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list purchase order: %w", err)
	}
	return rows, nil
}

// CreatePurchaseOrder membuat header PO + detailnya dalam satu transaksi; harga diambil dari penyedia_produk.
// Nomor PO diturunkan dari id serial.
func (s *Store) CreatePurchaseOrder(ctx context.Context, userID uuid.UUID, lines []OrderLine) (models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make([]uint, 0, len(lines))
		for _, l := range lines {
			ids = append(ids, l.PenyediaProdukID)
		}

		var links []models.PenyediaProduk
		if err := tx.Where("id IN ?", ids).Find(&links).Error; err != nil {
			return err
		}
		harga := make(map[uint]decimal.Decimal, len(links))
		for _, l := range links {
			harga[l.ID] = l.HargaBeli
		}

		items := make([]models.DetailPurchaseOrder, 0, len(lines))
		total := decimal.Zero
		for _, l := range lines {
			h, ok := harga[l.PenyediaProdukID]
			if !ok {
				return fmt.Errorf("%w: %d", ErrUnknownProduct, l.PenyediaProdukID)
			}
			items = append(items, models.DetailPurchaseOrder{
				PenyediaProdukID: l.PenyediaProdukID,
				Kuantitas:        l.Kuantitas,
				Harga:            h,
			})
			total = total.Add(h.Mul(decimal.NewFromInt(int64(l.Kuantitas))))
		}

		// placeholder unik sampai id diketahui
		po = models.PurchaseOrder{
			NomorPO: uuid.NewString(),
			UserID:  userID,
			Status:  models.StatusDiproses,
			Total:   total,
			Items:   items,
		}
		if err := tx.Create(&po).Error; err != nil {
			return err
		}

		nomor := utils.GenPONumber(int64(po.ID), time.Now())
		if err := tx.Model(&models.PurchaseOrder{}).Where("id = ?", po.ID).Update("nomor_po", nomor).Error; err != nil {
			return err
		}
		po.NomorPO = nomor
		return nil
	})
	if err != nil {
		return models.PurchaseOrder{}, fmt.Errorf("buat purchase order: %w", err)
	}
	return po, nil
}
