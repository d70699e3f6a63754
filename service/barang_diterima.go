package service

import (
	"context"
	"fmt"

	"github.com/raflyryhnsyh/ApotekQu-sub001/models"

	"gorm.io/gorm/clause"
)

func (s *Store) CreateDetailBarangDiterima(ctx context.Context, row *models.DetailBarangDiterima) error {
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("insert detail barang diterima: %w", err)
	}
	return nil
}

// UpdateNomorBatch mengembalikan ErrNotFound kalau tidak ada baris yang ter-update.
func (s *Store) UpdateNomorBatch(ctx context.Context, id uint, nomorBatch string) (models.DetailBarangDiterima, error) {
	var row models.DetailBarangDiterima
	res := s.db.WithContext(ctx).
		Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("nomor_batch", nomorBatch)
	if res.Error != nil {
		return models.DetailBarangDiterima{}, fmt.Errorf("update nomor batch %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.DetailBarangDiterima{}, fmt.Errorf("detail barang diterima %d: %w", id, ErrNotFound)
	}
	return row, nil
}
