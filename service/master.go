package service

import (
	"context"
	"fmt"

	"github.com/raflyryhnsyh/ApotekQu-sub001/models"

	"github.com/google/uuid"
)

func (s *Store) AuthUserByEmail(ctx context.Context, email string) (models.AuthUser, error) {
	var u models.AuthUser
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return models.AuthUser{}, fmt.Errorf("auth user: %w", err)
	}
	return u, nil
}

func (s *Store) ProfileByID(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	var p models.Profile
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return models.Profile{}, fmt.Errorf("profile %s: %w", id, err)
	}
	return p, nil
}

func (s *Store) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var rows []models.Supplier
	if err := s.db.WithContext(ctx).Order("nama ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list supplier: %w", err)
	}
	return rows, nil
}

func (s *Store) PenyediaProdukByID(ctx context.Context, id uint) (models.PenyediaProduk, error) {
	var pp models.PenyediaProduk
	if err := s.db.WithContext(ctx).First(&pp, id).Error; err != nil {
		return models.PenyediaProduk{}, fmt.Errorf("penyedia produk %d: %w", id, err)
	}
	return pp, nil
}

func (s *Store) KatalogPengadaan(ctx context.Context) ([]models.KatalogRow, error) {
	var rows []models.KatalogRow
	if err := s.db.WithContext(ctx).Raw("SELECT * FROM get_katalog_pengadaan()").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("get_katalog_pengadaan: %w", err)
	}
	return rows, nil
}
