package service

import (
	"testing"

	"github.com/raflyryhnsyh/ApotekQu-sub001/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFlattenDetailPO(t *testing.T) {
	obatID := uint(4)
	nama := "Amoxicillin 500 mg"
	rows := []detailPOJoin{
		{IDPP: 3, IDObat: &obatID, NamaObat: &nama, Kuantitas: 2, Harga: decimal.NewFromInt(30000)},
		{IDPP: 9, Kuantitas: 1, Harga: decimal.NewFromInt(5000)},
	}

	got := flattenDetailPO(rows)

	assert.Equal(t, []models.DetailPORow{
		{PenyediaProdukID: 3, ObatID: 4, NamaObat: "Amoxicillin 500 mg", Kuantitas: 2, Harga: decimal.NewFromInt(30000)},
		{PenyediaProdukID: 9, NamaObat: "N/A", Kuantitas: 1, Harga: decimal.NewFromInt(5000)},
	}, got)
}

func TestFlattenDetailPOEmpty(t *testing.T) {
	assert.Empty(t, flattenDetailPO(nil))
	assert.NotNil(t, flattenDetailPO(nil))
}
