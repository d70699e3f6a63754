// Package katalog menyusun katalog pengadaan dari hasil get_katalog_pengadaan():
// satu entri per nama obat dengan harga beli termurah, plus path gambar.
package katalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/raflyryhnsyh/ApotekQu-sub001/models"

	"github.com/shopspring/decimal"
)

const imageDir = "/obat/gambar_obat"

var (
	dosisPattern  = regexp.MustCompile(`\s+\d.*$`)
	bentukPattern = regexp.MustCompile(`(?i)\s+(inhaler|nebulizer|spray)$`)
)

type Entry struct {
	ID         uint            `json:"id"`
	Nama       string          `json:"nama"`
	NamaDasar  string          `json:"nama_dasar"`
	Harga      decimal.Decimal `json:"harga"`
	Supplier   string          `json:"supplier"`
	SupplierID uint            `json:"id_supplier"`
	Gambar     string          `json:"gambar"`
}

// Cheapest menyisakan satu baris per nama obat. Baris baru menggantikan yang lama hanya
// kalau harganya lebih murah; kalau sama, baris pertama yang dipertahankan. Baris
// pengganti dipindah ke posisi akhir.
func Cheapest(rows []models.KatalogRow) []models.KatalogRow {
	out := make([]models.KatalogRow, 0, len(rows))
	for _, row := range rows {
		idx := -1
		for i := range out {
			if out[i].NamaObat == row.NamaObat {
				idx = i
				break
			}
		}
		switch {
		case idx < 0:
			out = append(out, row)
		case row.HargaBeli.LessThan(out[idx].HargaBeli):
			out = append(out[:idx], out[idx+1:]...)
			out = append(out, row)
		}
	}
	return out
}

// BaseName membuang dosis ("500 mg") dan bentuk sediaan di akhir ("Inhaler"),
// lalu menentukan ekstensi gambar.
func BaseName(nama string) (base, ext string) {
	base = dosisPattern.ReplaceAllString(nama, "")
	base = bentukPattern.ReplaceAllString(base, "")
	base = strings.TrimSpace(base)

	ext = ".jpg"
	if base == "Paracetamol" {
		ext = ".png"
	}
	return base, ext
}

func ImagePath(nama string) string {
	base, ext := BaseName(nama)
	return fmt.Sprintf("%s/%s obat/Image_1%s", imageDir, base, ext)
}

func Compose(rows []models.KatalogRow) []Entry {
	kept := Cheapest(rows)
	entries := make([]Entry, 0, len(kept))
	for _, r := range kept {
		base, _ := BaseName(r.NamaObat)
		entries = append(entries, Entry{
			ID:         r.ID,
			Nama:       r.NamaObat,
			NamaDasar:  base,
			Harga:      r.HargaBeli,
			Supplier:   r.NamaSupplier,
			SupplierID: r.SupplierID,
			Gambar:     ImagePath(r.NamaObat),
		})
	}
	return entries
}
