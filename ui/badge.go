package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/raflyryhnsyh/ApotekQu-sub001/models"
)

type Badge struct {
	Label   string `json:"label"`
	Variant string `json:"variant"` // success, warning, info, danger, default
}

func StatusBadge(status models.POStatus) Badge {
	switch status {
	case models.StatusDiproses:
		return Badge{Label: "Diproses", Variant: "warning"}
	case models.StatusDikirim:
		return Badge{Label: "Dikirim", Variant: "info"}
	case models.StatusSelesai:
		return Badge{Label: "Selesai", Variant: "success"}
	case models.StatusDibatalkan:
		return Badge{Label: "Dibatalkan", Variant: "danger"}
	}
	s := strings.TrimSpace(string(status))
	if s == "" {
		return Badge{Label: "-", Variant: "default"}
	}
	first, size := utf8.DecodeRuneInString(s)
	return Badge{Label: string(unicode.ToUpper(first)) + strings.ToLower(s[size:]), Variant: "default"}
}
