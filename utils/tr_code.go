package utils

import (
	"fmt"
	"time"
)

// GenPONumber menghasilkan nomor PO, mis. PO-2026-000123.
func GenPONumber(seq int64, t time.Time) string {
	return fmt.Sprintf("PO-%d-%06d", t.Year(), seq)
}
