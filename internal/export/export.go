package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"scanintake/internal/domain"
	"scanintake/internal/store"
)

// Header is the fixed column order of the export artifact. The column count
// never varies with the contents of a record's extra blob.
var Header = []string{"timestamp_utc", "employee", "qr_data", "barcode_data", "extra_json"}

type Exporter struct {
	store *store.Store
}

func New(st *store.Store) *Exporter { return &Exporter{store: st} }

// ExportAll writes every stored scan to w as CSV, oldest first, and returns
// the number of data rows written. A failure mid-stream surfaces as an
// error; the truncated output is the caller's to discard.
func (e *Exporter) ExportAll(ctx context.Context, w io.Writer) (int, error) {
	recs, err := e.store.Scans().ListChronological(ctx)
	if err != nil {
		return 0, fmt.Errorf("export: read scans: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return 0, fmt.Errorf("export: write header: %w", err)
	}
	for i := range recs {
		if err := cw.Write(row(&recs[i])); err != nil {
			return 0, fmt.Errorf("export: write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("export: flush: %w", err)
	}
	return len(recs), nil
}

func row(rec *domain.ScanRecord) []string {
	return []string{
		rec.CreatedAt,
		rec.Employee,
		deref(rec.QRData),
		deref(rec.BarcodeData),
		deref(rec.Extra),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
