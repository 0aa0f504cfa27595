package service

import (
	"context"
	"encoding/json"
	"strings"

	"scanintake/internal/domain"
	"scanintake/internal/dto"
	"scanintake/internal/roster"
	"scanintake/internal/store"
)

// reservedKeys are the submission fields with dedicated columns; everything
// else lands in the extra blob.
var reservedKeys = map[string]struct{}{
	"employee":    {},
	"qrData":      {},
	"barcodeData": {},
}

type Service struct {
	store  *store.Store
	roster *roster.Roster
}

func New(st *store.Store, ros *roster.Roster) *Service {
	return &Service{store: st, roster: ros}
}

// Ingest validates a raw submission and persists exactly one scan record.
// Validation finishes before the store is touched, so a rejected submission
// leaves no partial write behind.
func (s *Service) Ingest(ctx context.Context, body []byte) (dto.IngestResponse, error) {
	if len(body) == 0 {
		return dto.IngestResponse{}, ErrEmptyBody
	}

	var payload map[string]domain.Value
	if err := json.Unmarshal(body, &payload); err != nil {
		return dto.IngestResponse{}, ErrMalformedJSON
	}
	// A bare JSON null decodes into a nil map without error.
	if payload == nil {
		return dto.IngestResponse{}, ErrMalformedJSON
	}

	employee := ""
	if v, ok := payload["employee"]; ok {
		if str, ok := v.AsString(); ok {
			employee = strings.TrimSpace(str)
		}
	}
	if employee == "" {
		return dto.IngestResponse{}, ErrMissingEmployee
	}

	extra := make(map[string]domain.Value)
	for k, v := range payload {
		if _, reserved := reservedKeys[k]; reserved {
			continue
		}
		extra[k] = v
	}
	blob, err := json.Marshal(extra)
	if err != nil {
		return dto.IngestResponse{}, err
	}
	extraJSON := string(blob)

	rec := &domain.ScanRecord{
		CreatedAt:   domain.NowUTC(),
		Employee:    employee,
		QRData:      optionalString(payload, "qrData"),
		BarcodeData: optionalString(payload, "barcodeData"),
		Extra:       &extraJSON,
	}

	if err := s.store.Scans().Insert(ctx, rec); err != nil {
		return dto.IngestResponse{}, err
	}
	return dto.IngestResponse{Status: "stored"}, nil
}

// List projects stored scans newest first, optionally filtered to one
// employee. A record whose extra blob fails to decode keeps its raw stored
// string in the view instead of failing the whole listing.
func (s *Service) List(ctx context.Context, employee string) ([]dto.ScanView, error) {
	recs, err := s.store.Scans().ListAll(ctx, employee)
	if err != nil {
		return nil, err
	}

	views := make([]dto.ScanView, 0, len(recs))
	for _, rec := range recs {
		view := dto.ScanView{
			Timestamp:   rec.CreatedAt,
			Employee:    rec.Employee,
			QRData:      rec.QRData,
			BarcodeData: rec.BarcodeData,
		}
		if rec.Extra != nil && *rec.Extra != "" {
			var m map[string]domain.Value
			if err := json.Unmarshal([]byte(*rec.Extra), &m); err == nil {
				view.Extra = m
			} else {
				view.Extra = *rec.Extra
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Employees returns the operator roster for the scanner UI.
func (s *Service) Employees() []string {
	return s.roster.Employees()
}

func optionalString(payload map[string]domain.Value, key string) *string {
	v, ok := payload[key]
	if !ok {
		return nil
	}
	str, ok := v.AsString()
	if !ok {
		return nil
	}
	return &str
}
