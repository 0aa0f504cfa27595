package domain

import "time"

// TimeLayout is the fixed-width ISO-8601 layout used for scan timestamps.
// Fixed fractional digits keep lexicographic order equal to chronological
// order, which the store relies on for its created_at sorts.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// NowUTC returns the current UTC time rendered in TimeLayout.
func NowUTC() string {
	return time.Now().UTC().Format(TimeLayout)
}

// ScanRecord is a single scan submission as persisted in the scans table.
// Records are append-only; nothing in the service updates or deletes them.
type ScanRecord struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	CreatedAt   string  `gorm:"type:text;not null;index"`
	Employee    string  `gorm:"type:text;not null;index"`
	QRData      *string `gorm:"column:qr_data;type:text"`
	BarcodeData *string `gorm:"type:text"`
	Extra       *string `gorm:"type:text"`
}

func (ScanRecord) TableName() string { return "scans" }
