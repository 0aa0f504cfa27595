package dto

type IngestResponse struct {
	Status string `json:"status"`
}

// ScanView is the external shape of a stored scan. QRData and BarcodeData
// stay pointers so absent payloads render as JSON null. Extra holds either
// the decoded mapping or, when the stored blob does not parse, the raw
// stored string.
type ScanView struct {
	Timestamp   string  `json:"timestamp"`
	Employee    string  `json:"employee"`
	QRData      *string `json:"qrData"`
	BarcodeData *string `json:"barcodeData"`
	Extra       any     `json:"extra,omitempty"`
}

type ScanListResponse struct {
	Items []ScanView `json:"items"`
}

type EmployeesResponse struct {
	Employees []string `json:"employees"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
