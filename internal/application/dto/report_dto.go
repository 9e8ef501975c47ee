package dto

// ReportFile archivo generado para descarga.
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ImportResult resumen de POST /api/reports/import.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"` // filas con datos inválidos
	Ignored  int `json:"ignored"` // filas con menos columnas que el encabezado
}
