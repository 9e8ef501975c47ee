package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// NumericString valor numérico que llega como texto desde formularios o CSV.
// Acepta en JSON tanto "12" como 12; null deja el valor vacío.
type NumericString string

// UnmarshalJSON acepta cadenas y números.
func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("valor numérico inválido: %s", data)
	}
	*n = NumericString(num.String())
	return nil
}

// String texto sin espacios alrededor.
func (n NumericString) String() string { return strings.TrimSpace(string(n)) }

// IsEmpty true si no se envió valor.
func (n NumericString) IsEmpty() bool { return n.String() == "" }

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Error   string `json:"error,omitempty"`
}
