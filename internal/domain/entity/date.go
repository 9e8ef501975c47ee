package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayouts formatos de fecha aceptados al leer colecciones guardadas: solo fecha
// ("2025-01-15", el formato histórico) o fecha y hora ISO 8601.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseDate lee una fecha guardada. Las fechas sin zona se interpretan en hora local.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha %q no reconocida", s)
}

// storedDate decodifica una fecha JSON con ParseDate.
type storedDate struct {
	t time.Time
}

func (d *storedDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.t = t
	return nil
}

// UnmarshalJSON acepta lastUpdated como fecha sola o como fecha y hora.
func (p *Product) UnmarshalJSON(b []byte) error {
	type plain Product
	aux := struct {
		*plain
		LastUpdated storedDate `json:"lastUpdated"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	p.LastUpdated = aux.LastUpdated.t
	return nil
}

// UnmarshalJSON acepta date como fecha sola o como fecha y hora.
func (m *Movement) UnmarshalJSON(b []byte) error {
	type plain Movement
	aux := struct {
		*plain
		Date storedDate `json:"date"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	m.Date = aux.Date.t
	return nil
}
