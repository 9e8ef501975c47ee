// Package money formatea y lee montos en la moneda y el locale configurados (es-CO, COP, sin decimales).
package money

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hundred = decimal.NewFromInt(100)

// Formatter convierte montos a texto localizado y de vuelta.
type Formatter struct {
	printer *message.Printer
	symbol  string
	group   rune
	decimal rune
	grouped *regexp.Regexp
}

// NewFormatter construye el formateador para el locale (BCP 47) y símbolo indicados.
func NewFormatter(locale, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("money: locale %q: %w", locale, err)
	}
	p := message.NewPrinter(tag)
	group, dec := separators(p.Sprintf("%.1f", 1234567.5))
	f := &Formatter{printer: p, symbol: symbol, group: group, decimal: dec}
	if group != 0 {
		g := regexp.QuoteMeta(string(group))
		f.grouped = regexp.MustCompile(`^-?\d{1,3}(` + g + `\d{3})+(\.\d+)?$`)
	}
	return f, nil
}

// MustFormatter como NewFormatter pero entra en pánico con un locale inválido.
func MustFormatter(locale, symbol string) *Formatter {
	f, err := NewFormatter(locale, symbol)
	if err != nil {
		panic(err)
	}
	return f
}

// separators deduce los separadores de miles y decimales de una muestra "1.234.567,5".
func separators(sample string) (group, dec rune) {
	var seps []rune
	for _, r := range sample {
		if !unicode.IsDigit(r) {
			seps = append(seps, r)
		}
	}
	switch len(seps) {
	case 0:
		return ',', '.'
	case 1:
		return 0, seps[0]
	default:
		return seps[0], seps[len(seps)-1]
	}
}

// Format devuelve el monto redondeado a pesos, p. ej. "$ 2.500.000".
func (f *Formatter) Format(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + f.symbol + " " + f.printer.Sprintf("%d", n)
}

// Parse lee un monto o cantidad exportado por Format o escrito a mano. Descarta todo lo que no sea
// dígito, signo o separador; los separadores de miles se reconocen por grupos de tres dígitos.
func (f *Formatter) Parse(s string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) || r == '-' || r == '.' || r == ',' || (f.group != 0 && r == f.group) || r == f.decimal {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" || clean == "-" {
		return decimal.Zero, fmt.Errorf("money: %q no es numérico", s)
	}

	switch {
	case f.decimal != '.' && strings.ContainsRune(clean, f.decimal):
		if f.group != 0 {
			clean = strings.ReplaceAll(clean, string(f.group), "")
		}
		clean = strings.ReplaceAll(clean, string(f.decimal), ".")
	case f.grouped != nil && strings.ContainsRune(clean, f.group) && f.grouped.MatchString(clean):
		clean = strings.ReplaceAll(clean, string(f.group), "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("money: %q no es numérico: %w", s, err)
	}
	return d, nil
}

// ParseInt lee una cantidad entera; la parte fraccionaria se descarta.
func (f *Formatter) ParseInt(s string) (int, error) {
	d, err := f.Parse(s)
	if err != nil {
		return 0, err
	}
	return int(d.IntPart()), nil
}

// Percent devuelve part/total×100 con dos decimales y punto decimal, p. ej. "12.50%".
// Con total cero devuelve "0.00%".
func Percent(part, total decimal.Decimal) string {
	if total.IsZero() {
		return "0.00%"
	}
	return part.Div(total).Mul(hundred).StringFixed(2) + "%"
}
