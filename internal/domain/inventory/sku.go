package inventory

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// RandomSource fuente de aleatoriedad inyectable (p. ej. *rand.Rand con semilla en tests).
type RandomSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRandom usa el generador global de math/rand/v2.
var DefaultRandom RandomSource = globalRand{}

// GenerateSKU arma un SKU NOM-CAT-NNN: tres primeras letras del nombre y de la categoría
// en mayúsculas y un sufijo aleatorio de 3 dígitos. La unicidad no está garantizada.
func GenerateSKU(name, category string, rng RandomSource) string {
	if rng == nil {
		rng = DefaultRandom
	}
	return fmt.Sprintf("%s-%s-%03d", prefix3(name), prefix3(category), rng.IntN(1000))
}

func prefix3(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}
