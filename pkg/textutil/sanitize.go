// Package textutil limpia texto libre que llega por la API antes de persistirlo.
package textutil

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// NameLimit largo máximo (en runas) de nombres de pastas, productos, reglas y clientes.
const NameLimit = 200

var strict = bluemonday.StrictPolicy()

// CleanName quita etiquetas HTML y caracteres de control, colapsa espacios y corta
// en limit runas (limit <= 0 usa NameLimit). "  <b>Pasta</b>\tSul " → "Pasta Sul".
func CleanName(s string, limit int) string {
	if limit <= 0 {
		limit = NameLimit
	}
	// StrictPolicy escapa entidades; se deshacen para guardar el texto plano.
	s = html.UnescapeString(strict.Sanitize(s))
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > limit {
		s = strings.TrimSpace(string(r[:limit]))
	}
	return s
}
