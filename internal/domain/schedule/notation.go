package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// DefaultIntervalDays intervalo usado cuando la notación no permite deducirlo.
const DefaultIntervalDays = 30

// Notation resultado de interpretar una notación tipo "30/60/90".
type Notation struct {
	Offsets       []int
	IntervalGuess int
	Irregular     bool
	Intervals     []int // intervalos distintos encontrados, ascendentes
}

// Empty indica que no se obtuvo ningún offset válido (el llamador no debe cambiar nada).
func (n Notation) Empty() bool { return len(n.Offsets) == 0 }

// Warning aviso no bloqueante para notaciones irregulares ("" si es regular).
func (n Notation) Warning() string {
	if !n.Irregular {
		return ""
	}
	parts := make([]string, len(n.Intervals))
	for i, v := range n.Intervals {
		parts[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("intervalos irregulares entre parcelas: %s días", strings.Join(parts, ", "))
}

// ParseNotation interpreta offsets en días separados por "/". Espacios, comas y guiones
// cuentan como separador; los tokens que no son enteros no negativos se descartan.
//
// IntervalGuess: diferencia entre los dos primeros offsets; con un único offset distinto
// de cero usa defaultInterval; si no, conserva currentInterval. Valores <= 0 se
// reemplazan por defaultInterval. defaultInterval <= 0 equivale a DefaultIntervalDays.
//
// La notación irregular nunca se rechaza: se marca Irregular y se listan los intervalos.
func ParseNotation(raw string, currentInterval, defaultInterval int) Notation {
	if defaultInterval <= 0 {
		defaultInterval = DefaultIntervalDays
	}
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '/' || r == ',' || r == '-' || unicode.IsSpace(r)
	})
	offsets := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			continue
		}
		offsets = append(offsets, n)
	}

	out := Notation{Offsets: offsets, IntervalGuess: currentInterval}
	switch {
	case len(offsets) >= 2:
		out.IntervalGuess = offsets[1] - offsets[0]
	case len(offsets) == 1 && offsets[0] != 0:
		out.IntervalGuess = defaultInterval
	}
	if out.IntervalGuess <= 0 {
		out.IntervalGuess = defaultInterval
	}

	out.Intervals = distinctIntervals(offsets)
	out.Irregular = len(offsets) >= 3 && len(out.Intervals) > 1
	return out
}

// SummarizeNotation representa offsets como texto. Hasta 3 offsets: "a/b/c".
// Secuencias regulares más largas se colapsan: "10/20/30…60 (6x)". Las irregulares
// se devuelven completas para no ocultar la irregularidad.
func SummarizeNotation(offsets []int) string {
	if len(offsets) > 3 && len(distinctIntervals(offsets)) == 1 {
		return fmt.Sprintf("%d/%d/%d…%d (%dx)", offsets[0], offsets[1], offsets[2], offsets[len(offsets)-1], len(offsets))
	}
	parts := make([]string, len(offsets))
	for i, v := range offsets {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "/")
}

func distinctIntervals(offsets []int) []int {
	if len(offsets) < 2 {
		return nil
	}
	seen := make(map[int]struct{})
	var out []int
	for i := 1; i < len(offsets); i++ {
		d := offsets[i] - offsets[i-1]
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}
