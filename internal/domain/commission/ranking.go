package commission

import (
	"sort"

	"github.com/shopspring/decimal"
)

// OthersLabel etiqueta del bucket que agrupa lo que queda fuera del top.
const OthersLabel = "Outras"

// RankEntry un valor agregado por clave (ej. comisión por pasta).
type RankEntry struct {
	Key   string
	Label string
	Value decimal.Decimal
}

// RankTop reduce entradas por Key, ordena de mayor a menor y conserva las n primeras.
// El resto se suma en una entrada OthersLabel al final (solo si hay resto).
// n <= 0 devuelve todo ordenado.
func RankTop(entries []RankEntry, n int) []RankEntry {
	byKey := make(map[string]int, len(entries))
	reduced := make([]RankEntry, 0, len(entries))
	for _, e := range entries {
		if i, ok := byKey[e.Key]; ok {
			reduced[i].Value = reduced[i].Value.Add(e.Value)
			continue
		}
		byKey[e.Key] = len(reduced)
		reduced = append(reduced, e)
	}
	sort.SliceStable(reduced, func(i, j int) bool {
		return reduced[i].Value.GreaterThan(reduced[j].Value)
	})
	if n <= 0 || len(reduced) <= n {
		return reduced
	}
	others := RankEntry{Key: "", Label: OthersLabel, Value: decimal.Zero}
	for _, e := range reduced[n:] {
		others.Value = others.Value.Add(e.Value)
	}
	return append(reduced[:n:n], others)
}
