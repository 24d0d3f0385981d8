package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Comissoes-api/internal/domain/schedule"
)

// ── ParseNotation ─────────────────────────────────────────────────────────────

func TestParseNotation_Regular(t *testing.T) {
	n := schedule.ParseNotation("30/60/90", 30, 30)
	assert.Equal(t, []int{30, 60, 90}, n.Offsets)
	assert.Equal(t, 30, n.IntervalGuess)
	assert.False(t, n.Irregular)
	assert.Empty(t, n.Warning())
}

func TestParseNotation_Irregular(t *testing.T) {
	n := schedule.ParseNotation("30/45/90", 30, 30)
	assert.Equal(t, []int{30, 45, 90}, n.Offsets, "la notación irregular se acepta tal cual")
	assert.True(t, n.Irregular)
	assert.Equal(t, []int{15, 45}, n.Intervals)
	assert.Contains(t, n.Warning(), "15, 45")
	assert.Equal(t, 15, n.IntervalGuess)
}

func TestParseNotation_NormalizaSeparadores(t *testing.T) {
	n := schedule.ParseNotation(" 28, 56 - 84  112", 30, 30)
	assert.Equal(t, []int{28, 56, 84, 112}, n.Offsets)
	assert.Equal(t, 28, n.IntervalGuess)
}

func TestParseNotation_DescartaTokensInvalidos(t *testing.T) {
	n := schedule.ParseNotation("30/abc/60/1.5/", 30, 30)
	assert.Equal(t, []int{30, 60}, n.Offsets)
}

func TestParseNotation_VacioNoCambiaNada(t *testing.T) {
	for _, raw := range []string{"", "   ", "x/y", "//"} {
		n := schedule.ParseNotation(raw, 45, 30)
		assert.True(t, n.Empty(), raw)
		assert.Equal(t, 45, n.IntervalGuess, "sin offsets se conserva el intervalo actual")
	}
}

func TestParseNotation_UnOffset(t *testing.T) {
	n := schedule.ParseNotation("15", 10, 30)
	assert.Equal(t, 30, n.IntervalGuess, "un offset distinto de cero usa el default")

	n = schedule.ParseNotation("0", 10, 30)
	assert.Equal(t, 10, n.IntervalGuess, "offset cero conserva el intervalo actual")
}

func TestParseNotation_IntervaloNoPositivoUsaDefault(t *testing.T) {
	n := schedule.ParseNotation("90/60/30", 10, 0)
	assert.Equal(t, schedule.DefaultIntervalDays, n.IntervalGuess)
	assert.False(t, n.Irregular)

	n = schedule.ParseNotation("30/30", 10, 20)
	assert.Equal(t, 20, n.IntervalGuess)
}

func TestParseNotation_DosOffsetsNuncaIrregular(t *testing.T) {
	n := schedule.ParseNotation("10/45", 30, 30)
	assert.False(t, n.Irregular)
}

// ── SummarizeNotation ─────────────────────────────────────────────────────────

func TestSummarizeNotation(t *testing.T) {
	cases := []struct {
		in   []int
		want string
	}{
		{[]int{10, 20, 30, 40, 50, 60}, "10/20/30…60 (6x)"},
		{[]int{10, 25, 50}, "10/25/50"},
		{[]int{30}, "30"},
		{nil, ""},
		{[]int{30, 60, 90, 120}, "30/60/90…120 (4x)"},
		{[]int{30, 45, 90, 120}, "30/45/90/120"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, schedule.SummarizeNotation(c.in))
	}
}
