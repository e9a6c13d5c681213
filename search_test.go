package dispatch_test

import (
	"testing"

	"github.com/pacchoferes/dispatch"
	"github.com/stretchr/testify/assert"
)

func TestSplitQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"commas and connector", "Calle 1, Calle 2 y Calle 3", []string{"Calle 1", "Calle 2", "Calle 3"}},
		{"connector is case-insensitive", "Calle 1 Y Calle 2", []string{"Calle 1", "Calle 2"}},
		{"newlines", "Calle 1\nCalle 2\n", []string{"Calle 1", "Calle 2"}},
		{"connector needs surrounding spaces", "Yrigoyen 10", []string{"Yrigoyen 10"}},
		{"empty pieces dropped", " , ,Calle 1,, ", []string{"Calle 1"}},
		{"blank", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dispatch.SplitQuery(tt.query))
		})
	}
}

func TestMatchFragment(t *testing.T) {
	t.Parallel()

	assert.True(t, dispatch.MatchFragment("San Martin 50", "san martin"))
	assert.True(t, dispatch.MatchFragment("Av. Núñez 200", "NÚÑEZ"))
	assert.True(t, dispatch.MatchFragment("San Martin 50", "n 5"))
	assert.False(t, dispatch.MatchFragment("San Martin 50", "Rivadavia"))
}

func TestMatchFragment_EverySubstringMatches(t *testing.T) {
	t.Parallel()

	text := "9 de Julio 100"
	lower := "9 de julio 100"
	for i := 0; i < len(lower); i++ {
		for j := i + 1; j <= len(lower); j++ {
			assert.True(t, dispatch.MatchFragment(text, lower[i:j]), "substring %q", lower[i:j])
		}
	}
}
