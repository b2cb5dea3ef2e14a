package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestSeedRequest_Resolve(t *testing.T) {
	tests := []struct {
		name  string
		count *int
		want  int
	}{
		{"default", nil, DefaultSeedCount},
		{"zero", intPtr(0), 0},
		{"three", intPtr(3), 3},
		{"exact", intPtr(6), 6},
		{"truncated", intPtr(100), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SeedRequest{Count: tt.count}.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeedRequest_ResolveNegative(t *testing.T) {
	_, err := SeedRequest{Count: intPtr(-1)}.Resolve()
	require.Error(t, err)

	errs, ok := AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, "count", errs[0].Field)
}

func TestSampleProducts_PassStrictSchema(t *testing.T) {
	samples := SampleProducts()
	require.Len(t, samples, DefaultSeedCount)

	for _, s := range samples {
		_, err := ValidateProduct(s)
		assert.NoError(t, err, *s.Title)
	}
}

func TestSampleProducts_ReturnsCopies(t *testing.T) {
	first := SampleProducts()
	first[0].Colors[0] = "pink"
	*first[0].Title = "changed"

	second := SampleProducts()
	assert.Equal(t, "black", second[0].Colors[0])
	assert.Equal(t, "Swolez Power Tee", *second[0].Title)
}
