package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	pet  string
	when string
}

func TestApply_FilterSortCap(t *testing.T) {
	items := []rec{
		{"a", "2024-01-03"},
		{"b", "2024-01-09"},
		{"a", "2024-01-01"},
		{"a", "2024-01-05"},
	}

	got := Apply(items,
		func(r rec) bool { return r.pet == "a" },
		func(x, y rec) bool { return x.when > y.when },
		2,
	)

	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-05", got[0].when)
	assert.Equal(t, "2024-01-03", got[1].when)
	assert.Equal(t, "2024-01-03", items[0].when, "input untouched")
}

func TestApply_StableAndUnlimited(t *testing.T) {
	items := []rec{{"x", "same"}, {"y", "same"}, {"z", "same"}}

	got := Apply(items, nil, func(a, b rec) bool { return a.when > b.when }, 0)

	assert.Equal(t, items, got)
}

func TestApply_Empty(t *testing.T) {
	got := Apply[rec](nil, nil, nil, 7)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
