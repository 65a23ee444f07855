package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSortKeys(t *testing.T) {
	tests := []struct {
		name string
		a, b []SortEntry
		want int
	}{
		{
			name: "prefix before name",
			a:    []SortEntry{{Prefix: 7, Name: "Zebra"}},
			b:    []SortEntry{{Prefix: 9, Name: "Alpha"}},
			want: -1,
		},
		{
			name: "name breaks prefix tie",
			a:    []SortEntry{{Prefix: 9, Name: "Alpha"}},
			b:    []SortEntry{{Prefix: 9, Name: "Beta"}},
			want: -1,
		},
		{
			name: "position breaks name tie",
			a:    []SortEntry{{Prefix: 10, Name: "", Position: 0}},
			b:    []SortEntry{{Prefix: 10, Name: "", Position: 1}},
			want: -1,
		},
		{
			name: "shorter path first on shared prefix",
			a:    []SortEntry{{Prefix: 9, Name: "Shell"}},
			b:    []SortEntry{{Prefix: 9, Name: "Shell"}, {Prefix: 10, Name: "kind"}},
			want: -1,
		},
		{
			name: "equal",
			a:    []SortEntry{{Prefix: 9, Name: "Shell"}},
			b:    []SortEntry{{Prefix: 9, Name: "Shell"}},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareSortKeys(tt.a, tt.b))
			assert.Equal(t, -tt.want, CompareSortKeys(tt.b, tt.a))
		})
	}
}

func TestNameableItemNames(t *testing.T) {
	item := named("0:1", "Shell")
	n := NameableItem{Item: item}
	assert.Equal(t, "Shell", n.SortableName())
	assert.Equal(t, "Shell", n.RenderedName())

	override := "Renamed"
	n.OverriddenName = &override
	assert.Equal(t, "Renamed", n.SortableName())

	anon := NameableItem{Item: inherentImpl("0:2", primitiveType("u8"))}
	assert.Equal(t, "", anon.SortableName())
	assert.Equal(t, "_", anon.RenderedName())
}
