package edgedist

import (
	"testing"

	"github.com/katalvlaran/proxnet/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_NoKeys(t *testing.T) {
	groups := partition(3, nil)
	require.Len(t, groups, 1)
	assert.True(t, groups[0].key.IsUngrouped())
	assert.Equal(t, []int{0, 1, 2}, groups[0].rows)
}

func TestPartition_CompositeKey(t *testing.T) {
	tg := table.Ints("timegroup", 2, 1, 2, 1, 2)
	herd := table.Strings("herd", "n", "n", "s", "n", "n")

	groups := partition(5, []*table.Column{tg, herd})
	require.Len(t, groups, 3)

	assert.Equal(t, []int{0, 4}, groups[0].rows)
	assert.Equal(t, []int{1, 3}, groups[1].rows)
	assert.Equal(t, []int{2}, groups[2].rows)
	assert.Equal(t, "timegroup=2 herd=n", groups[0].key.String())
	assert.Equal(t, []string{"timegroup", "herd"}, groups[0].key.Names())
	assert.Equal(t, []table.Value{table.Int(1), table.String("n")}, groups[1].key.Values())
	assert.False(t, groups[0].key.Equal(groups[1].key))
	assert.True(t, groups[0].key.Equal(groups[0].key))
}

func TestPartition_NullIsItsOwnGroup(t *testing.T) {
	tg, err := table.NewColumn("timegroup", table.KindInt, table.Int(1), table.Null(table.KindInt), table.Null(table.KindInt))
	require.NoError(t, err)

	groups := partition(3, []*table.Column{tg})
	require.Len(t, groups, 2)
	assert.Equal(t, []int{1, 2}, groups[1].rows)
}

func TestEncodeKey_Unambiguous(t *testing.T) {
	a := table.Strings("a", "x|y", "x")
	b := table.Strings("b", "z", "y|z")
	assert.NotEqual(t, encodeKey([]*table.Column{a, b}, 0), encodeKey([]*table.Column{a, b}, 1))
}
