package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPrice(t *testing.T) {
	t.Run("Should extract the first dollar amount", func(t *testing.T) {
		text := "【1】Widget\n属性：Boxed、Red\n单价 $12.50 （原价 $20.00）"
		assert.Equal(t, 12.5, ExtractPrice(text))
	})

	t.Run("Should extract integer amounts", func(t *testing.T) {
		assert.Equal(t, 45.0, ExtractPrice("total $45 shipped"))
	})

	t.Run("Should return zero when no amount is present", func(t *testing.T) {
		assert.Equal(t, 0.0, ExtractPrice("no price here"))
	})

	t.Run("Should return zero on empty input", func(t *testing.T) {
		assert.Equal(t, 0.0, ExtractPrice(""))
	})
}

func TestParseProductInfo(t *testing.T) {
	t.Run("Should parse multiple blocks with attribute filtering", func(t *testing.T) {
		text := "【1】Phone Case\n属性：BOX、Black、中国\n产品编号：ABC123\n【2】Charger"
		entries := ParseProductInfo(text)
		require.Len(t, entries, 2)

		assert.Equal(t, "【1】", entries[0].Sequence)
		assert.Equal(t, "Phone Case (BOX、Black)", entries[0].Name)
		assert.Equal(t, []string{"BOX", "Black"}, entries[0].Attributes)
		assert.Equal(t, "ABC123", entries[0].Code)

		assert.Equal(t, "【2】", entries[1].Sequence)
		assert.Equal(t, "Charger", entries[1].Name)
		assert.Empty(t, entries[1].Attributes)
	})

	t.Run("Should order packaging before color", func(t *testing.T) {
		entries := ParseProductInfo("【1】Cable\n属性：White、box包装")
		require.Len(t, entries, 1)
		assert.Equal(t, []string{"box包装", "White"}, entries[0].Attributes)
		assert.Equal(t, "Cable (box包装、White)", entries[0].Name)
	})

	t.Run("Should keep only the first color-like token", func(t *testing.T) {
		entries := ParseProductInfo("【1】Cable\n属性：White、Blue、Green")
		require.Len(t, entries, 1)
		assert.Equal(t, []string{"White"}, entries[0].Attributes)
	})

	t.Run("Should drop origin and empty tokens", func(t *testing.T) {
		entries := ParseProductInfo("【1】Cable\n属性：中国、、China")
		require.Len(t, entries, 1)
		assert.Empty(t, entries[0].Attributes)
		assert.Equal(t, "Cable", entries[0].Name)
	})

	t.Run("Should push the trailing in-progress entry", func(t *testing.T) {
		entries := ParseProductInfo("【3】Lamp\n属性：Red")
		require.Len(t, entries, 1)
		assert.Equal(t, "【3】", entries[0].Sequence)
		assert.Equal(t, "Lamp (Red)", entries[0].Name)
	})

	t.Run("Should ignore unrecognized lines", func(t *testing.T) {
		entries := ParseProductInfo("备注：加急\n【1】Lamp\n发货仓：深圳")
		require.Len(t, entries, 1)
		assert.Equal(t, "Lamp", entries[0].Name)
	})

	t.Run("Should return nothing for empty input", func(t *testing.T) {
		assert.Empty(t, ParseProductInfo(""))
		assert.Empty(t, ParseProductInfo("   \n  "))
	})

	t.Run("Should ignore attribute lines before any entry", func(t *testing.T) {
		assert.Empty(t, ParseProductInfo("属性：Red、Blue"))
	})
}
