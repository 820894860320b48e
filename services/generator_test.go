package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bousai_recommend/config"
	"bousai_recommend/models"
)

func TestParseCandidates_PlainArray(t *testing.T) {
	text := `[
		{"name":"パナソニック 手回し充電ラジオ RF-TJ20","price":3000,"description":"d","reason":"r","priority":"essential","category":"通信"},
		{"name":"サントリー 天然水 2L×6本","price":1200,"description":"d","reason":"r","priority":"recommended","category":"水"}
	]`

	got, err := ParseCandidates(text)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "パナソニック 手回し充電ラジオ RF-TJ20", got[0].Name)
	assert.Equal(t, int64(3000), got[0].Price)
	assert.Equal(t, models.PriorityEssential, got[0].Priority)
	assert.Equal(t, "水", got[1].Category)
}

func TestParseCandidates_FencedWithProse(t *testing.T) {
	text := "以下が提案です。\n```json\n[{\"name\":\"A\",\"price\":980.6,\"priority\":\"Optional\"}]\n```\nご参考に。"

	got, err := ParseCandidates(text)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(981), got[0].Price)
	assert.Equal(t, models.PriorityOptional, got[0].Priority)
}

func TestParseCandidates_DropsInvalidAndNormalizesPriority(t *testing.T) {
	text := `[
		{"name":"","price":100},
		{"name":"B","price":-5},
		{"name":" C ","price":0,"priority":"must-have"}
	]`

	got, err := ParseCandidates(text)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].Name)
	assert.Equal(t, models.PriorityOptional, got[0].Priority)
}

func TestParseCandidates_Malformed(t *testing.T) {
	for _, text := range []string{
		"",
		"申し訳ありませんが提案できません",
		`{"name":"A","price":100}`,
		`[{"name":"A","price":"高い"}]`,
		`[{"name":"A",`,
		"null",
		"  null  ",
		`"hello"`,
		"42",
	} {
		_, err := ParseCandidates(text)
		assert.Error(t, err, "input %q", text)
	}
}

func TestParseCandidates_DropsOutOfRangePrices(t *testing.T) {
	text := `[
		{"name":"X","price":1e30},
		{"name":"Y","price":9223372036854775807},
		{"name":"Z","price":-1e30},
		{"name":"A","price":50000}
	]`

	got, err := ParseCandidates(text)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, int64(50000), got[0].Price)
}

func TestValidPrice(t *testing.T) {
	assert.True(t, validPrice(0))
	assert.True(t, validPrice(980.4))
	assert.True(t, validPrice(1e18))
	assert.False(t, validPrice(-0.5))
	assert.False(t, validPrice(math.NaN()))
	assert.False(t, validPrice(math.Inf(1)))
	assert.False(t, validPrice(math.MaxInt64))
	assert.False(t, validPrice(1e30))
}

func TestParseCandidates_EmptyArray(t *testing.T) {
	got, err := ParseCandidates("[]")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewGenerator(t *testing.T) {
	cfg := config.Default()
	cfg.LLM.APIKey = "k"

	g, err := NewGenerator(cfg)
	require.NoError(t, err)
	assert.Equal(t, "openai", g.Provider())

	cfg.LLM.Provider = "anthropic"
	g, err = NewGenerator(cfg)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", g.Provider())

	cfg.LLM.Provider = "mystery"
	_, err = NewGenerator(cfg)
	assert.Error(t, err)
}
