package fbgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultAccessors(t *testing.T) {
	res := Result{
		"name":     "Zuck",
		"likes":    float64(42),
		"verified": true,
		"from":     map[string]any{"id": "4"},
		"data":     []any{"a", "b"},
	}

	assert.Equal(t, "Zuck", res.String("name"))
	assert.Equal(t, 42, res.Int("likes"))
	assert.True(t, res.Bool("verified"))
	assert.Equal(t, "4", res.Map("from").String("id"))
	assert.Len(t, res.List("data"), 2)
}

func TestResultAccessorsMissingKeys(t *testing.T) {
	res := Result{"likes": "not a number"}

	assert.Empty(t, res.String("name"))
	assert.Zero(t, res.Int("likes"))
	assert.False(t, res.Bool("verified"))
	assert.Nil(t, res.Map("from"))
	assert.Nil(t, res.List("data"))
}
