package catalog

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaJSON_UnboundedMaxIsOmitted(t *testing.T) {
	raw, err := json.Marshal(Clear())
	require.NoError(t, err)
	assert.JSONEq(t, `{"priceMin":0}`, string(raw))

	var back Criteria
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, math.IsInf(back.PriceMax, 1))
	assert.True(t, back.IsZero())
}

func TestCriteriaJSON_KeepsBoundsAndTags(t *testing.T) {
	in := Criteria{
		PriceMin:   100,
		PriceMax:   1500,
		Categories: []string{"laptop"},
		Brands:     []string{"apple", "dell"},
		Rams:       []string{"16"},
		Storages:   []string{"512"},
	}
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var back Criteria
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Empty(t, cmp.Diff(in, back))
}

func TestCriteriaJSON_NullMaxIsUnbounded(t *testing.T) {
	var c Criteria
	require.NoError(t, json.Unmarshal([]byte(`{"priceMin":10,"priceMax":null}`), &c))
	assert.Equal(t, 10.0, c.PriceMin)
	assert.True(t, math.IsInf(c.PriceMax, 1))
}

func TestCriteriaJSON_Invalid(t *testing.T) {
	var c Criteria
	assert.Error(t, json.Unmarshal([]byte(`{"priceMin":"cheap"}`), &c))
}
