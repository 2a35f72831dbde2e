package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
)

func TestGradeThresholds(t *testing.T) {
	testCases := []struct {
		total    int
		expected entities.Grade
	}{
		{186, entities.GradeS},
		{156, entities.GradeS},
		{155, entities.GradeA},
		{124, entities.GradeA},
		{123, entities.GradeB},
		{93, entities.GradeB},
		{92, entities.GradeC},
		{62, entities.GradeC},
		{61, entities.GradeD},
		{0, entities.GradeD},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, entities.GradeForTotal(tc.total), "total %d", tc.total)
	}
}

func TestGradeIsMonotonic(t *testing.T) {
	rank := map[entities.Grade]int{
		entities.GradeD: 0, entities.GradeC: 1, entities.GradeB: 2, entities.GradeA: 3, entities.GradeS: 4,
	}

	hv := entities.HiddenValues{}
	previous := hv.Grade()
	for stat := 0; stat < entities.HiddenValueCount; stat++ {
		for v := 1; v <= entities.HiddenValueMax; v++ {
			hv[stat] = v
			current := hv.Grade()
			require.GreaterOrEqual(t, rank[current], rank[previous], "raising stat %d to %d lowered the grade", stat, v)
			previous = current
		}
	}
	assert.Equal(t, entities.GradeS, previous)
}

func TestPackRoundTrip(t *testing.T) {
	samples := []entities.HiddenValues{
		{0, 0, 0, 0, 0, 0},
		{31, 31, 31, 31, 31, 31},
		{1, 2, 3, 4, 5, 6},
		{31, 0, 17, 9, 30, 1},
	}

	for _, hv := range samples {
		packed := hv.Pack()
		decoded, err := entities.UnpackHiddenValues(packed)
		require.NoError(t, err)
		assert.Equal(t, hv, decoded)
	}

	for v := 0; v <= entities.HiddenValueMax; v++ {
		for stat := 0; stat < entities.HiddenValueCount; stat++ {
			var hv entities.HiddenValues
			hv[stat] = v
			decoded, err := entities.UnpackHiddenValues(hv.Pack())
			require.NoError(t, err)
			require.Equal(t, hv, decoded)
		}
	}
}

func TestUnpackRejectsOverflow(t *testing.T) {
	_, err := entities.UnpackHiddenValues(1 << 30)
	assert.Error(t, err)
}

func TestHiddenValuesJSONRoundTrip(t *testing.T) {
	hv := entities.HiddenValues{31, 0, 17, 9, 30, 1}

	data, err := json.Marshal(hv)
	require.NoError(t, err)
	assert.JSONEq(t, `[31,0,17,9,30,1]`, string(data))

	var decoded entities.HiddenValues
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, hv, decoded)
}

func TestHiddenValuesHelpers(t *testing.T) {
	hv := entities.HiddenValues{31, 31, 31, 10, 0, 5}

	assert.Equal(t, 108, hv.Sum())
	assert.Equal(t, 3, hv.PerfectCount())
	assert.Equal(t, entities.GradeB, hv.Grade())
	assert.NoError(t, hv.Validate())

	hv[4] = 32
	assert.Error(t, hv.Validate())
}
