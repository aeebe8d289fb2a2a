package timedataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset(t *testing.T) {
	testData := map[string]struct {
		x        []float64
		y        []float64
		expected *Dataset
		err      error
	}{
		"length mismatch": {
			x:   []float64{1, 2},
			y:   []float64{1},
			err: ErrDatasetLenMismatch,
		},
		"empty": {
			expected: &Dataset{
				X: []float64{},
				Y: []float64{},
			},
		},
		"valid": {
			x: []float64{0, 1},
			y: []float64{1, 2},
			expected: &Dataset{
				X: []float64{0, 1},
				Y: []float64{1, 2},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := NewDataset(td.x, td.y)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, ds)
		})
	}
}

func TestNewDatasetCopiesInput(t *testing.T) {
	x := []float64{0, 1}
	y := []float64{1, 2}
	ds, err := NewDataset(x, y)
	require.Nil(t, err)

	y[0] = 42
	assert.Equal(t, []float64{1, 2}, ds.Y)
}

func TestCopy(t *testing.T) {
	ds, err := NewDataset([]float64{0, 1}, []float64{1, 2})
	require.Nil(t, err)

	nextDs := ds.Copy()
	require.Equal(t, ds, nextDs)

	ds.Y[0] = 3
	require.NotEqual(t, nextDs, ds)
}

func TestFromObservations(t *testing.T) {
	obs := []Observation{
		{X: 0, Y: 2},
		{X: 1, Y: 3},
		{X: 2, Y: 5},
	}
	ds := FromObservations(obs)
	assert.Equal(t, []float64{0, 1, 2}, ds.X)
	assert.Equal(t, []float64{2, 3, 5}, ds.Y)
	assert.Equal(t, obs, ds.Observations())
}

func TestLen(t *testing.T) {
	var nilDs *Dataset
	assert.Equal(t, 0, nilDs.Len())

	ds, err := NewDataset([]float64{0, 1, 2}, []float64{1, 2, 3})
	require.Nil(t, err)
	assert.Equal(t, 3, ds.Len())
}
