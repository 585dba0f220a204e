package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorfCode(t *testing.T) {
	err := WrapErrorf(errors.New("disk on fire"), ErrDataLoad, "failed to load %s", "roads.geojson")

	assert.Equal(t, ErrDataLoad, ErrorCode(err))
	assert.Contains(t, err.Error(), "failed to load roads.geojson")
	assert.ErrorContains(t, errors.Unwrap(err), "disk on fire")
}

func TestErrorCodePlainError(t *testing.T) {
	assert.Nil(t, ErrorCode(errors.New("plain")))
	assert.Nil(t, ErrorCode(nil))
}

func TestValidateLonLat(t *testing.T) {
	assert.NoError(t, ValidateLonLat(7.3884, 8.9886))
	assert.NoError(t, ValidateLonLat(-180, -90))
	assert.NoError(t, ValidateLonLat(180, 90))

	for _, bad := range [][2]float64{{181, 0}, {-181, 0}, {0, 91}, {0, -91}} {
		err := ValidateLonLat(bad[0], bad[1])
		assert.Equal(t, ErrBadParamInput, ErrorCode(err), "lon=%v lat=%v", bad[0], bad[1])
	}
}

func TestReverseG(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, ReverseG([]int{1, 2, 3}))
	assert.Empty(t, ReverseG([]int{}))
}
