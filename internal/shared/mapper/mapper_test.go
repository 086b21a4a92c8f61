package mapper

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSlice(t *testing.T) {
	assert.Equal(t, []string{"10", "20"}, MapSlice([]int{10, 20}, strconv.Itoa))
	assert.Equal(t, []string{}, MapSlice([]int{}, strconv.Itoa))
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
}
