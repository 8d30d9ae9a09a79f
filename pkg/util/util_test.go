package util

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertList(t *testing.T) {
	got := ConvertList([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	assert.Equal(t, []string{}, ConvertList(nil, strconv.Itoa))
}

func TestPtrVal(t *testing.T) {
	p := Ptr(42.5)
	assert.Equal(t, 42.5, *p)
	assert.Equal(t, 42.5, Val(p))

	var nilPtr *float64
	assert.Equal(t, 0.0, Val(nilPtr))
}
