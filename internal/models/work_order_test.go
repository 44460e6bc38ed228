package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workOrderPattern = regexp.MustCompile(`^GR-[0-9a-f]{8}$`)

func TestNewWorkOrderFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		wo := NewWorkOrder()
		require.Truef(t, workOrderPattern.MatchString(wo), "bad work order %q", wo)
	}
}

func TestNewWorkOrderDistinct(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		seen[NewWorkOrder()] = struct{}{}
	}
	// 32 bits of randomness; a collision in 1000 draws is vanishingly unlikely
	assert.Len(t, seen, 1000)
}

func TestLineTotal(t *testing.T) {
	cases := []struct {
		qty   int
		price float64
		want  float64
	}{
		{15, 12.5, 187.5},
		{10, 20, 200},
		{3, 0.1, 0.3},
		{0, 99.99, 0},
		{7, 1.005, 7.04},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, LineTotal(tc.qty, tc.price), "LineTotal(%d, %v)", tc.qty, tc.price)
	}
}
