package system

import (
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/stretchr/testify/assert"
)

func TestFollowOffsetClampsToMinimums(t *testing.T) {
	tests := []struct {
		name             string
		centerX, centerY float64
		minX, minY       float64
		wantX, wantY     float64
	}{
		{"far_into_level", 2000, 1000, 0, 0, 2000 - common.BaseWidth/2, 1000 - common.BaseHeight/2},
		{"near_origin_clamps_to_zero", 100, 50, 0, 0, 0, 0},
		{"variant_min_x", 100, 50, 32, 0, 32, 0},
		{"exactly_at_min", common.BaseWidth/2 + 32, common.BaseHeight / 2, 32, 0, 32, 0},
		{"negative_center", -500, -500, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := followOffset(tt.centerX, tt.centerY, tt.minX, tt.minY)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
			assert.GreaterOrEqual(t, x, tt.minX)
			assert.GreaterOrEqual(t, y, tt.minY)
		})
	}
}
