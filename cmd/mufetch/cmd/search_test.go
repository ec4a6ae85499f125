package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elxecutor/mufetch/internal/render"
)

func TestFitImageSize(t *testing.T) {
	cases := []struct {
		name      string
		requested int
		termWidth int
		want      int
	}{
		{
			name:      "unknown terminal keeps the clamped request",
			requested: 20,
			termWidth: 0,
			want:      20,
		},
		{
			name:      "wide terminal keeps the clamped request",
			requested: 30,
			termWidth: 120,
			want:      30,
		},
		{
			name:      "narrow terminal shrinks the art",
			requested: 35,
			termWidth: 70,
			want:      26,
		},
		{
			name:      "tiny terminal bottoms out at the minimum",
			requested: 35,
			termWidth: 40,
			want:      render.MinCellWidth,
		},
		{
			name:      "oversized request is clamped before fitting",
			requested: 100,
			termWidth: 120,
			want:      render.MaxCellWidth,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, fitImageSize(tc.requested, tc.termWidth))
		})
	}
}
