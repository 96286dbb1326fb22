package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveView(t *testing.T) {
	tests := []struct {
		name    string
		view    string
		visible string
		ok      bool
	}{
		{name: "product view", view: "product", visible: ViewProduct, ok: true},
		{name: "checkout view", view: "checkout", visible: ViewCheckout, ok: true},
		{name: "success view", view: "success", visible: ViewSuccess, ok: true},
		{name: "empty defaults to product", view: "", visible: ViewProduct, ok: true},
		{name: "unknown view rejected", view: "cart", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visibility, ok := ResolveView(tt.view)

			if !tt.ok {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)

			// Exactly one panel is visible.
			shown := 0
			for name, visible := range visibility {
				if visible {
					shown++
					assert.Equal(t, tt.visible, name)
				}
			}
			assert.Equal(t, 1, shown)
			assert.Len(t, visibility, 3)
		})
	}
}
