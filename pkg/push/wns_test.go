package push_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushkit/pkg/push"
)

func TestWNS(t *testing.T) {
	t.Run("emits only the chosen field", func(t *testing.T) {
		doc, err := push.WNS(push.WNSOverride{Alert: "Hello!"})
		require.NoError(t, err)
		assert.Equal(t, push.Payload{"alert": "Hello!"}, doc)

		toast := map[string]any{"binding": map[string]any{"template": "ToastText01"}}
		doc, err = push.WNS(push.WNSOverride{Toast: toast})
		require.NoError(t, err)
		assert.Equal(t, push.Payload{"toast": toast}, doc)

		tile := map[string]any{"binding": map[string]any{"template": "TileSquareText01"}}
		doc, err = push.WNS(push.WNSOverride{Tile: tile})
		require.NoError(t, err)
		assert.Equal(t, push.Payload{"tile": tile}, doc)

		badge := map[string]any{"value": 3}
		doc, err = push.WNS(push.WNSOverride{Badge: badge})
		require.NoError(t, err)
		assert.Equal(t, push.Payload{"badge": badge}, doc)
	})

	t.Run("fails with no notification type", func(t *testing.T) {
		doc, err := push.WNS(push.WNSOverride{})
		assert.ErrorIs(t, err, push.ErrInvalidChoice)
		assert.Nil(t, doc)
	})

	t.Run("fails with more than one notification type", func(t *testing.T) {
		_, err := push.WNS(push.WNSOverride{
			Alert: "Hello!",
			Toast: map[string]any{"binding": "x"},
		})
		assert.ErrorIs(t, err, push.ErrInvalidChoice)
	})

	t.Run("treats an empty document field as unset", func(t *testing.T) {
		doc, err := push.WNS(push.WNSOverride{Alert: "Hello!", Toast: map[string]any{}})
		require.NoError(t, err)
		assert.Equal(t, push.Payload{"alert": "Hello!"}, doc)
	})
}
