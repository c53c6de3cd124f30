package push_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushkit/pkg/push"
)

func TestMPNS(t *testing.T) {
	t.Run("emits only the chosen field", func(t *testing.T) {
		doc, err := push.MPNS(push.MPNSOverride{Alert: "Hello!"})
		require.NoError(t, err)
		assert.Equal(t, push.Payload{"alert": "Hello!"}, doc)

		toast := map[string]any{"text1": "Hello!"}
		doc, err = push.MPNS(push.MPNSOverride{Toast: toast})
		require.NoError(t, err)
		assert.Equal(t, push.Payload{"toast": toast}, doc)

		tile := map[string]any{"title": "Hello!"}
		doc, err = push.MPNS(push.MPNSOverride{Tile: tile})
		require.NoError(t, err)
		assert.Equal(t, push.Payload{"tile": tile}, doc)
	})

	t.Run("fails with no notification type", func(t *testing.T) {
		doc, err := push.MPNS(push.MPNSOverride{})
		assert.ErrorIs(t, err, push.ErrInvalidChoice)
		assert.Nil(t, doc)
	})

	t.Run("fails with more than one notification type", func(t *testing.T) {
		_, err := push.MPNS(push.MPNSOverride{
			Alert: "Hello!",
			Tile:  map[string]any{"title": "Hello!"},
		})
		assert.ErrorIs(t, err, push.ErrInvalidChoice)
	})
}
