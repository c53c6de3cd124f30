package push_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushkit/pkg/push"
)

func TestDeviceTypes(t *testing.T) {
	t.Run("a single all becomes the literal all", func(t *testing.T) {
		spec, err := push.DeviceTypes(push.DeviceTypeAll)
		require.NoError(t, err)
		assert.Equal(t, "all", spec)
	})

	t.Run("preserves order of the platform list", func(t *testing.T) {
		spec, err := push.DeviceTypes(push.DeviceTypeIOS, push.DeviceTypeWNS)
		require.NoError(t, err)
		assert.Equal(t, []string{"ios", "wns"}, spec)
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		spec, err := push.DeviceTypes(push.DeviceTypeIOS, push.DeviceTypeIOS)
		require.NoError(t, err)
		assert.Equal(t, []string{"ios", "ios"}, spec)
	})

	t.Run("accepts every supported platform", func(t *testing.T) {
		spec, err := push.DeviceTypes(
			push.DeviceTypeIOS,
			push.DeviceTypeAndroid,
			push.DeviceTypeAmazon,
			push.DeviceTypeBlackBerry,
			push.DeviceTypeWNS,
			push.DeviceTypeMPNS,
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"ios", "android", "amazon", "blackberry", "wns", "mpns"}, spec)
	})

	t.Run("names the offending platform", func(t *testing.T) {
		spec, err := push.DeviceTypes(push.DeviceTypeIOS, push.DeviceType("symbian"))
		assert.ErrorIs(t, err, push.ErrInvalidChoice)
		assert.ErrorContains(t, err, `"symbian"`)
		assert.Nil(t, spec)
	})

	t.Run("rejects all mixed with other platforms", func(t *testing.T) {
		_, err := push.DeviceTypes(push.DeviceTypeAll, push.DeviceTypeIOS)
		assert.ErrorIs(t, err, push.ErrInvalidChoice)
		assert.ErrorContains(t, err, `"all"`)
	})

	t.Run("an empty call yields an empty list", func(t *testing.T) {
		spec, err := push.DeviceTypes()
		require.NoError(t, err)
		assert.Equal(t, []string{}, spec)
	})
}
