package push

import "fmt"

// DeviceType identifies a delivery platform in a device type specifier.
type DeviceType string

const (
	DeviceTypeIOS        DeviceType = "ios"
	DeviceTypeAndroid    DeviceType = "android"
	DeviceTypeAmazon     DeviceType = "amazon"
	DeviceTypeBlackBerry DeviceType = "blackberry"
	DeviceTypeWNS        DeviceType = "wns"
	DeviceTypeMPNS       DeviceType = "mpns"

	// DeviceTypeAll targets every platform and must be the only element of
	// a specifier.
	DeviceTypeAll DeviceType = "all"
)

// DeviceTypes builds a device type specifier: either the literal "all", or
// a list of platform names. Order is preserved and duplicates are kept; the
// first name outside the supported set returns ErrInvalidChoice.
func DeviceTypes(types ...DeviceType) (any, error) {
	if len(types) == 1 && types[0] == DeviceTypeAll {
		return string(DeviceTypeAll), nil
	}
	out := make([]string, 0, len(types))
	for _, t := range types {
		switch t {
		case DeviceTypeIOS, DeviceTypeAndroid, DeviceTypeAmazon,
			DeviceTypeBlackBerry, DeviceTypeWNS, DeviceTypeMPNS:
		default:
			return nil, fmt.Errorf("%w: invalid device type %q", ErrInvalidChoice, string(t))
		}
		out = append(out, string(t))
	}
	return out, nil
}
