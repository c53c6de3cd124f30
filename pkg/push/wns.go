package push

import "fmt"

// WNSOverride carries the Windows Notification Service fields of a
// notification. Exactly one of Alert, Toast, Tile, or Badge must be set.
type WNSOverride struct {
	// Alert is the alert text.
	Alert string

	// Toast is a toast document, including launch activation parameters.
	Toast map[string]any

	// Tile is a tile document.
	Tile map[string]any

	// Badge is a badge document.
	Badge map[string]any
}

// WNS builds the WNS platform override document. The single chosen field
// is emitted under its own key; any other count of set fields returns
// ErrInvalidChoice.
func WNS(o WNSOverride) (Payload, error) {
	set := 0
	if o.Alert != "" {
		set++
	}
	if len(o.Toast) > 0 {
		set++
	}
	if len(o.Tile) > 0 {
		set++
	}
	if len(o.Badge) > 0 {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: wns payload must have exactly one notification type", ErrInvalidChoice)
	}
	switch {
	case o.Alert != "":
		return Payload{"alert": o.Alert}, nil
	case len(o.Toast) > 0:
		return Payload{"toast": o.Toast}, nil
	case len(o.Tile) > 0:
		return Payload{"tile": o.Tile}, nil
	default:
		return Payload{"badge": o.Badge}, nil
	}
}
