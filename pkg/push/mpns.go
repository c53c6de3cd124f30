package push

import "fmt"

// MPNSOverride carries the Microsoft Push Notification Service fields of a
// notification. Exactly one of Alert, Toast, or Tile must be set.
type MPNSOverride struct {
	// Alert is the alert text.
	Alert string

	// Toast is a toast document.
	Toast map[string]any

	// Tile is a tile document.
	Tile map[string]any
}

// MPNS builds the MPNS platform override document. The single chosen field
// is emitted under its own key; any other count of set fields returns
// ErrInvalidChoice.
func MPNS(o MPNSOverride) (Payload, error) {
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
	if set != 1 {
		return nil, fmt.Errorf("%w: mpns payload must have exactly one notification type", ErrInvalidChoice)
	}
	switch {
	case o.Alert != "":
		return Payload{"alert": o.Alert}, nil
	case len(o.Toast) > 0:
		return Payload{"toast": o.Toast}, nil
	default:
		return Payload{"tile": o.Tile}, nil
	}
}
