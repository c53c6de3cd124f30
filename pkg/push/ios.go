package push

import (
	"fmt"
	"regexp"
)

// Valid autobadge directives: auto, +N, -N. Unsigned numeric strings are
// rejected; absolute badge values must be supplied as integers.
var autobadgeRE = regexp.MustCompile(`^(auto|[+-][\d]+)$`)

// IOSOverride carries the iOS/APNS-specific fields of a notification.
// All fields are optional.
type IOSOverride struct {
	// Alert is the iOS alert, either a string or a map-shaped alert
	// document.
	Alert any

	// Badge is an absolute integer badge value or an autobadge directive
	// ("auto", "+N", "-N") as a string.
	Badge IntOrString

	// Sound is the name of a sound file to play, passed through unchecked.
	Sound any

	// ContentAvailable wakes the app in the background without a visible
	// alert. When true the document carries content-available = 1.
	ContentAvailable bool

	// Extra is a set of key/value pairs included in the push payload sent
	// to the device.
	Extra map[string]any

	// Expiry is when the notification expires, as an integer or a time set
	// in UTC as a string.
	Expiry IntOrString

	// Interactive is a document produced by Interactive.
	Interactive Payload

	// Category is a keyword used to categorize the notification.
	Category string

	// Title is the notification title for Apple Watch.
	Title string
}

// IOS builds the iOS platform override document. Absent fields are omitted
// entirely; with no fields set it returns an empty, valid document.
func IOS(o IOSOverride) (Payload, error) {
	p := Payload{}
	if o.Alert != nil {
		switch o.Alert.(type) {
		case string, map[string]any, Payload:
		default:
			return nil, fmt.Errorf("%w: ios alert must be a string or a map, got %T", ErrInvalidType, o.Alert)
		}
		p["alert"] = o.Alert
	}
	if !o.Badge.IsZero() {
		if s, ok := o.Badge.stringValue(); ok && !autobadgeRE.MatchString(s) {
			return nil, fmt.Errorf("%w: ios badge %q is not a valid autobadge directive", ErrInvalidValue, s)
		}
		p["badge"] = o.Badge.value()
	}
	if o.Sound != nil {
		p["sound"] = o.Sound
	}
	if o.ContentAvailable {
		p["content-available"] = 1
	}
	if o.Extra != nil {
		p["extra"] = o.Extra
	}
	if !o.Expiry.IsZero() {
		p["expiry"] = o.Expiry.value()
	}
	if o.Interactive != nil {
		p["interactive"] = o.Interactive
	}
	if o.Category != "" {
		p["category"] = o.Category
	}
	if o.Title != "" {
		p["title"] = o.Title
	}
	return p, nil
}
