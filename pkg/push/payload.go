package push

import "fmt"

// Payload is an assembled wire document: string keys mapping to JSON-shaped
// values (strings, integers, booleans, nested maps, lists of strings).
// Builders allocate a fresh Payload per call and never retain it after
// returning, so a Payload may be freely embedded into a larger document.
type Payload map[string]any

// NotificationOptions carries the optional parts of a notification
// document. A nil Alert means no alert. For the document-valued fields a
// nil map means absent, while an empty non-nil Payload (as produced by a
// sub-builder called without arguments) is present.
type NotificationOptions struct {
	// Alert is the cross-platform alert, either a string or a map-shaped
	// alert document.
	Alert any

	// Actions is a document produced by Actions.
	Actions Payload

	// Platform overrides produced by the corresponding builders.
	IOS        Payload
	Android    Payload
	Amazon     Payload
	BlackBerry Payload
	WNS        Payload
	MPNS       Payload

	// Interactive is a document produced by Interactive.
	Interactive Payload
}

// Notification assembles the top-level notification document. Each present
// part is embedded verbatim under its wire key; validating a part's
// internals is the producing sub-builder's responsibility. A notification
// must carry at least one field, otherwise ErrEmptyPayload is returned.
func Notification(opts NotificationOptions) (Payload, error) {
	p := Payload{}
	if opts.Alert != nil {
		p["alert"] = opts.Alert
	}
	if opts.Actions != nil {
		p["actions"] = opts.Actions
	}
	if opts.IOS != nil {
		p["ios"] = opts.IOS
	}
	if opts.Android != nil {
		p["android"] = opts.Android
	}
	if opts.Amazon != nil {
		p["amazon"] = opts.Amazon
	}
	if opts.BlackBerry != nil {
		p["blackberry"] = opts.BlackBerry
	}
	if opts.WNS != nil {
		p["wns"] = opts.WNS
	}
	if opts.MPNS != nil {
		p["mpns"] = opts.MPNS
	}
	if opts.Interactive != nil {
		p["interactive"] = opts.Interactive
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: notification body requires at least one field", ErrEmptyPayload)
	}
	return p, nil
}
