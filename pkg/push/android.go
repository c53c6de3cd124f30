package push

// AndroidOverride carries the Android/GCM-specific fields of a
// notification. All fields are optional.
type AndroidOverride struct {
	// Alert is the alert text.
	Alert string

	// CollapseKey groups collapsible messages on the device.
	CollapseKey string

	// TimeToLive is how long the message is kept for redelivery, as an
	// integer or a time set in UTC as a string.
	TimeToLive IntOrString

	// DelayWhileIdle holds delivery until the device becomes active. Only
	// a true value is emitted; false leaves the key out entirely.
	DelayWhileIdle bool

	// Extra is a set of key/value pairs included in the push payload sent
	// to the device.
	Extra map[string]any

	// Interactive is a document produced by Interactive.
	Interactive Payload

	// LocalOnly suppresses the notification on wearable devices. Use
	// Bool(false) to emit an explicit false; nil omits the key.
	LocalOnly *bool

	// Wearable defines a wearable notification with optional
	// background_image, extra_pages, and interactive fields.
	Wearable map[string]any
}

// Android builds the Android platform override document. Absent fields are
// omitted entirely; with no fields set it returns an empty, valid document.
func Android(o AndroidOverride) (Payload, error) {
	p := Payload{}
	if o.Alert != "" {
		p["alert"] = o.Alert
	}
	if o.CollapseKey != "" {
		p["collapse_key"] = o.CollapseKey
	}
	if !o.TimeToLive.IsZero() {
		p["time_to_live"] = o.TimeToLive.value()
	}
	if o.DelayWhileIdle {
		p["delay_while_idle"] = true
	}
	if o.Extra != nil {
		p["extra"] = o.Extra
	}
	if o.Interactive != nil {
		p["interactive"] = o.Interactive
	}
	if o.LocalOnly != nil {
		p["local_only"] = *o.LocalOnly
	}
	if o.Wearable != nil {
		p["wearable"] = o.Wearable
	}
	return p, nil
}
