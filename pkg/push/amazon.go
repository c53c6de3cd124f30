package push

// AmazonOverride carries the Amazon/ADM-specific fields of a notification.
// All fields are optional.
type AmazonOverride struct {
	// Alert is the alert text.
	Alert string

	// ConsolidationKey groups messages that may replace one another.
	ConsolidationKey string

	// ExpiresAfter is how long the message is kept for redelivery, as an
	// integer or a time set in UTC as a string.
	ExpiresAfter IntOrString

	// Extra is a set of key/value pairs included in the push payload sent
	// to the device.
	Extra map[string]any

	// Title is the notification title.
	Title string

	// Summary is the notification summary text.
	Summary string

	// Interactive is a document produced by Interactive.
	Interactive Payload
}

// Amazon builds the Amazon platform override document. Absent fields are
// omitted entirely; with no fields set it returns an empty, valid document.
func Amazon(o AmazonOverride) (Payload, error) {
	p := Payload{}
	if o.Alert != "" {
		p["alert"] = o.Alert
	}
	if o.ConsolidationKey != "" {
		p["consolidation_key"] = o.ConsolidationKey
	}
	if !o.ExpiresAfter.IsZero() {
		p["expires_after"] = o.ExpiresAfter.value()
	}
	if o.Extra != nil {
		p["extra"] = o.Extra
	}
	if o.Title != "" {
		p["title"] = o.Title
	}
	if o.Summary != "" {
		p["summary"] = o.Summary
	}
	if o.Interactive != nil {
		p["interactive"] = o.Interactive
	}
	return p, nil
}
