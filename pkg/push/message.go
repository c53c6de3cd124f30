package push

// MessageOptions carries the optional fields of a rich message document.
type MessageOptions struct {
	// ContentType is the MIME type of the body.
	ContentType string

	// ContentEncoding is the encoding of the data in the body, e.g. "utf-8".
	ContentEncoding string

	// Extra is a set of key/value pairs delivered with the message.
	Extra map[string]any

	// Expiry is when the message is deleted from the inbox, as an integer
	// or a time set in UTC as a string.
	Expiry IntOrString

	// Icons maps icon names to URI or URL icon resources.
	Icons map[string]string

	// Options carries non-payload delivery options for the message.
	Options map[string]any
}

// Message builds a rich message document, independent of the notification
// composer. Title and body are required; the compiler enforces their
// presence, and an empty string is treated as a present value.
func Message(title, body string, opts MessageOptions) (Payload, error) {
	p := Payload{
		"title": title,
		"body":  body,
	}
	if opts.ContentType != "" {
		p["content_type"] = opts.ContentType
	}
	if opts.ContentEncoding != "" {
		p["content_encoding"] = opts.ContentEncoding
	}
	if opts.Extra != nil {
		p["extra"] = opts.Extra
	}
	if !opts.Expiry.IsZero() {
		p["expiry"] = opts.Expiry.value()
	}
	if opts.Icons != nil {
		p["icons"] = opts.Icons
	}
	if opts.Options != nil {
		p["options"] = opts.Options
	}
	return p, nil
}
