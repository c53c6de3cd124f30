package push

import "fmt"

// BlackBerryOverride carries the BlackBerry-specific fields of a
// notification. Set either Alert, or both Body and ContentType.
type BlackBerryOverride struct {
	// Alert is shorthand for a text/plain body and takes priority over
	// Body and ContentType when both are supplied.
	Alert string

	// Body is the message body.
	Body string

	// ContentType is the MIME type describing Body.
	ContentType string
}

// BlackBerry builds the BlackBerry platform override document. An alert
// becomes a text/plain body; otherwise body and content_type are emitted
// verbatim. With neither mode satisfied it returns ErrEmptyPayload.
func BlackBerry(o BlackBerryOverride) (Payload, error) {
	if o.Alert != "" {
		return Payload{"body": o.Alert, "content_type": "text/plain"}, nil
	}
	if o.Body != "" && o.ContentType != "" {
		return Payload{"body": o.Body, "content_type": o.ContentType}, nil
	}
	return nil, fmt.Errorf("%w: blackberry requires alert, or both body and content_type", ErrEmptyPayload)
}
