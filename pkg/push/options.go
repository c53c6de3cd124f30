package push

// DeliveryOptions carries platform-independent delivery options for a push.
type DeliveryOptions struct {
	// Expiry is the time at which the push is no longer sent, as an
	// integer or a time set in UTC as a string.
	Expiry IntOrString
}

// Options builds the delivery options document. An absent expiry yields an
// empty, valid document.
func Options(o DeliveryOptions) (Payload, error) {
	p := Payload{}
	if !o.Expiry.IsZero() {
		p["expiry"] = o.Expiry.value()
	}
	return p, nil
}
