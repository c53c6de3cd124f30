package push

import "fmt"

// ActionOptions carries the side-effect instructions attached to a
// notification. Any subset of fields may be set; none is required.
type ActionOptions struct {
	// AddTag adds one or more tags to the device.
	AddTag TagList

	// RemoveTag removes one or more tags from the device.
	RemoveTag TagList

	// Open opens a url, deep_link, or landing_page: a map with "type" and
	// "content" keys. Emitted under the document key "open".
	Open map[string]any

	// Share sends a share notification with the given text.
	Share string

	// AppDefined carries application defined actions.
	AppDefined map[string]any
}

// Actions builds an actions document. Unlike the top-level notification an
// empty actions document is valid; a tag list that was supplied but empty
// returns ErrEmptyValue.
func Actions(o ActionOptions) (Payload, error) {
	p := Payload{}
	if !o.AddTag.IsZero() {
		if o.AddTag.empty() {
			return nil, fmt.Errorf("%w: add_tag list cannot be empty", ErrEmptyValue)
		}
		p["add_tag"] = o.AddTag.value()
	}
	if !o.RemoveTag.IsZero() {
		if o.RemoveTag.empty() {
			return nil, fmt.Errorf("%w: remove_tag list cannot be empty", ErrEmptyValue)
		}
		p["remove_tag"] = o.RemoveTag.value()
	}
	if o.Open != nil {
		p["open"] = o.Open
	}
	if o.Share != "" {
		p["share"] = o.Share
	}
	if o.AppDefined != nil {
		p["app_defined"] = o.AppDefined
	}
	return p, nil
}
