package push

import "fmt"

// Interactive builds an interactive notification document. The type names
// one of the predefined interactive notifications or a custom defined one
// and is required; an empty type returns ErrMissingAttribute.
// buttonActions maps button IDs to action documents produced by Actions and
// may be nil.
func Interactive(typ string, buttonActions map[string]Payload) (Payload, error) {
	if typ == "" {
		return nil, fmt.Errorf("%w: interactive requires a type", ErrMissingAttribute)
	}
	p := Payload{"type": typ}
	if buttonActions != nil {
		p["button_actions"] = buttonActions
	}
	return p, nil
}
