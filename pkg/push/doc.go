// Package push assembles and validates the wire documents accepted by a
// multi-platform push notification API.
//
// Callers describe a notification with plain option structs and the package
// turns them into nested key/value documents matching the service's wire
// schema: a top-level notification with optional per-platform overrides
// (iOS, Android, Amazon, BlackBerry, WNS, MPNS), action and interactive
// sub-documents, standalone rich messages, delivery options, and device
// type specifiers.
//
// Every builder is a pure function: it allocates a fresh Payload, validates
// its inputs in a fixed field order, and returns either the document or the
// first violated constraint as an error. Nothing is retained between calls,
// so the package is safe for concurrent use without coordination.
//
// # Usage
//
//	ios, err := push.IOS(push.IOSOverride{
//	    Alert: "Hello!",
//	    Badge: push.String("+1"),
//	    Sound: "cat.caf",
//	})
//	if err != nil {
//	    return err
//	}
//
//	doc, err := push.Notification(push.NotificationOptions{
//	    Alert: "Hello, everyone else!",
//	    IOS:   ios,
//	})
//
// The resulting Payload is ready to be embedded into an API request body by
// an HTTP client; this package never performs serialization or network I/O
// itself.
//
// # Optional fields
//
// Absent fields are omitted from the document entirely, never emitted as
// null or zero. Fields that accept either an integer or a string (expiry,
// time_to_live, expires_after, badge) use the IntOrString union, and the
// tag actions use TagList; for both, the zero value means "not supplied".
//
// # Error Handling
//
// Builders wrap the sentinel errors declared in errors.go with field
// context, so callers should match with errors.Is:
//
//	if _, err := push.WNS(push.WNSOverride{}); errors.Is(err, push.ErrInvalidChoice) {
//	    // zero or more than one WNS notification type was set
//	}
//
// The first violated constraint determines the returned error; violations
// are never aggregated.
package push
