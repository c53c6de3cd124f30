package push

type intOrStringKind uint8

const (
	intOrStringAbsent intOrStringKind = iota
	intOrStringInt
	intOrStringString
)

// IntOrString holds a value for fields that accept either an integer or a
// time expressed as a UTC string (expiry, time_to_live, expires_after), and
// for the iOS badge, which additionally accepts autobadge directives.
// The zero value means the field was not supplied.
type IntOrString struct {
	kind intOrStringKind
	num  int
	str  string
}

// Int wraps an integer value.
func Int(v int) IntOrString { return IntOrString{kind: intOrStringInt, num: v} }

// String wraps a string value.
func String(v string) IntOrString { return IntOrString{kind: intOrStringString, str: v} }

// IsZero reports whether the value was left unset.
func (v IntOrString) IsZero() bool { return v.kind == intOrStringAbsent }

// value returns the wrapped value for embedding into a Payload.
func (v IntOrString) value() any {
	if v.kind == intOrStringInt {
		return v.num
	}
	return v.str
}

// stringValue returns the wrapped string and whether the string variant is held.
func (v IntOrString) stringValue() (string, bool) {
	return v.str, v.kind == intOrStringString
}

type tagListKind uint8

const (
	tagListAbsent tagListKind = iota
	tagListSingle
	tagListMany
)

// TagList holds either a single tag or an ordered list of tags for the
// add_tag and remove_tag action fields. The zero value means the field was
// not supplied.
type TagList struct {
	kind tagListKind
	one  string
	many []string
}

// Tag wraps a single tag, emitted into the document as a bare string.
func Tag(tag string) TagList { return TagList{kind: tagListSingle, one: tag} }

// Tags wraps an ordered list of tags. Order is preserved and duplicates are
// kept. A call with no tags still counts as supplied, which the actions
// builder rejects with ErrEmptyValue.
func Tags(tags ...string) TagList { return TagList{kind: tagListMany, many: tags} }

// IsZero reports whether the list was left unset.
func (t TagList) IsZero() bool { return t.kind == tagListAbsent }

// empty reports whether a supplied list has no elements.
func (t TagList) empty() bool { return t.kind == tagListMany && len(t.many) == 0 }

// value returns the wrapped tags for embedding into a Payload. List values
// are copied so the document never aliases the caller's slice.
func (t TagList) value() any {
	if t.kind == tagListSingle {
		return t.one
	}
	out := make([]string, len(t.many))
	copy(out, t.many)
	return out
}

// Bool returns a pointer to v, for optional boolean fields where a present
// false must still be emitted (AndroidOverride.LocalOnly).
func Bool(v bool) *bool { return &v }
