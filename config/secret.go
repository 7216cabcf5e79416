package config

// Secret holds a sensitive value. All the textual representations are
// redacted so a secret can't end up in logs, error messages or a dumped
// configuration.
type Secret string

const redacted = "[REDACTED]"

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

// GoString keeps %#v output redacted too
func (s Secret) GoString() string {
	return s.String()
}

// MarshalYAML never serializes the value
func (s Secret) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Value returns the actual secret for feeding into a command's stdin
func (s Secret) Value() string {
	return string(s)
}
