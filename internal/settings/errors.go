package settings

// unknownKeyError signals an Update against a key the store does not know.
type unknownKeyError struct{ key string }

func (e unknownKeyError) Error() string { return "unknown settings key: " + e.key }

// IsUnknownKey reports whether err indicates an unrecognized settings key.
func IsUnknownKey(err error) bool {
	_, ok := err.(unknownKeyError)
	return ok
}

// badValueError signals an Update value whose dynamic type does not fit the key.
type badValueError struct {
	key  string
	want string
}

func (e badValueError) Error() string { return "settings key " + e.key + " expects a " + e.want }

func errBadValue(key, want string) error { return badValueError{key: key, want: want} }

// IsBadValue reports whether err indicates a mistyped update value.
func IsBadValue(err error) bool {
	_, ok := err.(badValueError)
	return ok
}
