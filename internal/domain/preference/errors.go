package preference

import "errors"

var (
	ErrPreferenceNotFound = errors.New("domain preference not found")
)
