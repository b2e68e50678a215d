package texture

import (
	"errors"
	"fmt"
)

// ErrDiscarded is reported by a Future whose result was discarded before it was consumed.
var ErrDiscarded = errors.New("texture: future discarded")

// AssetMissingError reports a named texture that could not be resolved by a Provider.
type AssetMissingError struct {
	// Name is the texture identifier that failed to resolve.
	Name string
	// Err is the underlying cause, if any.
	Err error
}

func (e *AssetMissingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("texture %q missing: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("texture %q missing", e.Name)
}

func (e *AssetMissingError) Unwrap() error {
	return e.Err
}

// missing wraps err as an AssetMissingError for name unless it already is one.
func missing(name string, err error) error {
	var am *AssetMissingError
	if errors.As(err, &am) {
		return err
	}
	return &AssetMissingError{Name: name, Err: err}
}
