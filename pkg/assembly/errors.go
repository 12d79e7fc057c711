package assembly

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkore/pkg/errcode"
)

// ErrMissingVersion is wrapped by errors about assembly names without
// a version token.
var ErrMissingVersion = errors.New("assembly name has no version")

// MissingVersionTokenError is returned when an assembly cannot be grouped
// because its name has no version token.
func MissingVersionTokenError(name string) error {
	msg := "Cannot find version in assembly name <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingVersionTokenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %w: '%s'",
			fn.Name(), ErrMissingVersion, name),
	}
}
