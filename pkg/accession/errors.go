package accession

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gnames/gn"
	"github.com/gnames/gnkore/pkg/errcode"
)

// ErrInvalidAccession is wrapped by errors about malformed accessions.
var ErrInvalidAccession = errors.New("invalid bioproject accession")

// InvalidAccessionError is returned for a string that is not a BioProject
// accession.
func InvalidAccessionError(acc string) error {
	msg := "BioProject ID <em>%s</em> does not match '%s'"
	vars := []any{acc, bioprojectRe.String()}
	return &gn.Error{
		Code: errcode.InvalidAccessionFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%w: '%s'", ErrInvalidAccession, acc),
	}
}

// InvalidLineError adds the location of a bad line to the validation error.
func InvalidLineError(source string, line int, err error) error {
	msg := "Invalid entry at <em>%s:%d</em>"
	vars := []any{source, line}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		msg = gnErr.Msg + " (" + msg + ")"
		vars = slices.Concat(gnErr.Vars, vars)
	}
	return &gn.Error{
		Code: errcode.InvalidAccessionFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s line %d: %w", source, line, err),
	}
}

// InputEmptyError is returned when an input has no entries.
func InputEmptyError(source string) error {
	msg := "No valid entries in <em>%s</em>"
	vars := []any{source}
	return &gn.Error{
		Code: errcode.InputEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no entries in %s", source),
	}
}
