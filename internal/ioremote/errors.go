package ioremote

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkore/pkg/errcode"
)

// ErrStatus is wrapped by errors about unexpected HTTP statuses.
var ErrStatus = errors.New("unexpected HTTP status")

func RemoteRequestError(addr string, err error) error {
	msg := "Request to <em>%s</em> failed"
	vars := []any{addr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RemoteRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: GET %s: %w", fn.Name(), addr, err),
	}
}

func RemoteStatusError(addr string, status int) error {
	msg := "<em>%s</em> responded with status %d"
	vars := []any{addr, status}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RemoteStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: GET %s: %w %d",
			fn.Name(), addr, ErrStatus, status),
	}
}

func RemoteDecodeError(addr string, err error) error {
	msg := "Cannot read response from <em>%s</em>"
	vars := []any{addr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RemoteDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: decode %s: %w", fn.Name(), addr, err),
	}
}

func TaxonomyNotFoundError(taxID string) error {
	msg := "Taxon <em>%s</em> is not found in NCBI Taxonomy"
	vars := []any{taxID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TaxonomyNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no taxon with ID %s", fn.Name(), taxID),
	}
}
