package iooutput

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkore/pkg/errcode"
)

// ErrFormat is wrapped by errors about unknown output formats.
var ErrFormat = errors.New("unknown output format")

func OutputFormatError(format string) error {
	msg := "Output format <em>%s</em> is not supported"
	vars := []any{format}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w '%s'", fn.Name(), ErrFormat, format),
	}
}

func OutputWriteError(format string, err error) error {
	msg := "Cannot write <em>%s</em> output"
	vars := []any{format}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: write %s: %w", fn.Name(), format, err),
	}
}
