package bioproject

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkore/pkg/errcode"
)

func BioprojectFetchError(acc string, err error) error {
	msg := "Cannot get BioProject <em>%s</em>"
	vars := []any{acc}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BioprojectFetchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bioproject %s: %w", fn.Name(), acc, err),
	}
}

func MissingTaxonIDError(acc string) error {
	msg := "BioProject <em>%s</em> has no taxon ID"
	vars := []any{acc}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingTaxonIDError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no TAXON_ID in %s", fn.Name(), acc),
	}
}

func TaxonomyFetchError(acc, taxID string, err error) error {
	msg := "Cannot get taxonomy of <em>%s</em> for BioProject <em>%s</em>"
	vars := []any{taxID, acc}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TaxonomyFetchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: taxonomy %s of %s: %w",
			fn.Name(), taxID, acc, err),
	}
}
