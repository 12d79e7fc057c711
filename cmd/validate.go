/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnkore/internal/iofs"
	"github.com/gnames/gnkore/pkg/accession"
	"github.com/spf13/cobra"
)

// getValidateCmd returns the validate command.
func getValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check BioProject accessions in a file",
		Long: `Check that every line of a file is a valid BioProject accession,
optionally followed by ", " and a note.

No remote services are queried. Valid entries are printed as
tab-separated accession and note. The first invalid line is reported
with its line number.

Examples:
  gnkore validate projects.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runValidate(cmd.OutOrStdout(), args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return validateCmd
}

func runValidate(w io.Writer, path string) error {
	ins, err := readInputs(path)
	if err != nil {
		return err
	}

	for _, v := range ins {
		if _, err = fmt.Fprintf(w, "%s\t%s\n", v.Accession, v.Note); err != nil {
			return err
		}
	}

	gn.Info("Found <em>%s</em> valid BioProject accessions",
		humanize.Comma(int64(len(ins))))
	return nil
}

func readInputs(path string) ([]accession.Input, error) {
	f, err := iofs.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return accession.Parse(f, path)
}

