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
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnkore/internal/iooutput"
	"github.com/gnames/gnkore/internal/ioremote"
	"github.com/gnames/gnkore/pkg/bioproject"
	"github.com/gnames/gnkore/pkg/config"
	"github.com/gnames/gnkore/pkg/parserpool"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// getProcessCmd returns the process command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getProcessCmd() *cobra.Command {
	var (
		format    string
		keepGoing bool
		jobs      int
		quiet     bool
	)

	processCmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Collect assembly metadata for BioProjects from a file",
		Long: `Collect genome assembly metadata for BioProjects listed in a file.

Each line of the file contains a BioProject accession, optionally
followed by ", " and a note:

  PRJEB12345
  PRJNA000001, resubmitted assembly

Blank lines are ignored. One invalid accession aborts the run before
any remote request is made.

Output formats:
  text     human-readable dump (default)
  compact  one-line JSON
  pretty   indented JSON
  yaml     YAML
  csv, tsv one row per assembly

Examples:
  # Print a text report
  gnkore process projects.txt

  # Pretty JSON, skipping BioProjects that fail
  gnkore process -f pretty -k projects.txt > out.json

  # Process 4 BioProjects at a time
  gnkore process -j 4 projects.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runProcess(cmd, args[0], format, keepGoing, jobs, quiet)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	processCmd.Flags().StringVarP(
		&format, "format", "f", "text",
		"output format: text, compact, pretty, yaml, csv, tsv",
	)
	processCmd.Flags().BoolVarP(
		&keepGoing, "keep-going", "k", false,
		"skip failed BioProjects instead of stopping",
	)
	processCmd.Flags().IntVarP(
		&jobs, "jobs", "j", 0,
		"number of BioProjects processed concurrently",
	)
	processCmd.Flags().BoolVarP(
		&quiet, "quiet", "q", false,
		"do not show progress bar",
	)

	return processCmd
}

func processOptions(
	cmd *cobra.Command,
	format string,
	keepGoing bool,
	jobs int,
) []config.Option {
	var res []config.Option
	if cmd.Flags().Changed("format") {
		res = append(res, config.OptFormat(format))
	}
	if cmd.Flags().Changed("keep-going") {
		res = append(res, config.OptKeepGoing(keepGoing))
	}
	if cmd.Flags().Changed("jobs") {
		res = append(res, config.OptJobsNumber(jobs))
	}
	return res
}

func runProcess(
	cmd *cobra.Command,
	path string,
	format string,
	keepGoing bool,
	jobs int,
	quiet bool,
) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg.Update(processOptions(cmd, format, keepGoing, jobs))

	ins, err := readInputs(path)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	slog.Info("Processing started",
		"run_id", runID,
		"input", path,
		"bioprojects", len(ins),
		"jobs", cfg.JobsNumber,
	)
	gn.Info("Processing <em>%s</em> BioProjects",
		humanize.Comma(int64(len(ins))))

	pool := parserpool.NewPool(cfg.JobsNumber)
	defer pool.Close()

	opts := []bioproject.Option{bioproject.OptParser(pool)}
	if !quiet {
		bar := pb.Full.Start(len(ins))
		bar.Set("prefix", "BioProjects ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
		opts = append(opts, bioproject.OptProgress(func(string) {
			bar.Increment()
		}))
	}

	src := ioremote.New(cfg.API, cfg.Process.SearchLimit)
	agg := bioproject.New(cfg, src, opts...)

	start := time.Now()
	aggs, runErr := agg.ProcessAll(ctx, ins)
	if runErr != nil && !cfg.Process.KeepGoing {
		slog.Error("Processing stopped", "run_id", runID, "error", runErr)
		return runErr
	}

	if err = iooutput.Write(cmd.OutOrStdout(), aggs, cfg.Process.Format); err != nil {
		return err
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Processing finished",
		"run_id", runID,
		"processed", len(aggs),
		"failed", len(ins)-len(aggs),
		"duration", dur,
	)
	if runErr != nil {
		gn.Warn("<warn>%s of %s BioProjects failed</warn>",
			humanize.Comma(int64(len(ins)-len(aggs))),
			humanize.Comma(int64(len(ins))))
		slog.Warn("Some BioProjects failed", "run_id", runID, "error", runErr)
		return runErr
	}

	gn.Info("Processed <em>%s</em> BioProjects in %s",
		humanize.Comma(int64(len(aggs))), dur)
	return nil
}
