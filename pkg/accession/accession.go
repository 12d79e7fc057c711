// Package accession validates the input of gnkore: BioProject accessions,
// one per line, optionally followed by a note.
package accession

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// NoteNA is the note of an input line that does not provide one.
const NoteNA = "NA"

// noteSep separates an accession from its note.
const noteSep = ", "

var bioprojectRe = regexp.MustCompile(`^PRJ[DEN][A-Z]\d+$`)

// Input is a validated line of the input file.
type Input struct {
	// Accession is a BioProject accession, for example PRJEB12345.
	Accession string `json:"accession" yaml:"accession"`

	// Note is a free-form comment about the BioProject.
	Note string `json:"note" yaml:"note"`
}

// Validate parses a line into a BioProject accession and a note.
// The note follows the first ", " of the line and defaults to "NA".
func Validate(line string) (Input, error) {
	acc, note, found := strings.Cut(line, noteSep)
	acc = strings.TrimSpace(acc)
	note = strings.TrimSpace(note)
	if !found || note == "" {
		note = NoteNA
	}

	if !IsBioproject(acc) {
		return Input{}, InvalidAccessionError(acc)
	}
	return Input{Accession: acc, Note: note}, nil
}

// IsBioproject checks if a string is a BioProject accession.
func IsBioproject(s string) bool {
	return bioprojectRe.MatchString(s)
}

// Parse reads input lines from r. Blank lines are skipped. The first
// invalid line stops parsing with an error, the same happens when there
// are no entries at all.
func Parse(r io.Reader, source string) ([]Input, error) {
	var res []Input
	sc := bufio.NewScanner(r)
	var lineNum int
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		inp, err := Validate(line)
		if err != nil {
			return nil, InvalidLineError(source, lineNum, err)
		}
		res = append(res, inp)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(res) == 0 {
		return nil, InputEmptyError(source)
	}
	return res, nil
}
