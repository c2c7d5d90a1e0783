// Package gedcom extracts photo references from GEDCOM exports. It is not a
// general GEDCOM parser: only the lines needed to locate CDN photo URLs and
// name their owners are recognized.
package gedcom

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gedphotos/gedphotos/pkg/domain/model"
)

const (
	indiPrefix = "0 @I"
	indiTag    = " INDI"
	namePrefix = "1 NAME "
	datePrefix = "2 DATE "
	filePrefix = "2 FILE "
)

var (
	nameLine = regexp.MustCompile(`^1 NAME (.*?) /(.*?)/`)
	dateLine = regexp.MustCompile(`^2 DATE (\d+) (\w+) (\d+)`)
)

// ScanFile opens the GEDCOM file at path and extracts its photo references.
func ScanFile(path string) ([]*model.PhotoRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open GEDCOM file", goerr.V("path", path))
	}
	defer f.Close()

	refs, err := Scan(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read GEDCOM file", goerr.V("path", path))
	}
	return refs, nil
}

// Scan reads a GEDCOM document and returns its photo references in file
// order. A FILE line yields a reference only when the current individual has
// both a parseable NAME and DATE line; anything else is silently skipped. A
// document without photo references returns an empty slice, not an error.
func Scan(r io.Reader) ([]*model.PhotoRef, error) {
	var refs []*model.PhotoRef
	var cur *model.Individual
	var seq int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, indiPrefix) && strings.Contains(line, indiTag):
			cur = &model.Individual{XRef: xrefOf(line)}
			seq = 0

		case strings.HasPrefix(line, namePrefix):
			if cur == nil {
				continue
			}
			if m := nameLine.FindStringSubmatch(line); m != nil {
				cur.GivenName = strings.TrimSpace(m[1])
				cur.Surname = strings.TrimSpace(m[2])
			}

		case strings.HasPrefix(line, datePrefix):
			if cur == nil {
				continue
			}
			// The latest DATE line wins, as in the exports this tool targets
			// the birth date is the first and usually only one.
			if d, ok := parseDate(line); ok {
				cur.BirthDate = d
			}

		case strings.HasPrefix(line, filePrefix):
			if cur == nil {
				continue
			}
			personID := cur.PersonID()
			if personID == "" {
				continue
			}
			seq++
			refs = append(refs, &model.PhotoRef{
				PersonID: personID,
				Seq:      seq,
				URL:      line[len(filePrefix):],
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to scan GEDCOM lines")
	}
	return refs, nil
}

// xrefOf pulls the @I...@ cross-reference out of a level-0 INDI line.
func xrefOf(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// parseDate parses "2 DATE <day> <Mon> <year>" with an English three-letter
// month abbreviation. Dates in any other form are ignored.
func parseDate(line string) (time.Time, bool) {
	m := dateLine.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	mon, err := time.Parse("Jan", m[2])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(year, mon.Month(), day, 0, 0, 0, 0, time.UTC), true
}
