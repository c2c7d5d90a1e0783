package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Individual represents one INDI record from a GEDCOM file. Only the fields
// needed to name downloaded photos are kept.
type Individual struct {
	XRef      string    // Record cross-reference, e.g. @I123@
	GivenName string    // Given name(s) from the NAME line
	Surname   string    // Surname between slashes in the NAME line
	BirthDate time.Time // Birth date from the DATE line
}

var personIDStrip = regexp.MustCompile(`[^a-z0-9_]`)

// PersonID builds the deterministic identifier used to name this
// individual's photo files: "YYYY-MM-DD_given_surname", lowercased, name
// parts joined by underscores, everything else stripped. Returns empty when
// the name or birth date is missing.
func (x *Individual) PersonID() string {
	if x.BirthDate.IsZero() {
		return ""
	}
	if x.GivenName == "" && x.Surname == "" {
		return ""
	}

	parts := strings.Fields(x.GivenName)
	parts = append(parts, x.Surname)
	name := strings.ToLower(strings.Join(parts, "_"))
	name = personIDStrip.ReplaceAllString(name, "")

	return fmt.Sprintf("%s_%s", x.BirthDate.Format("2006-01-02"), name)
}
