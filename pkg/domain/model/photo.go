package model

import "fmt"

// PhotoRef is one downloadable photo extracted from a GEDCOM file: the
// owning person and the CDN URL found on a FILE line. The URL is only valid
// for a short time after the export was generated.
type PhotoRef struct {
	PersonID string // Identifier built from the owning individual
	Seq      int    // 1-based photo counter within the individual
	URL      string // CDN URL, everything after the FILE tag
}

// FileName returns the local file name for this photo. ext must include the
// leading dot.
func (x *PhotoRef) FileName(ext string) string {
	return fmt.Sprintf("%s_%02d%s", x.PersonID, x.Seq, ext)
}
