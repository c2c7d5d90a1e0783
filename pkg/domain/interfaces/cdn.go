package interfaces

import "context"

// CDNClient defines operations for fetching photos from the CDN that hosts
// the GEDCOM export's media
type CDNClient interface {
	// Fetch downloads the resource at url and returns the body together
	// with the response Content-Type
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}
