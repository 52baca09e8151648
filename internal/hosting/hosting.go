// Package hosting abstracts where gallery images live. The pipeline only
// needs a URL and a thumbnail URL back; whether those point at a CDN or a
// local directory is the uploader's business.
package hosting

import "context"

// Result is what an upload yields: opaque references the gallery records
// store verbatim.
type Result struct {
	URL       string
	Thumbnail string
}

// Uploader stores one image file and returns its references. seq is the
// record's position in the gallery, used by backends with sequential naming.
type Uploader interface {
	Upload(ctx context.Context, path string, seq int) (Result, error)
}
