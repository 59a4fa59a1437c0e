package sharepoint

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// SegmentKind classifies the final path segment of a URL.
type SegmentKind string

const (
	// SegmentFile marks a segment carrying a dotted extension.
	SegmentFile SegmentKind = "file"

	// SegmentDirectory marks a segment without an extension.
	SegmentDirectory SegmentKind = "directory"
)

// GetLastSegmentFromURL parses a URL's path, strips empty segments, and
// classifies the final segment. For a file it returns the extension (with
// leading dot); for a directory it returns the segment name. A URL with no
// path segments at all is an error.
func GetLastSegmentFromURL(rawURL string) (string, SegmentKind, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("incorrect URL provided: %q: %w", rawURL, err)
	}

	var segments []string
	for _, part := range strings.Split(parsed.Path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	if len(segments) == 0 {
		return "", "", fmt.Errorf("incorrect URL provided: %q has no path segments", rawURL)
	}

	last := segments[len(segments)-1]
	if ext := path.Ext(last); ext != "" {
		return ext, SegmentFile, nil
	}
	return last, SegmentDirectory, nil
}
