package figmaapi

import (
	"errors"
	"net/url"
	"strings"
)

// ErrMalformedURL means no file key could be found in an asset URL.
var ErrMalformedURL = errors.New("malformed asset url")

// ExtractFileKey returns the file key referenced by assetURL. Asset URLs
// carry the real file URL in their "url" query parameter; direct file
// URLs are accepted too. The key is the path segment after "file" or
// "design".
func ExtractFileKey(assetURL string) (string, error) {
	outer, err := url.Parse(strings.TrimSpace(assetURL))
	if err != nil || outer.Host == "" {
		return "", ErrMalformedURL
	}

	target := outer
	if inner := outer.Query().Get("url"); inner != "" {
		target, err = url.Parse(inner)
		if err != nil {
			return "", ErrMalformedURL
		}
	}

	segments := strings.Split(target.Path, "/")
	for i, s := range segments {
		if (s == "file" || s == "design") && i+1 < len(segments) && segments[i+1] != "" {
			return segments[i+1], nil
		}
	}
	return "", ErrMalformedURL
}
