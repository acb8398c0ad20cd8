package utils

import (
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// FetchDocument retrieves a serialized ink document from the given URL.
// It is the CLI's only network-facing helper; the engine core never performs I/O.
func FetchDocument(uri string) ([]byte, error) {
	res, err := http.Get(uri)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to fetch document from %s", uri)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unable to fetch document from %s: status %s", uri, res.Status)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read document response body")
	}
	return data, nil
}

// IsValidURL tests a string to determine if it is a well-structured URL or not.
func IsValidURL(uri string) bool {
	u, err := url.ParseRequestURI(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	return true
}
