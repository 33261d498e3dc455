// Package urlcodec converts navigation schemes to and from their URL form:
//
//	<domain>://<screenId>?<key1>=<value1>&<key2>=<value2>
//
// The query string is omitted when there are no parameters. Keys and values
// are percent-encoded, and so is the screen identifier, which keeps identifiers
// containing '?' or '&' intact across a round trip.
package urlcodec

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/scheme"
)

const domainSuffix = "://"

// Codec builds and parses scheme URLs for a single domain.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	domain string
}

// New returns a Codec for domain, which must look like "name://".
func New(domain string) (*Codec, error) {
	if !strings.HasSuffix(domain, domainSuffix) || len(domain) == len(domainSuffix) {
		return nil, fmt.Errorf("urlcodec: invalid domain %q, want the form \"name://\"", domain)
	}
	return &Codec{domain: domain}, nil
}

// Domain returns the configured domain prefix, including "://".
func (c *Codec) Domain() string {
	return c.domain
}

// Build returns the screen scheme for id and params.
func (c *Codec) Build(id string, params scheme.Params) scheme.Scheme {
	return scheme.Screen(id, params)
}

// String returns the URL form of id and params.
func (c *Codec) String(id string, params scheme.Params) string {
	var b strings.Builder
	b.WriteString(c.domain)
	b.WriteString(url.PathEscape(id))

	for i, p := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Format returns the URL form of a screen scheme.
func (c *Codec) Format(s scheme.Scheme) string {
	return c.String(s.ID(), s.Params())
}

// Parse turns a URL back into a screen scheme. It fails with a
// *MalformedURLError when the domain does not match, the screen
// identifier is empty, or an escape sequence is invalid. When a key
// appears twice the last value wins.
func (c *Codec) Parse(raw string) (scheme.Scheme, error) {
	rest, ok := strings.CutPrefix(raw, c.domain)
	if !ok {
		return scheme.Scheme{}, newMalformed(raw, "domain does not match "+c.domain)
	}

	rawID, query, _ := strings.Cut(rest, "?")
	rawID = strings.TrimSuffix(rawID, "/")
	if rawID == "" {
		return scheme.Scheme{}, newMalformed(raw, "empty screen identifier")
	}

	id, err := url.PathUnescape(rawID)
	if err != nil {
		return scheme.Scheme{}, &MalformedURLError{URL: raw, Reason: "bad screen identifier", Err: err}
	}

	var params scheme.Params
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return scheme.Scheme{}, &MalformedURLError{URL: raw, Reason: "bad parameter key", Err: err}
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return scheme.Scheme{}, &MalformedURLError{URL: raw, Reason: "bad parameter value", Err: err}
		}
		params = params.With(key, value)
	}

	return scheme.Screen(id, params), nil
}
