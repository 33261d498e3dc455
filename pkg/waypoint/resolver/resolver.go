// Package resolver picks the first screen a router shows.
//
// A deep link is taken from the WAYPOINT_DEEP_LINK environment variable or,
// failing that, from the first program argument that starts with the
// codec's domain. Without a usable link the configured default screen is
// shown.
package resolver

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/scheme"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/urlcodec"
)

var _ router.Resolver = (*Resolver)(nil)

// Resolver resolves the startup scheme from a deep link or a default.
type Resolver struct {
	codec         *urlcodec.Codec
	defaultScreen string
	args          []string
	lookupEnv     func(string) (string, bool)
	logger        *slog.Logger

	link string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithArgs sets the arguments searched for a deep link. Defaults to os.Args[1:].
func WithArgs(args []string) Option {
	return func(r *Resolver) {
		r.args = args
	}
}

// WithLink uses link as the deep link, ignoring the environment and arguments.
func WithLink(link string) Option {
	return func(r *Resolver) {
		r.link = link
	}
}

// WithLogger sets the logger used to report unusable links.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver that falls back to defaultScreen.
func New(codec *urlcodec.Codec, defaultScreen string, opts ...Option) *Resolver {
	r := &Resolver{
		codec:         codec,
		defaultScreen: defaultScreen,
		lookupEnv:     os.LookupEnv,
	}
	if len(os.Args) > 1 {
		r.args = os.Args[1:]
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = internal.GetLogger()
	}
	return r
}

// Initialize finds the deep link, if any.
func (r *Resolver) Initialize() error {
	if r.codec == nil {
		return errors.New("resolver: no url codec")
	}
	if r.defaultScreen == "" {
		return errors.New("resolver: no default screen configured")
	}
	if r.link != "" {
		return nil
	}

	if link, ok := r.lookupEnv(constants.DeepLinkEnvVar); ok && link != "" {
		r.link = link
		return nil
	}
	for _, arg := range r.args {
		if strings.HasPrefix(arg, r.codec.Domain()) {
			r.link = arg
			return nil
		}
	}
	return nil
}

// ResolveScheme returns the deep-linked scheme, or the default screen when
// there is no link or it does not parse.
func (r *Resolver) ResolveScheme() (scheme.Scheme, error) {
	if r.link != "" {
		s, err := r.codec.Parse(r.link)
		if err == nil {
			return s, nil
		}
		r.logger.Warn("ignoring deep link", "link", r.link, "error", err)
	}
	return r.codec.Build(r.defaultScreen, nil), nil
}

// Link returns the deep link found by Initialize.
func (r *Resolver) Link() string {
	return r.link
}
