// Package messages turns navigation errors into text a host can show to
// the user, in English or Spanish.
package messages

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/urlcodec"
)

//go:embed locales/*.toml
var locales embed.FS

var localeFiles = []string{
	"locales/active.en.toml",
	"locales/active.es.toml",
}

// Localizer describes errors in the best match for a list of languages.
type Localizer struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// New creates a Localizer for the preferred languages, most preferred
// first. Values may be tags ("es") or Accept-Language strings. English is
// used when nothing matches.
func New(langs ...string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, f := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(locales, f); err != nil {
			return nil, fmt.Errorf("messages: load %s: %w", f, err)
		}
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	tag, _ := language.MatchStrings(matcher, langs...)

	return &Localizer{
		localizer: i18n.NewLocalizer(bundle, langs...),
		tag:       tag,
	}, nil
}

// Language returns the language messages are produced in.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Describe returns a user-facing sentence for err, or "" for nil.
// Errors it does not recognise get a generic message.
func (l *Localizer) Describe(err error) string {
	if err == nil {
		return ""
	}

	id, data := l.classify(err)
	msg, lerr := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if lerr != nil {
		return err.Error()
	}
	return msg
}

func (l *Localizer) classify(err error) (string, map[string]any) {
	var (
		unknown   *router.UnknownScreenError
		malformed *urlcodec.MalformedURLError
		loadErr   *router.SceneLoadError
		navErr    *router.NavigationError
	)

	switch {
	case errors.As(err, &unknown):
		return "UnknownScreen", map[string]any{"Screen": l.title(string(unknown.Tag))}
	case errors.As(err, &malformed):
		return "MalformedURL", map[string]any{"URL": malformed.URL}
	case errors.As(err, &loadErr):
		return "SceneLoadFailed", map[string]any{"Scene": l.title(loadErr.Scene)}
	case errors.Is(err, router.ErrEmptyHistory):
		return "NothingToGoBackTo", nil
	case errors.Is(err, router.ErrNoTarget) && errors.As(err, &navErr):
		return "TargetNotFound", map[string]any{"Target": l.title(navErr.Target)}
	default:
		return "NavigationFailed", nil
	}
}

// title turns an identifier like "game-detail" into "Game Detail".
func (l *Localizer) title(id string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(id)
	return cases.Title(l.tag).String(words)
}
