package resolver

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/scheme"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/urlcodec"
)

func newResolver(t *testing.T, env map[string]string, opts ...Option) *Resolver {
	t.Helper()
	codec, err := urlcodec.New("domain://")
	require.NoError(t, err)

	opts = append([]Option{WithArgs(nil), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	r := New(codec, "home", opts...)
	r.lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return r
}

func TestResolve_Default(t *testing.T) {
	r := newResolver(t, nil)
	require.NoError(t, r.Initialize())

	s, err := r.ResolveScheme()
	require.NoError(t, err)
	assert.True(t, s.Equal(scheme.Screen("home", nil)))
	assert.Empty(t, r.Link())
}

func TestResolve_FromEnv(t *testing.T) {
	r := newResolver(t, map[string]string{constants.DeepLinkEnvVar: "domain://profile?tab=settings"})
	require.NoError(t, r.Initialize())

	s, err := r.ResolveScheme()
	require.NoError(t, err)
	assert.True(t, s.Equal(scheme.Screen("profile", scheme.NewParams("tab", "settings"))))
}

func TestResolve_FromArgs(t *testing.T) {
	r := newResolver(t, nil, WithArgs([]string{"-v", "domain://settings"}))
	require.NoError(t, r.Initialize())

	assert.Equal(t, "domain://settings", r.Link())
	s, err := r.ResolveScheme()
	require.NoError(t, err)
	assert.Equal(t, "settings", s.ID())
}

func TestResolve_EnvBeatsArgs(t *testing.T) {
	r := newResolver(t,
		map[string]string{constants.DeepLinkEnvVar: "domain://profile"},
		WithArgs([]string{"domain://settings"}))
	require.NoError(t, r.Initialize())
	assert.Equal(t, "domain://profile", r.Link())
}

func TestResolve_ExplicitLink(t *testing.T) {
	r := newResolver(t, map[string]string{constants.DeepLinkEnvVar: "domain://profile"}, WithLink("domain://settings"))
	require.NoError(t, r.Initialize())
	assert.Equal(t, "domain://settings", r.Link())
}

func TestResolve_MalformedLinkFallsBack(t *testing.T) {
	r := newResolver(t, map[string]string{constants.DeepLinkEnvVar: "other://profile"})
	require.NoError(t, r.Initialize())

	s, err := r.ResolveScheme()
	require.NoError(t, err)
	assert.Equal(t, "home", s.ID())
}

func TestInitialize_RequiresDefault(t *testing.T) {
	codec, err := urlcodec.New("domain://")
	require.NoError(t, err)

	assert.Error(t, New(codec, "").Initialize())
	assert.Error(t, New(nil, "home").Initialize())
}
