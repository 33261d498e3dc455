package urlcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/scheme"
)

func newCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := New("domain://")
	require.NoError(t, err)
	return c
}

func TestNew_RejectsBadDomains(t *testing.T) {
	for _, domain := range []string{"", "://", "domain", "domain:/", "http:"} {
		_, err := New(domain)
		assert.Error(t, err, "domain %q", domain)
	}
}

func TestString(t *testing.T) {
	c := newCodec(t)

	tests := []struct {
		name   string
		id     string
		params scheme.Params
		want   string
	}{
		{"no params", "home", nil, "domain://home"},
		{"one param", "profile", scheme.NewParams("tab", "settings"), "domain://profile?tab=settings"},
		{"ordered", "profile", scheme.NewParams("b", "2", "a", "1"), "domain://profile?b=2&a=1"},
		{"escaped", "search", scheme.NewParams("q", "a&b=c d"), "domain://search?q=a%26b%3Dc+d"},
		{"escaped id", "a?b", nil, "domain://a%3Fb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.String(tt.id, tt.params))
		})
	}
}

func TestParse_Profile(t *testing.T) {
	c := newCodec(t)

	s, err := c.Parse("domain://profile?tab=settings")
	require.NoError(t, err)

	assert.Equal(t, scheme.KindScreen, s.Kind())
	assert.Equal(t, "profile", s.ID())
	assert.True(t, s.Params().Equal(scheme.NewParams("tab", "settings")))
}

func TestParse_Edges(t *testing.T) {
	c := newCodec(t)

	s, err := c.Parse("domain://home")
	require.NoError(t, err)
	assert.Equal(t, "home", s.ID())
	assert.Zero(t, s.Params().Len())

	s, err = c.Parse("domain://home/?a=1&&b")
	require.NoError(t, err)
	assert.Equal(t, "home", s.ID())
	assert.Equal(t, scheme.Params{{Key: "a", Value: "1"}, {Key: "b", Value: ""}}, s.Params())

	s, err = c.Parse("domain://list?page=1&page=3")
	require.NoError(t, err)
	v, _ := s.Params().Get("page")
	assert.Equal(t, "3", v)
	assert.Equal(t, 1, s.Params().Len())
}

func TestParse_Malformed(t *testing.T) {
	c := newCodec(t)

	for _, raw := range []string{
		"",
		"other://home",
		"domain:/home",
		"domain://",
		"domain://?tab=settings",
		"domain://home?tab=%zz",
		"domain://%zz",
	} {
		_, err := c.Parse(raw)
		require.Error(t, err, "url %q", raw)
		assert.True(t, IsMalformedURL(err), "url %q gave %v", raw, err)
	}
}

func TestRoundTrip(t *testing.T) {
	c := newCodec(t)

	cases := []struct {
		id     string
		params scheme.Params
	}{
		{"home", nil},
		{"profile", scheme.NewParams("tab", "settings")},
		{"search", scheme.NewParams("q", "hello world", "filter", "a=b&c", "empty", "")},
		{"odd id?&", scheme.NewParams("k+", "%v")},
		{"unicode", scheme.NewParams("name", "café")},
	}
	for _, tc := range cases {
		s, err := c.Parse(c.String(tc.id, tc.params))
		require.NoError(t, err)
		assert.True(t, s.Equal(c.Build(tc.id, tc.params)), "round trip of %q %v gave %v", tc.id, tc.params, s)
		assert.Equal(t, tc.params.Clone(), s.Params(), "order must survive")
	}
}

func TestFormat(t *testing.T) {
	c := newCodec(t)
	s := c.Build("profile", scheme.NewParams("tab", "settings"))
	assert.Equal(t, "domain://profile?tab=settings", c.Format(s))
}
