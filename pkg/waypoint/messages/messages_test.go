package messages

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/urlcodec"
)

func TestDescribe_English(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)

	codec, err := urlcodec.New("domain://")
	require.NoError(t, err)
	_, malformed := codec.Parse("other://home")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty history", router.NewNavigationError("back", "", router.ErrEmptyHistory), "There is nowhere to go back to."},
		{"no target", router.NewNavigationError("navigate", "profile-edit", router.ErrNoTarget), "Profile Edit could not be found."},
		{"unknown screen", router.NewUnknownScreenError("game_detail"), "The Game Detail screen is not available."},
		{"malformed", malformed, "The link other://home is not valid."},
		{"scene", router.NewSceneLoadError("level-one", errors.New("io")), "Level One failed to load."},
		{"wrapped", fmt.Errorf("host: %w", router.NewSceneLoadError("arena", errors.New("io"))), "Arena failed to load."},
		{"history push", router.NewNavigationError("navigate", "home", router.ErrHistoryPush), "Something went wrong while changing screens."},
		{"foreign", errors.New("boom"), "Something went wrong while changing screens."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Describe(tt.err))
		})
	}
}

func TestDescribe_Spanish(t *testing.T) {
	l, err := New("es-MX", "en")
	require.NoError(t, err)

	base, _ := l.Language().Base()
	assert.Equal(t, "es", base.String())

	assert.Equal(t, "No hay ninguna pantalla a la que volver.",
		l.Describe(router.NewNavigationError("back", "", router.ErrEmptyHistory)))
	assert.Equal(t, "La pantalla Perfil no está disponible.",
		l.Describe(router.NewUnknownScreenError("perfil")))
}

func TestNew_FallsBackToEnglish(t *testing.T) {
	l, err := New("fr")
	require.NoError(t, err)

	base, _ := l.Language().Base()
	english, _ := language.English.Base()
	assert.Equal(t, english, base)
	assert.Equal(t, "There is nowhere to go back to.",
		l.Describe(router.NewNavigationError("back", "", router.ErrEmptyHistory)))
}
