// Package router decides which screen of an application is active.
//
// A Router owns one live Model per registered screen. Navigating hides the
// current screen, records it in history and shows the next one, with a
// Transition animating the swap. Screens are never recreated, only shown
// and hidden.
//
// # Basic Usage
//
//	// Register screens by identifier, capability tag and asset
//	registry, _ := router.NewRegistry(
//	    router.Entry{ID: "home", Tag: "home", Asset: "home.png"},
//	    router.Entry{ID: "profile", Tag: "profile", Asset: "profile.png"},
//	)
//
//	codec, _ := urlcodec.New("myapp://")
//	r := router.New(registry, factory, resolver, sceneLoader, codec)
//
//	// Creates every screen and shows the one the resolver picks
//	if err := r.Start(ctx); err != nil {
//	    return err
//	}
//
//	// By interactor type, by URL, or by scheme
//	router.NavigateToType[ProfileInteractor](ctx, r, router.WithParams(scheme.NewParams("tab", "settings")))
//	r.NavigateToURL(ctx, "myapp://profile?tab=settings")
//	r.NavigateByScheme(ctx, scheme.Screen("home", nil))
//
//	// And back
//	r.Back(ctx)
//
// # Single Flight
//
// At most one navigation runs at a time. A navigation requested while
// another is in flight is dropped: the call returns nil and nothing
// changes. Requests are not queued. Hosts that need every request honoured
// should debounce input upstream or check Navigating first.
//
// Scene navigations take part in the same guard, including the time spent
// waiting on the SceneLoader.
//
// # Scenes
//
// A scheme that names no registered screen is loaded as a scene of the
// same name when the SceneLoader knows one. While a scene is active no
// screen interactor is current. Navigating from a scene to a screen
// records the scene in history, and going back to it fades the screen out.
//
// # Errors
//
// Failed navigations return *NavigationError, *UnknownScreenError,
// *SceneLoadError or, from NavigateToURL, *urlcodec.MalformedURLError.
// In every case the active screen stays as it was.
package router
