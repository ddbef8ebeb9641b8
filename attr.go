package gsound

// Attribute names understood by event sound engines. The set is open: engines
// may define further keys, and unknown keys are passed through verbatim.
const (
	// AttrMediaName is a name describing the media being played.
	AttrMediaName = "media.name"
	// AttrMediaTitle is a proper title for the media.
	AttrMediaTitle = "media.title"
	// AttrMediaArtist is the artist of the media.
	AttrMediaArtist = "media.artist"
	// AttrMediaLanguage is the language of the media (RFC 3066 format).
	AttrMediaLanguage = "media.language"
	// AttrMediaFilename is the file name of the media being played.
	AttrMediaFilename = "media.filename"
	// AttrMediaIconName is an XDG icon name for the media.
	AttrMediaIconName = "media.icon_name"
	// AttrMediaRole is the role of this media: "video", "music", "game",
	// "event", "phone", "animation", "production", "a11y", "test".
	AttrMediaRole = "media.role"

	// AttrEventID is the XDG sound name of the event sound being played.
	AttrEventID = "event.id"
	// AttrEventDescription is a descriptive string for the sound event.
	AttrEventDescription = "event.description"
	// AttrEventMouseX is the X position of the mouse, if the event was
	// triggered by a mouse click.
	AttrEventMouseX = "event.mouse.x"
	// AttrEventMouseY is the Y position of the mouse.
	AttrEventMouseY = "event.mouse.y"
	// AttrEventMouseButton is the number of the mouse button.
	AttrEventMouseButton = "event.mouse.button"

	// AttrWindowName is the name of the window the event occurred in.
	AttrWindowName = "window.name"
	// AttrWindowID is an id for the window.
	AttrWindowID = "window.id"
	// AttrWindowIconName is an XDG icon name for the window.
	AttrWindowIconName = "window.icon_name"
	// AttrWindowX11Display is the X11 display the window is on.
	AttrWindowX11Display = "window.x11.display"

	// AttrApplicationName is the name of the application the event sound
	// belongs to.
	AttrApplicationName = "application.name"
	// AttrApplicationID is an id for the application, e.g. a D-Bus name.
	AttrApplicationID = "application.id"
	// AttrApplicationVersion is the version of the application.
	AttrApplicationVersion = "application.version"
	// AttrApplicationIconName is an XDG icon name for the application.
	AttrApplicationIconName = "application.icon_name"
	// AttrApplicationLanguage is the locale the application is running in.
	AttrApplicationLanguage = "application.language"
	// AttrApplicationProcessID is the unix PID of the process that triggered
	// the event sound.
	AttrApplicationProcessID = "application.process.id"
	// AttrApplicationProcessBinary is the path to the process binary that
	// triggered the event sound.
	AttrApplicationProcessBinary = "application.process.binary"

	// AttrCacheControl controls engine-side sample caching: "permanent"
	// (keep in cache forever), "volatile" (cache while needed) or "never"
	// (do not cache).
	AttrCacheControl = "canberra.cache-control"
	// AttrVolume is a volume adjustment in dB, relative to the base volume.
	AttrVolume = "canberra.volume"
	// AttrXDGThemeName is the XDG sound theme to look event ids up in.
	AttrXDGThemeName = "canberra.xdg-theme.name"
	// AttrXDGThemeOutputProfile is the output profile of the XDG sound theme.
	AttrXDGThemeOutputProfile = "canberra.xdg-theme.output-profile"
	// AttrEnable overrides sound event enablement: "1", "0" or "auto".
	AttrEnable = "canberra.enable"
	// AttrForceChannel forces playback on a particular channel, e.g.
	// "front-left".
	AttrForceChannel = "canberra.force_channel"
)
