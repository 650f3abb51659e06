// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playlist Source - these keys describe where the playlist comes from and how it is fetched.
const (
	PlaylistURL       = "playlist.url"
	PlaylistLocale    = "playlist.locale"
	PlaylistRefresh   = "playlist.refresh"
	PlaylistUserAgent = "playlist.user_agent"
	PlaylistTimeout   = "playlist.timeout"
)

// Media Playback - these keys select and tune the external player backends.
const (
	Player           = "player.default"
	PlayerFallbacks  = "player.fallbacks"
	PlayerResolveHLS = "player.resolve_hls"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the channel browser's styling.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowURLs    = "tui.show_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite  = "logs.write"
	LogsLevel  = "logs.level"
	LogsJson   = "logs.json"
	LogsRotate = "logs.rotate"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
