package domain

// UserRule bars one user from one specific channel during its window.
type UserRule struct {
	UserID    int64
	Alias     string
	Window    Window
	ChannelID int64
	TZ        string
}

// SuperRule bars one user from every channel during its window.
type SuperRule struct {
	UserID int64
	Alias  string
	Window Window
	TZ     string
}

// Channel pairs a monitored channel with its display alias.
type Channel struct {
	ID    int64
	Alias string
}
