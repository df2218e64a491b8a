package autoplay

// Policy defaults
const (
	DefaultHealBelow = 0.5
	DefaultMaxRooms  = 10
	DefaultHeroName  = "Hero"
)

// DefaultLoadout is the catalog keys every automated hero starts with
var DefaultLoadout = []string{
	"rusty_sword",
	"long_sword",
	"iron_helmet",
	"leather_armor",
	"worn_boots",
	"small_potion",
	"small_potion",
	"large_potion",
}

// Log messages
const (
	LogMsgRunStarted  = "Autoplay run started"
	LogMsgRunFinished = "Autoplay run finished"
)

// Error formats
const (
	ErrFmtLoadout = "loadout item %q: %w"
	ErrFmtSession = "autoplay session: %w"
)
