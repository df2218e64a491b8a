package room

// Error formats
const (
	ErrFmtSpawnFailed = "spawn enemy in room %d: %w"
)
