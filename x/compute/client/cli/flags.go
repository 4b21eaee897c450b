package cli

// Flag names for compute transaction commands
const (
	FlagAborted = "aborted"
)
