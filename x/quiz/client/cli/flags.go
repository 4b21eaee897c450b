package cli

// Flag names for quiz transaction commands
const (
	FlagTopic        = "topic"
	FlagMinReward    = "min-reward"
	FlagMinQuestions = "min-questions"
	FlagNewOwner     = "new-owner"
	FlagActive       = "active"
)
