package config

const (
	// RewardPoints is credited to the submitter when the administrator
	// approves a screenshot.
	RewardPoints = 1

	// Collection names used by the store backends.
	CollectionUsers       = "users"
	CollectionTasks       = "tasks"
	CollectionSubmissions = "submissions"
)
