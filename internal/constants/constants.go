package constants

import "time"

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DirectoryCacheTTL bounds how long the Slack user directory is reused
// before being fetched again.
const DirectoryCacheTTL = 5 * time.Minute

// DedupeWindow is how long a task-creation dedupe key stays active. Slack
// retries and double-clicked modals land well inside this window.
const DedupeWindow = 30 * time.Second
