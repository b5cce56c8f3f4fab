package main

import "time"

// Config is the container for app configuration
type Config struct {
	// GithubLogin - user whose profile card is generated
	GithubLogin string `default:"bigmacfive"`

	// GithubAPIToken - auth token for github api. If empty, the card is
	// rendered from built-in placeholder data
	GithubAPIToken string `envconfig:"GITHUB_TOKEN" default:""`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubGraphQLAddress - address for graphql api endpoint
	GithubGraphQLAddress string `default:"https://api.github.com/graphql"`

	// GithubAPIRateLimit - max frequency for github api calls
	GithubAPIRateLimit float64 `default:"2"`

	// GithubTimeout - timeout for a single github api call
	GithubTimeout time.Duration `default:"30s"`

	// OutputPath - filepath for the generated card
	OutputPath string `default:"profile.svg"`

	// SnapshotDBPath - filepath for bolt db data. If empty, snapshot fallback is disabled
	SnapshotDBPath string `default:"./questcard.data"`

	// SnapshotDBBucketName - bolt db bucket name
	SnapshotDBBucketName string `default:"questcard"`

	// SnapshotTTL - maximum age for stored snapshots to be served on fetch failure
	SnapshotTTL time.Duration `default:"168h"`

	// EventsCacheSize - maximum number of logins memoized per run
	EventsCacheSize int `default:"16"`

	// RunTimeout - timeout for the whole collection run
	RunTimeout time.Duration `default:"2m"`
}
