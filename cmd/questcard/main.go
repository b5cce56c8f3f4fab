package main

import (
	"context"
	netHttp "net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	gogithub "github.com/google/go-github/v54/github"

	"github.com/bigmacfive/questcard/internal/adapter/demo"
	"github.com/bigmacfive/questcard/internal/adapter/github"
	"github.com/bigmacfive/questcard/internal/app"
	"github.com/bigmacfive/questcard/internal/database"
	"github.com/bigmacfive/questcard/internal/limiter"
	"github.com/bigmacfive/questcard/internal/render"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	// Not an error when missing, env vars may be set directly.
	_ = godotenv.Load()

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	githubClient, closeClient := buildGithubClient(conf, l)
	defer closeClient()

	service := app.NewService(
		githubClient,
		l.WithField("component", "service"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), conf.RunTimeout)
	defer cancel()

	profile := service.Collect(ctx, conf.GithubLogin)

	card, err := render.Card(profile)
	if err != nil {
		l.Fatalf("couldn't render card: %v", err)
	}

	if err := os.WriteFile(conf.OutputPath, []byte(card), 0o644); err != nil {
		l.Fatalf("couldn't write %s: %v", conf.OutputPath, err)
	}

	l.Infof("wrote %s for %s", conf.OutputPath, conf.GithubLogin)
}

// buildGithubClient assembles the client stack: rate-limited transport,
// live api client, snapshot fallback, per-run memoization. Without a
// token it returns the placeholder client instead.
func buildGithubClient(conf Config, l *logrus.Logger) (app.GithubClient, func()) {
	noop := func() {}

	if conf.GithubAPIToken == "" {
		l.Info("no github token, using placeholder data")
		return demo.NewClient(), noop
	}

	httpClient := &netHttp.Client{
		Timeout: conf.GithubTimeout,
		Transport: limiter.NewRoundTripper(
			netHttp.DefaultTransport,
			conf.GithubAPIRateLimit,
		),
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	authedClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: conf.GithubAPIToken},
	))
	// oauth2.NewClient keeps only the transport of the context client.
	authedClient.Timeout = conf.GithubTimeout

	restClient := gogithub.NewClient(authedClient)
	if conf.GithubAPIAddress != "https://api.github.com" {
		var err error
		restClient, err = gogithub.NewEnterpriseClient(conf.GithubAPIAddress, conf.GithubAPIAddress, authedClient)
		if err != nil {
			l.Fatalf("couldn't create github rest client: %v", err)
		}
	}

	var githubClient app.GithubClient = github.NewClient(
		httpClient,
		restClient,
		conf.GithubGraphQLAddress,
		conf.GithubAPIToken,
	)

	closeStore := noop
	if conf.SnapshotDBPath != "" {
		kvStore, err := database.NewBoltKVStore(
			conf.SnapshotDBPath,
			conf.SnapshotDBBucketName,
		)
		if err != nil {
			l.Warnf("couldn't create bolt kv store, snapshot fallback disabled: %v", err)
		} else {
			closeStore = func() {
				if err := kvStore.Close(); err != nil {
					l.Warnf("couldn't close bolt kv store: %v", err)
				}
			}
			githubClient = github.NewClientWithSnapshots(
				githubClient,
				kvStore,
				conf.SnapshotTTL,
				l.WithField("component", "githubSnapshotClient"),
			)
		}
	}

	cachedClient, err := github.NewCachedClient(githubClient, conf.EventsCacheSize)
	if err != nil {
		l.Fatalf("couldn't create github client cache: %v", err)
	}

	return cachedClient, closeStore
}
