package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"github.com/bigmacfive/questcard/internal/app"
	gogithub "github.com/google/go-github/v54/github"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// statsQuery pulls everything the card needs from one GraphQL call:
// repository counts with stars and languages, followers and the
// contribution calendar.
const statsQuery = `query($u:String!){
  user(login:$u){
    repositories(ownerAffiliations:OWNER,first:100,orderBy:{field:STARGAZERS,direction:DESC}){
      totalCount
      nodes{stargazerCount languages(first:5,orderBy:{field:SIZE,direction:DESC}){edges{size node{name}}}}
    }
    followers{totalCount}
    contributionsCollection{
      totalCommitContributions
      contributionCalendar{totalContributions weeks{contributionDays{contributionCount date}}}
    }
  }
}`

// Client returns a github user's aggregate stats and recent push commits.
// This struct is an adapter for app.GithubClient.
// Stats go through the GraphQL api, push events through the REST api.
type Client struct {
	doer           HTTPDoer
	rest           *gogithub.Client
	graphqlAddress string
	authToken      string

	statsResponseMaxSize int
	eventsPageLimit      int

	now func() time.Time
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional; rest may carry its own authentication.
func NewClient(doer HTTPDoer, rest *gogithub.Client, graphqlAddress string, authToken string) *Client {
	c := Client{
		doer:           doer,
		rest:           rest,
		graphqlAddress: graphqlAddress,
		authToken:      authToken,

		statsResponseMaxSize: 1024 * 1024 * 10,
		eventsPageLimit:      3,

		now: time.Now,
	}

	return &c
}

// Stats returns the user's aggregate activity snapshot.
func (c *Client) Stats(ctx context.Context, login string) (app.ProfileStats, error) {
	if login == "" {
		return app.ProfileStats{}, errors.New("login cannot be empty")
	}

	reqBody, err := json.Marshal(graphqlRequest{
		Query:     statsQuery,
		Variables: map[string]string{"u": login},
	})
	if err != nil {
		return app.ProfileStats{}, fmt.Errorf("marshalling graphql request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.graphqlAddress, bytes.NewReader(reqBody))
	if err != nil {
		return app.ProfileStats{}, fmt.Errorf("creating http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	body, err := c.makeRequest(ctx, httpReq, c.statsResponseMaxSize)
	if err != nil {
		return app.ProfileStats{}, fmt.Errorf("making http request: %w", err)
	}

	var resp statsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.ProfileStats{}, fmt.Errorf("unmarshalling response: %w", err)
	}
	if len(resp.Errors) > 0 {
		return app.ProfileStats{}, fmt.Errorf("graphql error: %s", resp.Errors[0].Message)
	}
	if resp.Data.User == nil {
		return app.ProfileStats{}, errors.New("malformed response: no user data")
	}

	return resp.ToProfileStats(login, c.now().UTC()), nil
}

// PushEvents returns commits from the user's recent public push events,
// newest first, as the events api orders them.
func (c *Client) PushEvents(ctx context.Context, login string) ([]app.PushCommit, error) {
	if login == "" {
		return nil, errors.New("login cannot be empty")
	}

	opt := &gogithub.ListOptions{PerPage: 100}

	var all []*gogithub.Event
	for page := 0; page < c.eventsPageLimit; page++ {
		events, resp, err := c.rest.Activity.ListEventsPerformedByUser(ctx, login, true, opt)
		if err != nil {
			return nil, fmt.Errorf("listing public events: %w", err)
		}
		all = append(all, events...)
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return eventsToCommits(all), nil
}

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables,omitempty"`
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, error) {
	if c.authToken != "" {
		req.Header.Set("Authorization", "bearer "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 > 3 {
		if c.checkRateLimitExceeded(&resp.Header) {
			return nil, errors.New("rate limit exceeded")
		}
		return nil, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}
	if len(b) == maxBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBytes)
	}

	return b, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}
