// Package jira provides a client for creating issues in Jira Cloud.
// - https://developer.atlassian.com/cloud/jira/platform/rest/v3/api-group-issues/#api-rest-api-3-issue-post
package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

const maxErrorBodySize = 64 * 1024

type Creator interface {
	CreateIssue(ctx context.Context, issue any) (*CreatedIssue, error)
}

type Client struct {
	client        *http.Client
	apiURL        string
	authorization string
}

var _ Creator = &Client{}

// CreatedIssue is the response of a successful create issue request.
type CreatedIssue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// ResponseError is returned when Jira answers with a non-2xx status code.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("jira responded with status code %d: %s", e.StatusCode, e.Body)
}

// BasicAuth encodes an account email and API token the way Jira expects.
func BasicAuth(email, apiToken string) string {
	return base64.StdEncoding.EncodeToString([]byte(email + ":" + apiToken))
}

// CreateIssue posts the issue, which must marshal to a {"fields": ...} body.
func (c *Client) CreateIssue(ctx context.Context, issue any) (*CreatedIssue, error) {
	created := &CreatedIssue{}

	err := c.sendRequestAndDeserialize(ctx, http.MethodPost, "/issue", issue, created)
	if err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}

	return created, nil
}

func (c *Client) sendRequestAndDeserialize(ctx context.Context, method, path string, body, into any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshalling body: %w", err)
	}

	req, err := c.newRequestWithHeaders(ctx, method, path, data)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))

		return &ResponseError{
			StatusCode: res.StatusCode,
			Body:       string(b),
		}
	}

	err = json.NewDecoder(res.Body).Decode(into)
	if err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func (c *Client) newRequestWithHeaders(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.authorization)

	return req, nil
}

// New creates a client for the REST API at apiURL, basic is the base64
// encoded "email:api-token" pair, see BasicAuth.
func New(apiURL, basic string, client *http.Client) *Client {
	return &Client{
		client:        client,
		apiURL:        strings.TrimRight(apiURL, "/"),
		authorization: basic,
	}
}
