// Package klass provides a client for Statistics Norway's classification API.
// - https://data.ssb.no/api/klass/v1/api-guide.html
package klass

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	DateLayout       = "2006-01-02"
	maxErrorBodySize = 64 * 1024
)

type Fetcher interface {
	GetClassification(ctx context.Context, classificationID string) (*Classification, error)
	GetVersion(ctx context.Context, versionURL string) (*Version, error)
	GetCodesAt(ctx context.Context, classificationID string, date time.Time) (*Codes, error)
}

type Client struct {
	client *http.Client
	apiURL string
}

var _ Fetcher = &Client{}

type Link struct {
	Href string `json:"href"`
}

type Links struct {
	Self Link `json:"self"`
}

type Classification struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Versions []VersionSummary `json:"versions"`
}

type VersionSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ValidFrom string `json:"validFrom"`
	ValidTo   string `json:"validTo,omitempty"`
	Links     Links  `json:"_links"`
}

type Version struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	ValidFrom           string `json:"validFrom"`
	ClassificationItems []Item `json:"classificationItems"`
}

type Item struct {
	Code       string `json:"code"`
	ParentCode string `json:"parentCode"`
	Level      string `json:"level"`
	Name       string `json:"name"`
}

type Codes struct {
	Codes []Item `json:"codes"`
}

// ResponseError is returned when Klass answers with a non-200 status code.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("klass responded with status code %d: %s", e.StatusCode, e.Body)
}

func (c *Client) GetClassification(ctx context.Context, classificationID string) (*Classification, error) {
	u := fmt.Sprintf("%s/classifications/%s", c.apiURL, url.PathEscape(classificationID))

	classification := &Classification{}

	err := c.sendRequestAndDeserialize(ctx, u, classification)
	if err != nil {
		return nil, fmt.Errorf("getting classification %s: %w", classificationID, err)
	}

	return classification, nil
}

// GetVersion fetches a version by the self link found in a VersionSummary.
func (c *Client) GetVersion(ctx context.Context, versionURL string) (*Version, error) {
	version := &Version{}

	err := c.sendRequestAndDeserialize(ctx, versionURL, version)
	if err != nil {
		return nil, fmt.Errorf("getting version: %w", err)
	}

	return version, nil
}

func (c *Client) GetCodesAt(ctx context.Context, classificationID string, date time.Time) (*Codes, error) {
	u := fmt.Sprintf("%s/classifications/%s/codesAt?date=%s", c.apiURL, url.PathEscape(classificationID), date.Format(DateLayout))

	codes := &Codes{}

	err := c.sendRequestAndDeserialize(ctx, u, codes)
	if err != nil {
		return nil, fmt.Errorf("getting codes for classification %s: %w", classificationID, err)
	}

	return codes, nil
}

func (c *Client) sendRequestAndDeserialize(ctx context.Context, rawURL string, into any) error {
	req, err := c.newRequestWithHeaders(ctx, http.MethodGet, rawURL)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
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

func (c *Client) newRequestWithHeaders(ctx context.Context, method, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return req, nil
}

func New(apiURL string, client *http.Client) *Client {
	return &Client{
		client: client,
		apiURL: strings.TrimRight(apiURL, "/"),
	}
}
