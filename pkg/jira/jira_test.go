package jira_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/statisticsnorway/dapla-start-api/pkg/jira"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type issue struct {
	Fields map[string]any `json:"fields"`
}

func TestBasicAuth(t *testing.T) {
	got := jira.BasicAuth("bot@ssb.no", "secret")

	decoded, err := base64.StdEncoding.DecodeString(got)
	require.NoError(t, err)
	assert.Equal(t, "bot@ssb.no:secret", string(decoded))
}

func TestClient_CreateIssue(t *testing.T) {
	testCases := []struct {
		name       string
		status     int
		body       string
		expect     *jira.CreatedIssue
		expectErr  bool
		expectCode int
	}{
		{
			name:   "should return created issue",
			status: http.StatusCreated,
			body:   `{"id":"10042","key":"DS-42","self":"https://statistics-norway.atlassian.net/rest/api/3/issue/10042"}`,
			expect: &jira.CreatedIssue{
				ID:   "10042",
				Key:  "DS-42",
				Self: "https://statistics-norway.atlassian.net/rest/api/3/issue/10042",
			},
		},
		{
			name:       "should return response error with body",
			status:     http.StatusBadRequest,
			body:       `{"errorMessages":[],"errors":{"project":"project is required"}}`,
			expectErr:  true,
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "should return response error on unauthorized",
			status:     http.StatusUnauthorized,
			body:       "Unauthorized",
			expectErr:  true,
			expectCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/rest/api/3/issue", r.URL.Path)
				assert.Equal(t, "Basic "+jira.BasicAuth("bot@ssb.no", "secret"), r.Header.Get("Authorization"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.JSONEq(t, `{"fields":{"summary":"On-boarding: Team Stubbe"}}`, string(body))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer testServer.Close()

			client := jira.New(testServer.URL+"/rest/api/3/", jira.BasicAuth("bot@ssb.no", "secret"), http.DefaultClient)

			got, err := client.CreateIssue(context.Background(), &issue{
				Fields: map[string]any{"summary": "On-boarding: Team Stubbe"},
			})

			if tc.expectErr {
				require.Error(t, err)

				var re *jira.ResponseError
				require.True(t, errors.As(err, &re))
				assert.Equal(t, tc.expectCode, re.StatusCode)
				assert.Equal(t, tc.body, re.Body)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestStatic_CreateIssue(t *testing.T) {
	s := jira.NewStatic("http://localhost/rest/api/3")

	first, err := s.CreateIssue(context.Background(), "a")
	require.NoError(t, err)

	second, err := s.CreateIssue(context.Background(), "b")
	require.NoError(t, err)

	assert.Equal(t, "DS-1", first.Key)
	assert.Equal(t, "DS-2", second.Key)
	assert.Equal(t, "http://localhost/rest/api/3/issue/10002", second.Self)
	assert.Equal(t, []any{"a", "b"}, s.Created)
}
