package routes_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/sebdah/goldie/v2"
	"github.com/statisticsnorway/dapla-start-api/pkg/auth"
	"github.com/statisticsnorway/dapla-start-api/pkg/errs"
	"github.com/statisticsnorway/dapla-start-api/pkg/jira"
	"github.com/statisticsnorway/dapla-start-api/pkg/klass"
	"github.com/statisticsnorway/dapla-start-api/pkg/onboarding"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/api"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/handlers"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/routes"
	"github.com/statisticsnorway/dapla-start-api/pkg/userdirectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	jiraURL             = "https://jira.test/rest/api/3"
	apiVersion          = "test-version"
	sectionalDivisionID = "83"
	subjectAreaID       = "15"
	versionURL          = "https://klass.test/versions/2"
)

var today = time.Date(2022, time.February, 1, 12, 0, 0, 0, time.UTC)

const usersExport = "displayName,userPrincipalName,mail\n" +
	"Nordmann  Kari,kno@ssb.no,Kari.Nordmann@ssb.no\n" +
	"Service Account,svc-backup@ssb.no,svc@ssb.no\n"

type staticSource []byte

func (s staticSource) Read(_ context.Context) ([]byte, error) {
	return s, nil
}

func newKlass() *klass.Static {
	k := klass.NewStatic()

	k.Classifications[sectionalDivisionID] = &klass.Classification{
		ID:   83,
		Name: "Seksjonsinndeling",
		Versions: []klass.VersionSummary{
			{ID: 1, Name: "2021", ValidFrom: "2021-01-01", Links: klass.Links{Self: klass.Link{Href: "https://klass.test/versions/1"}}},
			{ID: 2, Name: "2022", ValidFrom: "2022-01-01", Links: klass.Links{Self: klass.Link{Href: versionURL}}},
		},
	}

	k.Versions[versionURL] = &klass.Version{
		ID:        2,
		Name:      "2022",
		ValidFrom: "2022-01-01",
		ClassificationItems: []klass.Item{
			{Code: "700", Level: "1", Name: "IT-avdelingen"},
			{Code: "724", ParentCode: "700", Level: "2", Name: "Seksjon for dataplattform"},
		},
	}

	k.Codes[subjectAreaID] = []klass.Item{
		{Code: "be", Level: "1", Name: "Befolkning"},
		{Code: "be01", ParentCode: "be", Level: "2", Name: "Befolkningsframskrivinger"},
	}

	return k
}

type fixture struct {
	router *chi.Mux
	jira   *jira.Static
}

func newFixture(t *testing.T, k klass.Fetcher) *fixture {
	t.Helper()

	log := zerolog.Nop()
	jiraStatic := jira.NewStatic(jiraURL)
	metrics := core.NewMetrics("test")

	clients := api.NewClients(
		jiraStatic,
		k,
		userdirectory.NewFromSource(staticSource(usersExport)),
		auth.NewUnverifiedReader(),
		"",
		log,
	)

	services := core.NewServices(
		core.ServicesConfig{
			APIVersion:          apiVersion,
			SectionalDivisionID: sectionalDivisionID,
			SubjectAreaID:       subjectAreaID,
		},
		clients,
		metrics,
		func() time.Time { return today },
		log,
	)

	h := handlers.NewHandlers(services, clients.ReporterAPI)

	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.Collectors()...)

	router := chi.NewRouter()
	routes.Add(router,
		routes.NewOnboardingRoutes(routes.NewOnboardingEndpoints(log, h.OnboardingHandler)),
		routes.NewUserRoutes(routes.NewUserEndpoints(log, h.UserHandler)),
		routes.NewClassificationRoutes(routes.NewClassificationEndpoints(log, h.ClassificationHandler)),
		routes.NewHealthRoutes(routes.NewHealthEndpoints(log, h.HealthHandler)),
		routes.NewMetricsRoutes(routes.NewMetricsEndpoints(log, reg)),
	)

	return &fixture{
		router: router,
		jira:   jiraStatic,
	}
}

func (f *fixture) do(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	body, err := io.ReadAll(w.Result().Body)
	require.NoError(t, err)

	return w.Code, body
}

func reporterToken(t *testing.T) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name":               "Rita Reporter",
		"email":              "rita.reporter@ssb.no",
		"preferred_username": "rre@ssb.no",
	}).SignedString([]byte("not-verified"))
	require.NoError(t, err)

	return token
}

const stubbeRequest = `{
	"display_team_name": "Team Stubbe",
	"manager": {"name": "Magnus Manager", "email": "magnus.manager@ssb.no", "email_short": "mm@ssb.no"},
	"data_admins": [{"name": "Bob Admin", "email": "bob.admin@ssb.no", "email_short": "bad@ssb.no"}],
	"enabled_services": ["transfer"],
	"reporter": {"name": "Someone Else", "email": "someone@ssb.no", "email_short": "sel@ssb.no"},
	"ui_version": "1.2.3",
	"api_version": "0.0.1"
}`

func stubbeDetails(t *testing.T) *service.ProjectDetails {
	t.Helper()

	details := &service.ProjectDetails{}
	require.NoError(t, json.Unmarshal([]byte(stubbeRequest), details))

	return details
}

func TestRoutes_Golden(t *testing.T) {
	testCases := []struct {
		name    string
		request func(t *testing.T) *http.Request
		status  int
	}{
		{
			name: "routes-health",
			request: func(_ *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/health/readiness", nil)
			},
			status: http.StatusOK,
		},
		{
			name: "routes-users",
			request: func(_ *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/users?fields=name,email", nil)
			},
			status: http.StatusOK,
		},
		{
			name: "routes-users-all-fields",
			request: func(_ *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/users", nil)
			},
			status: http.StatusOK,
		},
		{
			name: "routes-org-info",
			request: func(_ *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/org_info", nil)
			},
			status: http.StatusOK,
		},
		{
			name: "routes-subject-areas",
			request: func(_ *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/subject_areas", nil)
			},
			status: http.StatusOK,
		},
		{
			name: "routes-create-jira",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/create_jira", strings.NewReader(stubbeRequest))
				req.Header.Set("Authorization", "Bearer "+reporterToken(t))

				return req
			},
			status: http.StatusCreated,
		},
		{
			name: "routes-create-jira-missing-manager",
			request: func(_ *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/create_jira", strings.NewReader(`{"display_team_name": "Team Stubbe"}`))
			},
			status: http.StatusBadRequest,
		},
		{
			name: "routes-preview-jira-missing-everything",
			request: func(_ *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/preview_jira", strings.NewReader(`{"display_team_name": "  "}`))
			},
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, newKlass())

			status, body := f.do(t, tc.request(t))
			assert.Equal(t, tc.status, status, string(body))

			g := goldie.New(t)
			g.Assert(t, tc.name, body)
		})
	}
}

func TestRoutes_PreviewJira(t *testing.T) {
	f := newFixture(t, newKlass())

	req := httptest.NewRequest(http.MethodPost, "/preview_jira", strings.NewReader(stubbeRequest))
	req.Header.Set("Authorization", "Bearer "+reporterToken(t))

	status, body := f.do(t, req)
	require.Equal(t, http.StatusOK, status, string(body))

	expect := stubbeDetails(t)
	expect.APIVersion = strPtr(apiVersion)
	expect.Reporter = &service.ProjectUser{Name: "Rita Reporter", Email: "rita.reporter@ssb.no", EmailShort: "rre@ssb.no"}

	expectBody, err := json.Marshal(onboarding.IssuePayload(expect, today))
	require.NoError(t, err)

	assert.JSONEq(t, string(expectBody), string(body))
	assert.Empty(t, f.jira.Created)
}

func TestRoutes_PreviewJiraKeepsReporterWithoutToken(t *testing.T) {
	f := newFixture(t, newKlass())

	status, body := f.do(t, httptest.NewRequest(http.MethodPost, "/preview_jira", strings.NewReader(stubbeRequest)))
	require.Equal(t, http.StatusOK, status, string(body))

	assert.Contains(t, string(body), "Submitted by Someone Else (someone@ssb.no) on 2022-02-01")
}

func TestRoutes_CreateJiraSendsPreview(t *testing.T) {
	f := newFixture(t, newKlass())

	token := reporterToken(t)

	preview := httptest.NewRequest(http.MethodPost, "/preview_jira", strings.NewReader(stubbeRequest))
	preview.Header.Set("Authorization", "Bearer "+token)

	status, previewBody := f.do(t, preview)
	require.Equal(t, http.StatusOK, status)

	create := httptest.NewRequest(http.MethodPost, "/create_jira", strings.NewReader(stubbeRequest))
	create.Header.Set("Authorization", "Bearer "+token)

	status, _ = f.do(t, create)
	require.Equal(t, http.StatusCreated, status)

	require.Len(t, f.jira.Created, 1)

	sent, err := json.Marshal(f.jira.Created[0])
	require.NoError(t, err)

	assert.JSONEq(t, string(previewBody), string(sent))
}

func TestRoutes_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		klass   klass.Fetcher
		request func(t *testing.T) *http.Request
		status  int
		kind    errs.Kind
	}{
		{
			name:  "Malformed token",
			klass: newKlass(),
			request: func(_ *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/create_jira", strings.NewReader(stubbeRequest))
				req.Header.Set("Authorization", "Bearer not-a-token")

				return req
			},
			status: http.StatusUnauthorized,
			kind:   errs.Unauthenticated,
		},
		{
			name:  "Malformed body",
			klass: newKlass(),
			request: func(_ *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/preview_jira", strings.NewReader(`{"display_team_name":`))
			},
			status: http.StatusBadRequest,
			kind:   errs.InvalidRequest,
		},
		{
			name:  "Klass unavailable for org info",
			klass: klass.NewStatic(),
			request: func(_ *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/org_info", nil)
			},
			status: http.StatusInternalServerError,
			kind:   errs.IO,
		},
		{
			name:  "Klass unavailable for subject areas",
			klass: klass.NewStatic(),
			request: func(_ *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/subject_areas", nil)
			},
			status: http.StatusInternalServerError,
			kind:   errs.IO,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.klass)

			status, body := f.do(t, tc.request(t))
			assert.Equal(t, tc.status, status, string(body))

			got := errs.ErrResponse{}
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tc.kind.String(), got.Kind)
			assert.NotEmpty(t, got.Detail)
		})
	}
}

func TestRoutes_Metrics(t *testing.T) {
	f := newFixture(t, newKlass())

	req := httptest.NewRequest(http.MethodPost, "/create_jira", strings.NewReader(stubbeRequest))
	status, _ := f.do(t, req)
	require.Equal(t, http.StatusCreated, status)

	status, body := f.do(t, httptest.NewRequest(http.MethodGet, "/internal/metrics", nil))
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "test_issues_created_total 1")
}

func TestPrint(t *testing.T) {
	f := newFixture(t, newKlass())

	var sb strings.Builder
	require.NoError(t, routes.Print(f.router, &sb))

	for _, route := range []string{"/create_jira", "/preview_jira", "/users", "/org_info", "/subject_areas", "/health/liveness", "/internal/metrics"} {
		assert.Contains(t, sb.String(), route)
	}
}

func strPtr(s string) *string {
	return &s
}
