package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/statisticsnorway/dapla-start-api/pkg/config"

	"github.com/google/go-cmp/cmp"

	"gopkg.in/yaml.v3"
)

var update = flag.Bool("update", false, "update golden files")

func newFakeConfig() config.Config {
	return config.Config{
		Server: config.Server{
			Address: "127.0.0.1",
			Port:    "8080",
		},
		Jira: config.Jira{
			APIURL:         "http://localhost:8080/jira/rest/api/3",
			Email:          "fake@ssb.no",
			APIToken:       "fake_api_token",
			ProjectKey:     "DS",
			IssueType:      "Task",
			TimeoutSeconds: 30,
		},
		Klass: config.Klass{
			APIURL:              "http://localhost:8080/klass/api/klass/v1",
			SectionalDivisionID: "83",
			SubjectAreaID:       "15",
		},
		Users: config.Users{
			Source: "testdata/users.csv",
		},
		Slack: config.Slack{
			WebhookURL: "http://localhost:8080/webhook",
		},
		LogLevel: "info",
	}
}

func updateGoldenFiles(t *testing.T, filePath string, cfg config.Config) []byte {
	t.Helper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Errorf("marshal config: %v", err)
	}

	err = os.WriteFile(filePath, data, 0o600)
	if err != nil {
		t.Errorf("write golden file: %v", err)
	}

	return data
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		config    config.Config
		expectErr bool
	}{
		{
			name:      "Valid config",
			config:    newFakeConfig(),
			expectErr: false,
		},
		{
			name: "Missing jira project",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Jira.ProjectKey = ""

				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "Missing jira credentials",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Jira.APIToken = ""

				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "Dry run without jira credentials",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Jira.Email = ""
				cfg.Jira.APIToken = ""
				cfg.Jira.DryRun = true

				return cfg
			}(),
			expectErr: false,
		},
		{
			name: "Issuer without client id",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Auth.IssuerURL = "https://auth.ssb.no/realms/ssb"

				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "Group domain with at sign",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Onboarding.GroupDomain = "@groups.ssb.no"

				return cfg
			}(),
			expectErr: false,
		},
		{
			name: "Invalid group domain",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Onboarding.GroupDomain = "not a domain"

				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "Unknown log level",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.LogLevel = "verbose"

				return cfg
			}(),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if err != nil && !tc.expectErr {
				t.Errorf("unexpected error: %v", err)
			}

			if err == nil && tc.expectErr {
				t.Errorf("expected error, got none")
			}
		})
	}
}

func TestJira_Authorization(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		jira   config.Jira
		expect string
	}{
		{
			name:   "Email and token",
			jira:   config.Jira{Email: "user@ssb.no", APIToken: "secret"},
			expect: "dXNlckBzc2Iubm86c2VjcmV0",
		},
		{
			name:   "Basic takes precedence",
			jira:   config.Jira{Basic: "cHJlY29tcHV0ZWQ=", Email: "user@ssb.no", APIToken: "secret"},
			expect: "cHJlY29tcHV0ZWQ=",
		},
		{
			name:   "Nothing configured",
			jira:   config.Jira{Email: "user@ssb.no"},
			expect: "",
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.jira.Authorization(); got != tc.expect {
				t.Errorf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	if *update {
		t.Log("Updating golden files")
		updateGoldenFiles(t, "testdata/config.yaml", newFakeConfig())
		t.Log("Done updating golden files")

		return
	}

	testCases := []struct {
		name      string
		config    string
		path      string
		envPrefix string
		loader    config.Loader
		binder    config.Binder
		envs      map[string]string
		expect    config.Config
		expectErr bool
	}{
		{
			name:      "Standard config",
			config:    "config",
			path:      "testdata",
			loader:    config.NewFileSystemLoader(),
			expect:    newFakeConfig(),
			expectErr: false,
		},
		{
			name:   "Standard config with env overrides",
			config: "config",
			path:   "testdata",
			loader: config.NewFileSystemLoader(),
			expect: func() config.Config {
				cfg := newFakeConfig()
				cfg.Server.Address = "0.0.0.0"

				return cfg
			}(),
			envs: map[string]string{
				"SERVER_ADDRESS": "0.0.0.0",
			},
		},
		{
			name:      "Standard config with env prefix overrides",
			config:    "config",
			path:      "testdata",
			envPrefix: "dapla_start",
			loader:    config.NewFileSystemLoader(),
			expect: func() config.Config {
				cfg := newFakeConfig()
				cfg.Jira.ProjectKey = "ONB"

				return cfg
			}(),
			envs: map[string]string{
				"DAPLA_START_JIRA_PROJECT_KEY": "ONB",
			},
		},
		{
			name:      "Deployment env vars",
			config:    "config",
			path:      "testdata",
			envPrefix: "dapla_start",
			loader:    config.NewFileSystemLoader(),
			binder:    config.NewDefaultEnvBinder(),
			expect: func() config.Config {
				cfg := newFakeConfig()
				cfg.Jira.Basic = "c29tZTpzZWNyZXQ="
				cfg.Users.Source = "gs://ssb-users/users.csv"

				return cfg
			}(),
			envs: map[string]string{
				"JIRA_API_BASIC":   "c29tZTpzZWNyZXQ=",
				"SSB_USERS_SOURCE": "gs://ssb-users/users.csv",
			},
		},
		{
			name:      "Missing config",
			config:    "nope",
			path:      "testdata",
			loader:    config.NewFileSystemLoader(),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envs {
				t.Setenv(k, v)
			}

			cfg, err := tc.loader.Load(tc.config, tc.path, tc.envPrefix, tc.binder)
			if err != nil && !tc.expectErr {
				t.Errorf("unexpected error: %v", err)
			}

			if err == nil && tc.expectErr {
				t.Errorf("expected error, got none")
			}

			if !tc.expectErr {
				if diff := cmp.Diff(tc.expect, cfg); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func getWorkingDir(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Errorf("get working dir: %v", err)
	}

	return wd
}

func TestProcessConfigPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		path      string
		expect    config.FileParts
		expectErr bool
	}{
		{
			name: "Valid config path",
			path: "testdata/config.yaml",
			expect: config.FileParts{
				FileName: "config",
				Path:     filepath.Join(getWorkingDir(t), "testdata"),
			},
		},
		{
			name:      "Invalid extension",
			path:      "testdata/config.json",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := config.ProcessConfigPath(tc.path)
			if err != nil && !tc.expectErr {
				t.Errorf("unexpected error: %v", err)
			}

			if err == nil && tc.expectErr {
				t.Errorf("expected error, got none")
			}

			if !tc.expectErr {
				if diff := cmp.Diff(tc.expect, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
