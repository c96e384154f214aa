package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-ozzo/ozzo-validation/v4/is"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mitchellh/mapstructure"

	"github.com/spf13/viper"

	"github.com/statisticsnorway/dapla-start-api/pkg/jira"
)

const (
	defaultExtension = "yaml"
	defaultTagName   = "yaml"
)

type Binder interface {
	Bind(v *viper.Viper) error
}

type Loader interface {
	Load(name, path, envPrefix string, binder Binder) (Config, error)
}

type Config struct {
	Server     Server     `yaml:"server"`
	Jira       Jira       `yaml:"jira"`
	Klass      Klass      `yaml:"klass"`
	Users      Users      `yaml:"users"`
	Auth       Auth       `yaml:"auth"`
	Onboarding Onboarding `yaml:"onboarding"`
	Slack      Slack      `yaml:"slack"`

	LogLevel string `yaml:"log_level"`
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Server, validation.Required),
		validation.Field(&c.Jira, validation.Required),
		validation.Field(&c.Klass, validation.Required),
		validation.Field(&c.Users, validation.Required),
		validation.Field(&c.Auth),
		validation.Field(&c.Onboarding),
		validation.Field(&c.Slack),
		validation.Field(&c.LogLevel, validation.Required, validation.In("trace", "debug", "info", "warn", "error")),
	)
}

type Server struct {
	Address string `yaml:"address"`
	Port    string `yaml:"port"`
}

func (s Server) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Address, validation.Required, is.IP),
		validation.Field(&s.Port, validation.Required, is.Port),
	)
}

type Jira struct {
	APIURL string `yaml:"api_url"`
	// Basic is the base64 encoded "email:api-token" pair, takes precedence
	// over Email and APIToken.
	Basic          string `yaml:"basic"`
	Email          string `yaml:"email"`
	APIToken       string `yaml:"api_token"`
	ProjectKey     string `yaml:"project_key"`
	IssueType      string `yaml:"issue_type"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	// DryRun keeps created issues in memory instead of sending them.
	DryRun bool `yaml:"dry_run"`
}

func (j Jira) Validate() error {
	return validation.ValidateStruct(&j,
		validation.Field(&j.APIURL, validation.Required, is.URL),
		validation.Field(&j.Basic, validation.When(!j.DryRun && (j.Email == "" || j.APIToken == ""), validation.Required)),
		validation.Field(&j.Email, is.EmailFormat),
		validation.Field(&j.ProjectKey, validation.Required),
		validation.Field(&j.IssueType, validation.Required),
		validation.Field(&j.TimeoutSeconds, validation.Required, validation.Min(1)),
	)
}

// Authorization is the value used for basic auth against Jira.
func (j Jira) Authorization() string {
	if j.Basic != "" {
		return j.Basic
	}

	if j.Email == "" || j.APIToken == "" {
		return ""
	}

	return jira.BasicAuth(j.Email, j.APIToken)
}

type Klass struct {
	APIURL              string `yaml:"api_url"`
	SectionalDivisionID string `yaml:"sectional_division_id"`
	SubjectAreaID       string `yaml:"subject_area_id"`
}

func (k Klass) Validate() error {
	return validation.ValidateStruct(&k,
		validation.Field(&k.APIURL, validation.Required, is.URL),
		validation.Field(&k.SectionalDivisionID, validation.Required, is.Digit),
		validation.Field(&k.SubjectAreaID, validation.Required, is.Digit),
	)
}

type Users struct {
	// Source is a local path or a gs://bucket/object url.
	Source string `yaml:"source"`
}

func (u Users) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Source, validation.Required),
	)
}

type Auth struct {
	// IssuerURL enables verification of bearer tokens, when empty the
	// claims are read without verification.
	IssuerURL string `yaml:"issuer_url"`
	ClientID  string `yaml:"client_id"`
}

func (a Auth) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.IssuerURL, is.URL),
		validation.Field(&a.ClientID, validation.When(a.IssuerURL != "", validation.Required)),
	)
}

type Onboarding struct {
	GroupDomain string `yaml:"group_domain"`
}

func (o Onboarding) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.GroupDomain, validation.By(groupDomain)),
	)
}

func groupDomain(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	return is.Domain.Validate(strings.TrimPrefix(s, "@"))
}

type Slack struct {
	WebhookURL string `yaml:"webhook_url"`
}

func (s Slack) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.WebhookURL, is.URL),
	)
}

type FileParts struct {
	FileName string
	Path     string
}

func ProcessConfigPath(configFile string) (FileParts, error) {
	absolutePath, err := filepath.Abs(configFile)
	if err != nil {
		return FileParts{}, fmt.Errorf("convert to absolute path: %w", err)
	}

	fileName := filepath.Base(absolutePath)
	path := filepath.Dir(absolutePath)
	extension := filepath.Ext(fileName)

	if strings.ReplaceAll(strings.ToLower(extension), ".", "") != defaultExtension {
		return FileParts{}, fmt.Errorf("config file must have extension %s, got: %s", defaultExtension, extension)
	}

	return FileParts{
		FileName: fileName[:len(fileName)-len(extension)],
		Path:     path,
	}, nil
}

func NewFileSystemLoader() *FileSystemLoader {
	return &FileSystemLoader{}
}

type FileSystemLoader struct{}

func (fs *FileSystemLoader) Load(name, path, envPrefix string, b Binder) (Config, error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName(name)
	v.SetConfigType(defaultExtension)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // So that env vars are translated properly
	v.AutomaticEnv()

	if b != nil {
		err := b.Bind(v)
		if err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix(envPrefix)

	err := v.ReadInConfig()
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var config Config

	err = v.Unmarshal(&config, func(cfg *mapstructure.DecoderConfig) {
		cfg.TagName = defaultTagName // We use yaml tags in the config structs so we can marshal to yaml
	})
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return config, nil
}

type EnvBinder struct {
	binders map[string]string
}

func (e *EnvBinder) Bind(v *viper.Viper) error {
	for envVar, key := range e.binders {
		err := v.BindEnv(key, envVar)
		if err != nil {
			return fmt.Errorf("bind env var %s to key %s: %w", envVar, key, err)
		}
	}

	return nil
}

func NewEnvBinder(binders map[string]string) *EnvBinder {
	return &EnvBinder{
		binders: binders,
	}
}

// NewDefaultEnvBinder maps the environment variables set by the deployment.
func NewDefaultEnvBinder() *EnvBinder {
	return NewEnvBinder(map[string]string{
		"JIRA_API_BASIC":   "jira.basic",
		"SSB_USERS_SOURCE": "users.source",
		"SLACK_WEBHOOK":    "slack.webhook_url",
	})
}
