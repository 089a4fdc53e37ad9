package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSessionCookieName  = "next-auth.session-token"
	defaultSessionTTL         = 30 * 24 * time.Hour
	defaultOAuthStateTTL      = 10 * time.Minute
	defaultGoogleScopes       = "openid email profile"
)

// Conventional variable names of the original deployment. They win over the yaml values when set.
const (
	envGoogleClientID     = "GOOGLE_CLIENT_ID"
	envGoogleClientSecret = "GOOGLE_CLIENT_SECRET"
	envSessionSecret      = "NEXTAUTH_SECRET"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		// TrustedProxies lists the CIDRs of reverse proxies whose X-Forwarded-For is honoured.
		// Empty means the client IP is the peer address of the connection.
		TrustedProxies     []string `json:"trustedProxies" yaml:"trustedProxies"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	Session *SessionConfig `json:"session" yaml:"session"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// RateLimit throttles the credential endpoints per client IP.
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// DatabaseConfig controls schema management.
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// SessionConfig configures the signed session token and the cookie carrying it.
type SessionConfig struct {
	Secret     string        `json:"secret" yaml:"secret"`
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	Secure     bool          `json:"secure" yaml:"secure"`
}

// GoogleOAuthConfig configures the authorization code flow against Google.
type GoogleOAuthConfig struct {
	Enabled      bool          `json:"enabled" yaml:"enabled"`
	ClientID     string        `json:"clientId" yaml:"clientId"`
	ClientSecret string        `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string        `json:"redirectUri" yaml:"redirectUri"`
	Scopes       string        `json:"scopes" yaml:"scopes"`
	StateTTL     time.Duration `json:"stateTtl" yaml:"stateTtl"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int         `json:"bcryptCost" yaml:"bcryptCost"`
	Pages      *PageConfig `json:"pages" yaml:"pages"`
}

// PageConfig holds the frontend pages the auth endpoints redirect to.
type PageConfig struct {
	SignIn      string `json:"signIn" yaml:"signIn"`
	SignUp      string `json:"signUp" yaml:"signUp"`
	Error       string `json:"error" yaml:"error"`
	AfterSignIn string `json:"afterSignIn" yaml:"afterSignIn"`
}

// RateLimitConfig is a token bucket per client IP.
type RateLimitConfig struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	RPS     float64 `json:"rps" yaml:"rps"`
	Burst   int     `json:"burst" yaml:"burst"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SESSION_COOKIENAME -> session.cookieName
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

const defaultEnvName = "config"

// New loads `.env` (when present), then `config.yaml` overlaid by the environment.
func New() (*Config, error) {
	return NewForEnv(defaultEnvName)
}

// NewForEnv is New for `<envName>.yaml`.
func NewForEnv(envName string) (*Config, error) {
	if envName == "" {
		envName = defaultEnvName
	}
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config](envName, "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyConventionalEnv(cfg)
	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Session == nil || strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("session secret must be provided")
	}

	for _, cidr := range c.HTTP.TrustedProxies {
		if _, _, err := net.ParseCIDR(strings.TrimSpace(cidr)); err != nil {
			return errors.Wrapf(err, "invalid trusted proxy %q", cidr)
		}
	}

	if c.GoogleOAuth != nil && c.GoogleOAuth.Enabled {
		if c.GoogleOAuth.ClientID == "" || c.GoogleOAuth.ClientSecret == "" {
			return errors.New("google oauth is enabled but client id or secret is missing")
		}
		if c.GoogleOAuth.RedirectURI == "" {
			return errors.New("google oauth is enabled but redirect uri is missing")
		}
	}

	return nil
}

func loadDotEnv() error {
	for _, candidate := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		// Load never overrides variables already present in the process environment.
		if err := godotenv.Load(candidate); err != nil {
			return errors.Wrapf(err, "load %s", candidate)
		}

		return nil
	}

	return nil
}

func applyConventionalEnv(cfg *Config) {
	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}
	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}

	if v := os.Getenv(envGoogleClientID); v != "" {
		cfg.GoogleOAuth.ClientID = v
	}
	if v := os.Getenv(envGoogleClientSecret); v != "" {
		cfg.GoogleOAuth.ClientSecret = v
	}
	if v := os.Getenv(envSessionSecret); v != "" {
		cfg.Session.Secret = v
	}
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}

	if cfg.GoogleOAuth.Scopes == "" {
		cfg.GoogleOAuth.Scopes = defaultGoogleScopes
	}
	if cfg.GoogleOAuth.StateTTL <= 0 {
		cfg.GoogleOAuth.StateTTL = defaultOAuthStateTTL
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Pages == nil {
		cfg.Auth.Pages = &PageConfig{}
	}
	pages := cfg.Auth.Pages
	if pages.SignIn == "" {
		pages.SignIn = "/auth/signin"
	}
	if pages.SignUp == "" {
		pages.SignUp = "/auth/signup"
	}
	if pages.Error == "" {
		pages.Error = "/auth/error"
	}
	if pages.AfterSignIn == "" {
		pages.AfterSignIn = "/dashboard"
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
