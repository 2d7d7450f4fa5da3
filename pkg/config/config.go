package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the file-backed server configuration. Environment variables
// override file values; flags override both.
type Config struct {
	Server struct {
		Address string `yaml:"address"`
		Port    int    `yaml:"port"`
	} `yaml:"server"`
	Storage struct {
		DBPath string `yaml:"db_path"`
	} `yaml:"storage"`
	Admin struct {
		ID       string `yaml:"id"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	AI struct {
		// APIKey enables news enrichment. Absence degrades enrichment to
		// fallback text, never an error.
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"ai"`
	Collect struct {
		// Cron drives automatic news collection; honored only while the
		// stored admin config has auto_update set to "on".
		Cron string `yaml:"cron"`
		// Token lets external cron runners trigger POST /news/collect via
		// the X-Collect-Token header. Empty disables that path.
		Token string `yaml:"token"`
	} `yaml:"collect"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// Addr returns host:port for the HTTP server.
func (c *Config) Addr() string {
	addr := c.Server.Address
	if addr == "" {
		addr = "0.0.0.0"
	}
	p := c.Server.Port
	if p == 0 {
		p = 8080
	}
	return fmt.Sprintf("%s:%d", addr, p)
}

// AdminID returns the configured admin id, defaulting to "admin".
func (c *Config) AdminID() string {
	if c.Admin.ID == "" {
		return "admin"
	}
	return c.Admin.ID
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseCommandFlags defines and parses command-line flags and returns their
// values along with a map indicating which flags were explicitly set.
func ParseCommandFlags() (addr string, dbPath string, cfgPath string, setFlags map[string]bool) {
	addrPtr := flag.String("addr", ":8080", "HTTP listen address")
	dbPtr := flag.String("db", "./.database", "Pebble DB path")
	cfgPtr := flag.String("config", "./config.yaml", "Path to config file")
	flag.Parse()
	setFlags = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	return *addrPtr, *dbPtr, *cfgPtr, setFlags
}

// LoadEnvOverrides applies environment overrides onto the provided cfg and
// reports whether any env vars were used.
func LoadEnvOverrides(cfg *Config) bool {
	envUsed := false
	if v := os.Getenv("AIATLAS_ADDRESS"); v != "" {
		envUsed = true
		cfg.Server.Address = v
	}
	if v := os.Getenv("AIATLAS_PORT"); v != "" {
		if p, err := parsePort(v); err == nil {
			envUsed = true
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("AIATLAS_DB_PATH"); v != "" {
		envUsed = true
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("AIATLAS_ADMIN_ID"); v != "" {
		envUsed = true
		cfg.Admin.ID = v
	}
	if v := os.Getenv("AIATLAS_ADMIN_PASSWORD"); v != "" {
		envUsed = true
		cfg.Admin.Password = v
	}
	if v := os.Getenv("AIATLAS_OPENAI_API_KEY"); v != "" {
		envUsed = true
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("AIATLAS_AI_MODEL"); v != "" {
		envUsed = true
		cfg.AI.Model = v
	}
	if v := os.Getenv("AIATLAS_COLLECT_CRON"); v != "" {
		envUsed = true
		cfg.Collect.Cron = v
	}
	if v := os.Getenv("AIATLAS_COLLECT_TOKEN"); v != "" {
		envUsed = true
		cfg.Collect.Token = v
	}
	if v := os.Getenv("AIATLAS_LOG_LEVEL"); v != "" {
		envUsed = true
		cfg.Logging.Level = v
	}
	return envUsed
}

// LoadEffective loads config from the given path and applies environment
// overrides. A missing file is not fatal: env and defaults still apply.
func LoadEffective(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}
	envUsed := LoadEnvOverrides(cfg)
	if cfg.Admin.Password == "" {
		return nil, envUsed, fmt.Errorf("admin password not configured: set admin.password or AIATLAS_ADMIN_PASSWORD")
	}
	return cfg, envUsed, nil
}

// ResolveConfigPath decides the config file path using the flag-provided
// value and the environment variable AIATLAS_CONFIG when the flag was unset.
func ResolveConfigPath(flagPath string, flagSet bool) string {
	if flagSet {
		return flagPath
	}
	if p := os.Getenv("AIATLAS_CONFIG"); p != "" {
		return p
	}
	return flagPath
}

func parsePort(v string) (int, error) {
	v = strings.TrimSpace(v)
	var p int
	_, err := fmt.Sscanf(v, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0, fmt.Errorf("invalid port: %q", v)
	}
	return p, nil
}
