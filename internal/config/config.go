package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"relocarr/internal/services"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains connection settings for the media-manager instance.
type Server struct {
	// URL is the API base, including the version prefix, e.g.
	// http://localhost:7878/api/v3. Left empty it falls back to the
	// entity-specific local default.
	URL            string `toml:"url"`
	APIKey         string `toml:"api_key"`
	SkipTLSVerify  bool   `toml:"skip_tls_verify"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Run contains configuration for run coordination.
type Run struct {
	// LockDir holds the advisory lock files that keep two relocation runs
	// from mutating the same instance concurrently.
	LockDir string `toml:"lock_dir"`
}

// Config encapsulates all configuration values for relocarr.
type Config struct {
	Server  Server  `toml:"server"`
	Logging Logging `toml:"logging"`
	Run     Run     `toml:"run"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/relocarr/config.toml")
}

// Load locates, parses, and validates a configuration file. Environment
// overrides (RELOCARR_URL, RELOCARR_API_KEY) are applied after the file,
// sourcing a .env file beside the config file or in the working directory
// when present, so credentials can stay out of both argv and the TOML file.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg, resolvedPath)

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func applyEnv(cfg *Config, configPath string) {
	// Best-effort .env loading; godotenv.Load never overrides variables that
	// are already exported.
	if configPath != "" {
		_ = godotenv.Load(filepath.Join(filepath.Dir(configPath), ".env"))
	}
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv("RELOCARR_URL")); v != "" {
		cfg.Server.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("RELOCARR_API_KEY")); v != "" {
		cfg.Server.APIKey = v
	}
}

func resolveConfigPath(path string) (string, bool, error) {
	// An explicitly named config file must exist; only the default locations
	// may be absent.
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s does not exist: %w", expanded, services.ErrConfiguration)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	if env := strings.TrimSpace(os.Getenv("RELOCARR_CONFIG")); env != "" {
		return resolveConfigPath(env)
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("relocarr.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run needs before it starts.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Run.LockDir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Run.LockDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Run.LockDir, err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
