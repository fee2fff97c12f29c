package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/untappd/logger"
	"github.com/kbukum/untappd/util"
)

// EnvConfigFile names the environment variable that may point at a config file.
const EnvConfigFile = "UNTAPPD_CONFIG"

// FileSystem abstracts the file lookups done while resolving config files.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	UserConfigDir() (string, error)
}

// OSFileSystem implements FileSystem on the real file system.
type OSFileSystem struct{}

func (OSFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (OSFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (OSFileSystem) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// Resolver locates the config and .env files for an application.
type Resolver struct {
	FileSystem FileSystem
	Getenv     func(string) string
}

// ResolvedFiles contains the resolved config and env file paths. Empty means
// none was found.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths when given and searches otherwise.
func (r *Resolver) ResolveFiles(appName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.firstExisting(r.configCandidates(appName))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.firstExisting([]string{".env." + appName, ".env"})
	}
	return resolved
}

// configCandidates lists config file locations in priority order: the
// UNTAPPD_CONFIG variable, the working directory, then the user config dir.
func (r *Resolver) configCandidates(appName string) []string {
	var candidates []string
	if r.Getenv != nil {
		if p := r.Getenv(EnvConfigFile); p != "" {
			candidates = append(candidates, p)
		}
	}
	for _, ext := range []string{"yml", "yaml", "json", "toml"} {
		candidates = append(candidates, fmt.Sprintf("./%s.%s", appName, ext))
	}
	candidates = append(candidates, "./config.yml", fmt.Sprintf("./cmd/%s/config.yml", appName))
	if dir, err := r.FileSystem.UserConfigDir(); err == nil && dir != "" {
		candidates = append(candidates, filepath.Join(dir, appName, "config.yml"))
	}
	return candidates
}

func (r *Resolver) firstExisting(paths []string) string {
	for _, p := range paths {
		if r.FileSystem.Exists(p) {
			return p
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// LoadConfig reads the config file, then the .env file, then the process
// environment, and unmarshals the merged result into cfg. Later sources win.
// UNTAPPD_API_KEY sets the untappd.api_key key.
func LoadConfig(appName string, cfg any, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = OSFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem, Getenv: os.Getenv}
	files := resolver.ResolveFiles(appName, lc)

	v := viper.New()
	if files.ConfigFile != "" {
		if !lc.FileSystem.Exists(files.ConfigFile) {
			return fmt.Errorf("config file %s not found", files.ConfigFile)
		}
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", files.ConfigFile, err)
		}
		logger.Debug("config file loaded", logger.Fields("file", files.ConfigFile))
	}

	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			logger.Warn("failed to load env file", logger.Fields("file", files.EnvFile, logger.FieldError, err.Error()))
		}
	}
	bindEnv(v, os.Environ())

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config for %s: %w", appName, err)
	}
	return nil
}

// bindEnv copies environment variables into v under every nested key the
// name could stand for.
func bindEnv(v *viper.Viper, environ []string) {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		value = util.SanitizeEnvValue(value)
		for _, variant := range envKeyVariants(key) {
			v.Set(variant, value)
		}
	}
}

// envKeyVariants maps an environment variable name onto candidate config
// keys by turning each underscore prefix into a nesting level:
//
//	UNTAPPD_PASSWORD_SHA -> [untappd_password_sha, untappd.password_sha, untappd.password.sha]
func envKeyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	variants := []string{lower}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	if len(parts) > 2 {
		variants = append(variants, strings.Join(parts, "."))
	}
	return variants
}
