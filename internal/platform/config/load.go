package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// envAliases map conventional variable names (the Ollama CLI's, and DB_PATH)
// onto config keys. APP_ variables still take precedence over them.
var envAliases = map[string]string{
	"OLLAMA_HOST":  "model.base_url",
	"OLLAMA_MODEL": "model.name",
	"DB_PATH":      "storage.path",
}

// Load reads configuration using a layered hierarchy (highest precedence last):
//
//  0. Built-in defaults
//  1. Base config ({configDir}/base.yaml)
//  2. Profile config ({configDir}/{profile}.yaml)
//  3. Aliases (OLLAMA_HOST, OLLAMA_MODEL, DB_PATH)
//  4. Environment variables (APP_ prefix)
//
// Environment variable mapping uses key matching against loaded config keys
// to resolve ambiguity between nesting separators and field-internal underscores:
//
//	APP_SERVER_PORT           -> server.port
//	APP_SERVER_READ_TIMEOUT   -> server.read_timeout
//	APP_LOG_LEVEL             -> log.level
//	APP_MODEL_RETRY_MAX_ATTEMPTS -> model.retry.max_attempts
//	APP_EXTRACTION_FALLBACK_TO_HEURISTIC -> extraction.fallback_to_heuristic
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	if err := setAll(k, defaults()); err != nil {
		return nil, err
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	if err := setAll(k, aliasedEnv()); err != nil {
		return nil, err
	}

	if err := loadPrefixedEnv(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func setAll(k *koanf.Koanf, values map[string]any) error {
	for key, value := range values {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return nil
}

// aliasedEnv returns the config values set through envAliases.
func aliasedEnv() map[string]any {
	values := make(map[string]any, len(envAliases))
	for name, key := range envAliases {
		if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) != "" {
			values[key] = normalizeAlias(key, strings.TrimSpace(v))
		}
	}
	return values
}

// normalizeAlias accepts OLLAMA_HOST the way the Ollama CLI does, as a bare
// host:port without a scheme.
func normalizeAlias(key, value string) string {
	if key == "model.base_url" && !strings.Contains(value, "://") {
		return "http://" + value
	}
	return value
}

// loadPrefixedEnv applies APP_ variables. A reverse lookup from known koanf
// keys lets APP_SERVER_READ_TIMEOUT resolve to "server.read_timeout" rather
// than "server.read.timeout".
func loadPrefixedEnv(k *koanf.Koanf) error {
	envLookup := buildEnvLookup(k.Keys())

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil)
	if err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// validateProfile checks that the profile name is safe and non-empty.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup creates a reverse mapping from env-style keys to koanf dotted keys.
// For each koanf key like "server.read_timeout", the env form "server_read_timeout"
// is computed by replacing dots with underscores. This allows unambiguous matching
// when an env var arrives (e.g. APP_SERVER_READ_TIMEOUT -> "server.read_timeout").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
