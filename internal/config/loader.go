package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/giantswarm/cmdtree/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/cmdtree"
	configFileName = "config.yaml"
)

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads config.yaml from configPath on top of the defaults.
// A missing file yields the defaults. Relative file paths in the result are
// resolved against configPath.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			config.resolvePaths(configPath)
			return config, nil
		}
		logging.Info("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, newParseError(configFilePath, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, ConfigurationError{
			FilePath:  configFilePath,
			FileName:  filepath.Base(configFilePath),
			ErrorType: "validation",
			Message:   err.Error(),
			Err:       err,
			Suggestions: []string{
				"compare the file with the output of 'cmdtree config defaults'",
			},
		}
	}

	config.resolvePaths(configPath)
	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}

func (c *Config) resolvePaths(configPath string) {
	for _, p := range []*string{&c.Console.RosterFile, &c.Console.HistoryFile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(configPath, *p)
		}
	}
}

func newParseError(path string, err error) ConfigurationError {
	ce := ConfigurationError{
		FilePath:  path,
		FileName:  filepath.Base(path),
		ErrorType: "parse",
		Message:   "malformed YAML",
		Details:   err.Error(),
		Err:       err,
		Suggestions: []string{
			"check indentation and quoting",
		},
	}
	if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
		ce.LineNumber, _ = strconv.Atoi(m[1])
	}
	return ce
}

// Validate checks the values a YAML file may have set.
func (c Config) Validate() error {
	var errs ValidationErrors

	if c.LogLevel != "" {
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			errs.Add("logLevel", err.Error(), c.LogLevel)
		}
	}
	if c.Registry.Collisions != "" {
		errs.Collect(ValidateOneOf("registry.collisions", c.Registry.Collisions, []string{CollisionsReject, CollisionsReplace}))
	}
	if c.Registry.Aliases != "" {
		errs.Collect(ValidateOneOf("registry.aliases", c.Registry.Aliases, []string{AliasesResolve, AliasesIgnore}))
	}

	seen := map[string]bool{}
	for _, name := range c.Console.Commands {
		if err := ValidateToken("console.commands", name); err != nil {
			errs.Collect(err)
			continue
		}
		if seen[name] {
			errs.Add("console.commands", fmt.Sprintf("duplicate command %q", name), name)
		}
		seen[name] = true
	}
	for _, name := range c.Console.Contexts {
		errs.Collect(ValidateToken("console.contexts", name))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
