package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/apiclient"
	"github.com/wesleyorama2/apiclient/apierr"
)

// Config is the file representation of a client configuration. YAML and
// JSON are both accepted; the format is chosen by file extension.
type Config struct {
	BaseURL           string            `yaml:"baseUrl" json:"baseUrl"`
	Timeout           string            `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	ReturnData        *bool             `yaml:"returnData,omitempty" json:"returnData,omitempty"`
	Headers           map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	ShowErrorMessages *bool             `yaml:"showErrorMessages,omitempty" json:"showErrorMessages,omitempty"`
	ErrorMessages     *Messages         `yaml:"errorMessages,omitempty" json:"errorMessages,omitempty"`
}

// Messages overrides entries of the built-in error-message table.
type Messages struct {
	Status       map[int]string `yaml:"status,omitempty" json:"status,omitempty"`
	NetworkError string         `yaml:"networkError,omitempty" json:"networkError,omitempty"`
	TimeoutError string         `yaml:"timeoutError,omitempty" json:"timeoutError,omitempty"`
	DefaultError string         `yaml:"defaultError,omitempty" json:"defaultError,omitempty"`
	NoResponse   string         `yaml:"noResponse,omitempty" json:"noResponse,omitempty"`
}

// Load reads a configuration file. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	return &config, nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks the configuration and returns every problem found.
func Validate(config *Config) []ValidationError {
	var errors []ValidationError

	if config.BaseURL == "" {
		errors = append(errors, ValidationError{
			Path:    "baseUrl",
			Message: "baseUrl is required",
		})
	} else {
		u, err := url.Parse(config.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Path:    "baseUrl",
				Message: fmt.Sprintf("baseUrl must be an absolute URL: %s", config.BaseURL),
			})
		}
	}

	if config.Timeout != "" {
		if _, err := parseTimeout(config.Timeout); err != nil {
			errors = append(errors, ValidationError{
				Path:    "timeout",
				Message: err.Error(),
			})
		}
	}

	if config.ErrorMessages != nil {
		for code := range config.ErrorMessages.Status {
			if code < 100 || code > 599 {
				errors = append(errors, ValidationError{
					Path:    fmt.Sprintf("errorMessages.status.%d", code),
					Message: "not a valid HTTP status code",
				})
			}
		}
	}

	return errors
}

// Options converts the configuration into client options. The
// configuration should be validated first; Options reports the first
// conversion problem it hits.
func (c *Config) Options() ([]apiclient.ClientOption, error) {
	var opts []apiclient.ClientOption

	if c.BaseURL != "" {
		opts = append(opts, apiclient.WithBaseURL(c.BaseURL))
	}
	if c.Timeout != "" {
		d, err := parseTimeout(c.Timeout)
		if err != nil {
			return nil, err
		}
		opts = append(opts, apiclient.WithTimeout(d))
	}
	if c.ReturnData != nil {
		opts = append(opts, apiclient.WithReturnData(*c.ReturnData))
	}
	if len(c.Headers) > 0 {
		opts = append(opts, apiclient.WithHeaders(c.Headers))
	}
	if c.ShowErrorMessages != nil {
		opts = append(opts, apiclient.WithDefaultErrorHandler(*c.ShowErrorMessages, nil))
	}
	if c.ErrorMessages != nil {
		opts = append(opts, apiclient.WithErrorMessages(&apierr.Messages{
			Status:       c.ErrorMessages.Status,
			NetworkError: c.ErrorMessages.NetworkError,
			TimeoutError: c.ErrorMessages.TimeoutError,
			DefaultError: c.ErrorMessages.DefaultError,
			NoResponse:   c.ErrorMessages.NoResponse,
		}))
	}
	return opts, nil
}

// parseTimeout accepts Go duration strings ("5s", "1m30s") and bare
// integers, which are read as milliseconds.
func parseTimeout(s string) (time.Duration, error) {
	if ms, err := strconv.Atoi(s); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("timeout must not be negative: %s", s)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout: %s", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must not be negative: %s", s)
	}
	return d, nil
}
