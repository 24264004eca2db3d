// Package config loads the suite's configuration document: the Kakao access token and the
// fixture data that request payloads are built from.
//
// A Config is loaded once per test run and is read-only afterwards. Fixture values are kept
// as untyped JSON values (ldvalue.Value, which is immutable), because their shape is not
// validated here: a malformed fixture should surface as an error from the vendor API.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the Kakao REST API host used when the document does not specify one.
const DefaultBaseURL = "https://kapi.kakao.com"

const (
	defaultInvalidToken = "INVALID_TOKEN_12345"
	defaultInvalidPath  = "/v2/user/mes"
)

// AccessTokenEnvVar names the environment variable that can supply the access token instead
// of the configuration document.
const AccessTokenEnvVar = "KAKAO_ACCESS_TOKEN"

// fileNames are the document names Locate looks for, in order of preference.
var fileNames = []string{"config.json", "config.yaml", "config.yml"}

// ErrNoAccessToken is returned by Load when the document has no kakao_api.access_token.
var ErrNoAccessToken = errors.New("kakao_api.access_token is missing or empty")

// Config is the parsed configuration document.
type Config struct {
	KakaoAPI KakaoAPI `json:"kakao_api"`
	TestData TestData `json:"test_data"`
}

type KakaoAPI struct {
	AccessToken string `json:"access_token"`
	URL         string `json:"base_url,omitempty"`
}

type TestData struct {
	// CommerceTemplate has the fields title, links.{image_url,web_url,mobile_web_url}, and
	// buttons[].{title,web_url,mobile_web_url}. It may also override the commerce prices with
	// regular_price, discount_price, and discount_rate.
	CommerceTemplate ldvalue.Value    `json:"commerce_template"`
	NegativeTestData NegativeTestData `json:"negative_test_data"`
}

type NegativeTestData struct {
	InvalidJSONFormat string `json:"invalid_json_format"`
	InvalidToken      string `json:"invalid_token,omitempty"`
	InvalidPath       string `json:"invalid_path,omitempty"`
}

// Load reads and parses a configuration document. The format is chosen by file extension:
// .json, or .yaml/.yml. If the KAKAO_ACCESS_TOKEN environment variable is set, it replaces the
// document's access token.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
	case ".yaml", ".yml":
		if data, err = yamlToJSON(data); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q (expected .json, .yaml, or .yml)", ext)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if token := os.Getenv(AccessTokenEnvVar); token != "" {
		c.KakaoAPI.AccessToken = token
	}
	if strings.TrimSpace(c.KakaoAPI.AccessToken) == "" {
		return Config{}, fmt.Errorf("config %s: %w", path, ErrNoAccessToken)
	}
	return c, nil
}

// yamlToJSON decodes a YAML document into generic values and re-encodes it as JSON, so both
// formats go through the same JSON model.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if _, ok := doc.(map[string]interface{}); !ok {
		return nil, errors.New("top level of the document must be a mapping")
	}
	return json.Marshal(doc)
}

// Locate finds the configuration document relative to dir: first in dir itself, then in its
// parent directory.
func Locate(dir string) (string, error) {
	for _, d := range []string{dir, filepath.Dir(filepath.Clean(dir))} {
		for _, name := range fileNames {
			path := filepath.Join(d, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("no %s found in %s or its parent directory", strings.Join(fileNames, "/"), dir)
}

// BaseURL returns the configured API host, without a trailing slash.
func (c Config) BaseURL() string {
	if c.KakaoAPI.URL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(c.KakaoAPI.URL, "/")
}

// Token is the credential used by the invalid-token test.
func (n NegativeTestData) Token() string {
	if n.InvalidToken == "" {
		return defaultInvalidToken
	}
	return n.InvalidToken
}

// Path is the nonexistent path used by the invalid-path test.
func (n NegativeTestData) Path() string {
	if n.InvalidPath == "" {
		return defaultInvalidPath
	}
	return n.InvalidPath
}
