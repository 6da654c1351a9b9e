package config

import (
	"bytes"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	// Origins enables CORS for the listed origins when not empty.
	Origins []string

	Credential Credential

	Voice  string
	Format string

	synthesizer synthesizerConfig

	client *http.Client
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{
		Address: defaultAddress(),

		Credential: EnvCredential(DefaultCredential),

		Voice:  DefaultVoice,
		Format: DefaultFormat,
	}

	c.client = newClient(nil, 0)

	return c
}

func Parse(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := Default()

	if file.Address != "" {
		c.Address = file.Address
	}

	if file.Credential != "" {
		c.Credential = EnvCredential(file.Credential)
	}

	if file.CORS != nil {
		c.Origins = file.CORS.Origins
	}

	if err := c.registerSynthesizer(file.Synthesizer, file.Proxy); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Credential string `yaml:"credential"`

	CORS *corsConfig `yaml:"cors"`

	Proxy *proxyConfig `yaml:"proxy"`

	Synthesizer *synthesizerConfig `yaml:"synthesizer"`
}

type corsConfig struct {
	Origins []string `yaml:"origins"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func defaultAddress() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}

	return ":8080"
}

type synthesizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Model string `yaml:"model"`

	Voice  string `yaml:"voice"`
	Format string `yaml:"format"`

	Timeout time.Duration `yaml:"timeout"`
}
