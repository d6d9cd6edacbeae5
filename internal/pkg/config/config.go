package config

import (
	"fmt"
	"io"
	"time"

	"github.com/diwise/todo-app-client/pkg/todoapp/client"
	yaml "gopkg.in/yaml.v2"
)

type RateLimitInfo struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

type CircuitBreakerInfo struct {
	MaxFailures uint32        `yaml:"maxFailures"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Deployment describes one todo app backend. A nil PathPrefix keeps the
// convention's default while an empty one removes it. Info is set for
// deployments that expose the info endpoint.
type Deployment struct {
	Name       string  `yaml:"name"`
	Convention string  `yaml:"convention"`
	APIURL     string  `yaml:"apiUrl"`
	StaticURL  string  `yaml:"staticUrl"`
	PathPrefix *string `yaml:"pathPrefix"`
	Decoding   string  `yaml:"decoding"`
	Info       bool    `yaml:"info"`

	RateLimit      *RateLimitInfo      `yaml:"rateLimit"`
	CircuitBreaker *CircuitBreakerInfo `yaml:"circuitBreaker"`
}

func (d Deployment) ClientOptions() []client.ClientOption {
	options := []client.ClientOption{}

	if d.Convention != "" {
		options = append(options, client.WithConvention(client.Convention(d.Convention)))
	}

	if d.APIURL != "" {
		url := d.APIURL
		options = append(options, client.WithAPIURL(func() string { return url }))
	}

	if d.StaticURL != "" {
		url := d.StaticURL
		options = append(options, client.WithStaticURL(func() string { return url }))
	}

	if d.PathPrefix != nil {
		options = append(options, client.WithPathPrefix(*d.PathPrefix))
	}

	if d.Decoding != "" {
		options = append(options, client.WithDecoding(client.Decoding(d.Decoding)))
	}

	if d.RateLimit != nil {
		options = append(options, client.RateLimit(d.RateLimit.RequestsPerSecond, d.RateLimit.Burst))
	}

	if d.CircuitBreaker != nil {
		options = append(options, client.CircuitBreaker(d.CircuitBreaker.MaxFailures, d.CircuitBreaker.Timeout))
	}

	return options
}

type Config struct {
	Deployments []Deployment `yaml:"deployments"`
}

// Deployment returns the named deployment. A configuration without
// deployments yields a default api convention deployment for any name.
func (c *Config) Deployment(name string) (*Deployment, error) {
	if len(c.Deployments) == 0 {
		return &Deployment{Name: name, Convention: string(client.ConventionAPI)}, nil
	}

	for idx := range c.Deployments {
		if c.Deployments[idx].Name == name {
			return &c.Deployments[idx], nil
		}
	}

	return nil, fmt.Errorf("no deployment named %s", name)
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, err
	}

	for _, d := range cfg.Deployments {
		if d.Convention != "" && !client.Convention(d.Convention).IsValid() {
			return nil, fmt.Errorf("deployment %s has unknown convention %q", d.Name, d.Convention)
		}

		if d.Decoding != "" && !client.Decoding(d.Decoding).IsValid() {
			return nil, fmt.Errorf("deployment %s has unknown decoding %q", d.Name, d.Decoding)
		}
	}

	return cfg, nil
}
