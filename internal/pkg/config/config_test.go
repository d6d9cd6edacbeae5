package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestLoadConfig(t *testing.T) {
	is, config := setupConfigTest(t)

	is.Equal(len(config.Deployments), 2) // should have two deployments
}

func TestLoadAPIDeployment(t *testing.T) {
	is, config := setupConfigTest(t)

	d, err := config.Deployment("staging")
	is.NoErr(err)

	is.Equal(d.Convention, "api")
	is.Equal(d.APIURL, "https://staging.todo.example.com/api/")
	is.True(d.Info)
	is.Equal(d.RateLimit.RequestsPerSecond, 5.0)
	is.Equal(d.RateLimit.Burst, 10)
	is.Equal(d.CircuitBreaker.MaxFailures, uint32(3))
	is.Equal(d.CircuitBreaker.Timeout, 30*time.Second)
	is.Equal(len(d.ClientOptions()), 4)
}

func TestLoadPublicDeployment(t *testing.T) {
	is, config := setupConfigTest(t)

	d, err := config.Deployment("public")
	is.NoErr(err)

	is.Equal(d.Convention, "public")
	is.True(!d.Info)
	is.Equal(*d.PathPrefix, "")
	is.Equal(d.Decoding, "status")
}

func TestUnknownDeploymentIsAnError(t *testing.T) {
	is, config := setupConfigTest(t)

	_, err := config.Deployment("production")
	is.True(err != nil)
}

func TestEmptyConfigHasDefaultDeployment(t *testing.T) {
	is := is.New(t)

	config := &Config{}
	d, err := config.Deployment("default")

	is.NoErr(err)
	is.Equal(d.Convention, "api")
	is.True(!d.Info)
}

func TestUnknownConventionIsRejected(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(bytes.NewBufferString("deployments:\n  - name: x\n    convention: graphql\n"))
	is.True(err != nil)
}

func setupConfigTest(t *testing.T) (*is.I, *Config) {
	is := is.New(t)
	cfgData := bytes.NewBuffer([]byte(configFile))
	config, err := LoadConfiguration(cfgData)
	is.NoErr(err)

	return is, config
}

var configFile string = `
deployments:
  - name: staging
    convention: api
    apiUrl: https://staging.todo.example.com/api/
    info: true
    rateLimit:
      requestsPerSecond: 5
      burst: 10
    circuitBreaker:
      maxFailures: 3
      timeout: 30s
  - name: public
    convention: public
    staticUrl: https://todo.example.com/
    pathPrefix: ""
    decoding: status
`
