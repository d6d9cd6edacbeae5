package client

import (
	"context"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

// Convention selects how the default base URL of a deployment is derived.
type Convention string

const (
	// ConventionAPI uses the API URL accessor as is and scopes every
	// operation below the todo_app/ prefix.
	ConventionAPI Convention = "api"
	// ConventionPublic appends public/ to the static URL accessor.
	ConventionPublic Convention = "public"
)

const (
	DefaultAPIURLValue    string = "http://localhost:8080/api/"
	DefaultStaticURLValue string = "http://localhost:8080/"
	DefaultPathPrefix     string = "todo_app/"
)

// APIURL is the process wide default API URL accessor.
func APIURL() string {
	return env.GetVariableOrDefault(context.Background(), "TODOAPP_API_URL", DefaultAPIURLValue)
}

// StaticURL is the process wide default static URL accessor.
func StaticURL() string {
	return env.GetVariableOrDefault(context.Background(), "TODOAPP_STATIC_URL", DefaultStaticURLValue)
}

type BaseURLResolver struct {
	Convention Convention
	APIURL     func() string
	StaticURL  func() string
}

func NewBaseURLResolver(convention Convention) BaseURLResolver {
	return BaseURLResolver{
		Convention: convention,
		APIURL:     APIURL,
		StaticURL:  StaticURL,
	}
}

// Resolve returns override when it is set. Otherwise the default accessor of
// the convention is consulted, exactly once.
func (r BaseURLResolver) Resolve(override string) string {
	if override != "" {
		return withTrailingSlash(override)
	}

	if r.Convention == ConventionPublic {
		return withTrailingSlash(r.StaticURL()) + "public/"
	}

	return withTrailingSlash(r.APIURL())
}

// PathPrefix is the prefix put between the base URL and an operation path
// unless the client was configured with an explicit one.
func (c Convention) PathPrefix() string {
	if c == ConventionPublic {
		return ""
	}
	return DefaultPathPrefix
}

// Decoding returns the envelope decoding a deployment of this convention uses
// unless the client was configured with an explicit one.
func (c Convention) Decoding() Decoding {
	if c == ConventionPublic {
		return DecodeStatus
	}
	return DecodeTagged
}

func (c Convention) IsValid() bool {
	return c == ConventionAPI || c == ConventionPublic
}

func withTrailingSlash(u string) string {
	if strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}
