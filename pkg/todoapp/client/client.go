package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/todo-app-client/pkg/todoapp"
	"github.com/diwise/todo-app-client/pkg/todoapp/errors"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

//go:generate moq -rm -out ../../test/todoappclient_mock.go . TodoAppClient
type TodoAppClient interface {
	// Raw posts an already encoded request body to the operation's endpoint
	// and returns the response envelope with the Ok value left undecoded.
	Raw(ctx context.Context, op Operation, body []byte, options ...CallOption) todoapp.Result[json.RawMessage]

	ExternalEventNew(ctx context.Context, props todoapp.ExternalEventNewProps, options ...CallOption) (*todoapp.ExternalEventData, error)
	ExternalEventDataNew(ctx context.Context, props todoapp.ExternalEventDataNewProps, options ...CallOption) (*todoapp.ExternalEventData, error)
	GoalIntentNew(ctx context.Context, props todoapp.GoalIntentNewProps, options ...CallOption) (*todoapp.GoalIntentData, error)
	GoalIntentDataNew(ctx context.Context, props todoapp.GoalIntentDataNewProps, options ...CallOption) (*todoapp.GoalIntentData, error)
	GoalNew(ctx context.Context, props todoapp.GoalNewProps, options ...CallOption) (*todoapp.GoalData, error)
	GoalDataNew(ctx context.Context, props todoapp.GoalDataNewProps, options ...CallOption) (*todoapp.GoalData, error)
	GoalEventNew(ctx context.Context, props todoapp.GoalEventNewProps, options ...CallOption) (*todoapp.GoalEvent, error)
	GoalDependencyNew(ctx context.Context, props todoapp.GoalDependencyNewProps, options ...CallOption) (*todoapp.GoalDependency, error)
	GoalEntityTagNew(ctx context.Context, props todoapp.GoalEntityTagNewProps, options ...CallOption) (*todoapp.GoalEntityTag, error)
	TimeUtilityFunctionNew(ctx context.Context, props todoapp.TimeUtilityFunctionNewProps, options ...CallOption) (*todoapp.TimeUtilityFunction, error)
	UserGeneratedCodeNew(ctx context.Context, props todoapp.UserGeneratedCodeNewProps, options ...CallOption) (*todoapp.UserGeneratedCode, error)
	GoalTemplateNew(ctx context.Context, props todoapp.GoalTemplateNewProps, options ...CallOption) (*todoapp.GoalTemplateData, error)
	GoalTemplateDataNew(ctx context.Context, props todoapp.GoalTemplateDataNewProps, options ...CallOption) (*todoapp.GoalTemplateData, error)
	GoalTemplatePatternNew(ctx context.Context, props todoapp.GoalTemplatePatternNewProps, options ...CallOption) (*todoapp.GoalTemplatePattern, error)
	NamedEntityNew(ctx context.Context, props todoapp.NamedEntityNewProps, options ...CallOption) (*todoapp.NamedEntity, error)
	NamedEntityDataNew(ctx context.Context, props todoapp.NamedEntityDataNewProps, options ...CallOption) (*todoapp.NamedEntityData, error)
	NamedEntityPatternNew(ctx context.Context, props todoapp.NamedEntityPatternNewProps, options ...CallOption) (*todoapp.NamedEntityPattern, error)

	GoalIntentView(ctx context.Context, props todoapp.GoalIntentViewProps, options ...CallOption) ([]todoapp.GoalIntent, error)
	GoalIntentDataView(ctx context.Context, props todoapp.GoalIntentDataViewProps, options ...CallOption) ([]todoapp.GoalIntentData, error)
	GoalView(ctx context.Context, props todoapp.GoalViewProps, options ...CallOption) ([]todoapp.Goal, error)
	GoalDataView(ctx context.Context, props todoapp.GoalDataViewProps, options ...CallOption) ([]todoapp.GoalData, error)
	GoalEventView(ctx context.Context, props todoapp.GoalEventViewProps, options ...CallOption) ([]todoapp.GoalEvent, error)
	GoalDependencyView(ctx context.Context, props todoapp.GoalDependencyViewProps, options ...CallOption) ([]todoapp.GoalDependency, error)
	GoalEntityTagView(ctx context.Context, props todoapp.GoalEntityTagViewProps, options ...CallOption) ([]todoapp.GoalEntityTag, error)
	GoalTemplateView(ctx context.Context, props todoapp.GoalTemplateViewProps, options ...CallOption) ([]todoapp.GoalTemplate, error)
	GoalTemplateDataView(ctx context.Context, props todoapp.GoalTemplateDataViewProps, options ...CallOption) ([]todoapp.GoalTemplateData, error)
	GoalTemplatePatternView(ctx context.Context, props todoapp.GoalTemplatePatternViewProps, options ...CallOption) ([]todoapp.GoalTemplatePattern, error)
	ExternalEventView(ctx context.Context, props todoapp.ExternalEventViewProps, options ...CallOption) ([]todoapp.ExternalEvent, error)
	ExternalEventDataView(ctx context.Context, props todoapp.ExternalEventDataViewProps, options ...CallOption) ([]todoapp.ExternalEventData, error)
	TimeUtilityFunctionView(ctx context.Context, props todoapp.TimeUtilityFunctionViewProps, options ...CallOption) ([]todoapp.TimeUtilityFunction, error)
	UserGeneratedCodeView(ctx context.Context, props todoapp.UserGeneratedCodeViewProps, options ...CallOption) ([]todoapp.UserGeneratedCode, error)
	NamedEntityView(ctx context.Context, props todoapp.NamedEntityViewProps, options ...CallOption) ([]todoapp.NamedEntity, error)
	NamedEntityDataView(ctx context.Context, props todoapp.NamedEntityDataViewProps, options ...CallOption) ([]todoapp.NamedEntityData, error)
	NamedEntityPatternView(ctx context.Context, props todoapp.NamedEntityPatternViewProps, options ...CallOption) ([]todoapp.NamedEntityPattern, error)

	Info(ctx context.Context, options ...CallOption) (*todoapp.Info, error)
}

type ClientOption func(*todoClient)

func Debug(enabled string) ClientOption {
	return func(c *todoClient) {
		c.debug = (enabled == "true")
	}
}

// BaseURL makes url the base URL of every call without a Server option. It
// is used as is, the convention's accessors and public/ segment do not apply.
func BaseURL(url string) ClientOption {
	return func(c *todoClient) {
		c.baseURL = url
	}
}

func WithConvention(convention Convention) ClientOption {
	return func(c *todoClient) {
		c.resolver.Convention = convention
	}
}

func WithAPIURL(accessor func() string) ClientOption {
	return func(c *todoClient) {
		c.resolver.APIURL = accessor
	}
}

func WithStaticURL(accessor func() string) ClientOption {
	return func(c *todoClient) {
		c.resolver.StaticURL = accessor
	}
}

func WithPathPrefix(prefix string) ClientOption {
	return func(c *todoClient) {
		c.pathPrefix = &prefix
	}
}

func WithDecoding(decoding Decoding) ClientOption {
	return func(c *todoClient) {
		c.decoding = decoding
	}
}

// Transport replaces the round tripper used for outbound calls. It is always
// wrapped for tracing.
func Transport(rt http.RoundTripper) ClientOption {
	return func(c *todoClient) {
		c.transport = rt
	}
}

// RateLimit makes calls wait for a token before they are sent.
func RateLimit(requestsPerSecond float64, burst int) ClientOption {
	return func(c *todoClient) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// CircuitBreaker stops sending requests for timeout after maxFailures
// consecutive transport failures. Rejected calls fail with NETWORK.
func CircuitBreaker(maxFailures uint32, timeout time.Duration) ClientOption {
	return func(c *todoClient) {
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "todo-app-client",
			MaxRequests: 1,
			Timeout:     timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
		})
	}
}

func NewTodoAppClient(options ...ClientOption) TodoAppClient {
	c := &todoClient{
		resolver:  NewBaseURLResolver(ConventionAPI),
		transport: http.DefaultTransport,
		debug:     false,
	}

	for _, option := range options {
		option(c)
	}

	if c.decoding == "" {
		c.decoding = c.resolver.Convention.Decoding()
	}

	c.httpClient = &http.Client{
		Transport: otelhttp.NewTransport(c.transport),
	}

	return c
}

const (
	TraceAttributeOperation string = "todoapp-operation"
	TraceAttributeRequestID string = "todoapp-request-id"
)

var tracer = otel.Tracer("todo-app-client")

type todoClient struct {
	resolver   BaseURLResolver
	baseURL    string
	pathPrefix *string
	decoding   Decoding
	transport  http.RoundTripper
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	debug      bool
}

func (c *todoClient) Raw(ctx context.Context, op Operation, body []byte, options ...CallOption) todoapp.Result[json.RawMessage] {
	var err error

	requestID := uuid.NewString()

	ctx, span := tracer.Start(ctx, op.Name,
		trace.WithAttributes(attribute.String(TraceAttributeOperation, op.Name)),
		trace.WithAttributes(attribute.String(TraceAttributeRequestID, requestID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	settings := newCallSettings(options...)
	endpoint := c.endpoint(op, settings.server)

	log := logging.GetFromContext(ctx).With("operation", op.Name, "request_id", requestID)

	response, responseBody, err := c.callTodoApp(ctx, endpoint, requestID, body, settings.headers)
	if err != nil {
		log.Warn("call to todo app failed", "endpoint", endpoint, "err", err.Error())
		return todoapp.Err[json.RawMessage](errors.CodeOf(err))
	}

	result := DecodeEnvelope(c.decoding, response.StatusCode, responseBody)
	if !result.IsOk() {
		err = result.Code()
		log.Debug("todo app returned an error", "status", response.StatusCode, "code", string(result.Code()))
	}

	return result
}

func (c *todoClient) endpoint(op Operation, server string) string {
	if server == "" {
		server = c.baseURL
	}

	base := c.resolver.Resolve(server)

	if !op.Scoped() {
		return base + op.Path
	}

	prefix := c.resolver.Convention.PathPrefix()
	if c.pathPrefix != nil {
		prefix = *c.pathPrefix
	}

	return base + prefix + op.Path
}

type exchange struct {
	response *http.Response
	body     []byte
}

func (c *todoClient) callTodoApp(ctx context.Context, endpoint, requestID string, body []byte, headers map[string][]string) (*http.Response, []byte, error) {
	if c.limiter != nil {
		err := c.limiter.Wait(ctx)
		if err != nil {
			return nil, nil, errors.NewNetworkError(fmt.Errorf("rate limiter: %w", err))
		}
	}

	if c.breaker == nil {
		return c.post(ctx, endpoint, requestID, body, headers)
	}

	x, err := c.breaker.Execute(func() (any, error) {
		resp, respBody, err := c.post(ctx, endpoint, requestID, body, headers)
		if err != nil {
			return nil, err
		}
		return exchange{response: resp, body: respBody}, nil
	})
	if err != nil {
		if errors.CodeOf(err) == errors.Unknown {
			err = errors.NewNetworkError(err)
		}
		return nil, nil, err
	}

	e := x.(exchange)
	return e.response, e.body, nil
}

func (c *todoClient) post(ctx context.Context, endpoint, requestID string, body []byte, headers map[string][]string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, nil, errors.NewNetworkError(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	for header, headerValue := range headers {
		for _, val := range headerValue {
			req.Header.Add(header, val)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, errors.NewNetworkError(fmt.Errorf("failed to send request: %w", err))
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.NewNetworkError(fmt.Errorf("failed to read response body: %w", err))
	}

	if c.debug && (resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices) {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error("request failed", "request", string(reqbytes), "response", string(respbytes))
	}

	return resp, respBody, nil
}
