package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/diwise/todo-app-client/pkg/todoapp"
	todoerrors "github.com/diwise/todo-app-client/pkg/todoapp/errors"

	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput
var method = expects.RequestMethod
var path = expects.RequestPath
var body = expects.RequestBody
var headerContains = expects.RequestHeaderContains

func TestGoalNewSendsPropsAndDecodesGoalData(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/todo_app/goal/new"),
			body(`{"name":"Ship report","timeUtilityFunctionId":7,"apiKey":"k"}`),
			headerContains("Content-Type", "application/json"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusCreated),
			response.Body([]byte(goalDataJSON)),
		),
	)
	defer s.Close()

	c := NewTodoAppClient(WithDecoding(DecodeStatus))

	goalData, err := c.GoalNew(context.Background(), todoapp.GoalNewProps{
		Name:                  "Ship report",
		TimeUtilityFunctionID: 7,
		APIKey:                "k",
	}, Server(s.URL()))

	is.NoErr(err)
	is.Equal(goalData.GoalDataID, int64(11))
	is.Equal(goalData.Goal.GoalID, int64(3))
	is.Equal(goalData.Name, "Ship report")
	is.True(goalData.DurationEstimate == nil) // duration estimate should be absent
	is.Equal(goalData.Status, todoapp.GoalDataStatusPending)
	is.Equal(goalData.TimeUtilityFunction.Utils, []int64{10, 0})
	is.Equal(s.RequestCount(), 1)
}

func TestGoalDependencyNewReturnsCycleError(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, method(http.MethodPost), path("/todo_app/goal_dependency/new")),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusBadRequest),
			response.Body([]byte(`"GOAL_FORMS_CYCLE"`)),
		),
	)
	defer s.Close()

	c := NewTodoAppClient(WithDecoding(DecodeStatus))

	dep, err := c.GoalDependencyNew(context.Background(), todoapp.GoalDependencyNewProps{
		GoalID:          1,
		DependentGoalID: 2,
		Active:          true,
		APIKey:          "k",
	}, Server(s.URL()))

	is.True(dep == nil)
	is.True(errors.Is(err, todoerrors.GoalFormsCycle))
	is.Equal(todoerrors.CodeOf(err), todoerrors.GoalFormsCycle)
}

func TestTaggedEnvelopeIsDecodedRegardlessOfStatus(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/todo_app/goal_event/new")),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Err":"GOAL_NONEXISTENT"}`)),
		),
	)
	defer s.Close()

	c := NewTodoAppClient()

	_, err := c.GoalEventNew(context.Background(), todoapp.GoalEventNewProps{GoalID: 99, APIKey: "k"}, Server(s.URL()))

	is.True(errors.Is(err, todoerrors.GoalNonexistent))
}

func TestTaggedOkIsDecoded(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/todo_app/goal_dependency/view")),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Ok":[{"goalDependencyId":5,"creationTime":1,"creatorUserId":2,"goal":{"goalId":1,"creationTime":1,"creatorUserId":2},"dependent_goal":{"goalId":2,"creationTime":1,"creatorUserId":2},"active":true}]}`)),
		),
	)
	defer s.Close()

	c := NewTodoAppClient(WithConvention(ConventionAPI))

	deps, err := c.GoalDependencyView(context.Background(), todoapp.GoalDependencyViewProps{APIKey: "k"}, Server(s.URL()))

	is.NoErr(err)
	is.Equal(len(deps), 1)
	is.Equal(deps[0].DependentGoal.GoalID, int64(2))
	is.True(deps[0].Active)
}

func TestViewReturnsEmptyListWhenNothingMatches(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/todo_app/goal_data/view"), body(`{"goalId":[42],"onlyRecent":true,"apiKey":"k"}`)),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`[]`)),
		),
	)
	defer s.Close()

	c := NewTodoAppClient(WithDecoding(DecodeStatus))

	data, err := c.GoalDataView(context.Background(), todoapp.GoalDataViewProps{
		GoalID:     []int64{42},
		OnlyRecent: true,
		APIKey:     "k",
	}, Server(s.URL()))

	is.NoErr(err)
	is.Equal(len(data), 0)
}

func TestTransportFailureIsReportedAsNetwork(t *testing.T) {
	is := is.New(t)

	c := NewTodoAppClient(Transport(failingTransport{}))

	_, err := c.GoalNew(context.Background(), todoapp.GoalNewProps{Name: "x", APIKey: "k"}, Server("http://unreachable.invalid"))

	is.True(errors.Is(err, todoerrors.Network))
}

func TestUndecodableBodyIsReportedAsUnknown(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("text/html"),
			response.Code(http.StatusBadGateway),
			response.Body([]byte("<html>bad gateway</html>")),
		),
	)
	defer s.Close()

	c := NewTodoAppClient(WithDecoding(DecodeStatus))

	_, err := c.NamedEntityNew(context.Background(), todoapp.NamedEntityNewProps{APIKey: "k"}, Server(s.URL()))

	is.True(errors.Is(err, todoerrors.Unknown))
}

func TestDefaultBaseURLAccessorIsConsultedOncePerCall(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/api/todo_app/goal_intent/new")),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Ok":{"goalIntentDataId":1,"creationTime":1,"creatorUserId":1,"goalIntent":{"goalIntentId":1,"creationTime":1,"creatorUserId":1},"name":"run","active":true}}`)),
		),
	)
	defer s.Close()

	calls := 0
	c := NewTodoAppClient(WithAPIURL(func() string {
		calls++
		return s.URL() + "/api"
	}))

	_, err := c.GoalIntentNew(context.Background(), todoapp.GoalIntentNewProps{Name: "run", APIKey: "k"})

	is.NoErr(err)
	is.Equal(calls, 1) // default accessor should be called exactly once
}

func TestServerOverrideSkipsDefaultBaseURLAccessor(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/todo_app/goal_intent/new")),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Ok":{"goalIntentDataId":2,"creationTime":1,"creatorUserId":1,"goalIntent":{"goalIntentId":1,"creationTime":1,"creatorUserId":1},"name":"run","active":true}}`)),
		),
	)
	defer s.Close()

	calls := 0
	c := NewTodoAppClient(WithAPIURL(func() string {
		calls++
		return "http://never.invalid/"
	}))

	_, err := c.GoalIntentNew(context.Background(), todoapp.GoalIntentNewProps{Name: "run", APIKey: "k"}, Server(s.URL()))

	is.NoErr(err)
	is.Equal(calls, 0) // default accessor should not be consulted
}

func TestPublicConventionAppendsPublicSegment(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/public/goal/view")),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`[{"goalId":1,"creationTime":2,"creatorUserId":3}]`)),
		),
	)
	defer s.Close()

	c := NewTodoAppClient(
		WithConvention(ConventionPublic),
		WithStaticURL(func() string { return s.URL() }),
	)

	goals, err := c.GoalView(context.Background(), todoapp.GoalViewProps{APIKey: "k"})

	is.NoErr(err)
	is.Equal(len(goals), 1)
	is.True(goals[0].Intent == nil)
}

func TestInfoIsNotScopedBelowPathPrefix(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, method(http.MethodPost), path("/info")),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Ok":{"service":"todo-app","versionMajor":0,"versionMinor":1,"versionRev":0,"appPubOrigin":"https://app","authPubOrigin":"https://auth","authAuthenticatorHref":"https://auth/login"}}`)),
		),
	)
	defer s.Close()

	c := NewTodoAppClient()

	info, err := c.Info(context.Background(), Server(s.URL()))

	is.NoErr(err)
	is.Equal(info.Service, "todo-app")
	is.Equal(info.VersionMinor, int64(1))
}

func TestCustomPathPrefixAndHeaders(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/v2/goal_template/new"), headerContains("X-Tenant", "acme")),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Ok":{"goalTemplateDataId":1,"creationTime":1,"creatorUserId":1,"goalTemplate":{"goalTemplateId":1,"creationTime":1,"creatorUserId":1},"name":"t","userGeneratedCode":{"userGeneratedCodeId":1,"creationTime":1,"creatorUserId":1,"sourceCode":"","sourceLang":"rust","wasmCache":[0,97,115,109]},"active":true}}`)),
		),
	)
	defer s.Close()

	c := NewTodoAppClient(WithPathPrefix("v2/"))

	template, err := c.GoalTemplateNew(context.Background(), todoapp.GoalTemplateNewProps{Name: "t", APIKey: "k"},
		Server(s.URL()),
		Headers(map[string][]string{"X-Tenant": {"acme"}}),
	)

	is.NoErr(err)
	is.Equal([]byte(template.UserGeneratedCode.WasmCache), []byte{0, 'a', 's', 'm'})
}

func TestMissingRecordIsReportedAsUnknown(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/todo_app/goal/new")),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Ok":null}`)),
		),
	)
	defer s.Close()

	c := NewTodoAppClient()

	goalData, err := c.GoalNew(context.Background(), todoapp.GoalNewProps{Name: "x", APIKey: "k"}, Server(s.URL()))

	is.True(goalData == nil)
	is.True(errors.Is(err, todoerrors.Unknown))
}

func TestEmptySuccessBodyIsUnknownForSingleRecord(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/todo_app/named_entity/new")),
		Returns(response.Code(http.StatusNoContent)),
	)
	defer s.Close()

	c := NewTodoAppClient(WithDecoding(DecodeStatus))

	entity, err := c.NamedEntityNew(context.Background(), todoapp.NamedEntityNewProps{Name: "x", Kind: todoapp.NamedEntityDate, APIKey: "k"}, Server(s.URL()))

	is.True(entity == nil)
	is.True(errors.Is(err, todoerrors.Unknown))
}

func TestMissingListIsEmpty(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/todo_app/goal_event/view")),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Ok":null}`)),
		),
	)
	defer s.Close()

	c := NewTodoAppClient()

	events, err := c.GoalEventView(context.Background(), todoapp.GoalEventViewProps{APIKey: "k"}, Server(s.URL()))

	is.NoErr(err)
	is.Equal(len(events), 0)
}

func TestBaseURLIsUsedAsIsUnderPublicConvention(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/goal/view")),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`[]`)),
		),
	)
	defer s.Close()

	staticCalls := 0
	c := NewTodoAppClient(
		WithConvention(ConventionPublic),
		WithStaticURL(func() string {
			staticCalls++
			return "http://never.invalid/"
		}),
		BaseURL(s.URL()),
	)

	_, err := c.GoalView(context.Background(), todoapp.GoalViewProps{APIKey: "k"})

	is.NoErr(err)
	is.Equal(staticCalls, 0) // static url accessor should not be consulted
}

func TestCircuitBreakerRejectsCallsWhenOpen(t *testing.T) {
	is := is.New(t)

	transport := &countingTransport{}
	c := NewTodoAppClient(Transport(transport), CircuitBreaker(2, time.Minute))

	for range 4 {
		_, err := c.GoalEventNew(context.Background(), todoapp.GoalEventNewProps{GoalID: 1, APIKey: "k"}, Server("http://unreachable.invalid"))
		is.True(errors.Is(err, todoerrors.Network))
	}

	is.Equal(transport.calls, 2) // breaker should stop calling the transport after two failures
}

func TestRawReturnsUndecodedEnvelope(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/todo_app/named_entity/view"), body(`{"apiKey":"k"}`)),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Ok":[]}`)),
		),
	)
	defer s.Close()

	c := NewTodoAppClient(RateLimit(100, 1))

	result := c.Raw(context.Background(), OpNamedEntityView, []byte(`{"apiKey":"k"}`), Server(s.URL()))

	value, ok := result.Value()
	is.True(ok)
	is.Equal(string(value), "[]")
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("connection refused")
}

type countingTransport struct {
	calls int
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls++
	return nil, fmt.Errorf("connection refused")
}

const goalDataJSON string = `{
	"goalDataId": 11,
	"creationTime": 1700000000000,
	"creatorUserId": 5,
	"goal": {"goalId": 3, "creationTime": 1700000000000, "creatorUserId": 5},
	"name": "Ship report",
	"durationEstimate": null,
	"timeUtilityFunction": {
		"timeUtilityFunctionId": 7,
		"creationTime": 1690000000000,
		"creatorUserId": 5,
		"startTimes": [0, 1800000000000],
		"utils": [10, 0]
	},
	"status": "PENDING"
}`
