package client

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/diwise/todo-app-client/pkg/todoapp"
	todoerrors "github.com/diwise/todo-app-client/pkg/todoapp/errors"

	"github.com/matryer/is"
)

type dispatchCase struct {
	op     Operation
	invoke func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error)
}

func dispatchCases() []dispatchCase {
	return []dispatchCase{
		{OpExternalEventDataNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.ExternalEventDataNew(ctx, todoapp.ExternalEventDataNewProps{APIKey: "k"}, options...)
		}},
		{OpExternalEventDataView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.ExternalEventDataView(ctx, todoapp.ExternalEventDataViewProps{APIKey: "k"}, options...)
		}},
		{OpExternalEventNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.ExternalEventNew(ctx, todoapp.ExternalEventNewProps{APIKey: "k"}, options...)
		}},
		{OpExternalEventView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.ExternalEventView(ctx, todoapp.ExternalEventViewProps{APIKey: "k"}, options...)
		}},
		{OpGoalDataNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalDataNew(ctx, todoapp.GoalDataNewProps{APIKey: "k"}, options...)
		}},
		{OpGoalDataView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalDataView(ctx, todoapp.GoalDataViewProps{APIKey: "k"}, options...)
		}},
		{OpGoalDependencyNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalDependencyNew(ctx, todoapp.GoalDependencyNewProps{APIKey: "k"}, options...)
		}},
		{OpGoalDependencyView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalDependencyView(ctx, todoapp.GoalDependencyViewProps{APIKey: "k"}, options...)
		}},
		{OpGoalEntityTagNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalEntityTagNew(ctx, todoapp.GoalEntityTagNewProps{APIKey: "k"}, options...)
		}},
		{OpGoalEntityTagView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalEntityTagView(ctx, todoapp.GoalEntityTagViewProps{APIKey: "k"}, options...)
		}},
		{OpGoalEventNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalEventNew(ctx, todoapp.GoalEventNewProps{APIKey: "k"}, options...)
		}},
		{OpGoalEventView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalEventView(ctx, todoapp.GoalEventViewProps{APIKey: "k"}, options...)
		}},
		{OpGoalIntentDataNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalIntentDataNew(ctx, todoapp.GoalIntentDataNewProps{APIKey: "k"}, options...)
		}},
		{OpGoalIntentDataView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalIntentDataView(ctx, todoapp.GoalIntentDataViewProps{APIKey: "k"}, options...)
		}},
		{OpGoalIntentNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalIntentNew(ctx, todoapp.GoalIntentNewProps{APIKey: "k"}, options...)
		}},
		{OpGoalIntentView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalIntentView(ctx, todoapp.GoalIntentViewProps{APIKey: "k"}, options...)
		}},
		{OpGoalNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalNew(ctx, todoapp.GoalNewProps{APIKey: "k"}, options...)
		}},
		{OpGoalTemplateDataNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalTemplateDataNew(ctx, todoapp.GoalTemplateDataNewProps{APIKey: "k"}, options...)
		}},
		{OpGoalTemplateDataView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalTemplateDataView(ctx, todoapp.GoalTemplateDataViewProps{APIKey: "k"}, options...)
		}},
		{OpGoalTemplateNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalTemplateNew(ctx, todoapp.GoalTemplateNewProps{APIKey: "k"}, options...)
		}},
		{OpGoalTemplatePatternNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalTemplatePatternNew(ctx, todoapp.GoalTemplatePatternNewProps{APIKey: "k"}, options...)
		}},
		{OpGoalTemplatePatternView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalTemplatePatternView(ctx, todoapp.GoalTemplatePatternViewProps{APIKey: "k"}, options...)
		}},
		{OpGoalTemplateView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalTemplateView(ctx, todoapp.GoalTemplateViewProps{APIKey: "k"}, options...)
		}},
		{OpGoalView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.GoalView(ctx, todoapp.GoalViewProps{APIKey: "k"}, options...)
		}},
		{OpInfo, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.Info(ctx, options...)
		}},
		{OpNamedEntityDataNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.NamedEntityDataNew(ctx, todoapp.NamedEntityDataNewProps{APIKey: "k"}, options...)
		}},
		{OpNamedEntityDataView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.NamedEntityDataView(ctx, todoapp.NamedEntityDataViewProps{APIKey: "k"}, options...)
		}},
		{OpNamedEntityNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.NamedEntityNew(ctx, todoapp.NamedEntityNewProps{APIKey: "k"}, options...)
		}},
		{OpNamedEntityPatternNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.NamedEntityPatternNew(ctx, todoapp.NamedEntityPatternNewProps{APIKey: "k"}, options...)
		}},
		{OpNamedEntityPatternView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.NamedEntityPatternView(ctx, todoapp.NamedEntityPatternViewProps{APIKey: "k"}, options...)
		}},
		{OpNamedEntityView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.NamedEntityView(ctx, todoapp.NamedEntityViewProps{APIKey: "k"}, options...)
		}},
		{OpTimeUtilityFunctionNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.TimeUtilityFunctionNew(ctx, todoapp.TimeUtilityFunctionNewProps{APIKey: "k"}, options...)
		}},
		{OpTimeUtilityFunctionView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.TimeUtilityFunctionView(ctx, todoapp.TimeUtilityFunctionViewProps{APIKey: "k"}, options...)
		}},
		{OpUserGeneratedCodeNew, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.UserGeneratedCodeNew(ctx, todoapp.UserGeneratedCodeNewProps{APIKey: "k"}, options...)
		}},
		{OpUserGeneratedCodeView, func(ctx context.Context, c TodoAppClient, options ...CallOption) (any, error) {
			return c.UserGeneratedCodeView(ctx, todoapp.UserGeneratedCodeViewProps{APIKey: "k"}, options...)
		}},
	}
}

func expectedPath(op Operation) string {
	if !op.Scoped() {
		return "/" + op.Path
	}
	return "/" + DefaultPathPrefix + op.Path
}

func TestEveryMethodHasADispatchCase(t *testing.T) {
	is := is.New(t)

	is.Equal(len(dispatchCases()), len(Operations()))
	is.Equal(reflect.TypeOf((*TodoAppClient)(nil)).Elem().NumMethod(), len(Operations())+1) // every operation plus Raw
}

func TestEveryMethodDecodesSuccessResponses(t *testing.T) {
	for _, tc := range dispatchCases() {
		t.Run(tc.op.Name, func(t *testing.T) {
			is := is.New(t)

			okBody := `{}`
			if tc.op.Many {
				okBody = `[]`
			}

			s := testutils.NewMockServiceThat(
				Expects(is, method(http.MethodPost), path(expectedPath(tc.op))),
				Returns(
					response.ContentType("application/json"),
					response.Code(http.StatusOK),
					response.Body([]byte(okBody)),
				),
			)
			defer s.Close()

			c := NewTodoAppClient(WithDecoding(DecodeStatus))

			result, err := tc.invoke(context.Background(), c, Server(s.URL()))

			is.NoErr(err)
			is.Equal(reflect.TypeOf(result).Elem().Name(), tc.op.Response) // method should return the operation's response type
			is.Equal(s.RequestCount(), 1)
		})
	}
}

func TestEveryMethodReturnsErrorTagOnFailureStatus(t *testing.T) {
	for _, tc := range dispatchCases() {
		t.Run(tc.op.Name, func(t *testing.T) {
			is := is.New(t)

			s := testutils.NewMockServiceThat(
				Expects(is, method(http.MethodPost), path(expectedPath(tc.op))),
				Returns(
					response.ContentType("application/json"),
					response.Code(http.StatusNotFound),
					response.Body([]byte(`"NOT_FOUND"`)),
				),
			)
			defer s.Close()

			c := NewTodoAppClient(WithDecoding(DecodeStatus))

			_, err := tc.invoke(context.Background(), c, Server(s.URL()))

			is.True(errors.Is(err, todoerrors.NotFound))
		})
	}
}

func TestEveryMethodReportsTransportFailureAsNetwork(t *testing.T) {
	for _, tc := range dispatchCases() {
		t.Run(tc.op.Name, func(t *testing.T) {
			is := is.New(t)

			c := NewTodoAppClient(Transport(failingTransport{}))

			_, err := tc.invoke(context.Background(), c, Server("http://unreachable.invalid"))

			is.True(errors.Is(err, todoerrors.Network))
		})
	}
}

func TestGoalDependencyOnItselfReturnsCycleError(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/todo_app/goal_dependency/new"), body(`{"goalId":1,"dependentGoalId":1,"active":true,"apiKey":"k"}`)),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Err":"GOAL_FORMS_CYCLE"}`)),
		),
	)
	defer s.Close()

	c := NewTodoAppClient()

	dep, err := c.GoalDependencyNew(context.Background(), todoapp.GoalDependencyNewProps{GoalID: 1, DependentGoalID: 1, Active: true, APIKey: "k"}, Server(s.URL()))

	is.True(dep == nil)
	is.True(errors.Is(err, todoerrors.GoalFormsCycle))
}
