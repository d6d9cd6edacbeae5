package client

import (
	"context"

	"github.com/diwise/todo-app-client/pkg/todoapp"
)

func (c *todoClient) ExternalEventNew(ctx context.Context, props todoapp.ExternalEventNewProps, options ...CallOption) (*todoapp.ExternalEventData, error) {
	return one(Call[todoapp.ExternalEventNewProps, todoapp.ExternalEventData](ctx, c, OpExternalEventNew, props, options...))
}

func (c *todoClient) ExternalEventDataNew(ctx context.Context, props todoapp.ExternalEventDataNewProps, options ...CallOption) (*todoapp.ExternalEventData, error) {
	return one(Call[todoapp.ExternalEventDataNewProps, todoapp.ExternalEventData](ctx, c, OpExternalEventDataNew, props, options...))
}

func (c *todoClient) GoalIntentNew(ctx context.Context, props todoapp.GoalIntentNewProps, options ...CallOption) (*todoapp.GoalIntentData, error) {
	return one(Call[todoapp.GoalIntentNewProps, todoapp.GoalIntentData](ctx, c, OpGoalIntentNew, props, options...))
}

func (c *todoClient) GoalIntentDataNew(ctx context.Context, props todoapp.GoalIntentDataNewProps, options ...CallOption) (*todoapp.GoalIntentData, error) {
	return one(Call[todoapp.GoalIntentDataNewProps, todoapp.GoalIntentData](ctx, c, OpGoalIntentDataNew, props, options...))
}

func (c *todoClient) GoalNew(ctx context.Context, props todoapp.GoalNewProps, options ...CallOption) (*todoapp.GoalData, error) {
	return one(Call[todoapp.GoalNewProps, todoapp.GoalData](ctx, c, OpGoalNew, props, options...))
}

func (c *todoClient) GoalDataNew(ctx context.Context, props todoapp.GoalDataNewProps, options ...CallOption) (*todoapp.GoalData, error) {
	return one(Call[todoapp.GoalDataNewProps, todoapp.GoalData](ctx, c, OpGoalDataNew, props, options...))
}

func (c *todoClient) GoalEventNew(ctx context.Context, props todoapp.GoalEventNewProps, options ...CallOption) (*todoapp.GoalEvent, error) {
	return one(Call[todoapp.GoalEventNewProps, todoapp.GoalEvent](ctx, c, OpGoalEventNew, props, options...))
}

func (c *todoClient) GoalDependencyNew(ctx context.Context, props todoapp.GoalDependencyNewProps, options ...CallOption) (*todoapp.GoalDependency, error) {
	return one(Call[todoapp.GoalDependencyNewProps, todoapp.GoalDependency](ctx, c, OpGoalDependencyNew, props, options...))
}

func (c *todoClient) GoalEntityTagNew(ctx context.Context, props todoapp.GoalEntityTagNewProps, options ...CallOption) (*todoapp.GoalEntityTag, error) {
	return one(Call[todoapp.GoalEntityTagNewProps, todoapp.GoalEntityTag](ctx, c, OpGoalEntityTagNew, props, options...))
}

func (c *todoClient) TimeUtilityFunctionNew(ctx context.Context, props todoapp.TimeUtilityFunctionNewProps, options ...CallOption) (*todoapp.TimeUtilityFunction, error) {
	return one(Call[todoapp.TimeUtilityFunctionNewProps, todoapp.TimeUtilityFunction](ctx, c, OpTimeUtilityFunctionNew, props, options...))
}

func (c *todoClient) UserGeneratedCodeNew(ctx context.Context, props todoapp.UserGeneratedCodeNewProps, options ...CallOption) (*todoapp.UserGeneratedCode, error) {
	return one(Call[todoapp.UserGeneratedCodeNewProps, todoapp.UserGeneratedCode](ctx, c, OpUserGeneratedCodeNew, props, options...))
}

func (c *todoClient) GoalTemplateNew(ctx context.Context, props todoapp.GoalTemplateNewProps, options ...CallOption) (*todoapp.GoalTemplateData, error) {
	return one(Call[todoapp.GoalTemplateNewProps, todoapp.GoalTemplateData](ctx, c, OpGoalTemplateNew, props, options...))
}

func (c *todoClient) GoalTemplateDataNew(ctx context.Context, props todoapp.GoalTemplateDataNewProps, options ...CallOption) (*todoapp.GoalTemplateData, error) {
	return one(Call[todoapp.GoalTemplateDataNewProps, todoapp.GoalTemplateData](ctx, c, OpGoalTemplateDataNew, props, options...))
}

func (c *todoClient) GoalTemplatePatternNew(ctx context.Context, props todoapp.GoalTemplatePatternNewProps, options ...CallOption) (*todoapp.GoalTemplatePattern, error) {
	return one(Call[todoapp.GoalTemplatePatternNewProps, todoapp.GoalTemplatePattern](ctx, c, OpGoalTemplatePatternNew, props, options...))
}

func (c *todoClient) NamedEntityNew(ctx context.Context, props todoapp.NamedEntityNewProps, options ...CallOption) (*todoapp.NamedEntity, error) {
	return one(Call[todoapp.NamedEntityNewProps, todoapp.NamedEntity](ctx, c, OpNamedEntityNew, props, options...))
}

func (c *todoClient) NamedEntityDataNew(ctx context.Context, props todoapp.NamedEntityDataNewProps, options ...CallOption) (*todoapp.NamedEntityData, error) {
	return one(Call[todoapp.NamedEntityDataNewProps, todoapp.NamedEntityData](ctx, c, OpNamedEntityDataNew, props, options...))
}

func (c *todoClient) NamedEntityPatternNew(ctx context.Context, props todoapp.NamedEntityPatternNewProps, options ...CallOption) (*todoapp.NamedEntityPattern, error) {
	return one(Call[todoapp.NamedEntityPatternNewProps, todoapp.NamedEntityPattern](ctx, c, OpNamedEntityPatternNew, props, options...))
}

func (c *todoClient) GoalIntentView(ctx context.Context, props todoapp.GoalIntentViewProps, options ...CallOption) ([]todoapp.GoalIntent, error) {
	return many(Call[todoapp.GoalIntentViewProps, []todoapp.GoalIntent](ctx, c, OpGoalIntentView, props, options...))
}

func (c *todoClient) GoalIntentDataView(ctx context.Context, props todoapp.GoalIntentDataViewProps, options ...CallOption) ([]todoapp.GoalIntentData, error) {
	return many(Call[todoapp.GoalIntentDataViewProps, []todoapp.GoalIntentData](ctx, c, OpGoalIntentDataView, props, options...))
}

func (c *todoClient) GoalView(ctx context.Context, props todoapp.GoalViewProps, options ...CallOption) ([]todoapp.Goal, error) {
	return many(Call[todoapp.GoalViewProps, []todoapp.Goal](ctx, c, OpGoalView, props, options...))
}

func (c *todoClient) GoalDataView(ctx context.Context, props todoapp.GoalDataViewProps, options ...CallOption) ([]todoapp.GoalData, error) {
	return many(Call[todoapp.GoalDataViewProps, []todoapp.GoalData](ctx, c, OpGoalDataView, props, options...))
}

func (c *todoClient) GoalEventView(ctx context.Context, props todoapp.GoalEventViewProps, options ...CallOption) ([]todoapp.GoalEvent, error) {
	return many(Call[todoapp.GoalEventViewProps, []todoapp.GoalEvent](ctx, c, OpGoalEventView, props, options...))
}

func (c *todoClient) GoalDependencyView(ctx context.Context, props todoapp.GoalDependencyViewProps, options ...CallOption) ([]todoapp.GoalDependency, error) {
	return many(Call[todoapp.GoalDependencyViewProps, []todoapp.GoalDependency](ctx, c, OpGoalDependencyView, props, options...))
}

func (c *todoClient) GoalEntityTagView(ctx context.Context, props todoapp.GoalEntityTagViewProps, options ...CallOption) ([]todoapp.GoalEntityTag, error) {
	return many(Call[todoapp.GoalEntityTagViewProps, []todoapp.GoalEntityTag](ctx, c, OpGoalEntityTagView, props, options...))
}

func (c *todoClient) GoalTemplateView(ctx context.Context, props todoapp.GoalTemplateViewProps, options ...CallOption) ([]todoapp.GoalTemplate, error) {
	return many(Call[todoapp.GoalTemplateViewProps, []todoapp.GoalTemplate](ctx, c, OpGoalTemplateView, props, options...))
}

func (c *todoClient) GoalTemplateDataView(ctx context.Context, props todoapp.GoalTemplateDataViewProps, options ...CallOption) ([]todoapp.GoalTemplateData, error) {
	return many(Call[todoapp.GoalTemplateDataViewProps, []todoapp.GoalTemplateData](ctx, c, OpGoalTemplateDataView, props, options...))
}

func (c *todoClient) GoalTemplatePatternView(ctx context.Context, props todoapp.GoalTemplatePatternViewProps, options ...CallOption) ([]todoapp.GoalTemplatePattern, error) {
	return many(Call[todoapp.GoalTemplatePatternViewProps, []todoapp.GoalTemplatePattern](ctx, c, OpGoalTemplatePatternView, props, options...))
}

func (c *todoClient) ExternalEventView(ctx context.Context, props todoapp.ExternalEventViewProps, options ...CallOption) ([]todoapp.ExternalEvent, error) {
	return many(Call[todoapp.ExternalEventViewProps, []todoapp.ExternalEvent](ctx, c, OpExternalEventView, props, options...))
}

func (c *todoClient) ExternalEventDataView(ctx context.Context, props todoapp.ExternalEventDataViewProps, options ...CallOption) ([]todoapp.ExternalEventData, error) {
	return many(Call[todoapp.ExternalEventDataViewProps, []todoapp.ExternalEventData](ctx, c, OpExternalEventDataView, props, options...))
}

func (c *todoClient) TimeUtilityFunctionView(ctx context.Context, props todoapp.TimeUtilityFunctionViewProps, options ...CallOption) ([]todoapp.TimeUtilityFunction, error) {
	return many(Call[todoapp.TimeUtilityFunctionViewProps, []todoapp.TimeUtilityFunction](ctx, c, OpTimeUtilityFunctionView, props, options...))
}

func (c *todoClient) UserGeneratedCodeView(ctx context.Context, props todoapp.UserGeneratedCodeViewProps, options ...CallOption) ([]todoapp.UserGeneratedCode, error) {
	return many(Call[todoapp.UserGeneratedCodeViewProps, []todoapp.UserGeneratedCode](ctx, c, OpUserGeneratedCodeView, props, options...))
}

func (c *todoClient) NamedEntityView(ctx context.Context, props todoapp.NamedEntityViewProps, options ...CallOption) ([]todoapp.NamedEntity, error) {
	return many(Call[todoapp.NamedEntityViewProps, []todoapp.NamedEntity](ctx, c, OpNamedEntityView, props, options...))
}

func (c *todoClient) NamedEntityDataView(ctx context.Context, props todoapp.NamedEntityDataViewProps, options ...CallOption) ([]todoapp.NamedEntityData, error) {
	return many(Call[todoapp.NamedEntityDataViewProps, []todoapp.NamedEntityData](ctx, c, OpNamedEntityDataView, props, options...))
}

func (c *todoClient) NamedEntityPatternView(ctx context.Context, props todoapp.NamedEntityPatternViewProps, options ...CallOption) ([]todoapp.NamedEntityPattern, error) {
	return many(Call[todoapp.NamedEntityPatternViewProps, []todoapp.NamedEntityPattern](ctx, c, OpNamedEntityPatternView, props, options...))
}

// Info is only answered by deployments that expose service metadata.
func (c *todoClient) Info(ctx context.Context, options ...CallOption) (*todoapp.Info, error) {
	return one(Call[struct{}, todoapp.Info](ctx, c, OpInfo, struct{}{}, options...))
}
