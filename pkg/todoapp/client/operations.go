package client

// Operation names a backend endpoint and the shape of its response.
type Operation struct {
	Name     string
	Path     string
	Response string
	Many     bool

	// unscoped operations are not placed below the deployment's path prefix
	unscoped bool
}

func (op Operation) Scoped() bool {
	return !op.unscoped
}

var (
	OpExternalEventNew        = Operation{Name: "externalEventNew", Path: "external_event/new", Response: "ExternalEventData"}
	OpExternalEventDataNew    = Operation{Name: "externalEventDataNew", Path: "external_event_data/new", Response: "ExternalEventData"}
	OpGoalIntentNew           = Operation{Name: "goalIntentNew", Path: "goal_intent/new", Response: "GoalIntentData"}
	OpGoalIntentDataNew       = Operation{Name: "goalIntentDataNew", Path: "goal_intent_data/new", Response: "GoalIntentData"}
	OpGoalNew                 = Operation{Name: "goalNew", Path: "goal/new", Response: "GoalData"}
	OpGoalDataNew             = Operation{Name: "goalDataNew", Path: "goal_data/new", Response: "GoalData"}
	OpGoalEventNew            = Operation{Name: "goalEventNew", Path: "goal_event/new", Response: "GoalEvent"}
	OpGoalDependencyNew       = Operation{Name: "goalDependencyNew", Path: "goal_dependency/new", Response: "GoalDependency"}
	OpGoalEntityTagNew        = Operation{Name: "goalEntityTagNew", Path: "goal_entity_tag/new", Response: "GoalEntityTag"}
	OpTimeUtilityFunctionNew  = Operation{Name: "timeUtilityFunctionNew", Path: "time_utility_function/new", Response: "TimeUtilityFunction"}
	OpUserGeneratedCodeNew    = Operation{Name: "userGeneratedCodeNew", Path: "user_generated_code/new", Response: "UserGeneratedCode"}
	OpGoalTemplateNew         = Operation{Name: "goalTemplateNew", Path: "goal_template/new", Response: "GoalTemplateData"}
	OpGoalTemplateDataNew     = Operation{Name: "goalTemplateDataNew", Path: "goal_template_data/new", Response: "GoalTemplateData"}
	OpGoalTemplatePatternNew  = Operation{Name: "goalTemplatePatternNew", Path: "goal_template_pattern/new", Response: "GoalTemplatePattern"}
	OpNamedEntityNew          = Operation{Name: "namedEntityNew", Path: "named_entity/new", Response: "NamedEntity"}
	OpNamedEntityDataNew      = Operation{Name: "namedEntityDataNew", Path: "named_entity_data/new", Response: "NamedEntityData"}
	OpNamedEntityPatternNew   = Operation{Name: "namedEntityPatternNew", Path: "named_entity_pattern/new", Response: "NamedEntityPattern"}
	OpGoalIntentView          = Operation{Name: "goalIntentView", Path: "goal_intent/view", Response: "GoalIntent", Many: true}
	OpGoalIntentDataView      = Operation{Name: "goalIntentDataView", Path: "goal_intent_data/view", Response: "GoalIntentData", Many: true}
	OpGoalView                = Operation{Name: "goalView", Path: "goal/view", Response: "Goal", Many: true}
	OpGoalDataView            = Operation{Name: "goalDataView", Path: "goal_data/view", Response: "GoalData", Many: true}
	OpGoalEventView           = Operation{Name: "goalEventView", Path: "goal_event/view", Response: "GoalEvent", Many: true}
	OpGoalDependencyView      = Operation{Name: "goalDependencyView", Path: "goal_dependency/view", Response: "GoalDependency", Many: true}
	OpGoalEntityTagView       = Operation{Name: "goalEntityTagView", Path: "goal_entity_tag/view", Response: "GoalEntityTag", Many: true}
	OpGoalTemplateView        = Operation{Name: "goalTemplateView", Path: "goal_template/view", Response: "GoalTemplate", Many: true}
	OpGoalTemplateDataView    = Operation{Name: "goalTemplateDataView", Path: "goal_template_data/view", Response: "GoalTemplateData", Many: true}
	OpGoalTemplatePatternView = Operation{Name: "goalTemplatePatternView", Path: "goal_template_pattern/view", Response: "GoalTemplatePattern", Many: true}
	OpExternalEventView       = Operation{Name: "externalEventView", Path: "external_event/view", Response: "ExternalEvent", Many: true}
	OpExternalEventDataView   = Operation{Name: "externalEventDataView", Path: "external_event_data/view", Response: "ExternalEventData", Many: true}
	OpTimeUtilityFunctionView = Operation{Name: "timeUtilityFunctionView", Path: "time_utility_function/view", Response: "TimeUtilityFunction", Many: true}
	OpUserGeneratedCodeView   = Operation{Name: "userGeneratedCodeView", Path: "user_generated_code/view", Response: "UserGeneratedCode", Many: true}
	OpNamedEntityView         = Operation{Name: "namedEntityView", Path: "named_entity/view", Response: "NamedEntity", Many: true}
	OpNamedEntityDataView     = Operation{Name: "namedEntityDataView", Path: "named_entity_data/view", Response: "NamedEntityData", Many: true}
	OpNamedEntityPatternView  = Operation{Name: "namedEntityPatternView", Path: "named_entity_pattern/view", Response: "NamedEntityPattern", Many: true}
	OpInfo                    = Operation{Name: "info", Path: "info", Response: "Info", unscoped: true}
)

var operations = []Operation{
	OpExternalEventNew,
	OpExternalEventDataNew,
	OpGoalIntentNew,
	OpGoalIntentDataNew,
	OpGoalNew,
	OpGoalDataNew,
	OpGoalEventNew,
	OpGoalDependencyNew,
	OpGoalEntityTagNew,
	OpTimeUtilityFunctionNew,
	OpUserGeneratedCodeNew,
	OpGoalTemplateNew,
	OpGoalTemplateDataNew,
	OpGoalTemplatePatternNew,
	OpNamedEntityNew,
	OpNamedEntityDataNew,
	OpNamedEntityPatternNew,
	OpGoalIntentView,
	OpGoalIntentDataView,
	OpGoalView,
	OpGoalDataView,
	OpGoalEventView,
	OpGoalDependencyView,
	OpGoalEntityTagView,
	OpGoalTemplateView,
	OpGoalTemplateDataView,
	OpGoalTemplatePatternView,
	OpExternalEventView,
	OpExternalEventDataView,
	OpTimeUtilityFunctionView,
	OpUserGeneratedCodeView,
	OpNamedEntityView,
	OpNamedEntityDataView,
	OpNamedEntityPatternView,
	OpInfo,
}

// Operations returns a copy of the operation table.
func Operations() []Operation {
	ops := make([]Operation, len(operations))
	copy(ops, operations)
	return ops
}

// Lookup finds an operation by name ("goalNew") or path ("goal/new").
func Lookup(nameOrPath string) (Operation, bool) {
	for _, op := range operations {
		if op.Name == nameOrPath || op.Path == nameOrPath {
			return op, true
		}
	}
	return Operation{}, false
}
