package client

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestOperationTableIsComplete(t *testing.T) {
	is := is.New(t)

	ops := Operations()
	is.Equal(len(ops), 35) // 17 creations, 17 views and info

	names := map[string]bool{}
	paths := map[string]bool{}

	for _, op := range ops {
		is.True(!names[op.Name]) // operation names should be unique
		is.True(!paths[op.Path]) // operation paths should be unique
		names[op.Name] = true
		paths[op.Path] = true

		if strings.HasSuffix(op.Path, "/view") {
			is.True(op.Many) // views should return lists
		}
		if strings.HasSuffix(op.Path, "/new") {
			is.True(!op.Many) // creations should return a single value
		}
	}
}

func TestGoalEntityTagViewHasItsOwnPath(t *testing.T) {
	is := is.New(t)

	op, ok := Lookup("goalEntityTagView")
	is.True(ok)
	is.Equal(op.Path, "goal_entity_tag/view")
}

func TestLookupByPath(t *testing.T) {
	is := is.New(t)

	op, ok := Lookup("time_utility_function/new")
	is.True(ok)
	is.Equal(op.Name, "timeUtilityFunctionNew")

	_, ok = Lookup("goal/delete")
	is.True(!ok)
}

func TestOnlyInfoIsUnscoped(t *testing.T) {
	is := is.New(t)

	for _, op := range Operations() {
		is.Equal(op.Scoped(), op.Name != "info")
	}
}

func TestOperationsReturnsCopy(t *testing.T) {
	is := is.New(t)

	ops := Operations()
	ops[0].Path = "changed"

	is.Equal(Operations()[0].Path, "external_event/new")
}
