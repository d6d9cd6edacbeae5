package todoapp

import "encoding/json"

// Request parameter shapes, one per operation. Optional scalars are
// pointers and optional filters are slices. Absent values are left out of
// the request body, an empty non-nil filter is sent as [].

type ExternalEventNewProps struct {
	Name      string `json:"name"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
	APIKey    string `json:"apiKey"`
}

type ExternalEventDataNewProps struct {
	ExternalEventID int64  `json:"externalEventId"`
	Name            string `json:"name"`
	StartTime       int64  `json:"startTime"`
	EndTime         int64  `json:"endTime"`
	Active          bool   `json:"active"`
	APIKey          string `json:"apiKey"`
}

type GoalIntentNewProps struct {
	Name   string `json:"name"`
	APIKey string `json:"apiKey"`
}

type GoalIntentDataNewProps struct {
	GoalIntentID int64  `json:"goalIntentId"`
	Name         string `json:"name"`
	Active       bool   `json:"active"`
	APIKey       string `json:"apiKey"`
}

type GoalNewProps struct {
	Name                  string    `json:"name"`
	DurationEstimate      *int64    `json:"durationEstimate,omitempty"`
	TimeUtilityFunctionID int64     `json:"timeUtilityFunctionId"`
	GoalIntentID          *int64    `json:"goalIntentId,omitempty"`
	TimeSpan              *TimeSpan `json:"timeSpan,omitempty"`
	APIKey                string    `json:"apiKey"`
}

type GoalDataNewProps struct {
	GoalID                int64              `json:"goalId"`
	Name                  string             `json:"name"`
	DurationEstimate      *int64             `json:"durationEstimate,omitempty"`
	TimeUtilityFunctionID int64              `json:"timeUtilityFunctionId"`
	Status                GoalDataStatusKind `json:"status"`
	APIKey                string             `json:"apiKey"`
}

type GoalEventNewProps struct {
	GoalID    int64  `json:"goalId"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
	Active    bool   `json:"active"`
	APIKey    string `json:"apiKey"`
}

type GoalDependencyNewProps struct {
	GoalID          int64  `json:"goalId"`
	DependentGoalID int64  `json:"dependentGoalId"`
	Active          bool   `json:"active"`
	APIKey          string `json:"apiKey"`
}

type GoalEntityTagNewProps struct {
	GoalID        int64  `json:"goalId"`
	NamedEntityID int64  `json:"namedEntityId"`
	Active        bool   `json:"active"`
	APIKey        string `json:"apiKey"`
}

type TimeUtilityFunctionNewProps struct {
	StartTimes []int64 `json:"startTimes"`
	Utils      []int64 `json:"utils"`
	APIKey     string  `json:"apiKey"`
}

// MarshalJSON sends nil start times and utils as empty arrays.
func (p TimeUtilityFunctionNewProps) MarshalJSON() ([]byte, error) {
	type plain TimeUtilityFunctionNewProps

	if p.StartTimes == nil {
		p.StartTimes = []int64{}
	}
	if p.Utils == nil {
		p.Utils = []int64{}
	}

	return json.Marshal(plain(p))
}

type UserGeneratedCodeNewProps struct {
	SourceCode string    `json:"sourceCode"`
	SourceLang string    `json:"sourceLang"`
	WasmCache  ByteArray `json:"wasmCache"`
	APIKey     string    `json:"apiKey"`
}

type GoalTemplateNewProps struct {
	Name                string `json:"name"`
	Utility             int64  `json:"utility"`
	DurationEstimate    *int64 `json:"durationEstimate,omitempty"`
	UserGeneratedCodeID int64  `json:"userGeneratedCodeId"`
	APIKey              string `json:"apiKey"`
}

type GoalTemplateDataNewProps struct {
	GoalTemplateID      int64  `json:"goalTemplateId"`
	Name                string `json:"name"`
	Utility             int64  `json:"utility"`
	DurationEstimate    *int64 `json:"durationEstimate,omitempty"`
	UserGeneratedCodeID int64  `json:"userGeneratedCodeId"`
	Active              bool   `json:"active"`
	APIKey              string `json:"apiKey"`
}

type GoalTemplatePatternNewProps struct {
	GoalTemplateID int64  `json:"goalTemplateId"`
	Pattern        string `json:"pattern"`
	Active         bool   `json:"active"`
	APIKey         string `json:"apiKey"`
}

type NamedEntityNewProps struct {
	Name   string          `json:"name"`
	Kind   NamedEntityKind `json:"kind"`
	APIKey string          `json:"apiKey"`
}

type NamedEntityDataNewProps struct {
	NamedEntityID int64           `json:"namedEntityId"`
	Name          string          `json:"name"`
	Kind          NamedEntityKind `json:"kind"`
	Active        bool            `json:"active"`
	APIKey        string          `json:"apiKey"`
}

type NamedEntityPatternNewProps struct {
	NamedEntityID int64  `json:"namedEntityId"`
	Pattern       string `json:"pattern"`
	Active        bool   `json:"active"`
	APIKey        string `json:"apiKey"`
}

type GoalIntentViewProps struct {
	GoalIntentID    []int64 `json:"goalIntentId,omitzero"`
	MinCreationTime *int64  `json:"minCreationTime,omitempty"`
	MaxCreationTime *int64  `json:"maxCreationTime,omitempty"`
	CreatorUserID   []int64 `json:"creatorUserId,omitzero"`
	APIKey          string  `json:"apiKey"`
}

type GoalIntentDataViewProps struct {
	GoalIntentDataID []int64  `json:"goalIntentDataId,omitzero"`
	MinCreationTime  *int64   `json:"minCreationTime,omitempty"`
	MaxCreationTime  *int64   `json:"maxCreationTime,omitempty"`
	CreatorUserID    []int64  `json:"creatorUserId,omitzero"`
	GoalIntentID     []int64  `json:"goalIntentId,omitzero"`
	Name             []string `json:"name,omitzero"`
	Responded        *bool    `json:"responded,omitempty"`
	Active           *bool    `json:"active,omitempty"`
	OnlyRecent       bool     `json:"onlyRecent"`
	APIKey           string   `json:"apiKey"`
}

type GoalViewProps struct {
	GoalID          []int64 `json:"goalId,omitzero"`
	MinCreationTime *int64  `json:"minCreationTime,omitempty"`
	MaxCreationTime *int64  `json:"maxCreationTime,omitempty"`
	CreatorUserID   []int64 `json:"creatorUserId,omitzero"`
	GoalIntentID    []int64 `json:"goalIntentId,omitzero"`
	APIKey          string  `json:"apiKey"`
}

type GoalDataViewProps struct {
	GoalDataID            []int64              `json:"goalDataId,omitzero"`
	MinCreationTime       *int64               `json:"minCreationTime,omitempty"`
	MaxCreationTime       *int64               `json:"maxCreationTime,omitempty"`
	CreatorUserID         []int64              `json:"creatorUserId,omitzero"`
	GoalID                []int64              `json:"goalId,omitzero"`
	Name                  []string             `json:"name,omitzero"`
	MinDurationEstimate   *int64               `json:"minDurationEstimate,omitempty"`
	MaxDurationEstimate   *int64               `json:"maxDurationEstimate,omitempty"`
	Concrete              *bool                `json:"concrete,omitempty"`
	TimeUtilityFunctionID []int64              `json:"timeUtilityFunctionId,omitzero"`
	Status                []GoalDataStatusKind `json:"status,omitzero"`
	OnlyRecent            bool                 `json:"onlyRecent"`
	GoalIntentID          []int64              `json:"goalIntentId,omitzero"`
	Scheduled             *bool                `json:"scheduled,omitempty"`
	APIKey                string               `json:"apiKey"`
}

type GoalEventViewProps struct {
	GoalEventID     []int64 `json:"goalEventId,omitzero"`
	MinCreationTime *int64  `json:"minCreationTime,omitempty"`
	MaxCreationTime *int64  `json:"maxCreationTime,omitempty"`
	CreatorUserID   []int64 `json:"creatorUserId,omitzero"`
	GoalID          []int64 `json:"goalId,omitzero"`
	MinStartTime    *int64  `json:"minStartTime,omitempty"`
	MaxStartTime    *int64  `json:"maxStartTime,omitempty"`
	MinEndTime      *int64  `json:"minEndTime,omitempty"`
	MaxEndTime      *int64  `json:"maxEndTime,omitempty"`
	Active          *bool   `json:"active,omitempty"`
	OnlyRecent      bool    `json:"onlyRecent"`
	APIKey          string  `json:"apiKey"`
}

type GoalDependencyViewProps struct {
	GoalDependencyID []int64 `json:"goalDependencyId,omitzero"`
	MinCreationTime  *int64  `json:"minCreationTime,omitempty"`
	MaxCreationTime  *int64  `json:"maxCreationTime,omitempty"`
	CreatorUserID    []int64 `json:"creatorUserId,omitzero"`
	GoalID           []int64 `json:"goalId,omitzero"`
	DependentGoalID  []int64 `json:"dependentGoalId,omitzero"`
	Active           *bool   `json:"active,omitempty"`
	OnlyRecent       bool    `json:"onlyRecent"`
	APIKey           string  `json:"apiKey"`
}

type GoalTemplateViewProps struct {
	GoalTemplateID  []int64 `json:"goalTemplateId,omitzero"`
	MinCreationTime *int64  `json:"minCreationTime,omitempty"`
	MaxCreationTime *int64  `json:"maxCreationTime,omitempty"`
	CreatorUserID   []int64 `json:"creatorUserId,omitzero"`
	APIKey          string  `json:"apiKey"`
}

type GoalTemplateDataViewProps struct {
	GoalTemplateDataID  []int64  `json:"goalTemplateDataId,omitzero"`
	MinCreationTime     *int64   `json:"minCreationTime,omitempty"`
	MaxCreationTime     *int64   `json:"maxCreationTime,omitempty"`
	CreatorUserID       []int64  `json:"creatorUserId,omitzero"`
	GoalTemplateID      []int64  `json:"goalTemplateId,omitzero"`
	Name                []string `json:"name,omitzero"`
	MinUtility          *int64   `json:"minUtility,omitempty"`
	MaxUtility          *int64   `json:"maxUtility,omitempty"`
	MinDurationEstimate *int64   `json:"minDurationEstimate,omitempty"`
	MaxDurationEstimate *int64   `json:"maxDurationEstimate,omitempty"`
	Concrete            *bool    `json:"concrete,omitempty"`
	UserGeneratedCodeID []int64  `json:"userGeneratedCodeId,omitzero"`
	Active              *bool    `json:"active,omitempty"`
	OnlyRecent          bool     `json:"onlyRecent"`
	APIKey              string   `json:"apiKey"`
}

type GoalTemplatePatternViewProps struct {
	GoalTemplatePatternID []int64  `json:"goalTemplatePatternId,omitzero"`
	MinCreationTime       *int64   `json:"minCreationTime,omitempty"`
	MaxCreationTime       *int64   `json:"maxCreationTime,omitempty"`
	CreatorUserID         []int64  `json:"creatorUserId,omitzero"`
	GoalTemplateID        []int64  `json:"goalTemplateId,omitzero"`
	Pattern               []string `json:"pattern,omitzero"`
	Active                *bool    `json:"active,omitempty"`
	OnlyRecent            bool     `json:"onlyRecent"`
	APIKey                string   `json:"apiKey"`
}

type ExternalEventViewProps struct {
	ExternalEventID []int64 `json:"externalEventId,omitzero"`
	MinCreationTime *int64  `json:"minCreationTime,omitempty"`
	MaxCreationTime *int64  `json:"maxCreationTime,omitempty"`
	CreatorUserID   []int64 `json:"creatorUserId,omitzero"`
	APIKey          string  `json:"apiKey"`
}

type ExternalEventDataViewProps struct {
	ExternalEventDataID []int64  `json:"externalEventDataId,omitzero"`
	MinCreationTime     *int64   `json:"minCreationTime,omitempty"`
	MaxCreationTime     *int64   `json:"maxCreationTime,omitempty"`
	CreatorUserID       []int64  `json:"creatorUserId,omitzero"`
	ExternalEventID     []int64  `json:"externalEventId,omitzero"`
	Name                []string `json:"name,omitzero"`
	MinStartTime        *int64   `json:"minStartTime,omitempty"`
	MaxStartTime        *int64   `json:"maxStartTime,omitempty"`
	MinEndTime          *int64   `json:"minEndTime,omitempty"`
	MaxEndTime          *int64   `json:"maxEndTime,omitempty"`
	Active              *bool    `json:"active,omitempty"`
	OnlyRecent          bool     `json:"onlyRecent"`
	APIKey              string   `json:"apiKey"`
}

type TimeUtilityFunctionViewProps struct {
	TimeUtilityFunctionID []int64 `json:"timeUtilityFunctionId,omitzero"`
	MinCreationTime       *int64  `json:"minCreationTime,omitempty"`
	MaxCreationTime       *int64  `json:"maxCreationTime,omitempty"`
	CreatorUserID         []int64 `json:"creatorUserId,omitzero"`
	APIKey                string  `json:"apiKey"`
}

type UserGeneratedCodeViewProps struct {
	UserGeneratedCodeID []int64  `json:"userGeneratedCodeId,omitzero"`
	MinCreationTime     *int64   `json:"minCreationTime,omitempty"`
	MaxCreationTime     *int64   `json:"maxCreationTime,omitempty"`
	CreatorUserID       []int64  `json:"creatorUserId,omitzero"`
	SourceLang          []string `json:"sourceLang,omitzero"`
	APIKey              string   `json:"apiKey"`
}

type NamedEntityViewProps struct {
	NamedEntityID   []int64 `json:"namedEntityId,omitzero"`
	MinCreationTime *int64  `json:"minCreationTime,omitempty"`
	MaxCreationTime *int64  `json:"maxCreationTime,omitempty"`
	CreatorUserID   []int64 `json:"creatorUserId,omitzero"`
	APIKey          string  `json:"apiKey"`
}

type NamedEntityDataViewProps struct {
	NamedEntityDataID []int64           `json:"namedEntityDataId,omitzero"`
	MinCreationTime   *int64            `json:"minCreationTime,omitempty"`
	MaxCreationTime   *int64            `json:"maxCreationTime,omitempty"`
	CreatorUserID     []int64           `json:"creatorUserId,omitzero"`
	NamedEntityID     []int64           `json:"namedEntityId,omitzero"`
	Name              []string          `json:"name,omitzero"`
	Kind              []NamedEntityKind `json:"kind,omitzero"`
	Active            *bool             `json:"active,omitempty"`
	OnlyRecent        bool              `json:"onlyRecent"`
	APIKey            string            `json:"apiKey"`
}

type NamedEntityPatternViewProps struct {
	NamedEntityPatternID []int64  `json:"namedEntityPatternId,omitzero"`
	MinCreationTime      *int64   `json:"minCreationTime,omitempty"`
	MaxCreationTime      *int64   `json:"maxCreationTime,omitempty"`
	CreatorUserID        []int64  `json:"creatorUserId,omitzero"`
	NamedEntityID        []int64  `json:"namedEntityId,omitzero"`
	Pattern              []string `json:"pattern,omitzero"`
	Active               *bool    `json:"active,omitempty"`
	OnlyRecent           bool     `json:"onlyRecent"`
	APIKey               string   `json:"apiKey"`
}

type GoalEntityTagViewProps struct {
	GoalEntityTagID []int64 `json:"goalEntityTagId,omitzero"`
	MinCreationTime *int64  `json:"minCreationTime,omitempty"`
	MaxCreationTime *int64  `json:"maxCreationTime,omitempty"`
	CreatorUserID   []int64 `json:"creatorUserId,omitzero"`
	NamedEntityID   []int64 `json:"namedEntityId,omitzero"`
	GoalID          []int64 `json:"goalId,omitzero"`
	Active          *bool   `json:"active,omitempty"`
	OnlyRecent      bool    `json:"onlyRecent"`
	APIKey          string  `json:"apiKey"`
}

// Ptr returns a pointer to v, for filling in optional fields.
func Ptr[T any](v T) *T {
	return &v
}
