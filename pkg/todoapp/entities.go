package todoapp

// Times are milliseconds since the unix epoch and all identifiers are
// opaque numbers assigned by the backend.

type GoalIntent struct {
	GoalIntentID  int64 `json:"goalIntentId"`
	CreationTime  int64 `json:"creationTime"`
	CreatorUserID int64 `json:"creatorUserId"`
}

type GoalIntentData struct {
	GoalIntentDataID int64      `json:"goalIntentDataId"`
	CreationTime     int64      `json:"creationTime"`
	CreatorUserID    int64      `json:"creatorUserId"`
	GoalIntent       GoalIntent `json:"goalIntent"`
	Name             string     `json:"name"`
	Active           bool       `json:"active"`
}

type Goal struct {
	GoalID        int64       `json:"goalId"`
	CreationTime  int64       `json:"creationTime"`
	CreatorUserID int64       `json:"creatorUserId"`
	Intent        *GoalIntent `json:"intent,omitempty"`
}

// TimeUtilityFunction is a piecewise utility curve. StartTimes[i] is the
// time from which Utils[i] applies.
type TimeUtilityFunction struct {
	TimeUtilityFunctionID int64   `json:"timeUtilityFunctionId"`
	CreationTime          int64   `json:"creationTime"`
	CreatorUserID         int64   `json:"creatorUserId"`
	StartTimes            []int64 `json:"startTimes"`
	Utils                 []int64 `json:"utils"`
}

type UserGeneratedCode struct {
	UserGeneratedCodeID int64     `json:"userGeneratedCodeId"`
	CreationTime        int64     `json:"creationTime"`
	CreatorUserID       int64     `json:"creatorUserId"`
	SourceCode          string    `json:"sourceCode"`
	SourceLang          string    `json:"sourceLang"`
	WasmCache           ByteArray `json:"wasmCache"`
}

type GoalData struct {
	GoalDataID          int64               `json:"goalDataId"`
	CreationTime        int64               `json:"creationTime"`
	CreatorUserID       int64               `json:"creatorUserId"`
	Goal                Goal                `json:"goal"`
	Name                string              `json:"name"`
	DurationEstimate    *int64              `json:"durationEstimate"`
	TimeUtilityFunction TimeUtilityFunction `json:"timeUtilityFunction"`
	Status              GoalDataStatusKind  `json:"status"`
}

type GoalEvent struct {
	GoalEventID   int64 `json:"goalEventId"`
	CreationTime  int64 `json:"creationTime"`
	CreatorUserID int64 `json:"creatorUserId"`
	Goal          Goal  `json:"goal"`
	StartTime     int64 `json:"startTime"`
	EndTime       int64 `json:"endTime"`
	Active        bool  `json:"active"`
}

type GoalDependency struct {
	GoalDependencyID int64 `json:"goalDependencyId"`
	CreationTime     int64 `json:"creationTime"`
	CreatorUserID    int64 `json:"creatorUserId"`
	Goal             Goal  `json:"goal"`
	DependentGoal    Goal  `json:"dependent_goal"`
	Active           bool  `json:"active"`
}

type ExternalEvent struct {
	ExternalEventID int64 `json:"externalEventId"`
	CreationTime    int64 `json:"creationTime"`
	CreatorUserID   int64 `json:"creatorUserId"`
}

type ExternalEventData struct {
	ExternalEventDataID int64         `json:"externalEventDataId"`
	CreationTime        int64         `json:"creationTime"`
	CreatorUserID       int64         `json:"creatorUserId"`
	ExternalEvent       ExternalEvent `json:"externalEvent"`
	Name                string        `json:"name"`
	StartTime           int64         `json:"startTime"`
	EndTime             int64         `json:"endTime"`
	Active              bool          `json:"active"`
}

type GoalTemplate struct {
	GoalTemplateID int64 `json:"goalTemplateId"`
	CreationTime   int64 `json:"creationTime"`
	CreatorUserID  int64 `json:"creatorUserId"`
}

type GoalTemplateData struct {
	GoalTemplateDataID int64             `json:"goalTemplateDataId"`
	CreationTime       int64             `json:"creationTime"`
	CreatorUserID      int64             `json:"creatorUserId"`
	GoalTemplate       GoalTemplate      `json:"goalTemplate"`
	Name               string            `json:"name"`
	Utility            int64             `json:"utility"`
	DurationEstimate   *int64            `json:"durationEstimate"`
	UserGeneratedCode  UserGeneratedCode `json:"userGeneratedCode"`
	Active             bool              `json:"active"`
}

type GoalTemplatePattern struct {
	GoalTemplatePatternID int64        `json:"goalTemplatePatternId"`
	CreationTime          int64        `json:"creationTime"`
	CreatorUserID         int64        `json:"creatorUserId"`
	GoalTemplate          GoalTemplate `json:"goalTemplate"`
	Pattern               string       `json:"pattern"`
	Active                bool         `json:"active"`
}

type NamedEntity struct {
	NamedEntityID int64 `json:"namedEntityId"`
	CreationTime  int64 `json:"creationTime"`
	CreatorUserID int64 `json:"creatorUserId"`
}

type NamedEntityData struct {
	NamedEntityDataID int64           `json:"namedEntityDataId"`
	CreationTime      int64           `json:"creationTime"`
	CreatorUserID     int64           `json:"creatorUserId"`
	NamedEntity       NamedEntity     `json:"namedEntity"`
	Name              string          `json:"name"`
	Kind              NamedEntityKind `json:"kind"`
	Active            bool            `json:"active"`
}

type NamedEntityPattern struct {
	NamedEntityPatternID int64       `json:"namedEntityPatternId"`
	CreationTime         int64       `json:"creationTime"`
	CreatorUserID        int64       `json:"creatorUserId"`
	NamedEntity          NamedEntity `json:"namedEntity"`
	Pattern              string      `json:"pattern"`
	Active               bool        `json:"active"`
}

type GoalEntityTag struct {
	GoalEntityTagID int64       `json:"goalEntityTagId"`
	CreationTime    int64       `json:"creationTime"`
	CreatorUserID   int64       `json:"creatorUserId"`
	NamedEntity     NamedEntity `json:"namedEntity"`
	Goal            Goal        `json:"goal"`
	Active          bool        `json:"active"`
}

// Info describes a deployment. Not every deployment exposes it.
type Info struct {
	Service               string `json:"service"`
	VersionMajor          int64  `json:"versionMajor"`
	VersionMinor          int64  `json:"versionMinor"`
	VersionRev            int64  `json:"versionRev"`
	AppPubOrigin          string `json:"appPubOrigin"`
	AuthPubOrigin         string `json:"authPubOrigin"`
	AuthAuthenticatorHref string `json:"authAuthenticatorHref"`
}
