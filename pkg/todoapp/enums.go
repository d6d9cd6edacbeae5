package todoapp

// GoalDataStatusKind is the lifecycle state of a goal's latest data revision.
type GoalDataStatusKind string

const (
	GoalDataStatusSucceed GoalDataStatusKind = "SUCCEED"
	GoalDataStatusFail    GoalDataStatusKind = "FAIL"
	GoalDataStatusCancel  GoalDataStatusKind = "CANCEL"
	GoalDataStatusPending GoalDataStatusKind = "PENDING"
)

var ValidGoalDataStatusKinds = []GoalDataStatusKind{
	GoalDataStatusSucceed,
	GoalDataStatusFail,
	GoalDataStatusCancel,
	GoalDataStatusPending,
}

func (k GoalDataStatusKind) IsValid() bool {
	for idx := range ValidGoalDataStatusKinds {
		if ValidGoalDataStatusKinds[idx] == k {
			return true
		}
	}
	return false
}

// NamedEntityKind is the category of an extracted named entity.
type NamedEntityKind string

const (
	NamedEntityDate     NamedEntityKind = "DATE"
	NamedEntityTime     NamedEntityKind = "TIME"
	NamedEntityMoney    NamedEntityKind = "MONEY"
	NamedEntityURL      NamedEntityKind = "URL"
	NamedEntityPerson   NamedEntityKind = "PERSON"
	NamedEntityLocation NamedEntityKind = "LOCATION"
	NamedEntityHashtag  NamedEntityKind = "HASHTAG"
	NamedEntityEmoticon NamedEntityKind = "EMOTICON"
	NamedEntityEmoji    NamedEntityKind = "EMOJI"
	NamedEntityPropN    NamedEntityKind = "PROPN"
	NamedEntityVerb     NamedEntityKind = "VERB"
)

var ValidNamedEntityKinds = []NamedEntityKind{
	NamedEntityDate,
	NamedEntityTime,
	NamedEntityMoney,
	NamedEntityURL,
	NamedEntityPerson,
	NamedEntityLocation,
	NamedEntityHashtag,
	NamedEntityEmoticon,
	NamedEntityEmoji,
	NamedEntityPropN,
	NamedEntityVerb,
}

func (k NamedEntityKind) IsValid() bool {
	for idx := range ValidNamedEntityKinds {
		if ValidNamedEntityKinds[idx] == k {
			return true
		}
	}
	return false
}
