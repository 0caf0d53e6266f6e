package types

// Trigger is one node of a unit's predicate tree. Every field is optional.
// The base predicates (ItShould, RunningOnPlatform, HaveEnvironmentVariable,
// HaveJSONPathValues, HaveLineContaining) are OR-combined; And, Or and Not
// refine that result. A node with nothing set at all is vacuously true.
type Trigger struct {
	ItShould                string               `json:"itShould,omitempty"`
	RunningOnPlatform       []string             `json:"runningOnPlatform,omitempty"`
	HaveEnvironmentVariable *EnvironmentVariable `json:"haveEnvironmentVariable,omitempty"`
	HaveJSONPathValues      []JSONPathValue      `json:"haveJsonPathValues,omitempty" validate:"dive"`
	HaveLineContaining      []string             `json:"haveLineContaining,omitempty"`

	And []Trigger `json:"and,omitempty" validate:"dive"`
	Or  []Trigger `json:"or,omitempty" validate:"dive"`
	Not bool      `json:"not,omitempty"`

	// Target is resolved against the target root. Sub-triggers inherit the
	// parent's resolved target unless they set their own.
	Target string `json:"target,omitempty"`
}

// HasBasePredicate reports whether any base predicate key is present
func (t Trigger) HasBasePredicate() bool {
	return t.ItShould != "" ||
		t.RunningOnPlatform != nil ||
		t.HaveEnvironmentVariable != nil ||
		t.HaveJSONPathValues != nil ||
		t.HaveLineContaining != nil
}

// IsVacuous reports whether the trigger carries neither predicates nor
// combinators
func (t Trigger) IsVacuous() bool {
	return !t.HasBasePredicate() && t.And == nil && t.Or == nil && !t.Not
}

// EnvironmentVariable names a variable that must be set, optionally to a
// specific value
type EnvironmentVariable struct {
	Name  string  `json:"name" validate:"required"`
	Value *string `json:"value,omitempty"`
}

// JSONPathValue pairs a JSONPath expression ("$.a.b[0]") with the value
// expected at that location
type JSONPathValue struct {
	Path  string      `json:"path" validate:"required,jsonpath"`
	Value interface{} `json:"value"`
}
