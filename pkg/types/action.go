package types

// Declarative action keys. The order of ActionKinds is the order in which
// the keys of a single action are expanded into work items.
const (
	ActionCopyFrom           = "copyFrom"
	ActionBeSubsetOfJSONFile = "beSubsetOfJsonFile"
	ActionChmod              = "chmod"
	ActionHaveJSONPathValues = "haveJsonPathValues"
)

// ActionKinds lists every action key in expansion order
var ActionKinds = []string{
	ActionCopyFrom,
	ActionBeSubsetOfJSONFile,
	ActionChmod,
	ActionHaveJSONPathValues,
}

// Action declares one desired end state for Target. More than one key may
// be set; each contributes its own work item.
type Action struct {
	Target             string          `json:"target" validate:"required"`
	CopyFrom           string          `json:"copyFrom,omitempty"`
	BeSubsetOfJSONFile string          `json:"beSubsetOfJsonFile,omitempty"`
	Chmod              string          `json:"chmod,omitempty" validate:"omitempty,octalmode"`
	HaveJSONPathValues []JSONPathValue `json:"haveJsonPathValues,omitempty" validate:"dive"`
	Message            string          `json:"message,omitempty"`
}

// Kinds returns the action keys present on this action, in expansion order
func (a Action) Kinds() []string {
	var kinds []string
	for _, kind := range ActionKinds {
		if a.Has(kind) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// Has reports whether the given action key is set
func (a Action) Has(kind string) bool {
	switch kind {
	case ActionCopyFrom:
		return a.CopyFrom != ""
	case ActionBeSubsetOfJSONFile:
		return a.BeSubsetOfJSONFile != ""
	case ActionChmod:
		return a.Chmod != ""
	case ActionHaveJSONPathValues:
		return len(a.HaveJSONPathValues) > 0
	default:
		return false
	}
}
