package types

// UnitConfig is the decoded content of a unit's configuration file
type UnitConfig struct {
	Message  string    `json:"message,omitempty"`
	Triggers []Trigger `json:"triggers,omitempty" validate:"dive"`
	Actions  []Action  `json:"actions,omitempty" validate:"dive"`
}

// Unit is a named, validated dictatable
type Unit struct {
	// Name is the unit directory name
	Name string

	// Dir is the absolute path of the unit directory. Action sources
	// (copyFrom, beSubsetOfJsonFile) are resolved against it.
	Dir string

	// ConfigFile is the absolute path of the configuration file
	ConfigFile string

	UnitConfig
}
