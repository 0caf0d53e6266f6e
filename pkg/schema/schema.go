package schema

import (
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/dictator/pkg/discovery"
	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/jsonpath"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/go-playground/validator/v10"
	"github.com/google/jsonschema-go/jsonschema"
)

//go:embed embedded/dictatable.schema.json
var schemaJSON []byte

// Document returns the embedded JSON schema
func Document() []byte {
	return schemaJSON
}

// Validator checks units against the schema and struct rules
type Validator struct {
	schema   *jsonschema.Resolved
	validate *validator.Validate
}

// New compiles the embedded schema and registers the custom rules
func New() (*Validator, error) {
	var s jsonschema.Schema
	if err := json.Unmarshal(schemaJSON, &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "embedded schema is not valid JSON")
	}
	resolved, err := s.Resolve(nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot resolve embedded schema")
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("octalmode", validateOctalMode); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot register octalmode rule")
	}
	if err := v.RegisterValidation("jsonpath", validateJSONPath); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot register jsonpath rule")
	}
	v.RegisterStructValidation(validateAction, types.Action{})

	return &Validator{schema: resolved, validate: v}, nil
}

// Check validates one unit. It returns the decoded unit and every
// violation found; the unit is only usable when no message is returned.
func (v *Validator) Check(raw discovery.RawUnit) (types.Unit, []string) {
	unit := types.Unit{Name: raw.Name, Dir: raw.Dir, ConfigFile: raw.ConfigFile}

	if err := v.schema.Validate(raw.Document); err != nil {
		return unit, []string{fmt.Sprintf("unit %s: %s", raw.Name, schemaMessage(err))}
	}

	if err := json.Unmarshal(raw.JSON, &unit.UnitConfig); err != nil {
		return unit, []string{fmt.Sprintf("unit %s: %v", raw.Name, err)}
	}

	err := v.validate.Struct(unit.UnitConfig)
	if err == nil {
		return unit, nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return unit, []string{fmt.Sprintf("unit %s: %v", raw.Name, err)}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("unit %s: %s", raw.Name, fieldMessage(fe)))
	}
	return unit, messages
}

// ValidateAll validates every unit. Any violation rejects the whole set
// with an ErrConfigValid error whose message joins all violations with
// newlines.
func (v *Validator) ValidateAll(raws []discovery.RawUnit) ([]types.Unit, error) {
	units := make([]types.Unit, 0, len(raws))
	var messages []string
	invalid := make([]string, 0)

	for _, raw := range raws {
		unit, msgs := v.Check(raw)
		if len(msgs) > 0 {
			messages = append(messages, msgs...)
			invalid = append(invalid, raw.Name)
			continue
		}
		units = append(units, unit)
	}

	if len(messages) > 0 {
		return nil, errors.New(errors.ErrConfigValid, strings.Join(messages, "\n")).
			WithDetail("units", invalid).
			WithDetail("messages", messages)
	}
	return units, nil
}

// schemaMessage turns the nested "validating <path>: ..." chain into
// "<reason> (at <deepest path>)"
func schemaMessage(err error) string {
	msg := err.Error()
	location := ""
	for strings.HasPrefix(msg, "validating ") {
		idx := strings.Index(msg, ": ")
		if idx < 0 {
			break
		}
		location = msg[len("validating "):idx]
		msg = msg[idx+2:]
	}
	if location == "" || location == "root" {
		return msg
	}
	return fmt.Sprintf("%s (at %s)", msg, location)
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "UnitConfig.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "octalmode":
		return fmt.Sprintf("%s: %q is not an octal mode such as 644", field, fe.Value())
	case "jsonpath":
		return fmt.Sprintf("%s: %q is not a supported JSON path", field, fe.Value())
	case "endstate":
		return fmt.Sprintf("%s declares no end state (one of %s)",
			strings.TrimSuffix(field, ".Target"), strings.Join(types.ActionKinds, ", "))
	default:
		return fmt.Sprintf("%s failed rule %q", field, fe.Tag())
	}
}

func validateOctalMode(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 3 || len(s) > 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '7' {
			return false
		}
	}
	return true
}

func validateJSONPath(fl validator.FieldLevel) bool {
	return jsonpath.Valid(fl.Field().String())
}

func validateAction(sl validator.StructLevel) {
	action := sl.Current().Interface().(types.Action)
	if len(action.Kinds()) == 0 {
		sl.ReportError(action.Target, "Target", "Target", "endstate", "")
	}
}
