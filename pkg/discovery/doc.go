// Package discovery finds units under the dictator root.
//
// Every directory of <root>/<units dir> holding one of the configured unit
// file names is a unit, named after the directory. Unit files may be
// written in JSON, YAML or TOML; all of them are normalised to the values
// encoding/json produces so the rest of the engine sees a single shape.
package discovery
