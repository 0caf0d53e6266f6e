package discovery

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultUnitFiles are tried in order inside each unit directory
var DefaultUnitFiles = []string{
	".dictatable-config.json",
	".dictatable-config.yaml",
	".dictatable-config.yml",
	".dictatable-config.toml",
}

// RawUnit is a discovered, not yet validated unit
type RawUnit struct {
	Name       string
	Dir        string
	ConfigFile string

	// Document is the decoded unit file normalised to JSON shapes
	Document interface{}

	// JSON is Document encoded as JSON
	JSON []byte
}

// Finder locates units
type Finder struct {
	fs        types.FS
	logger    zerolog.Logger
	unitFiles []string
}

// NewFinder creates a Finder. An empty unitFiles uses DefaultUnitFiles.
func NewFinder(fs types.FS, logger zerolog.Logger, unitFiles []string) *Finder {
	if len(unitFiles) == 0 {
		unitFiles = DefaultUnitFiles
	}
	return &Finder{fs: fs, logger: logger, unitFiles: unitFiles}
}

// Find returns the units under unitsDir in lexical directory order
func (f *Finder) Find(unitsDir string) ([]RawUnit, error) {
	info, err := f.fs.Stat(unitsDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDiscovery, "units folder %s not found", unitsDir).
			WithDetail("path", unitsDir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrDiscovery, "units folder %s is not a directory", unitsDir).
			WithDetail("path", unitsDir)
	}

	entries, err := f.fs.ReadDir(unitsDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDiscovery, "cannot read units folder %s", unitsDir)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var units []RawUnit
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			f.logger.Debug().Str("entry", name).Msg("hidden entry, skipping")
			continue
		}

		dir := filepath.Join(unitsDir, name)
		if !entry.IsDir() {
			return nil, errors.Newf(errors.ErrDiscovery, "%s is not a unit directory", dir).
				WithDetail("path", dir)
		}
		configFile, ok := f.unitFile(dir)
		if !ok {
			return nil, errors.Newf(errors.ErrDiscovery, "unit %s has no unit file (%s)", name, strings.Join(f.unitFiles, ", ")).
				WithDetail("unit", name).
				WithDetail("path", dir)
		}

		unit, err := f.load(name, dir, configFile)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	if len(units) == 0 {
		return nil, errors.Newf(errors.ErrDiscovery, "no units found in %s", unitsDir).
			WithDetail("path", unitsDir)
	}

	f.logger.Debug().Int("count", len(units)).Str("dir", unitsDir).Msg("units discovered")
	return units, nil
}

func (f *Finder) unitFile(dir string) (string, bool) {
	for _, name := range f.unitFiles {
		path := filepath.Join(dir, name)
		if info, err := f.fs.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func (f *Finder) load(name, dir, configFile string) (RawUnit, error) {
	data, err := f.fs.ReadFile(configFile)
	if err != nil {
		return RawUnit{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", configFile).
			WithDetail("unit", name)
	}

	doc, err := Decode(configFile, data)
	if err != nil {
		return RawUnit{}, errors.Wrapf(err, errors.ErrConfigParse, "unit %s: cannot parse %s", name, filepath.Base(configFile)).
			WithDetail("unit", name).
			WithDetail("path", configFile)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return RawUnit{}, errors.Wrapf(err, errors.ErrConfigParse, "unit %s: unsupported values", name).
			WithDetail("unit", name)
	}
	var normalized interface{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return RawUnit{}, errors.Wrapf(err, errors.ErrConfigParse, "unit %s: unsupported values", name)
	}

	return RawUnit{
		Name:       name,
		Dir:        dir,
		ConfigFile: configFile,
		Document:   normalized,
		JSON:       raw,
	}, nil
}

// Decode parses a unit file according to its extension
func Decode(path string, data []byte) (interface{}, error) {
	var doc interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ".toml":
		var m map[string]interface{}
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		doc = m
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
