package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dictator/pkg/errors"
)

// Environment variable names
const (
	// EnvDictatorRoot locates the directory holding the units folder
	EnvDictatorRoot = "DICTATOR_ROOT"

	// EnvDictatorConfigDir overrides the XDG config directory for dictator
	EnvDictatorConfigDir = "DICTATOR_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DefaultUnitsDir is the folder under the dictator root holding one
	// directory per unit
	DefaultUnitsDir = "dictatables"

	// DictatorDirName is the directory name for dictator-specific files
	DictatorDirName = "dictator"

	// UserConfigFile is the user-level configuration file name
	UserConfigFile = "config.toml"

	// RootConfigFile is the per-root configuration file name
	RootConfigFile = ".dictator.toml"
)

// Paths provides centralized path management for dictator
type Paths interface {
	DictatorRoot() string
	TargetRoot() string
	UnitsDir() string
	UnitDir(unitName string) string
	FileInTarget(rel string) string
	FileInUnit(unitDir, rel string) string
	RootConfigPath() string
	ConfigDir() string
	UserConfigPath() string
}

type paths struct {
	dictatorRoot string
	targetRoot   string
	unitsDirName string
	xdgConfig    string
}

// New creates a Paths instance. An empty dictatorRoot falls back to
// DICTATOR_ROOT and then the working directory; an empty targetRoot falls
// back to the working directory; an empty unitsDirName uses
// DefaultUnitsDir.
func New(dictatorRoot, targetRoot, unitsDirName string) (Paths, error) {
	p := &paths{unitsDirName: unitsDirName}
	if p.unitsDirName == "" {
		p.unitsDirName = DefaultUnitsDir
	}

	if dictatorRoot == "" {
		dictatorRoot = os.Getenv(EnvDictatorRoot)
	}
	root, err := absOrCwd(dictatorRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve dictator root")
	}
	p.dictatorRoot = root

	target, err := absOrCwd(targetRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve target root")
	}
	p.targetRoot = target

	if configDir := os.Getenv(EnvDictatorConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, DictatorDirName)
	}

	return p, nil
}

func absOrCwd(path string) (string, error) {
	if path == "" {
		return os.Getwd()
	}
	return filepath.Abs(expandHome(path))
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

func (p *paths) DictatorRoot() string {
	return p.dictatorRoot
}

func (p *paths) TargetRoot() string {
	return p.targetRoot
}

// UnitsDir returns the folder scanned for units
func (p *paths) UnitsDir() string {
	return filepath.Join(p.dictatorRoot, p.unitsDirName)
}

func (p *paths) UnitDir(unitName string) string {
	return filepath.Join(p.UnitsDir(), unitName)
}

// FileInTarget resolves a unit-declared path inside the target root.
// Absolute paths are still joined under the root so units cannot escape it.
func (p *paths) FileInTarget(rel string) string {
	return filepath.Join(p.targetRoot, rel)
}

// FileInUnit resolves an action source relative to its unit directory
func (p *paths) FileInUnit(unitDir, rel string) string {
	return filepath.Join(unitDir, rel)
}

func (p *paths) RootConfigPath() string {
	return filepath.Join(p.dictatorRoot, RootConfigFile)
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, UserConfigFile)
}
