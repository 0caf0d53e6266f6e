package testutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dictator/pkg/filesystem"
	"github.com/arthur-debert/dictator/pkg/paths"
	"github.com/arthur-debert/dictator/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// Default unit file name used by SetupUnit
const UnitFile = ".dictatable-config.json"

// TestEnvironment is a dictator root plus a target root
type TestEnvironment struct {
	DictatorRoot string
	TargetRoot   string

	FS    types.FS
	Paths paths.Paths
	Type  EnvType

	t *testing.T
}

// UnitSpec describes a unit directory to create
type UnitSpec struct {
	// Config is the unit file content
	Config string

	// FileName overrides UnitFile, e.g. to write YAML
	FileName string

	// Files are extra files inside the unit directory (action sources)
	Files map[string]string
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.DictatorRoot = "/virtual/dictator"
		env.TargetRoot = "/virtual/project"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		tempDir := t.TempDir()
		env.DictatorRoot = filepath.Join(tempDir, "dictator")
		env.TargetRoot = filepath.Join(tempDir, "project")
		env.FS = filesystem.NewOS()
	}

	env.mkdir(filepath.Join(env.DictatorRoot, paths.DefaultUnitsDir))
	env.mkdir(env.TargetRoot)

	p, err := paths.New(env.DictatorRoot, env.TargetRoot, "")
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	return env
}

func (env *TestEnvironment) mkdir(dir string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(dir, 0755); err != nil {
		env.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}
}

func (env *TestEnvironment) write(path, content string, mode fs.FileMode) {
	env.t.Helper()
	env.mkdir(filepath.Dir(path))
	if err := env.FS.WriteFile(path, []byte(content), mode); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", path, err)
	}
	// WriteFile leaves the mode of existing files alone
	if err := env.FS.Chmod(path, mode); err != nil {
		env.t.Fatalf("Failed to chmod %s: %v", path, err)
	}
}

// SetupUnit creates a unit directory and returns its path
func (env *TestEnvironment) SetupUnit(name string, spec UnitSpec) string {
	env.t.Helper()

	dir := env.Paths.UnitDir(name)
	fileName := spec.FileName
	if fileName == "" {
		fileName = UnitFile
	}
	env.write(filepath.Join(dir, fileName), spec.Config, 0644)

	for rel, content := range spec.Files {
		env.write(filepath.Join(dir, rel), content, 0644)
	}
	return dir
}

// WriteTarget writes a file under the target root
func (env *TestEnvironment) WriteTarget(rel, content string, mode fs.FileMode) {
	env.t.Helper()
	env.write(env.Paths.FileInTarget(rel), content, mode)
}

// ReadTarget reads a file under the target root
func (env *TestEnvironment) ReadTarget(rel string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(env.Paths.FileInTarget(rel))
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}

// TargetMode returns the permission bits of a file under the target root
func (env *TestEnvironment) TargetMode(rel string) fs.FileMode {
	env.t.Helper()
	info, err := env.FS.Stat(env.Paths.FileInTarget(rel))
	if err != nil {
		env.t.Fatalf("Failed to stat %s: %v", rel, err)
	}
	return info.Mode().Perm()
}

// TargetExists reports whether a path exists under the target root
func (env *TestEnvironment) TargetExists(rel string) bool {
	_, err := env.FS.Stat(env.Paths.FileInTarget(rel))
	return err == nil
}
