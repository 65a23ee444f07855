package rustdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONPath(t *testing.T) {
	cmd := Command{Manifest: "/work/core/Cargo.toml", Lib: "shared-types"}

	// Dashes become underscores in the emitted filename.
	assert.Equal(t,
		filepath.Join("/work/core/target", "doc", "shared_types.json"),
		cmd.JSONPath())
}

func TestJSONPathTargetDirOverride(t *testing.T) {
	cmd := Command{Manifest: "/work/core/Cargo.toml", Lib: "shared", TargetDir: "/tmp/out"}

	assert.Equal(t, filepath.Join("/tmp/out", "doc", "shared.json"), cmd.JSONPath())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shared.json")
	doc := `{"root": "0:0", "index": {"0:0": {"name": "shared", "inner": {"module": {"is_crate": true, "items": []}}}}, "paths": {}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	crate, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shared", crate.Index["0:0"].DeclaredName())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
