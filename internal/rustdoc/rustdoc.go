package rustdoc

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mre/crux/internal/symbolgraph"
)

// rustdocFlags switches the documentation output to the JSON format the
// symbol graph decoder consumes.
const rustdocFlags = "-Z unstable-options --output-format=json --cap-lints=allow"

// Command describes one documentation build.
type Command struct {
	// Manifest is the path to the library's Cargo.toml.
	Manifest string
	// Lib is the library target name.
	Lib string
	// TargetDir overrides the build output directory. Defaults to
	// "target" next to the manifest.
	TargetDir string
}

// JSONPath returns where the emitted document will be found. The producer
// normalizes dashes in the library name to underscores.
func (c Command) JSONPath() string {
	targetDir := c.TargetDir
	if targetDir == "" {
		targetDir = filepath.Join(filepath.Dir(c.Manifest), "target")
	}

	name := strings.ReplaceAll(c.Lib, "-", "_")

	return filepath.Join(targetDir, "doc", name+".json")
}

// Run invokes the external build-and-introspect command. Its output streams
// through to the caller's terminal.
func (c Command) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "cargo",
		"doc",
		"--no-deps",
		"--manifest-path", c.Manifest,
		"--lib",
	)
	cmd.Env = append(os.Environ(),
		"RUSTC_BOOTSTRAP=1",
		"RUSTDOCFLAGS="+rustdocFlags,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	slog.Info("building symbol graph", "manifest", c.Manifest, "lib", c.Lib)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run cargo doc for %s: %w", c.Lib, err)
	}

	return nil
}

// Load parses an already-emitted document from disk.
func Load(path string) (*symbolgraph.Crate, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open symbol graph %s: %w", path, err)
	}
	defer file.Close()

	crate, err := symbolgraph.DecodeCrate(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse symbol graph %s: %w", path, err)
	}

	slog.Debug("symbol graph loaded", "path", path, "items", len(crate.Index))

	return crate, nil
}

// Produce runs the build and parses the emitted document.
func Produce(ctx context.Context, cmd Command) (*symbolgraph.Crate, error) {
	if err := cmd.Run(ctx); err != nil {
		return nil, err
	}

	return Load(cmd.JSONPath())
}
