package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/frontstrap/frontstrap/internal/project"
	"github.com/frontstrap/frontstrap/internal/runner"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastTimeout records the timeout the command asked the runner for.
var lastTimeout time.Duration

// execute runs the root command with args against rec and returns stdout.
func execute(t *testing.T, rec *runner.Recorder, args ...string) (string, error) {
	t.Helper()

	t.Setenv("FRONTSTRAP_HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	origRunner := newRunner
	newRunner = func(_, _ io.Writer, timeout time.Duration, _ *slog.Logger) runner.Runner {
		lastTimeout = timeout
		return rec
	}
	resetFlags()
	t.Cleanup(func() {
		newRunner = origRunner
		resetFlags()
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores flag variables; cobra keeps them between executions.
func resetFlags() {
	flagTimeout = 0
	flagVerbose = false
	createParentDir = "."
	versionShort = false
	versionJSON = false
}

func toolchain(name string) *runner.Recorder {
	return runner.NewRecorder().
		On("node --version", runner.Response{Output: &runner.Output{Stdout: "v22.3.0\n"}}).
		On("npm --version", runner.Response{Output: &runner.Output{Stdout: "10.8.1\n"}}).
		On("npm create vite@latest . -- --template react-ts", runner.Response{
			Hook: func(cmd runner.Command) error {
				if err := os.MkdirAll(filepath.Join(cmd.Dir, "src"), 0755); err != nil {
					return err
				}
				return os.WriteFile(filepath.Join(cmd.Dir, "package.json"), []byte(`{"name": "`+name+`", "scripts": {"dev": "vite"}}`), 0644)
			},
		})
}

func TestRoot_CreatesProject(t *testing.T) {
	parent := t.TempDir()
	rec := toolchain("shop")

	out, err := execute(t, rec, "shop", "telegram", "--dir", parent)
	require.NoError(t, err)

	assert.Contains(t, out, "Created telegram project at "+filepath.Join(parent, "shop"))
	assert.Contains(t, out, "Next steps:")
	assert.Contains(t, out, "npm run preview  Preview production build")
	assert.Contains(t, rec.Lines(), "npm install react-router@latest axios jwt-decode dayjs clsx tailwind-merge tailwindcss @tailwindcss/vite tw-animate-css @telegram-apps/sdk")
	assert.FileExists(t, filepath.Join(parent, "shop", "src", "App.tsx"))
}

func TestRoot_TimeoutFlag(t *testing.T) {
	_, err := execute(t, toolchain("shop"), "shop", "web", "--dir", t.TempDir(), "--timeout", "30s")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, lastTimeout)

	_, err = execute(t, toolchain("shop"), "shop", "web", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, lastTimeout, "falls back to the configured default")
}

func TestRoot_RequiresTwoArgs(t *testing.T) {
	_, err := execute(t, runner.NewRecorder(), "shop")
	assert.Error(t, err)
}

func TestRoot_RejectsUnknownType(t *testing.T) {
	rec := runner.NewRecorder()
	_, err := execute(t, rec, "shop", "desktop", "--dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid project type")
	assert.Empty(t, rec.Lines())
}

func TestRoot_ExistingDirectory(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(parent, "shop"), 0755))

	rec := toolchain("shop")
	_, err := execute(t, rec, "shop", "web", "--dir", parent)
	require.Error(t, err)
	assert.ErrorIs(t, err, project.ErrAlreadyExists)
	assert.Empty(t, rec.Lines())
}

func TestDoctor(t *testing.T) {
	out, err := execute(t, toolchain("unused"), "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "[ OK ] node v22.3.0")
	assert.Contains(t, out, "[ OK ] npm 10.8.1")
	assert.Contains(t, out, "vite template react-ts")
}

func TestDoctor_Missing(t *testing.T) {
	rec := runner.NewRecorder().
		On("npm --version", runner.Response{Err: runner.ErrNotFound})

	out, err := execute(t, rec, "doctor")
	require.Error(t, err)
	assert.Contains(t, out, "[MISS] npm")
}

func TestConfigSetAndGet(t *testing.T) {
	out, err := execute(t, runner.NewRecorder(), "config", "set", "timeout", "2m")
	require.NoError(t, err)
	assert.Equal(t, "Set timeout = 2m\n", out)

	assert.Equal(t, 2*time.Minute, viper.GetDuration("timeout"))
}

func TestConfigUnknownKey(t *testing.T) {
	_, err := execute(t, runner.NewRecorder(), "config", "get", "colour")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestVersion(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"

	out, err := execute(t, runner.NewRecorder(), "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, err = execute(t, runner.NewRecorder(), "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"commit": "abc123"`)
	assert.Contains(t, out, `"platform": "`+runtime.GOOS+"/"+runtime.GOARCH+`"`)

	out, err = execute(t, runner.NewRecorder(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Frontstrap 1.2.3\n")
	assert.Contains(t, out, "  commit:   abc123\n")
}
