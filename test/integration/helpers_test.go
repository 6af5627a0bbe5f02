//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// fakeNode prints a fixed version like the real binary.
const fakeNode = `#!/bin/sh
echo "v20.11.0"
`

// fakeNPM understands the handful of invocations the scaffolder makes.
// FAKE_NPM_FAIL_ON names an install argument that makes it exit 1;
// FAKE_NPM_HANG makes every install block.
const fakeNPM = `#!/bin/sh
case "$1" in
--version)
	echo "10.2.4"
	;;
create)
	read answer
	if [ "$answer" != "n" ]; then
		echo "expected the rolldown prompt to be declined, got '$answer'" >&2
		exit 1
	fi
	dir="$3"
	name=$(basename "$PWD")
	mkdir -p "$dir/src/assets" "$dir/public"
	cat > "$dir/package.json" <<JSON
{
  "name": "$name",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "tsc -b && vite build",
    "lint": "eslint .",
    "preview": "vite preview"
  }
}
JSON
	echo ".logo {}" > "$dir/src/App.css"
	echo "<svg/>" > "$dir/src/assets/react.svg"
	echo "export default {}" > "$dir/src/main.tsx"
	echo "<svg/>" > "$dir/public/vite.svg"
	echo "# React + TypeScript + Vite" > "$dir/README.md"
	;;
install)
	if [ -n "$FAKE_NPM_HANG" ]; then
		sleep 30
	fi
	for arg in "$@"; do
		if [ -n "$FAKE_NPM_FAIL_ON" ] && [ "$arg" = "$FAKE_NPM_FAIL_ON" ]; then
			echo "npm ERR! 404 Not Found - $arg" >&2
			exit 1
		fi
	done
	echo "$*" >> install.log
	;;
*)
	echo "unexpected npm invocation: $*" >&2
	exit 2
	;;
esac
`

// setupToolchain writes fake node and npm scripts into a temp dir and puts
// it first on PATH. Tests are skipped when no POSIX shell is available.
func setupToolchain(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	bin := t.TempDir()
	writeScript(t, filepath.Join(bin, "node"), fakeNode)
	writeScript(t, filepath.Join(bin, "npm"), fakeNPM)
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("FRONTSTRAP_HOME", t.TempDir())
}

func writeScript(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists checks that a file or directory exists at path.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

// assertNotExists checks that nothing exists at path.
func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist", path)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
