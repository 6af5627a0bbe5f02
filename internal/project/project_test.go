package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"web", TypeWeb, false},
		{"telegram", TypeTelegram, false},
		{"Web", "", true},
		{"mobile", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseType(%q)", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestIsTelegram(t *testing.T) {
	assert.True(t, TypeTelegram.IsTelegram())
	assert.False(t, TypeWeb.IsTelegram())
}

func TestValidateName(t *testing.T) {
	valid := []string{"app", "my-app", "shop2", "a.b", "x_y"}
	for _, name := range valid {
		assert.NoError(t, ValidateName(name), name)
	}

	invalid := []string{"", "My-App", "-app", ".hidden", "a/b", "../up", "with space", strings.Repeat("a", 215)}
	for _, name := range invalid {
		assert.Error(t, ValidateName(name), name)
	}
}

func TestOptionsDir(t *testing.T) {
	assert.Equal(t, "shop", Options{Name: "shop"}.Dir())
	assert.Equal(t, filepath.Join("/tmp/work", "shop"), Options{Name: "shop", ParentDir: "/tmp/work"}.Dir())
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{Name: "shop", Type: TypeWeb}.Validate())
	assert.Error(t, Options{Name: "shop", Type: "desktop"}.Validate())
	assert.Error(t, Options{Name: "Shop", Type: TypeWeb}.Validate())
}

func TestEnsureAbsent(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, EnsureAbsent(filepath.Join(dir, "missing")))

	existing := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(existing, 0755))
	err := EnsureAbsent(existing)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Contains(t, err.Error(), "already exists")

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.ErrorIs(t, EnsureAbsent(file), ErrAlreadyExists)
}
