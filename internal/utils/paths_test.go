package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, ".config", "shawl"), ExpandHome("~/.config/shawl"))
	assert.Equal(t, "/etc/shawl", ExpandHome("/etc/shawl"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
}
