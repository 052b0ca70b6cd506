package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	for _, a := range AllActions() {
		got, err := ParseAction(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseAction("reboot")
	assert.Error(t, err)
}

func TestActionPath(t *testing.T) {
	assert.Equal(t, "/api/rsync_up", ActionRsyncUp.Path())
	assert.Equal(t, "/api/filebrowser", ActionFileBrowser.Path())
}

func TestBodyContainsOnlyActionFields(t *testing.T) {
	f := Fields{
		Hostname:   "box1",
		Username:   "dev",
		Password:   "secret",
		LocalPath:  "/tmp/src",
		RemotePath: "/srv/dst",
	}

	body := f.Body(ActionFileBrowser)
	assert.Len(t, body, 1)
	assert.Equal(t, "/tmp/src", body.Get(KeyLocalPath))

	body = f.Body(ActionWatchQueue)
	assert.Len(t, body, 3)
	assert.False(t, body.Has(KeyLocalPath))
	assert.False(t, body.Has(KeyRemotePath))

	body = f.Body(ActionRemoteShell)
	assert.Len(t, body, 4)
	assert.Equal(t, "/srv/dst", body.Get(KeyRemotePath))
	assert.False(t, body.Has(KeyLocalPath))

	body = f.Body(ActionRsyncUp)
	assert.Len(t, body, 5)
	assert.Equal(t, "box1", body.Get(KeyHostname))
	assert.Equal(t, "dev", body.Get(KeyUsername))
	assert.Equal(t, "secret", body.Get(KeyPassword))
}

func TestBodyFieldsReturnsCopy(t *testing.T) {
	fields := ActionWatchQueue.BodyFields()
	fields[0] = "mutated"
	assert.Equal(t, KeyHostname, ActionWatchQueue.BodyFields()[0])
	assert.Equal(t, KeyHostname, ActionCancelAllJobs.BodyFields()[0])
}

func TestFieldsSetGet(t *testing.T) {
	var f Fields
	for _, key := range FieldKeys {
		require.True(t, f.Set(key, key+"-v"))
	}
	for _, key := range FieldKeys {
		assert.Equal(t, key+"-v", f.Get(key))
	}
	assert.False(t, f.Set(KeyHighlightedButton, "run"))
	assert.True(t, IsFieldKey(KeyRemotePath))
	assert.False(t, IsFieldKey(KeyHighlightedButton))
}

func TestBrandMerge(t *testing.T) {
	b := Brand{
		Name:          "scarf",
		HostnameValue: "ui1.scarf.rl.ac.uk",
		ButtonTexts:   map[string]string{"run": "Submit"},
	}.Merge(DefaultBrand())

	assert.Equal(t, "Shawl", b.AppName)
	assert.Equal(t, "ui1.scarf.rl.ac.uk", b.HostnameValue)
	assert.Equal(t, "Submit", b.ButtonText(ActionRun))
	assert.Equal(t, "Upload", b.ButtonText(ActionRsyncUp))
	assert.Equal(t, "Local path", b.Label(KeyLocalPath))
}
