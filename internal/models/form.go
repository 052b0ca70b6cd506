// internal/models/form.go

package models

import "net/url"

// Klucze w pamięci trwałej
const (
	KeyHostname          = "hostname"
	KeyUsername          = "username"
	KeyPassword          = "password"
	KeyLocalPath         = "local_path"
	KeyRemotePath        = "remote_path"
	KeyHighlightedButton = "highlighted_button"
)

// FieldKeys lists the form fields in display order.
var FieldKeys = []string{KeyHostname, KeyUsername, KeyPassword, KeyLocalPath, KeyRemotePath}

// Fields is the visible form state.
type Fields struct {
	Hostname   string `json:"hostname"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	LocalPath  string `json:"local_path"`
	RemotePath string `json:"remote_path"`
}

// Get returns the value stored under a field key, or "" for unknown keys.
func (f Fields) Get(key string) string {
	switch key {
	case KeyHostname:
		return f.Hostname
	case KeyUsername:
		return f.Username
	case KeyPassword:
		return f.Password
	case KeyLocalPath:
		return f.LocalPath
	case KeyRemotePath:
		return f.RemotePath
	}
	return ""
}

// Set assigns a field by key. It reports false for keys that are not form fields.
func (f *Fields) Set(key, value string) bool {
	switch key {
	case KeyHostname:
		f.Hostname = value
	case KeyUsername:
		f.Username = value
	case KeyPassword:
		f.Password = value
	case KeyLocalPath:
		f.LocalPath = value
	case KeyRemotePath:
		f.RemotePath = value
	default:
		return false
	}
	return true
}

// Body builds the request body for an action from its field subset.
func (f Fields) Body(a Action) url.Values {
	body := url.Values{}
	for _, key := range a.BodyFields() {
		body.Set(key, f.Get(key))
	}
	return body
}

// IsFieldKey sprawdza czy klucz należy do formularza
func IsFieldKey(key string) bool {
	for _, k := range FieldKeys {
		if k == key {
			return true
		}
	}
	return false
}
