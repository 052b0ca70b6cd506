// internal/models/brand.go

package models

// Brand customises the labels and texts shown by the client.
type Brand struct {
	Name      string `json:"name" toml:"name"`
	AppName   string `json:"app_name" toml:"app_name"`
	PageTitle string `json:"page_title" toml:"page_title"`

	HostnameLabel   string `json:"hostname_label" toml:"hostname_label"`
	HostnameValue   string `json:"hostname_value" toml:"hostname_value"`
	UsernameLabel   string `json:"username_label" toml:"username_label"`
	PasswordLabel   string `json:"password_label" toml:"password_label"`
	LocalPathLabel  string `json:"local_path_label" toml:"local_path_label"`
	RemotePathLabel string `json:"remote_path_label" toml:"remote_path_label"`

	// Teksty przycisków, klucz to nazwa akcji
	ButtonTexts map[string]string `json:"button_texts" toml:"button_texts"`

	ManualFile string `json:"manual_file" toml:"manual_file"`
}

// DefaultBrand returns the built-in brand.
func DefaultBrand() Brand {
	return Brand{
		Name:            "default",
		AppName:         "Shawl",
		PageTitle:       "Shawl dashboard",
		HostnameLabel:   "SLURM hostname",
		UsernameLabel:   "Username",
		PasswordLabel:   "Password",
		LocalPathLabel:  "Local path",
		RemotePathLabel: "Remote path",
		ButtonTexts: map[string]string{
			string(ActionWatchQueue):    "Watch queue",
			string(ActionRun):           "Run",
			string(ActionRsyncUp):       "Upload",
			string(ActionRsyncDown):     "Download",
			string(ActionFileBrowser):   "File browser",
			string(ActionRemoteShell):   "Remote shell",
			string(ActionCancelAllJobs): "Cancel all jobs",
		},
	}
}

// Label returns the label for a form field key.
func (b Brand) Label(key string) string {
	switch key {
	case KeyHostname:
		return b.HostnameLabel
	case KeyUsername:
		return b.UsernameLabel
	case KeyPassword:
		return b.PasswordLabel
	case KeyLocalPath:
		return b.LocalPathLabel
	case KeyRemotePath:
		return b.RemotePathLabel
	}
	return key
}

// ButtonText returns the text for an action button, falling back to the action name.
func (b Brand) ButtonText(a Action) string {
	if t, ok := b.ButtonTexts[string(a)]; ok && t != "" {
		return t
	}
	return string(a)
}

// Merge fills empty fields of b from def.
func (b Brand) Merge(def Brand) Brand {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&b.AppName, def.AppName)
	fill(&b.PageTitle, def.PageTitle)
	fill(&b.HostnameLabel, def.HostnameLabel)
	fill(&b.HostnameValue, def.HostnameValue)
	fill(&b.UsernameLabel, def.UsernameLabel)
	fill(&b.PasswordLabel, def.PasswordLabel)
	fill(&b.LocalPathLabel, def.LocalPathLabel)
	fill(&b.RemotePathLabel, def.RemotePathLabel)
	fill(&b.ManualFile, def.ManualFile)

	texts := make(map[string]string, len(def.ButtonTexts))
	for k, v := range def.ButtonTexts {
		texts[k] = v
	}
	for k, v := range b.ButtonTexts {
		if v != "" {
			texts[k] = v
		}
	}
	b.ButtonTexts = texts
	return b
}
