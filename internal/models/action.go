// internal/models/action.go

package models

import "fmt"

// Action is one of the fixed operations the control panel exposes.
type Action string

const (
	ActionWatchQueue    Action = "watch_queue"
	ActionRun           Action = "run"
	ActionRsyncUp       Action = "rsync_up"
	ActionRsyncDown     Action = "rsync_down"
	ActionFileBrowser   Action = "filebrowser"
	ActionRemoteShell   Action = "remote_shell"
	ActionCancelAllJobs Action = "cancel_all_jobs"
)

var credentials = []string{KeyHostname, KeyUsername, KeyPassword}

var bodyFields = map[Action][]string{
	ActionWatchQueue:    credentials,
	ActionRun:           {KeyHostname, KeyUsername, KeyPassword, KeyLocalPath, KeyRemotePath},
	ActionRsyncUp:       {KeyHostname, KeyUsername, KeyPassword, KeyLocalPath, KeyRemotePath},
	ActionRsyncDown:     {KeyHostname, KeyUsername, KeyPassword, KeyLocalPath, KeyRemotePath},
	ActionFileBrowser:   {KeyLocalPath},
	ActionRemoteShell:   {KeyHostname, KeyUsername, KeyPassword, KeyRemotePath},
	ActionCancelAllJobs: credentials,
}

// AllActions returns every action in button order.
func AllActions() []Action {
	return []Action{
		ActionWatchQueue,
		ActionRun,
		ActionRsyncUp,
		ActionRsyncDown,
		ActionFileBrowser,
		ActionRemoteShell,
		ActionCancelAllJobs,
	}
}

// ParseAction zwraca akcję o podanej nazwie
func ParseAction(name string) (Action, error) {
	a := Action(name)
	if _, ok := bodyFields[a]; !ok {
		return "", fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// Path returns the API path the action posts to.
func (a Action) Path() string {
	return "/api/" + string(a)
}

// BodyFields returns the form keys sent with the action. The slice is a copy.
func (a Action) BodyFields() []string {
	fields := bodyFields[a]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

func (a Action) String() string {
	return string(a)
}
