package roster

import (
	"encoding/json"
	"log/slog"
	"os"
)

// Roster reads the employee list from a JSON array file. The file is read
// on every call so edits show up without a restart, matching how small
// deployments maintain it by hand.
type Roster struct {
	path string
}

func New(path string) *Roster { return &Roster{path: path} }

// Employees returns the roster, or an empty list when the file is missing
// or unreadable. A broken roster must not take down the intake API.
func (r *Roster) Employees() []string {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("roster file unreadable", "path", r.path, "error", err)
		}
		return []string{}
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		slog.Warn("roster file is not a JSON string array", "path", r.path, "error", err)
		return []string{}
	}
	return names
}
