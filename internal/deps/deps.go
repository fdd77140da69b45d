// Package deps checks the availability of the external binaries the
// conversion pipeline shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary the converter relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Defaults returns the pipeline requirements for the given binary commands.
func Defaults(heifConvert, wallpaperBuilder string) []Requirement {
	return []Requirement{
		{
			Name:        "HEIF decoder",
			Command:     heifConvert,
			Description: "splits the input container into per-frame images",
		},
		{
			Name:        "Wallpaper builder",
			Command:     wallpaperBuilder,
			Description: "assembles the final dynamic wallpaper",
		},
	}
}

// Check resolves each requirement on PATH and reports availability.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		command := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     command,
			Description: req.Description,
		}
		switch {
		case command == "":
			status.Detail = "command not configured"
		default:
			if _, err := exec.LookPath(command); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found", command)
			} else {
				status.Available = true
			}
		}
		results = append(results, status)
	}
	return results
}

// FirstMissing returns the first unavailable status, if any.
func FirstMissing(statuses []Status) (Status, bool) {
	for _, status := range statuses {
		if !status.Available {
			return status, true
		}
	}
	return Status{}, false
}
