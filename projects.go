package showcase

import (
	"fmt"
	"net/url"
	"os"

	"github.com/alnah/go-showcase/internal/yamlutil"
)

// LoadProjects reads a JSON or YAML list of projects from path.
func LoadProjects(path string) ([]Project, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- projects path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadProjects, err)
	}
	projects, err := ParseProjects(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return projects, nil
}

// ParseProjects decodes a JSON or YAML list of projects.
// Unknown keys are rejected and every project is validated.
func ParseProjects(data []byte) ([]Project, error) {
	var projects []Project
	if len(data) > 0 {
		if err := yamlutil.UnmarshalStrict(data, &projects); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProject, err)
		}
	}
	if len(projects) == 0 {
		return nil, ErrNoProjects
	}
	for i, p := range projects {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("project %d: %w", i+1, err)
		}
	}
	return projects, nil
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
