package showcase

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/alnah/go-showcase/internal/assets"
)

// fragmentSeparator joins rendered project fragments.
const fragmentSeparator = "\n\n"

// fragmentData is the data passed to the project template.
type fragmentData struct {
	Index       int
	Name        string
	Description string
	Website     string
	Repo        string
	Image       string
	ImageHeight int
}

// fragmentRenderer renders one project at a time from a parsed template.
type fragmentRenderer struct {
	tmpl        *template.Template
	imageHeight int
}

// newFragmentRenderer loads and parses the template named by nameOrPath.
func newFragmentRenderer(loader assets.TemplateLoader, nameOrPath string, imageHeight int) (*fragmentRenderer, error) {
	src, err := assets.LoadTemplate(loader, nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}
	tmpl, err := template.New("project").Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return &fragmentRenderer{tmpl: tmpl, imageHeight: imageHeight}, nil
}

// Render returns the fragment for the project at index i.
// The preview description wins over the static one when non-empty.
func (r *fragmentRenderer) Render(i int, p Project, preview Preview) (string, error) {
	description := preview.Description
	if description == "" {
		description = p.Description
	}

	var b strings.Builder
	err := r.tmpl.Execute(&b, fragmentData{
		Index:       i,
		Name:        p.Name,
		Description: description,
		Website:     p.Website,
		Repo:        p.Repo,
		Image:       preview.Image,
		ImageHeight: r.imageHeight,
	})
	if err != nil {
		return "", fmt.Errorf("%w: rendering %s: %v", ErrInvalidTemplate, p.Name, err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// joinFragments concatenates fragments in order.
func joinFragments(fragments []string) string {
	return strings.Join(fragments, fragmentSeparator)
}
