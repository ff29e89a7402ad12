package assets

import (
	"fmt"
	"os"

	"github.com/alnah/go-showcase/internal/fileutil"
)

// DefaultTemplateName is the template used when none is configured.
const DefaultTemplateName = "project"

// TemplateLoader defines the contract for loading project templates.
type TemplateLoader interface {
	// LoadTemplate loads a template by name (without the .md.tmpl extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}

// LoadTemplate resolves nameOrPath to template source.
// Empty selects DefaultTemplateName; a value containing a path separator is
// read from disk; anything else is looked up through loader. URLs are
// rejected.
func LoadTemplate(loader TemplateLoader, nameOrPath string) (string, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultTemplateName
	}

	if fileutil.IsURL(nameOrPath) {
		return "", fmt.Errorf("%w: remote templates are not supported: %s", ErrInvalidAssetName, nameOrPath)
	}
	if !fileutil.IsFilePath(nameOrPath) {
		return loader.LoadTemplate(nameOrPath)
	}

	content, err := os.ReadFile(nameOrPath) // #nosec G304 -- template path is operator-provided
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, nameOrPath)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}
