// Package assets provides the markdown templates used to render project entries.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    └── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//
// LoadTemplate resolves a template reference: a bare name ("project",
// "compact") is looked up in the embedded set, anything that looks like a
// path is read from disk.
//
// # Directory Structure
//
//	templates/
//	├── project.md.tmpl    # image, heading, description, links (default)
//	└── compact.md.tmpl    # one list item per project
//
// # Template Data
//
// Templates are executed with text/template against a value exposing
// Index, Name, Description, Website, Repo, Image and ImageHeight.
// Index is the zero-based position of the project in the input list.
//
// # Security
//
// Template names are validated to prevent path traversal into the embedded
// filesystem. File paths are taken as given: they come from the operator.
package assets
