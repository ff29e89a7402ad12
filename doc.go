// Package showcase renders a list of projects, each with a link preview
// fetched from its website, into a marker-delimited section of a README.
//
// # Quick Start
//
// Create a generator, load projects, and update the README in place:
//
//	gen, err := showcase.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	projects, err := showcase.LoadProjects("projects.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := gen.Update(ctx, showcase.NewFileDocument("README.md"), "INSERT-PROJECTS", projects)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d projects, %d images\n", report.Projects, report.Images)
//
// # Markers
//
// The README must contain a section delimited by two HTML comments, each on
// its own line:
//
//	<!-- INSERT-PROJECTS:START -->
//	(generated content)
//	<!-- INSERT-PROJECTS:END -->
//
// Everything strictly between the two lines is replaced; the marker lines and
// the rest of the document are left untouched. A missing marker aborts the run
// before anything is written.
//
// # Previews
//
// For each project the website is fetched first. If it carries an image
// (og:image, twitter:image, ...) that image is used. Otherwise the repository
// URL, when present, is consulted for an image and a better description.
// Fetch failures never abort a run: the project is rendered with its static
// description and no image.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := showcase.NewGenerator(
//	    showcase.WithWorkers(4),
//	    showcase.WithImageHeight(160),
//	    showcase.WithTemplate("compact"),
//	    showcase.WithLogger(slog.Default()),
//	)
//
// Tests and embedders can replace the network with any MetadataFetcher:
//
//	gen, err := showcase.NewGenerator(showcase.WithFetcher(myFetcher))
package showcase
