// Package catalog provides the static content of the portal.
//
// The catalog is read-only input: navigation links, home page copy, courses,
// tutorials and the week-one course content (videos, Q&A, checklist labels
// and seed todos). A default catalog is embedded in the binary; a YAML file
// with the same layout can replace it:
//
//	cat, err := catalog.Load("/path/to/catalog.yaml")
//	if err != nil {
//	    return err
//	}
//	refs := cat.Week.References()
//
// Passing an empty path to Load returns the embedded catalog.
//
// # Validation
//
// Beyond YAML syntax, Load checks that the lists the views rely on are not
// empty and that seed todos are well formed. Every problem found is
// collected into a single *ValidationError so a broken file can be fixed in
// one pass.
package catalog
