// Package pkgjson edits and checks the package.json of a scaffolded project.
//
// SetName rewrites the "name" field while leaving every other member, and
// the member order, untouched. Validate checks the result against an embedded
// JSON Schema; its findings are advisory and never block scaffolding.
package pkgjson
