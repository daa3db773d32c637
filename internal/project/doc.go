// Package project models buildable projects and the multi-branch projects that
// own one branch project per branch.
//
// It is responsible for:
//   - The generic job core shared by every buildable project (Job)
//   - Branch projects and the hidden template each multi-branch project keeps
//   - Stamping the template's triggers and properties onto branch projects
//   - Keeping reverse-build trigger references pointed at the right branch projects
//   - The item registry used to resolve projects by full name
//
// The package does no I/O itself. Persistence goes through the Storage interface,
// and the registry is passed explicitly to everything that needs lookups.
// None of the types here lock; callers serialize structural changes per item.
package project
