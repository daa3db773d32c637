// Package upstream rewrites the upstream project lists of reverse-build triggers
// so that references to multi-branch projects point at a concrete branch project.
//
// A reverse-build trigger is usually configured against the branch-agnostic name
// of a multi-branch project. Each branch project re-resolves that name against the
// live set of branches:
//   - the sibling branch with the same name, if the upstream project has one
//   - otherwise the fallback branch ("develop" unless configured)
//   - otherwise the original name, unchanged
//
// The resolution depends on which branches exist, so it is recomputed whenever
// branches come and go rather than stored once.
package upstream
