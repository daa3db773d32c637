// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a branchwire command (branch sync, template set,
// refresh, etc.) and orchestrates operations on the project registry.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Registry, Store, and Splog
//   - Actions are stateless - all state lives in the registry and its store
//   - Rendering goes through the output package
package actions
