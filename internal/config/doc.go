// Package config manages branchwire workspace configuration.
//
// It handles:
//   - Marking a directory as a branchwire workspace
//   - The fallback branch used when resolving upstream references
//   - Log file location overrides
package config
