// Package runtime provides the execution context for branchwire commands.
//
// It encapsulates shared dependencies needed by actions, such as the loaded
// registry, the store backing it, the logger, and the workspace root.
package runtime
