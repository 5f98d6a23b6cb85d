// Package labels_tools provides MCP tools for managing Todoist labels.
//
// # Available Tools
//
// Personal labels:
//   - listLabels: List personal labels
//   - getLabel: Get a single label
//   - createLabel: Create a label (write)
//   - updateLabel: Update the supplied fields of a label (write)
//   - deleteLabel: Delete a label (write)
//
// Shared labels are plain names used across the tasks of shared projects:
//   - getSharedLabels: List shared label names
//   - renameSharedLabel: Rename a shared label on all tasks (write)
//   - removeSharedLabel: Remove a shared label from all tasks (write)
//
// Write tools are not registered in read-only mode.
package labels_tools
