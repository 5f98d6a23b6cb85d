// Package sections_tools provides MCP tools for managing the sections of Todoist projects.
//
// # Available Tools
//
// Reading:
//   - listSections: List the sections of a project
//   - getSection: Get a single section
//
// Writing (not registered in read-only mode):
//   - createSection: Create a section in a project
//   - updateSection: Rename a section
//   - deleteSection: Delete a section with its tasks
package sections_tools
