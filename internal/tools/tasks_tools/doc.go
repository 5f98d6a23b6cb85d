// Package tasks_tools provides MCP tools for managing Todoist tasks.
//
// # Available Tools
//
// Reading:
//   - listTasks: List active tasks, filtered by project, section, label, filter query or ids
//   - getTask: Get a single task
//
// Writing (not registered in read-only mode):
//   - createTask: Create a task
//   - updateTask: Update the supplied fields of a task
//   - completeTask: Close a task
//   - reopenTask: Reopen a closed task
//   - deleteTask: Delete a task
//
// # Due dates
//
// dueString, dueDate and dueDatetime are mutually exclusive. When several are
// given, dueString wins over dueDate, and dueDate wins over dueDatetime.
//
// # Assignees
//
// An empty assigneeId unassigns the task.
package tasks_tools
