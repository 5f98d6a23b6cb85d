// Package comments_tools provides MCP tools for managing comments on Todoist tasks and projects.
//
// # Available Tools
//
// Reading:
//   - listComments: List the comments of a task or a project
//   - getComment: Get a single comment
//
// Writing (not registered in read-only mode):
//   - createComment: Comment on a task or a project, optionally with an attachment
//   - updateComment: Change the text of a comment
//   - deleteComment: Delete a comment
//
// A comment belongs to exactly one task or project. listComments and
// createComment require taskId or projectId, and use taskId when both are given.
package comments_tools
