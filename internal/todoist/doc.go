// Package todoist provides a client for the Todoist REST v2 API.
//
// The API surface is split into small capability interfaces (TaskService,
// ProjectService, SectionService, ...) composed into API. Two
// implementations share one authenticated http.Client:
//   - Client speaks the typed REST endpoints for tasks, projects, sections,
//     comments, labels and collaborators
//   - RawClient builds URLs and bodies by hand for the endpoints without
//     typed coverage (project archiving and shared labels)
//
// Todoist combines both behind the API interface, so callers never have to
// know which implementation serves an operation.
//
// # Partial updates
//
// Write arguments use Optional fields. A field that was never set is left
// out of the request body, so update calls only touch the fields the caller
// named. Clear marks a field for explicit removal and is transmitted as null.
//
// # Example Usage
//
//	api, err := todoist.New(todoist.Options{Token: token})
//	if err != nil {
//	    return err
//	}
//
//	task, err := api.AddTask(ctx, todoist.AddTaskArgs{
//	    Content:  "Buy milk",
//	    Priority: todoist.Set(2),
//	})
//
// # Errors
//
// Non-2xx responses are returned as *APIError, which carries the HTTP status
// and the response body. Requests are never retried.
package todoist
