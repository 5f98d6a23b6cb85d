package todoist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// RawClient covers the endpoints without typed coverage by building the
// URL and JSON body of each call by hand.
type RawClient struct {
	conn *conn
}

func (r *RawClient) post(ctx context.Context, op, rawURL string, payload map[string]string) error {
	body := strings.NewReader("")
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request body: %w", op, err)
		}
		body = strings.NewReader(string(data))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, body)
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", op, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	_, err = r.conn.send(op, req)
	return err
}

// ArchiveProject archives a project and its descendants
func (r *RawClient) ArchiveProject(ctx context.Context, id string) error {
	return r.post(ctx, "failed to archive project", r.conn.baseURL.String()+"/projects/"+url.PathEscape(id)+"/archive", nil)
}

// UnarchiveProject restores an archived project
func (r *RawClient) UnarchiveProject(ctx context.Context, id string) error {
	return r.post(ctx, "failed to unarchive project", r.conn.baseURL.String()+"/projects/"+url.PathEscape(id)+"/unarchive", nil)
}

// GetSharedLabels lists the shared label names of the account
func (r *RawClient) GetSharedLabels(ctx context.Context, omitPersonal bool) ([]string, error) {
	const op = "failed to get shared labels"

	u, err := url.Parse(r.conn.baseURL.String() + "/labels/shared")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if omitPersonal {
		q := u.Query()
		q.Set("omit_personal", "true")
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build request: %w", op, err)
	}

	data, err := r.conn.send(op, req)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nonNil(names), nil
}

// RenameSharedLabel renames every occurrence of a shared label
func (r *RawClient) RenameSharedLabel(ctx context.Context, name, newName string) error {
	return r.post(ctx, "failed to rename shared label", r.conn.baseURL.String()+"/labels/shared/rename", map[string]string{
		"name":     name,
		"new_name": newName,
	})
}

// RemoveSharedLabel removes a shared label from all tasks
func (r *RawClient) RemoveSharedLabel(ctx context.Context, name string) error {
	return r.post(ctx, "failed to remove shared label", r.conn.baseURL.String()+"/labels/shared/remove", map[string]string{
		"name": name,
	})
}
