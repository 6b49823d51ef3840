package client

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Register creates an account and signs in with it.
func (c *Client) Register(ctx context.Context, email, password, name string) (*Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", false, map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.session = &Session{Token: resp.Token, User: resp.User}
	return c.session, nil
}

// Login signs in and keeps the returned session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", false, map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.session = &Session{Token: resp.Token, User: resp.User}
	return c.session, nil
}

// Me returns the signed-in user, verifying that the session is still valid.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/auth/me", true, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateEquipment adds an equipment record.
func (c *Client) CreateEquipment(ctx context.Context, in CreateEquipmentInput) (*Equipment, error) {
	var eq Equipment
	if err := c.do(ctx, http.MethodPost, "/equipment", true, in, &eq); err != nil {
		return nil, err
	}
	return &eq, nil
}

// ListEquipment lists equipment with up to three recent logs each.
func (c *Client) ListEquipment(ctx context.Context, f EquipmentFilter) ([]Equipment, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}

	var items []Equipment
	if err := c.do(ctx, http.MethodGet, withQuery("/equipment", q), true, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpcomingEquipment lists the next scheduled maintenance, soonest first.
func (c *Client) UpcomingEquipment(ctx context.Context) ([]UpcomingEquipment, error) {
	var items []UpcomingEquipment
	if err := c.do(ctx, http.MethodGet, "/equipment/upcoming", true, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetEquipment returns one equipment record with its full log history.
func (c *Client) GetEquipment(ctx context.Context, id string) (*Equipment, error) {
	var eq Equipment
	if err := c.do(ctx, http.MethodGet, "/equipment/"+url.PathEscape(id), true, nil, &eq); err != nil {
		return nil, err
	}
	return &eq, nil
}

// UpdateEquipment applies a partial update.
func (c *Client) UpdateEquipment(ctx context.Context, id string, in UpdateEquipmentInput) (*Equipment, error) {
	var eq Equipment
	if err := c.do(ctx, http.MethodPut, "/equipment/"+url.PathEscape(id), true, in, &eq); err != nil {
		return nil, err
	}
	return &eq, nil
}

// DeleteEquipment removes an equipment record and its logs.
func (c *Client) DeleteEquipment(ctx context.Context, id string) error {
	var resp messageResponse
	return c.do(ctx, http.MethodDelete, "/equipment/"+url.PathEscape(id), true, nil, &resp)
}

// CreateLog records a maintenance event.
func (c *Client) CreateLog(ctx context.Context, in CreateLogInput) (*MaintenanceLog, error) {
	var l MaintenanceLog
	if err := c.do(ctx, http.MethodPost, "/maintenance", true, in, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListLogs lists maintenance logs across all equipment, newest first.
func (c *Client) ListLogs(ctx context.Context, f LogFilter) ([]MaintenanceLog, error) {
	q := url.Values{}
	if f.StartDate != nil {
		q.Set("startDate", f.StartDate.Format(time.RFC3339))
	}
	if f.EndDate != nil {
		q.Set("endDate", f.EndDate.Format(time.RFC3339))
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}

	var logs []MaintenanceLog
	if err := c.do(ctx, http.MethodGet, withQuery("/maintenance", q), true, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// ListEquipmentLogs lists the logs of one equipment, newest first.
func (c *Client) ListEquipmentLogs(ctx context.Context, equipmentID string) ([]MaintenanceLog, error) {
	var logs []MaintenanceLog
	if err := c.do(ctx, http.MethodGet, "/maintenance/equipment/"+url.PathEscape(equipmentID), true, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteLog removes a maintenance log.
func (c *Client) DeleteLog(ctx context.Context, id string) error {
	var resp messageResponse
	return c.do(ctx, http.MethodDelete, "/maintenance/"+url.PathEscape(id), true, nil, &resp)
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
