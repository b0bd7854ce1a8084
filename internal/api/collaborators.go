package api

import (
	"context"
	"fmt"
)

// Collaborators lists the company's collaborator accounts.
func (c *Client) Collaborators(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.Get(ctx, "/collaborators/", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AddCollaborator registers a new collaborator account for the company.
func (c *Client) AddCollaborator(ctx context.Context, create CollaboratorCreate) (*User, error) {
	var user User
	if err := c.Post(ctx, "/collaborators/", create, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateCollaborator patches an existing collaborator account.
func (c *Client) UpdateCollaborator(ctx context.Context, id int, update CollaboratorUpdate) (*User, error) {
	var user User
	if err := c.Patch(ctx, fmt.Sprintf("/collaborators/%d", id), update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteCollaborator removes a collaborator account.
func (c *Client) DeleteCollaborator(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/collaborators/%d", id))
}
