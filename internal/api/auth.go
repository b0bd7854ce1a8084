package api

import (
	"context"
	"net/url"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type recoveryResponse struct {
	Message string `json:"message"`
}

// Login exchanges credentials for a bearer token. The endpoint is
// password-grant style: form-encoded username/password. The token is NOT
// installed on the client; the session store decides whether to adopt it.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var resp tokenResponse
	if err := c.PostForm(ctx, "/token", form, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// CurrentUser fetches the profile of the authenticated account.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.Get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile patches the caller's own name and/or password.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	var user User
	if err := c.Patch(ctx, "/users/me", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RequestPasswordRecovery asks the backend to email a reset token. The
// backend answers success-shaped regardless of whether the account exists.
func (c *Client) RequestPasswordRecovery(ctx context.Context, email string) (string, error) {
	payload := map[string]string{
		"email":    email,
		"app_type": "gestao",
	}

	var resp recoveryResponse
	if err := c.Post(ctx, "/request-password-recovery", payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ResetPassword redeems an emailed recovery token for a new password.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	payload := map[string]string{
		"token":        token,
		"new_password": newPassword,
	}
	return c.Post(ctx, "/reset-password", payload, nil)
}
