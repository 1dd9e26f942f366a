// Package client is a Go client for the CareerNet API. It stores the
// session token through a SessionStore and attaches it as a bearer header
// on protected calls.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http    *resty.Client
	session *SessionStore
}

func New(baseURL string, session *SessionStore) *Client {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/api/v1").
		SetTimeout(30 * time.Second)

	return &Client{http: cli, session: session}
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Headline  string `json:"headline"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Headline  string `json:"headline"`
	Location  string `json:"location"`
}

func (c *Client) Register(ctx context.Context, email, password, firstName, lastName string) (*AuthResponse, error) {
	var result AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"email":     email,
			"password":  password,
			"firstName": firstName,
			"lastName":  lastName,
		}).
		SetResult(&result).
		Post("/auth/register")
	if err != nil {
		return nil, fmt.Errorf("register request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("register failed: %s", strings.TrimSpace(resp.String()))
	}

	c.session.Store(result.Token)
	return &result, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var result AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("login failed: %s", strings.TrimSpace(resp.String()))
	}

	c.session.Store(result.Token)
	return &result, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var result User
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.session.Read()).
		SetResult(&result).
		Get("/auth/me")
	if err != nil {
		return nil, fmt.Errorf("me request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("me failed: %s", strings.TrimSpace(resp.String()))
	}
	return &result, nil
}

func (c *Client) SearchUsers(ctx context.Context, query string) ([]UserSummary, error) {
	var result []UserSummary
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.session.Read()).
		SetQueryParam("q", query).
		SetResult(&result).
		Get("/users/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("search failed: %s", strings.TrimSpace(resp.String()))
	}
	return result, nil
}

// Logout tells the server (a no-op for stateless tokens) and discards the
// local session either way.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.session.Read()).
		Post("/auth/logout")

	c.session.Clear()
	return err
}

func (c *Client) IsAuthenticated() bool {
	return c.session.IsAuthenticated()
}
