// Package client is the Go counterpart of the web frontend: a typed HTTP
// client for every endpoint plus a synchronizer that keeps a boardview.State
// in lockstep with the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"kanban_webapp/internal/domain"
)

// APIError is a non-2xx response, carrying the server's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type Client struct {
	base string
	http *http.Client
}

func New(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		return &APIError{Status: res.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// IdentifyResult is the POST /users response.
type IdentifyResult struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

func (c *Client) Identify(ctx context.Context, username string) (IdentifyResult, error) {
	var res IdentifyResult
	err := c.do(ctx, http.MethodPost, "/users",
		map[string]string{"username": username}, &res)
	return res, err
}

func (c *Client) BoardPage(ctx context.Context, username string) (*domain.BoardPage, error) {
	var page domain.BoardPage
	if err := c.do(ctx, http.MethodGet, "/board/"+url.PathEscape(username), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreateBoard(ctx context.Context, username, name string) (domain.BoardSummary, error) {
	var board domain.BoardSummary
	err := c.do(ctx, http.MethodPost, "/boards",
		map[string]string{"username": username, "name": name}, &board)
	return board, err
}

func (c *Client) DeleteBoard(ctx context.Context, boardID, username string) error {
	path := "/boards/" + url.PathEscape(boardID) + "?username=" + url.QueryEscape(username)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) CreateList(ctx context.Context, boardID, title string) (domain.List, error) {
	var list domain.List
	err := c.do(ctx, http.MethodPost, "/lists",
		map[string]string{"boardId": boardID, "title": title}, &list)
	return list, err
}

func (c *Client) DeleteList(ctx context.Context, listID string) error {
	return c.do(ctx, http.MethodDelete, "/lists/"+url.PathEscape(listID), nil, nil)
}

// CreateTask returns the created task; the response body has no listId, so
// it is filled in from the argument.
func (c *Client) CreateTask(ctx context.Context, listID, content string) (domain.Task, error) {
	var task domain.Task
	err := c.do(ctx, http.MethodPost, "/tasks",
		map[string]string{"listId": listID, "content": content}, &task)
	task.ListID = listID
	return task, err
}

func (c *Client) UpdateTask(ctx context.Context, taskID string, upd domain.TaskUpdate) (domain.Task, error) {
	var task domain.Task
	err := c.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(taskID), upd, &task)
	return task, err
}

func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(taskID), nil, nil)
}

func (c *Client) ListTasks(ctx context.Context, listID string) ([]domain.Task, error) {
	var tasks []domain.Task
	err := c.do(ctx, http.MethodGet, "/tasks?listId="+url.QueryEscape(listID), nil, &tasks)
	return tasks, err
}
