// Package api implements the REST client of the Pathshala backend: login,
// register, listing notes, and uploading notes. Authenticated requests carry
// the persisted bearer token via the transport decorator in this package.
//
// Errors never escape as panics: every call resolves to a result or to one
// of ValidationError, AuthError, or a wrapped ErrServer.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// Client talks to the backend under baseURL (".../api"). It is safe for
// concurrent use; auth operations additionally enforce a single in-flight
// request at a time.
type Client struct {
	baseURL string
	httpc   *http.Client

	// authPending mirrors the app's loading flag: while a login/register is
	// outstanding, further auth calls are rejected with ErrRequestPending.
	authPending atomic.Bool
}

// NewClient builds a Client whose requests go through the auth transport.
// timeout bounds every request end to end; pass 0 to rely on the transport
// defaults only.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Transport: NewAuthTransport(tokens, nil),
			Timeout:   timeout,
		},
	}
}

// Login exchanges credentials for a token and user profile. A 4xx from the
// server yields an AuthError with the canonical "Invalid email or password"
// message; transport or decoding failures yield a wrapped ErrServer. The
// credential store is not touched here; persisting the session is the
// caller's decision.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if !c.authPending.CompareAndSwap(false, true) {
		return nil, ErrRequestPending
	}
	defer c.authPending.Store(false)

	var resp authResponse
	if err := c.postJSON(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		if authErr, ok := asAuthError(err); ok {
			return nil, &AuthError{StatusCode: authErr.StatusCode, Message: "Invalid email or password"}
		}
		return nil, err
	}
	return &AuthResult{Token: resp.Token, User: resp.User}, nil
}

// Register validates the form locally and, if it passes, creates the account.
// Validation failures short-circuit with a *ValidationError and never reach
// the network. Server rejections (e.g. a duplicate email) surface as an
// AuthError carrying the server's message.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !c.authPending.CompareAndSwap(false, true) {
		return nil, ErrRequestPending
	}
	defer c.authPending.Store(false)

	body := registerRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Mobile:    req.Mobile,
		Gender:    req.Gender,
	}

	var resp authResponse
	if err := c.postJSON(ctx, "/auth/register", body, &resp); err != nil {
		if authErr, ok := asAuthError(err); ok && authErr.Message == "" {
			authErr.Message = "registration failed"
		}
		return nil, err
	}
	return &AuthResult{Token: resp.Token, User: resp.User}, nil
}

// Notes fetches the caller's study materials. Requires a persisted session;
// without one the server answers 401, which surfaces as an AuthError.
func (c *Client) Notes(ctx context.Context) ([]NoteEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/notes", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServer, err)
	}

	var resp notesResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

// UploadNote streams one file to the backend as multipart/form-data. The
// field names are part of the wire contract: the binary part must be named
// "file" and the text part "title".
func (c *Client) UploadNote(ctx context.Context, title, filename string, r io.Reader) (*NoteEntry, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServer, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServer, err)
	}
	if err := mw.WriteField("title", title); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServer, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServer, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/notes/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServer, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var entry NoteEntry
	if err := c.do(req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// --- plumbing ---

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServer, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServer, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do executes the request and decodes the JSON response into out. Non-2xx
// statuses become an AuthError for client errors (with the server's message
// when one is provided) and a wrapped ErrServer otherwise.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			var er errorResponse
			_ = json.NewDecoder(resp.Body).Decode(&er)
			return &AuthError{StatusCode: resp.StatusCode, Message: er.text()}
		}
		return fmt.Errorf("%w: unexpected status %d", ErrServer, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrServer, err)
	}
	return nil
}

func asAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}
