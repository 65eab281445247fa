package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// API is the HTTP client the views use to talk to the auth service.
type API struct {
	baseURL string
	http    *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type signupPayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type serverMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Token   string `json:"token"`
}

// Signup submits the form. Client-side validation must have passed already;
// the returned FieldErrors reflect the server's answer.
func (a *API) Signup(ctx context.Context, form *SignupForm) (FieldErrors, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return errs, nil
	}

	payload := signupPayload{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		PhoneNumber: form.PhoneNumber,
		Email:       form.Email,
		Password:    form.Password,
	}

	var resp serverMessage
	status, err := a.post(ctx, "/signup", payload, &resp)
	if err != nil {
		return FieldErrors{"general": "No response received from the server. Please try again later."}, err
	}

	switch status {
	case http.StatusCreated:
		return nil, nil
	case http.StatusConflict:
		return FieldErrors{"email": "An account with this email already exists"}, nil
	default:
		msg := resp.Error
		if msg == "" {
			msg = resp.Message
		}
		return FieldErrors{"general": fmt.Sprintf("An error occurred during signup: %s", msg)}, nil
	}
}

// Login submits credentials and returns the session token on success.
// Failure messages route to form fields the way the web client does: the
// wrong-password message to the password field, the unknown-email message to
// the email field, anything else to a generic password-field error.
func (a *API) Login(ctx context.Context, email, password string) (string, FieldErrors, error) {
	payload := map[string]string{"email": email, "password": password}

	var resp serverMessage
	status, err := a.post(ctx, "/login", payload, &resp)
	if err != nil {
		return "", FieldErrors{"password": "An error occurred during login"}, err
	}

	if status == http.StatusOK && resp.Success {
		return resp.Token, nil, nil
	}

	switch resp.Message {
	case "Incorrect password":
		return "", FieldErrors{"password": resp.Message}, nil
	case "Invalid email ID":
		return "", FieldErrors{"email": resp.Message}, nil
	default:
		return "", FieldErrors{"password": "Invalid email or password"}, nil
	}
}

// Me fetches the authenticated profile using the session token.
func (a *API) Me(ctx context.Context, token string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := a.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile request failed with status %d", res.StatusCode)
	}

	var profile map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (a *API) post(ctx context.Context, path string, payload, out interface{}) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := a.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return res.StatusCode, nil // tolerate empty or malformed bodies
	}
	return res.StatusCode, nil
}
