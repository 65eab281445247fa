package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/signup", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		if body["email"] == "taken@x.com" {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "Error registering user", "error": "email already registered"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "User registered successfully"})
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		switch {
		case body["email"] != "a@x.com":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "Invalid email ID"})
		case body["password"] != "Abcdef12":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "Incorrect password"})
		default:
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": "Login successful", "token": "tok-123"})
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func validForm() *SignupForm {
	return &SignupForm{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		PhoneNumber:     "5551234567",
		Email:           "a@x.com",
		Password:        "Abcdef12",
		ConfirmPassword: "Abcdef12",
	}
}

func TestSignupValidatesBeforeNetwork(t *testing.T) {
	// No server: a validation failure must never hit the wire.
	api := NewAPI("http://127.0.0.1:1")

	form := validForm()
	form.ConfirmPassword = "other"

	errs, err := api.Signup(context.Background(), form)
	require.NoError(t, err)
	require.Equal(t, "Passwords do not match", errs["confirmPassword"])
}

func TestSignupSuccess(t *testing.T) {
	srv := newFakeServer(t)
	api := NewAPI(srv.URL)

	errs, err := api.Signup(context.Background(), validForm())
	require.NoError(t, err)
	require.Empty(t, errs)
}

func TestSignupDuplicateEmailRoutesToEmailField(t *testing.T) {
	srv := newFakeServer(t)
	api := NewAPI(srv.URL)

	form := validForm()
	form.Email = "taken@x.com"

	errs, err := api.Signup(context.Background(), form)
	require.NoError(t, err)
	require.Contains(t, errs, "email")
}

func TestLoginFieldErrorRouting(t *testing.T) {
	srv := newFakeServer(t)
	api := NewAPI(srv.URL)

	token, errs, err := api.Login(context.Background(), "a@x.com", "Abcdef12")
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, "tok-123", token)

	_, errs, err = api.Login(context.Background(), "a@x.com", "wrong")
	require.NoError(t, err)
	require.Equal(t, "Incorrect password", errs["password"])
	require.NotContains(t, errs, "email")

	_, errs, err = api.Login(context.Background(), "nobody@x.com", "x")
	require.NoError(t, err)
	require.Equal(t, "Invalid email ID", errs["email"])
	require.NotContains(t, errs, "password")
}

func TestLoginNetworkError(t *testing.T) {
	api := NewAPI("http://127.0.0.1:1")

	_, errs, err := api.Login(context.Background(), "a@x.com", "Abcdef12")
	require.Error(t, err)
	require.Equal(t, "An error occurred during login", errs["password"])
}
