package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/require"

	"github.com/salesai/analyst-api/internal/domain"
	"github.com/salesai/analyst-api/pkg/auth"
	"github.com/salesai/analyst-api/pkg/config"
)

// ---------- Mocks ----------

type mockUserRepo struct {
	nextID  int64
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
	findErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		nextID:  1,
		byEmail: make(map[string]*domain.User),
		byID:    make(map[int64]*domain.User),
	}
}

func (m *mockUserRepo) Create(_ context.Context, req *domain.SignupRequest, passwordHash string) (*domain.User, error) {
	if _, exists := m.byEmail[req.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	u := &domain.User{
		ID:           m.nextID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.nextID++
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return u, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.byEmail[email], nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.byID[id], nil
}

type mockMailer struct {
	lastTo   string
	lastName string
	sendErr  error
}

func (m *mockMailer) SendWelcomeEmail(toEmail, firstName string) error {
	m.lastTo = toEmail
	m.lastName = firstName
	return m.sendErr
}

type mockPublisher struct {
	subjects []string
}

func (m *mockPublisher) Publish(_ context.Context, subject string, _ interface{}) error {
	m.subjects = append(m.subjects, subject)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

// ---------- Helpers ----------

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			SessionTokenTTL: time.Hour,
		},
	}
}

func validSignup() *domain.SignupRequest {
	return &domain.SignupRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		PhoneNumber: "5551234567",
		Email:       "ada@example.com",
		Password:    "Abcdef12",
	}
}

func newTestService(repo *mockUserRepo) (AuthService, *mockMailer, *mockPublisher) {
	mail := &mockMailer{}
	bus := &mockPublisher{}
	return NewAuthService(repo, mail, bus, testConfig()), mail, bus
}

// ---------- Tests ----------

func TestSignupStoresSaltedHash(t *testing.T) {
	repo := newMockUserRepo()
	svc, mail, bus := newTestService(repo)

	user, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	stored := repo.byEmail["ada@example.com"]
	require.NotNil(t, stored)
	require.NotEqual(t, "Abcdef12", stored.PasswordHash)

	match, err := argon2id.ComparePasswordAndHash("Abcdef12", stored.PasswordHash)
	require.NoError(t, err)
	require.True(t, match)

	// Fresh salt: hashing the same plaintext again must not reproduce the
	// stored value.
	req2 := validSignup()
	req2.Email = "ada2@example.com"
	_, err = svc.Signup(context.Background(), req2)
	require.NoError(t, err)
	require.NotEqual(t, stored.PasswordHash, repo.byEmail["ada2@example.com"].PasswordHash)

	require.Equal(t, user.Email, mail.lastTo)
	require.Equal(t, []string{"user.registered", "user.registered"}, bus.subjects)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newTestService(repo)

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), validSignup())
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestSignupValidation(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newTestService(repo)

	cases := []struct {
		name   string
		mutate func(*domain.SignupRequest)
	}{
		{"missing first name", func(r *domain.SignupRequest) { r.FirstName = "" }},
		{"bad email", func(r *domain.SignupRequest) { r.Email = "not-an-email" }},
		{"short phone", func(r *domain.SignupRequest) { r.PhoneNumber = "12345" }},
		{"weak password", func(r *domain.SignupRequest) { r.Password = "short" }},
		{"common password", func(r *domain.SignupRequest) { r.Password = "Password1" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignup()
			tc.mutate(req)
			_, err := svc.Signup(context.Background(), req)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSignupMailFailureDoesNotFailSignup(t *testing.T) {
	repo := newMockUserRepo()
	mail := &mockMailer{sendErr: fmt.Errorf("smtp down")}
	svc := NewAuthService(repo, mail, &mockPublisher{}, testConfig())

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)
}

func TestLoginSuccessMintsToken(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, bus := newTestService(repo)

	user, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &domain.LoginRequest{
		Email:    "Ada@Example.com", // normalization should lowercase this
		Password: "Abcdef12",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, "Login successful", resp.Message)
	require.NotEmpty(t, resp.Token)

	claims, err := auth.Parse(resp.Token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Email, claims.Email)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)

	require.Contains(t, bus.subjects, "user.logged_in")
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newTestService(repo)

	_, err := svc.Login(context.Background(), &domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1A",
	})
	require.ErrorIs(t, err, domain.ErrUnknownIdentity)
	require.NotErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newTestService(repo)

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredential)
	require.NotErrorIs(t, err, domain.ErrUnknownIdentity)
}

func TestLoginStoreUnavailable(t *testing.T) {
	repo := newMockUserRepo()
	repo.findErr = fmt.Errorf("%w: connection refused", domain.ErrStoreUnavailable)
	svc, _, _ := newTestService(repo)

	_, err := svc.Login(context.Background(), &domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "Abcdef12",
	})
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	require.False(t, errors.Is(err, domain.ErrUnknownIdentity))
}
