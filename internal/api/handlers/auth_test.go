package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/wellness-backend/internal/auth"
	"github.com/mindwell/wellness-backend/internal/models"
	repo "github.com/mindwell/wellness-backend/internal/repository"
	"github.com/mindwell/wellness-backend/internal/services"
)

// memUsers is a map-backed Users repository for handler tests.
type memUsers struct {
	users map[string]models.User
	seq   int
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]models.User{}} }

func (m *memUsers) Create(u models.User) (models.User, error) {
	m.seq++
	u.ID = "u" + strconv.Itoa(m.seq)
	u.IsActive = true
	u.CreatedAt = time.Now()
	m.users[u.ID] = u
	return u, nil
}

func (m *memUsers) GetByID(id string) (models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return models.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (m *memUsers) GetByLogin(login string) (models.User, error) {
	for _, u := range m.users {
		if u.Username == login || u.Email == login {
			return u, nil
		}
	}
	return models.User{}, pgx.ErrNoRows
}

func (m *memUsers) UsernameTaken(username string) (bool, error) {
	_, err := m.GetByLogin(username)
	return err == nil, nil
}

func (m *memUsers) EmailTaken(email, excludeID string) (bool, error) {
	for id, u := range m.users {
		if u.Email == email && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) Update(u models.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.users[u.ID] = u
	return nil
}

func (m *memUsers) UpdatePassword(id, hash string) error {
	u, ok := m.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = hash
	m.users[id] = u
	return nil
}

func (m *memUsers) Delete(id string) error {
	if _, ok := m.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.users, id)
	return nil
}

// noRows stubs satisfy UserService's mood and journal counters.
type noMoods struct{}

func (noMoods) Create(e models.MoodEntry) (models.MoodEntry, error) { return e, nil }
func (noMoods) GetByID(string, string) (models.MoodEntry, error) {
	return models.MoodEntry{}, pgx.ErrNoRows
}
func (noMoods) ListByUser(string, *time.Time, int, int) ([]models.MoodEntry, error) {
	return nil, nil
}
func (noMoods) Count(string, *time.Time) (int, error) { return 0, nil }
func (noMoods) Update(models.MoodEntry) error         { return pgx.ErrNoRows }
func (noMoods) Delete(string, string) error           { return pgx.ErrNoRows }

type noJournals struct{}

func (noJournals) Create(e models.JournalEntry) (models.JournalEntry, error) { return e, nil }
func (noJournals) GetByID(string, string) (models.JournalEntry, error) {
	return models.JournalEntry{}, pgx.ErrNoRows
}
func (noJournals) List(string, repo.JournalFilter) ([]models.JournalEntry, error) { return nil, nil }
func (noJournals) ListAll(string) ([]models.JournalEntry, error)                 { return nil, nil }
func (noJournals) Count(string, *time.Time) (int, error)                         { return 0, nil }
func (noJournals) Update(models.JournalEntry) error                              { return pgx.ErrNoRows }
func (noJournals) Delete(string, string) error                                   { return pgx.ErrNoRows }

func newAuthHandler() (*AuthHandler, *memUsers) {
	users := newMemUsers()
	svc := services.NewUserService(users, noMoods{}, noJournals{})
	tm := auth.NewTokenManager("access", "refresh", "wellness-test", time.Minute, time.Hour)
	return NewAuthHandler(tm, svc), users
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestRegister(t *testing.T) {
	h, _ := newAuthHandler()

	rec := postJSON(t, h.Register, `{"username":"sena","email":"sena@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		User         models.User `json:"user"`
		AccessToken  string      `json:"access_token"`
		RefreshToken string      `json:"refresh_token"`
		ExpiresIn    int64       `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sena", resp.User.Username)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Positive(t, resp.ExpiresIn)

	// password hash must never leak
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestRegister_ValidationAndConflict(t *testing.T) {
	h, _ := newAuthHandler()

	rec := postJSON(t, h.Register, `{"username":"sena","email":"not-an-email","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")

	// unknown fields are rejected outright
	rec = postJSON(t, h.Register, `{"username":"sena","email":"a@b.co","password":"secret1","admin":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.Register, `{"username":"sena","email":"sena@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = postJSON(t, h.Register, `{"username":"sena","email":"other@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin(t *testing.T) {
	h, _ := newAuthHandler()
	rec := postJSON(t, h.Register, `{"username":"sena","email":"sena@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Login, `{"username":"sena","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, h.Login, `{"username":"sena","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")

	rec = postJSON(t, h.Login, `{"username":"sena"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefresh(t *testing.T) {
	h, _ := newAuthHandler()
	rec := postJSON(t, h.Register, `{"username":"sena","email":"sena@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = postJSON(t, h.Refresh, `{"refresh_token":"`+resp.RefreshToken+`"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// an access token is not a refresh token
	rec = postJSON(t, h.Refresh, `{"refresh_token":"`+resp.AccessToken+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(t, h.Refresh, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
