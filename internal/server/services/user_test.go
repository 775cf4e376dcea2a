package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pathshala/internal/common"
	"pathshala/internal/dbx"
	"pathshala/internal/server/auth"
	"pathshala/internal/server/config"
	"pathshala/internal/server/models"
	"pathshala/internal/server/repositories/notes"
	"pathshala/internal/server/repositories/users"
)

// fakeUserRepo is an in-memory users.Repository keyed by email.
type fakeUserRepo struct {
	byEmail map[string]*models.User
	nextID  string
	err     error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, common.ErrEmailAlreadyRegistered
	}
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	if f.byEmail == nil {
		f.byEmail = map[string]*models.User{}
	}
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

// fakeRepoManager vends the fakes regardless of the DBTX handed in.
type fakeRepoManager struct {
	users users.Repository
	notes notes.Repository
}

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository { return m.users }
func (m *fakeRepoManager) Notes(db dbx.DBTX) notes.Repository { return m.notes }
func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func testServerConfig() config.Config {
	cfg := config.Config{}
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.TokenValidity = time.Hour
	return cfg
}

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	repo := &fakeUserRepo{nextID: "u-1"}
	svc := NewUserService(nil, &fakeRepoManager{users: repo}, testServerConfig())

	res, err := svc.Register(context.Background(), &models.User{
		FirstName: "Asha", LastName: "Verma", Email: "asha@example.com",
		Mobile: "9876543210", Gender: "Female",
	}, "secret1")
	require.NoError(t, err)

	assert.Equal(t, "u-1", res.User.ID)
	assert.Equal(t, common.RoleStudent, res.User.Role)

	stored := repo.byEmail["asha@example.com"]
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))

	claims, err := auth.GetClaimsFromToken(res.Token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, common.RoleStudent, claims.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{nextID: "u-1"}
	svc := NewUserService(nil, &fakeRepoManager{users: repo}, testServerConfig())

	_, err := svc.Register(context.Background(), &models.User{Email: "asha@example.com"}, "secret1")
	require.NoError(t, err)

	repo.nextID = "u-2"
	_, err = svc.Register(context.Background(), &models.User{Email: "asha@example.com"}, "other-pw")
	assert.ErrorIs(t, err, common.ErrEmailAlreadyRegistered)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{byEmail: map[string]*models.User{
		"asha@example.com": {ID: "u-1", Email: "asha@example.com", Role: "Admin", PasswordHash: string(hash)},
	}}
	svc := NewUserService(nil, &fakeRepoManager{users: repo}, testServerConfig())

	res, err := svc.Login(context.Background(), "asha@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "u-1", res.User.ID)

	claims, err := auth.GetClaimsFromToken(res.Token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "Admin", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{byEmail: map[string]*models.User{
		"asha@example.com": {ID: "u-1", Email: "asha@example.com", PasswordHash: string(hash)},
	}}
	svc := NewUserService(nil, &fakeRepoManager{users: repo}, testServerConfig())

	_, err = svc.Login(context.Background(), "asha@example.com", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	svc := NewUserService(nil, &fakeRepoManager{users: &fakeUserRepo{}}, testServerConfig())

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLogin_RepoFailure(t *testing.T) {
	repo := &fakeUserRepo{err: assert.AnError}
	svc := NewUserService(nil, &fakeRepoManager{users: repo}, testServerConfig())

	_, err := svc.Login(context.Background(), "asha@example.com", "secret1")
	assert.ErrorIs(t, err, common.ErrInternal)
}
