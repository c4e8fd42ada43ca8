// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
	userrepo "github.com/nikosgrigo/Bookstore-API-PostgreSQL/repository/user"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/hash"
	jwtutil "github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/jwt"
)

type mockRepo struct {
	createFn  func(ctx context.Context, u *model.User) error
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	byIDFn    func(ctx context.Context, id int64) (*model.User, error)
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, nil
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) ByID(ctx context.Context, id int64) (*model.User, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = 42
			return nil
		},
	}
	svc := New(m, "test-secret")

	req := model.RegisterReq{
		Username: "nikos",
		Email:    "user@example.com",
		Password: "supersecret",
	}

	u, err := svc.Register(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, int64(42), u.ID)
	require.Equal(t, "nikos", u.Username)
	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "supersecret", u.PasswordHash)
	require.True(t, hash.Check(u.PasswordHash, "supersecret"))
}

func TestRegister_DuplicateUser(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
		},
	}
	svc := New(m, "test-secret")

	_, err := svc.Register(context.Background(), model.RegisterReq{
		Username: "nikos",
		Email:    "taken@example.com",
		Password: "supersecret",
	})
	require.Equal(t, ErrUserTaken, Code(err))
}

func TestLogin_UnknownUser(t *testing.T) {
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) { return nil, nil },
	}
	svc := New(m, "test-secret")

	_, err := svc.Login(context.Background(), model.LoginReq{Email: "ghost@example.com", Password: "x"})
	require.Equal(t, ErrUserNotFound, Code(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed, err := hash.HashPassword("correct-password")
	require.NoError(t, err)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 1, Email: email, PasswordHash: hashed}, nil
		},
	}
	svc := New(m, "test-secret")

	_, err = svc.Login(context.Background(), model.LoginReq{Email: "user@example.com", Password: "wrong"})
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestLogin_IssuesTokenWithAdminClaim(t *testing.T) {
	hashed, err := hash.HashPassword("supersecret")
	require.NoError(t, err)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 9, Email: email, PasswordHash: hashed, IsAdmin: true}, nil
		},
	}
	svc := New(m, "test-secret")

	token, err := svc.Login(context.Background(), model.LoginReq{Email: "admin@example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtutil.Parse(token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, float64(9), claims["sub"])
	require.Equal(t, true, claims["admin"])
}
