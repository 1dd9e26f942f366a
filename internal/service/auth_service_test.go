package service_test

import (
	"context"
	"testing"

	"github.com/careernet/careernet/internal/repository/postgres"
	"github.com/careernet/careernet/internal/service"
	"github.com/careernet/careernet/internal/testutil"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, testutil.NewRecordingMailer(), cfg, zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.RegisterInput
		setup     func()
		wantErr   error
		checkUser bool
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Email:     "newuser@example.com",
				Password:  "password123",
				FirstName: "New",
				LastName:  "User",
			},
			checkUser: true,
		},
		{
			name: "email is lowercased",
			input: service.RegisterInput{
				Email:    "MiXeD@Example.COM",
				Password: "password123",
			},
			checkUser: true,
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Email:    "existing@example.com",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@example.com").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailExists,
		},
		{
			name: "duplicate email different case",
			input: service.RegisterInput{
				Email:    "EXISTING@example.com",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@example.com").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailExists,
		},
		{
			name: "invalid email",
			input: service.RegisterInput{
				Email:    "not-an-email",
				Password: "password123",
			},
			wantErr: service.ErrInvalidEmail,
		},
		{
			name: "short password",
			input: service.RegisterInput{
				Email:    "short@example.com",
				Password: "short",
			},
			wantErr: service.ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkUser {
				assert.NotNil(t, result.User)
				assert.NotEmpty(t, result.Token)
				assert.NotEqual(t, tt.input.Password, result.User.PasswordHash)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, testutil.NewRecordingMailer(), cfg, zerolog.Nop())
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("loginuser@example.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Email:    user.Email,
				Password: rawPassword,
			},
		},
		{
			name: "email comparison is case-insensitive",
			input: service.LoginInput{
				Email:    "LoginUser@Example.com",
				Password: rawPassword,
			},
		},
		{
			name: "wrong password",
			input: service.LoginInput{
				Email:    user.Email,
				Password: "wrongpassword",
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name: "non-existent user",
			input: service.LoginInput{
				Email:    "nonexistent@example.com",
				Password: "anypassword",
			},
			wantErr: service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)
			assert.NotEmpty(t, result.Token)
		})
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, testutil.NewRecordingMailer(), cfg, zerolog.Nop())
	ctx := context.Background()

	result, err := authService.Register(ctx, service.RegisterInput{
		Email:    "tokenuser@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// A token signed with a different secret must be rejected.
	otherCfg := testutil.TestConfig()
	otherCfg.JWTSecret = "a-completely-different-secret"
	otherService := service.NewAuthService(repos.User, testutil.NewRecordingMailer(), otherCfg, zerolog.Nop())
	otherResult, err := otherService.Login(ctx, service.LoginInput{
		Email:    "tokenuser@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// A token whose TTL has already elapsed.
	expiredCfg := testutil.TestConfig()
	expiredCfg.JWTExpirationHours = -1
	expiredService := service.NewAuthService(repos.User, testutil.NewRecordingMailer(), expiredCfg, zerolog.Nop())
	expiredResult, err := expiredService.Login(ctx, service.LoginInput{
		Email:    "tokenuser@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	tampered := []byte(result.Token)
	if tampered[len(tampered)-1] == 'A' {
		tampered[len(tampered)-1] = 'B'
	} else {
		tampered[len(tampered)-1] = 'A'
	}

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{
			name:  "valid token",
			token: result.Token,
		},
		{
			name:    "tampered token",
			token:   string(tampered),
			wantErr: true,
		},
		{
			name:    "token signed with wrong secret",
			token:   otherResult.Token,
			wantErr: true,
		},
		{
			name:    "expired token",
			token:   expiredResult.Token,
			wantErr: true,
		},
		{
			name:    "malformed token",
			token:   "notavalidjwt",
			wantErr: true,
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := authService.ValidateToken(tt.token)

			if tt.wantErr {
				// All failures collapse to the same error.
				assert.ErrorIs(t, err, service.ErrInvalidToken)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, result.User.ID, claims.UserID)
			assert.Equal(t, "tokenuser@example.com", claims.Email)
		})
	}
}

func TestAuthService_GetUserByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, testutil.NewRecordingMailer(), cfg, zerolog.Nop())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("getuserbyid@example.com").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		id      uuid.UUID
		wantErr error
	}{
		{
			name: "existing user",
			id:   user.ID,
		},
		{
			name:    "non-existent user",
			id:      uuid.New(),
			wantErr: service.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := authService.GetUserByID(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.Equal(t, user.Email, got.Email)
		})
	}
}
