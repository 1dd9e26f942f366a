package testutil

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/careernet/careernet/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email        string
	password     string
	firstName    string
	lastName     string
	headline     string
	resetToken   string
	resetExpires time.Time
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:     fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password:  "testpassword123",
		firstName: "Test",
		lastName:  "User",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithName sets the first and last name
func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.firstName = first
	b.lastName = last
	return b
}

// WithHeadline sets the headline
func (b *UserBuilder) WithHeadline(headline string) *UserBuilder {
	b.headline = headline
	return b
}

// WithResetTicket stores an outstanding reset ticket for the given
// plaintext token and expiry.
func (b *UserBuilder) WithResetTicket(plaintext string, expiresAt time.Time) *UserBuilder {
	b.resetToken = plaintext
	b.resetExpires = expiresAt
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		FirstName:    b.firstName,
		LastName:     b.lastName,
		Headline:     b.headline,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if b.resetToken != "" {
		sum := sha256.Sum256([]byte(b.resetToken))
		hash := hex.EncodeToString(sum[:])
		expires := b.resetExpires
		user.ResetTokenHash = &hash
		user.ResetTokenExpiresAt = &expires
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"user"`
	Token string `json:"token"`
}

// BuildAndAuthenticate creates a user via API and returns the user and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"email":     b.email,
		"password":  b.password,
		"firstName": b.firstName,
		"lastName":  b.lastName,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:    userID,
		Email: authResp.User.Email,
	}

	return user, authResp.Token
}

// JobBuilder creates test jobs with a builder pattern
type JobBuilder struct {
	postedBy *domain.User
	title    string
	company  string
	location string
	tags     []string
	active   bool
}

// NewJobBuilder creates a new JobBuilder with default values
func NewJobBuilder() *JobBuilder {
	return &JobBuilder{
		title:   "Backend Engineer",
		company: "Acme Corp",
		tags:    []string{"go", "postgres"},
		active:  true,
	}
}

// WithPoster sets the posting user
func (b *JobBuilder) WithPoster(user *domain.User) *JobBuilder {
	b.postedBy = user
	return b
}

// WithTitle sets the title
func (b *JobBuilder) WithTitle(title string) *JobBuilder {
	b.title = title
	return b
}

// WithCompany sets the company
func (b *JobBuilder) WithCompany(company string) *JobBuilder {
	b.company = company
	return b
}

// WithActive sets the active flag
func (b *JobBuilder) WithActive(active bool) *JobBuilder {
	b.active = active
	return b
}

// Build creates the job in the database
func (b *JobBuilder) Build(t *testing.T, db *gorm.DB) *domain.Job {
	t.Helper()

	if b.postedBy == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.postedBy = user
	}

	tagsJSON, _ := json.Marshal(b.tags)
	job := &domain.Job{
		ID:        uuid.New(),
		PostedBy:  b.postedBy.ID,
		Title:     b.title,
		Company:   b.company,
		Location:  b.location,
		Tags:      datatypes.JSON(tagsJSON),
		Active:    b.active,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(job).Error; err != nil {
		t.Fatalf("failed to create job: %v", err)
	}

	return job
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
