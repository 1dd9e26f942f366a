package service_test

import (
	"context"
	"testing"

	"github.com/careernet/careernet/internal/domain"
	"github.com/careernet/careernet/internal/repository/postgres"
	"github.com/careernet/careernet/internal/service"
	"github.com/careernet/careernet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_UpdateProfile(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	profileService := service.NewProfileService(repos.User, repos.Skill)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().WithName("Ada", "Lovelace").Build(t, testDB.DB)

	headline := "Staff Engineer"
	updated, err := profileService.UpdateProfile(ctx, user.ID, service.UpdateProfileInput{
		Headline: &headline,
	})
	require.NoError(t, err)

	// Partial update leaves other fields alone.
	assert.Equal(t, "Staff Engineer", updated.Headline)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "Lovelace", updated.LastName)
}

func TestProfileService_Skills(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	profileService := service.NewProfileService(repos.User, repos.Skill)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("add normalizes case", func(t *testing.T) {
		skills, err := profileService.AddSkill(ctx, user.ID, "  Go ")
		require.NoError(t, err)
		assert.Equal(t, []string{"go"}, skills)
	})

	t.Run("re-adding is a no-op", func(t *testing.T) {
		skills, err := profileService.AddSkill(ctx, user.ID, "GO")
		require.NoError(t, err)
		assert.Equal(t, []string{"go"}, skills)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := profileService.AddSkill(ctx, user.ID, "   ")
		assert.ErrorIs(t, err, domain.ErrSkillNameEmpty)
	})

	t.Run("remove", func(t *testing.T) {
		_, err := profileService.AddSkill(ctx, user.ID, "postgres")
		require.NoError(t, err)

		skills, err := profileService.RemoveSkill(ctx, user.ID, "Go")
		require.NoError(t, err)
		assert.Equal(t, []string{"postgres"}, skills)
	})

	t.Run("remove unknown skill", func(t *testing.T) {
		_, err := profileService.RemoveSkill(ctx, user.ID, "cobol")
		assert.ErrorIs(t, err, domain.ErrSkillNotFound)
	})
}

func TestProfileService_SearchUsers(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	profileService := service.NewProfileService(repos.User, repos.Skill)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().
		WithName("Alice", "Chen").
		WithHeadline("Distributed systems engineer").
		Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().
		WithName("Bob", "Martinez").
		WithHeadline("Product designer").
		Build(t, testDB.DB)

	_, err := profileService.AddSkill(ctx, bob.ID, "figma")
	require.NoError(t, err)

	t.Run("matches headline", func(t *testing.T) {
		results, err := profileService.SearchUsers(ctx, "distributed", 0, 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, alice.ID, results[0].ID)
	})

	t.Run("matches name", func(t *testing.T) {
		results, err := profileService.SearchUsers(ctx, "martinez", 0, 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, bob.ID, results[0].ID)
	})

	t.Run("matches skill", func(t *testing.T) {
		results, err := profileService.SearchUsers(ctx, "figma", 0, 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, bob.ID, results[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		results, err := profileService.SearchUsers(ctx, "zzzz-no-such-user", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
