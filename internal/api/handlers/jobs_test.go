package handlers_test

import (
	"net/http"
	"testing"

	"github.com/careernet/careernet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestJobsHandler_RequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/jobs"},
		{http.MethodGet, "/jobs"},
		{http.MethodGet, "/users/me/applications"},
	}

	for _, ep := range endpoints {
		t.Run(ep.method+" "+ep.path, func(t *testing.T) {
			req, err := http.NewRequest(ep.method, ts.APIURL(ep.path), nil)
			require.NoError(t, err)

			resp := doRequest(t, req)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "Unauthorized\n", testutil.ReadBody(t, resp))
		})
	}
}

func TestJobsHandler_CreateAndList(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("create", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/jobs"), map[string]interface{}{
			"title":   "Backend Engineer",
			"company": "Acme Corp",
			"tags":    []string{"go"},
		}, token)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		var job struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			Active bool   `json:"active"`
		}
		testutil.AssertJSONResponse(t, resp, &job)
		assert.Equal(t, "Backend Engineer", job.Title)
		assert.True(t, job.Active)
	})

	t.Run("missing title", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/jobs"), map[string]interface{}{
			"company": "Acme Corp",
		}, token)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("list includes created job", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/jobs"), nil, token)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		var jobs []struct {
			Title string `json:"title"`
		}
		testutil.AssertJSONResponse(t, resp, &jobs)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Backend Engineer", jobs[0].Title)
	})
}

func TestJobsHandler_Apply(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, ownerToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	_, applicantToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	job := testutil.NewJobBuilder().WithPoster(owner).Build(t, ts.DB.DB)

	applyURL := ts.APIURL("/jobs/" + job.ID.String() + "/apply")

	t.Run("successful application", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, applyURL, map[string]string{
			"coverNote": "I would be a great fit",
		}, applicantToken)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("duplicate application", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, applyURL, map[string]string{
			"coverNote": "again",
		}, applicantToken)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("owner lists applications", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet,
			ts.APIURL("/jobs/"+job.ID.String()+"/applications"), nil, ownerToken)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		var applications []struct {
			CoverNote string `json:"coverNote"`
		}
		testutil.AssertJSONResponse(t, resp, &applications)
		require.Len(t, applications, 1)
		assert.Equal(t, "I would be a great fit", applications[0].CoverNote)
	})

	t.Run("non-owner cannot list applications", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet,
			ts.APIURL("/jobs/"+job.ID.String()+"/applications"), nil, applicantToken)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("applicant lists own applications", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet,
			ts.APIURL("/users/me/applications"), nil, applicantToken)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		var applications []struct {
			JobID string `json:"jobId"`
		}
		testutil.AssertJSONResponse(t, resp, &applications)
		require.Len(t, applications, 1)
		assert.Equal(t, job.ID.String(), applications[0].JobID)
	})
}

func TestJobsHandler_OwnerOnlyMutations(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, ownerToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	_, otherToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	job := testutil.NewJobBuilder().WithPoster(owner).Build(t, ts.DB.DB)
	jobURL := ts.APIURL("/jobs/" + job.ID.String())

	t.Run("non-owner update forbidden", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPut, jobURL, map[string]string{
			"title": "Hijacked",
		}, otherToken)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("owner update succeeds", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPut, jobURL, map[string]string{
			"title": "Staff Engineer",
		}, ownerToken)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		var updated struct {
			Title string `json:"title"`
		}
		testutil.AssertJSONResponse(t, resp, &updated)
		assert.Equal(t, "Staff Engineer", updated.Title)
	})

	t.Run("non-owner delete forbidden", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodDelete, jobURL, nil, otherToken)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("unknown job returns 404", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet,
			ts.APIURL("/jobs/00000000-0000-0000-0000-000000000000"), nil, ownerToken)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid job id returns 400", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet,
			ts.APIURL("/jobs/not-a-uuid"), nil, ownerToken)

		resp := doRequest(t, req)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
