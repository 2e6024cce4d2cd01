// internal/app/features/follows/handler_test.go
package follows_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cedhub/cedhub/internal/app/features/follows"
	"github.com/cedhub/cedhub/internal/app/store/queries/followedmembers"
	"github.com/cedhub/cedhub/internal/app/system/roles"
	"github.com/cedhub/cedhub/internal/domain/models"
	"github.com/cedhub/cedhub/internal/testutil"
	"go.uber.org/zap"
)

// isFollowingBody mirrors the is-following response payload.
type isFollowingBody struct {
	IsFollowing             bool `json:"isFollowing"`
	OldNumberOfPublications *int `json:"oldNumberOfPublications"`
}

func newTestHandler(t *testing.T) (*follows.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return follows.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestFollowThenIsFollowing(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/followed-users", map[string]any{
		"authorId": "auth1",
		"name":     "Grace Hopper",
		"publications": []map[string]any{
			{"title": "Compilers I", "year": 1952},
			{"title": "Compilers II", "year": 1953},
		},
	})
	rec := httptest.NewRecorder()
	h.Follow(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("follow status = %d, body = %s", rec.Code, rec.Body.String())
	}

	check := httptest.NewRequest(http.MethodGet, "/followed-users/auth1/is-following", nil)
	check = testutil.WithChiURLParam(check, "authorId", "auth1")
	rec = httptest.NewRecorder()
	h.IsFollowing(rec, check)
	if rec.Code != http.StatusOK {
		t.Fatalf("is-following status = %d", rec.Code)
	}

	var resp isFollowingBody
	testutil.DecodeJSON(t, rec, &resp)
	if !resp.IsFollowing {
		t.Error("isFollowing = false, want true")
	}
	if resp.OldNumberOfPublications == nil || *resp.OldNumberOfPublications != 2 {
		t.Errorf("oldNumberOfPublications = %v, want 2", resp.OldNumberOfPublications)
	}
}

func TestIsFollowingUnknownAuthor(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/followed-users/nobody/is-following", nil)
	req = testutil.WithChiURLParam(req, "authorId", "nobody")
	rec := httptest.NewRecorder()
	h.IsFollowing(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp isFollowingBody
	testutil.DecodeJSON(t, rec, &resp)
	if resp.IsFollowing {
		t.Error("isFollowing = true for unknown author")
	}
	if resp.OldNumberOfPublications != nil {
		t.Error("oldNumberOfPublications should be absent for unknown author")
	}
}

func TestFollowDuplicateAuthor(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f.CreateFollowedUser(ctx, "auth-dup", nil)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/followed-users", map[string]any{
		"authorId": "auth-dup",
	})
	rec := httptest.NewRecorder()
	h.Follow(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestUnfollow(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f.CreateFollowedUser(ctx, "auth-rm", nil)

	req := httptest.NewRequest(http.MethodDelete, "/followed-users/auth-rm", nil)
	req = testutil.WithChiURLParam(req, "authorId", "auth-rm")
	rec := httptest.NewRecorder()
	h.Unfollow(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/followed-users/auth-rm", nil)
	req = testutil.WithChiURLParam(req, "authorId", "auth-rm")
	h.Unfollow(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second unfollow status = %d, want 404", rec.Code)
	}
}

func TestUpdateFollowedUser(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f.CreateFollowedUser(ctx, "auth-upd", nil, models.Publication{Title: "One", Year: 2020})

	req := testutil.NewJSONRequest(t, http.MethodPut, "/followed-users/auth-upd", map[string]any{
		"publications": []map[string]any{
			{"title": "One", "year": 2020},
			{"title": "Two", "year": 2021},
		},
	})
	req = testutil.WithChiURLParam(req, "authorId", "auth-upd")
	rec := httptest.NewRecorder()
	h.Update(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	fu, err := h.Followed.GetByAuthorID(ctx, "auth-upd")
	if err != nil {
		t.Fatal(err)
	}
	if len(fu.Publications) != 2 {
		t.Errorf("publications = %d, want 2", len(fu.Publications))
	}
}

func TestUpdateUnknownFollowedUser(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/followed-users/ghost", map[string]any{
		"name": "Ghost",
	})
	req = testutil.WithChiURLParam(req, "authorId", "ghost")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateUnknownFollowedUserEmptyBody(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/followed-users/ghost", map[string]any{})
	req = testutil.WithChiURLParam(req, "authorId", "ghost")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 even with no fields to change", rec.Code)
	}
}

func TestListRejectsBothFilters(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet,
		"/followed-users?laboratory_abbreviation=LIG&team_abbreviation=APTIKAL", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListByTeam(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	head := f.CreateUser(ctx, "head@example.org", roles.LaboratoryHead)
	est := f.CreateEstablishment(ctx, "CED Nord", head.ID)
	lab := f.CreateLaboratory(ctx, "LIG", est.ID, head.ID)
	team := f.CreateTeam(ctx, "APTIKAL", &lab.ID, head.ID)

	inTeam := f.CreateNamedUser(ctx, "in@example.org", "Ines", "Martin")
	outside := f.CreateNamedUser(ctx, "out@example.org", "Omar", "Diallo")
	f.CreateMembership(ctx, inTeam.ID, team.ID, true)

	f.CreateFollowedUser(ctx, "auth-in", &inTeam.ID, models.Publication{Title: "P", Year: 2023})
	f.CreateFollowedUser(ctx, "auth-out", &outside.ID)

	req := httptest.NewRequest(http.MethodGet, "/followed-users?team_abbreviation=APTIKAL", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got []followedmembers.Member
	testutil.DecodeJSON(t, rec, &got)
	if len(got) != 1 {
		t.Fatalf("listed %d members, want 1", len(got))
	}
	if got[0].AuthorID != "auth-in" {
		t.Errorf("authorId = %q, want auth-in", got[0].AuthorID)
	}
	if got[0].FirstName != "Ines" || got[0].LastName != "Martin" {
		t.Errorf("name = %q %q, want account names joined in", got[0].FirstName, got[0].LastName)
	}
}

func TestListByUnknownLaboratory(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/followed-users?laboratory_abbreviation=NOPE", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
