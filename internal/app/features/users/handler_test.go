// internal/app/features/users/handler_test.go
package users_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cedhub/cedhub/internal/app/features/users"
	"github.com/cedhub/cedhub/internal/app/system/mailer"
	"github.com/cedhub/cedhub/internal/app/system/roles"
	"github.com/cedhub/cedhub/internal/domain/models"
	"github.com/cedhub/cedhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// recordingSender captures emails instead of delivering them.
type recordingSender struct {
	sent []mailer.Email
}

func (s *recordingSender) Send(e mailer.Email) error {
	s.sent = append(s.sent, e)
	return nil
}

func newTestHandler(t *testing.T) (*users.Handler, *testutil.Fixtures, *recordingSender) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	mail := &recordingSender{}
	h := users.NewHandler(db, mail, "CED Hub", "https://cedhub.example.org/login", zap.NewNop())
	return h, testutil.NewFixtures(t, db), mail
}

func TestCreateUser(t *testing.T) {
	h, _, mail := newTestHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/users", map[string]string{
		"email":    "New.User@Example.org",
		"password": "temp-pass-1",
		"roles":    roles.Researcher,
	})
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got models.User
	testutil.DecodeJSON(t, rec, &got)
	if got.Email != "new.user@example.org" {
		t.Errorf("email = %q, want normalized lowercase", got.Email)
	}
	if got.GeneratedPassword != "temp-pass-1" {
		t.Errorf("generatedPassword = %q, want the supplied password", got.GeneratedPassword)
	}
	if got.HasConfirmed {
		t.Error("new user should start unconfirmed")
	}
	if len(mail.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(mail.sent))
	}
	if mail.sent[0].To != "new.user@example.org" {
		t.Errorf("email sent to %q", mail.sent[0].To)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	h, _, mail := newTestHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/users", map[string]string{
		"email":    "x@example.org",
		"password": "pw",
		"roles":    "SUPERADMIN",
	})
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(mail.sent) != 0 {
		t.Errorf("sent %d emails, want none on validation failure", len(mail.sent))
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	n, err := h.Users.ListAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(n) != 0 {
		t.Errorf("store has %d users, want 0 after rejected create", len(n))
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	h, f, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f.CreateUser(ctx, "dup@example.org", roles.Researcher)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/users", map[string]string{
		"email":    "dup@example.org",
		"password": "pw",
		"roles":    roles.Researcher,
	})
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestUpdateUserConfirmsAccount(t *testing.T) {
	h, f, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	u := f.CreateUser(ctx, "confirm@example.org", roles.Researcher)

	first := "Ada"
	req := testutil.NewJSONRequest(t, http.MethodPut, "/users/"+u.ID.Hex(), map[string]any{
		"firstName": first,
	})
	req = testutil.WithChiURLParam(req, "id", u.ID.Hex())
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ModifiedCount int64 `json:"modifiedCount"`
		HasConfirmed  bool  `json:"hasConfirmed"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if !resp.HasConfirmed {
		t.Error("response should report hasConfirmed true")
	}

	got, err := h.Users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.HasConfirmed {
		t.Error("stored user should be confirmed after any update")
	}
	if got.GeneratedPassword != "" {
		t.Errorf("generatedPassword = %q, want cleared", got.GeneratedPassword)
	}
	if got.FirstName != first {
		t.Errorf("firstName = %q, want %q", got.FirstName, first)
	}
}

func TestUpdateUserIgnoresUnknownFields(t *testing.T) {
	h, f, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	u := f.CreateUser(ctx, "locked@example.org", roles.Researcher)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/users/"+u.ID.Hex(), map[string]any{
		"roles":    []string{roles.CEDHead},
		"password": "hijacked",
	})
	req = testutil.WithChiURLParam(req, "id", u.ID.Hex())
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	got, err := h.Users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.HasRole(roles.CEDHead) {
		t.Error("roles must not be writable through the profile update")
	}
	if got.Password == "hijacked" {
		t.Error("password must not be writable through the profile update")
	}
}

func TestUpdatePassword(t *testing.T) {
	h, f, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	u := f.CreateUser(ctx, "pw@example.org", roles.Researcher)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/users/"+u.ID.Hex()+"/password", map[string]string{
		"password": "s3cret-new",
	})
	req = testutil.WithChiURLParam(req, "id", u.ID.Hex())
	rec := httptest.NewRecorder()
	h.UpdatePassword(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	got, err := h.Users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Password == "s3cret-new" || got.Password == "" {
		t.Errorf("password should be stored hashed, got %q", got.Password)
	}
}

func TestGetUserNotFound(t *testing.T) {
	h, _, _ := newTestHandler(t)

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest(http.MethodGet, "/users/"+id, nil)
	req = testutil.WithChiURLParam(req, "id", id)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetUserAggregate(t *testing.T) {
	h, f, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	head := f.CreateUser(ctx, "head@example.org", roles.LaboratoryHead)
	est := f.CreateEstablishment(ctx, "CED Nord", head.ID)
	lab := f.CreateLaboratory(ctx, "LIG", est.ID, head.ID)
	f.CreateTeam(ctx, "APTIKAL", &lab.ID, head.ID)
	f.CreatePhdStudent(ctx, "Iris", "Nguyen", head.ID)

	req := httptest.NewRequest(http.MethodGet, "/users/"+head.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", head.ID.Hex())
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Email              string           `json:"email"`
		Password           string           `json:"password"`
		LaboratoriesHeaded []map[string]any `json:"laboratoriesHeaded"`
		TeamsHeaded        []map[string]any `json:"teamsHeaded"`
		TeamsMemberships   []map[string]any `json:"teamsMemberships"`
		PhdStudents        []map[string]any `json:"phdStudents"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Email != head.Email {
		t.Errorf("email = %q, want %q", resp.Email, head.Email)
	}
	if resp.Password != "" {
		t.Error("password must never appear in the aggregate")
	}
	if len(resp.LaboratoriesHeaded) != 1 {
		t.Errorf("laboratoriesHeaded = %d, want 1", len(resp.LaboratoriesHeaded))
	}
	if len(resp.TeamsHeaded) != 1 {
		t.Errorf("teamsHeaded = %d, want 1", len(resp.TeamsHeaded))
	}
	if resp.TeamsMemberships == nil {
		t.Error("teamsMemberships should be an empty array, not null")
	}
	if len(resp.PhdStudents) != 1 {
		t.Errorf("phdStudents = %d, want 1", len(resp.PhdStudents))
	}
}

func TestListUsersExcludesPassword(t *testing.T) {
	h, f, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f.CreateUser(ctx, "a@example.org", roles.Researcher)
	f.CreateUser(ctx, "b@example.org", roles.LaboratoryHead)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got []models.User
	testutil.DecodeJSON(t, rec, &got)
	if len(got) != 2 {
		t.Fatalf("listed %d users, want 2", len(got))
	}
	for _, u := range got {
		if u.Password != "" {
			t.Errorf("user %s: password leaked in listing", u.Email)
		}
	}
}

func TestListResearchersFiltersByRole(t *testing.T) {
	h, f, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f.CreateResearcher(ctx, "r1@example.org")
	f.CreateResearcher(ctx, "r2@example.org")
	f.CreateUser(ctx, "head@example.org", roles.LaboratoryHead)

	req := httptest.NewRequest(http.MethodGet, "/users/researchers", nil)
	rec := httptest.NewRecorder()
	h.ListResearchers(rec, req)

	var got []models.User
	testutil.DecodeJSON(t, rec, &got)
	if len(got) != 2 {
		t.Fatalf("listed %d researchers, want 2", len(got))
	}
	for _, u := range got {
		if !u.HasRole(roles.Researcher) {
			t.Errorf("user %s is not a researcher", u.Email)
		}
	}
}

func TestDeleteUserIdempotent(t *testing.T) {
	h, f, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	u := f.CreateUser(ctx, "gone@example.org", roles.Researcher)

	del := func() int64 {
		req := httptest.NewRequest(http.MethodDelete, "/users/"+u.ID.Hex(), nil)
		req = testutil.WithChiURLParam(req, "id", u.ID.Hex())
		rec := httptest.NewRecorder()
		h.Delete(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp struct {
			DeletedCount int64 `json:"deletedCount"`
		}
		testutil.DecodeJSON(t, rec, &resp)
		return resp.DeletedCount
	}

	if got := del(); got != 1 {
		t.Errorf("first delete count = %d, want 1", got)
	}
	if got := del(); got != 0 {
		t.Errorf("second delete count = %d, want 0", got)
	}
}
