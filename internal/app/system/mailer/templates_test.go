package mailer

import (
	"strings"
	"testing"
)

func TestBuildCredentialsEmail(t *testing.T) {
	e := BuildCredentialsEmail("new@example.com", CredentialsEmailData{
		SiteName: "CEDHub",
		Email:    "new@example.com",
		Password: "s3cret-tmp",
		LoginURL: "http://localhost:3000/login",
	})

	if e.To != "new@example.com" {
		t.Errorf("To: got %q", e.To)
	}
	if !strings.Contains(e.Subject, "CEDHub") {
		t.Errorf("Subject missing site name: %q", e.Subject)
	}
	if !strings.Contains(e.TextBody, "s3cret-tmp") {
		t.Error("text body missing temporary password")
	}
	if !strings.Contains(e.HTMLBody, "s3cret-tmp") {
		t.Error("HTML body missing temporary password")
	}
	if !strings.Contains(e.HTMLBody, "http://localhost:3000/login") {
		t.Error("HTML body missing login URL")
	}
}
