// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// CredentialsEmailData holds data for the new-account credentials email.
type CredentialsEmailData struct {
	SiteName string
	Email    string
	Password string
	LoginURL string
}

// BuildCredentialsEmail creates the email sent to a freshly created account,
// with both HTML and text bodies.
func BuildCredentialsEmail(to string, data CredentialsEmailData) Email {
	return Email{
		To:       to,
		Subject:  fmt.Sprintf("Your %s account", data.SiteName),
		TextBody: buildCredentialsText(data),
		HTMLBody: buildCredentialsHTML(data),
	}
}

func buildCredentialsText(data CredentialsEmailData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("An account has been created for you on %s.\n\n", data.SiteName))
	buf.WriteString(fmt.Sprintf("Email: %s\n", data.Email))
	buf.WriteString(fmt.Sprintf("Temporary password: %s\n\n", data.Password))
	buf.WriteString("Sign in here:\n")
	buf.WriteString(data.LoginURL + "\n\n")
	buf.WriteString("You will be asked to change this password after your first sign-in.\n")
	return buf.String()
}

func buildCredentialsHTML(data CredentialsEmailData) string {
	tmpl := template.Must(template.New("credentials").Parse(credentialsHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const credentialsHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Your account</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #4f46e5;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                An account has been created for you. Sign in with:
              </p>
              <div style="background-color: #f3f4f6; border-radius: 8px; padding: 24px; margin-bottom: 24px;">
                <p style="margin: 0 0 8px; font-size: 14px; color: #374151;">Email: <strong>{{.Email}}</strong></p>
                <p style="margin: 0; font-size: 14px; color: #374151;">Temporary password: <strong style="font-family: 'Courier New', monospace;">{{.Password}}</strong></p>
              </div>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                <tr>
                  <td align="center">
                    <a href="{{.LoginURL}}" style="display: inline-block; padding: 14px 32px; background-color: #4f46e5; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 500; border-radius: 6px;">
                      Sign In
                    </a>
                  </td>
                </tr>
              </table>
              <p style="margin: 24px 0 0; font-size: 13px; color: #9ca3af; text-align: center;">
                You will be asked to change this password after your first sign-in.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
