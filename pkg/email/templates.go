package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
)

// NotificationData fills the email sent to the business mailbox. Optional
// fields arrive with their placeholders already substituted.
type NotificationData struct {
	Brand       string
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Deadline    string
	Description string
}

// ConfirmationData fills the email sent back to the submitter.
type ConfirmationData struct {
	Brand         string
	BrandEmail    string
	BrandPhone    string
	Year          int
	Name          string
	ProjectType   string
	Deadline      string
	DescriptionEx string
	NextSteps     []string
}

var funcs = template.FuncMap{
	"nl2br": nl2br,
	"lower": strings.ToLower,
}

var (
	notificationHTML = template.Must(template.New("notification").Funcs(funcs).Parse(notificationHTMLTemplate))
	confirmationHTML = template.Must(template.New("confirmation").Funcs(funcs).Parse(confirmationHTMLTemplate))
	notificationText = texttemplate.Must(texttemplate.New("notification").Parse(notificationTextTemplate))
	confirmationText = texttemplate.Must(texttemplate.New("confirmation").Funcs(texttemplate.FuncMap{"lower": strings.ToLower}).Parse(confirmationTextTemplate))
)

// RenderNotification returns the plain text and HTML bodies of the business
// notification.
func RenderNotification(data NotificationData) (string, string, error) {
	var text, html bytes.Buffer
	if err := notificationText.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("failed to execute notification text template: %w", err)
	}
	if err := notificationHTML.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("failed to execute notification html template: %w", err)
	}
	return text.String(), html.String(), nil
}

// RenderConfirmation returns the plain text and HTML bodies of the submitter
// confirmation.
func RenderConfirmation(data ConfirmationData) (string, string, error) {
	var text, html bytes.Buffer
	if err := confirmationText.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("failed to execute confirmation text template: %w", err)
	}
	if err := confirmationHTML.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("failed to execute confirmation html template: %w", err)
	}
	return text.String(), html.String(), nil
}

// nl2br escapes s and turns its line breaks into <br> tags.
func nl2br(s string) template.HTML {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = template.HTMLEscapeString(line)
	}
	return template.HTML(strings.Join(lines, "<br>"))
}

const notificationTextTemplate = `New Project Request Details:

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Project Type: {{.ProjectType}}
Deadline: {{.Deadline}}

Project Description:
{{.Description}}

---
This request was submitted through the {{.Brand}} website.
You can reply directly to the client at: {{.Email}}
`

const notificationHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Project Request</title>
</head>
<body style="margin: 0; background-color: #f9f9f9;">
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
        <div style="background-color: #0c1425; color: #f4d03f; padding: 20px; border-radius: 8px 8px 0 0;">
            <h1 style="margin: 0;">New Project Request</h1>
        </div>
        <div style="background-color: #ffffff; padding: 30px; border-radius: 0 0 8px 8px;">
            <h2 style="color: #0c1425; margin-top: 0; border-bottom: 2px solid #f4d03f; padding-bottom: 10px;">{{.ProjectType}} Request from {{.Name}}</h2>
            <table style="width: 100%; border-collapse: collapse;">
                <tr><td style="font-weight: bold; width: 120px; padding: 6px 0;">Name:</td><td>{{.Name}}</td></tr>
                <tr><td style="font-weight: bold; padding: 6px 0;">Email:</td><td><a href="mailto:{{.Email}}" style="color: #b7950b;">{{.Email}}</a></td></tr>
                <tr><td style="font-weight: bold; padding: 6px 0;">Phone:</td><td>{{.Phone}}</td></tr>
                <tr><td style="font-weight: bold; padding: 6px 0;">Project Type:</td><td><span style="background-color: #f4d03f; color: #0c1425; padding: 4px 8px; border-radius: 4px; font-weight: bold;">{{.ProjectType}}</span></td></tr>
                <tr><td style="font-weight: bold; padding: 6px 0;">Deadline:</td><td>{{.Deadline}}</td></tr>
            </table>
            <h3 style="color: #0c1425; margin-bottom: 10px;">Project Description:</h3>
            <div style="background-color: #f8f9fa; padding: 15px; border-left: 4px solid #f4d03f; line-height: 1.6;">{{nl2br .Description}}</div>
            <p style="margin-top: 30px; color: #6c757d; font-size: 14px;">
                <strong>Next Steps:</strong><br>
                &bull; Reply directly to this email to reach {{.Name}}<br>
                &bull; Review the requirements and prepare a detailed quote<br>
                &bull; Expected response time: within 24 hours
            </p>
        </div>
        <p style="text-align: center; color: #6c757d; font-size: 12px;">This request was submitted through the {{.Brand}} website.</p>
    </div>
</body>
</html>`

const confirmationTextTemplate = `Hi {{.Name}},

Thank you for submitting your project request! We have received your {{lower .ProjectType}} project details and our team is reviewing your requirements.

Your Request Summary:
Project Type: {{.ProjectType}}
Deadline: {{.Deadline}}
Description: {{.DescriptionEx}}

What happens next?
{{range .NextSteps}}- {{.}}
{{end}}
If you have any urgent questions or need to add more details to your request, reply to this email.

{{.Brand}} Team
{{.BrandEmail}}{{if .BrandPhone}}
{{.BrandPhone}}{{end}}
`

const confirmationHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Project Request Received</title>
</head>
<body style="margin: 0; background-color: #f9f9f9;">
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
        <div style="background-color: #0c1425; color: #f4d03f; padding: 20px; border-radius: 8px 8px 0 0;">
            <h1 style="margin: 0;">Project Request Received</h1>
        </div>
        <div style="background-color: #ffffff; padding: 30px; border-radius: 0 0 8px 8px;">
            <h2 style="color: #0c1425; margin-top: 0;">Hi {{.Name}},</h2>
            <p style="line-height: 1.6; color: #333;">Thank you for submitting your project request! We have received your {{lower .ProjectType}} project details and our team is reviewing your requirements.</p>
            <div style="background-color: #f8f9fa; padding: 20px; border-radius: 6px; margin: 20px 0; border-left: 4px solid #f4d03f;">
                <h3 style="margin-top: 0; color: #0c1425;">Your Request Summary:</h3>
                <p style="margin: 5px 0;"><strong>Project Type:</strong> {{.ProjectType}}</p>
                <p style="margin: 5px 0;"><strong>Deadline:</strong> {{.Deadline}}</p>
                <p style="margin: 5px 0;"><strong>Description:</strong> {{.DescriptionEx}}</p>
            </div>
            <div style="background-color: #28a745; color: #ffffff; padding: 15px; border-radius: 6px; margin: 25px 0;">
                <h3 style="margin: 0 0 10px 0;">What happens next?</h3>
                <ul style="margin: 0; padding-left: 20px;">
                    {{range .NextSteps}}<li>{{.}}</li>
                    {{end}}
                </ul>
            </div>
            <p style="line-height: 1.6; color: #333;">If you have any urgent questions or need to add more details to your request, please reply to this email or contact us directly.</p>
            <p style="text-align: center; color: #6c757d; margin: 30px 0 0;">
                <strong>{{.Brand}} Team</strong><br>
                Email: {{.BrandEmail}}{{if .BrandPhone}}<br>
                Phone: {{.BrandPhone}}{{end}}
            </p>
        </div>
        <p style="text-align: center; color: #6c757d; font-size: 12px;">&copy; {{.Year}} {{.Brand}}. All rights reserved.</p>
    </div>
</body>
</html>`
