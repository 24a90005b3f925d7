package contact

import (
	"bytes"
	"html/template"
)

type emailData struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	OwnerName string
}

var ownerNotificationTmpl = template.Must(template.New("ownerNotification").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #e1e1e1; border-radius: 5px;">
  <h2 style="color: #8a2387;">New Contact Form Submission</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <p><strong>Message:</strong></p>
  <div style="background-color: #f9f9f9; padding: 15px; border-radius: 4px;">
    {{.Message}}
  </div>
</div>
`))

var acknowledgmentTmpl = template.Must(template.New("acknowledgment").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #e1e1e1; border-radius: 5px;">
  <h2 style="color: #8a2387;">Thank You for Your Message</h2>
  <p>Hi {{.Name}},</p>
  <p>I've received your message regarding <strong>"{{.Subject}}"</strong>.</p>
  <p>I'll review your message and get back to you as soon as possible.</p>
  <p>For your records, here's a copy of your message:</p>
  <div style="background-color: #f9f9f9; padding: 15px; border-radius: 4px; margin: 15px 0;">
    {{.Message}}
  </div>
  <p>Best regards,</p>
  {{if .OwnerName}}<p><strong>{{.OwnerName}}</strong></p>{{end}}
</div>
`))

func renderTemplate(tmpl *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
