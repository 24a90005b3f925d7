package schedule

import (
	"bytes"
	"html/template"
)

type confirmationData struct {
	Name          string
	Email         string
	FormattedDate string
	TimeLabel     string
	Duration      string
	Topic         string
	ZoomLink      string
	ZoomPassword  string
	ZoomError     string
	OwnerName     string
}

var userConfirmationTmpl = template.Must(template.New("userConfirmation").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #e1e1e1; border-radius: 5px;">
  <h2 style="color: #8a2387;">Your Call Has Been Scheduled</h2>
  <p>Hi {{.Name}},</p>
  <p>Your call has been scheduled for <strong>{{.FormattedDate}} at {{.TimeLabel}}</strong> ({{.Duration}} duration).</p>
  <p><strong>Topic:</strong> {{.Topic}}</p>
  <p>I'm looking forward to our conversation!</p>
  {{if .ZoomLink}}
  <div style="margin: 25px 0; padding: 15px; background-color: #f8f4ff; border-radius: 8px; border-left: 4px solid #2D8CFF;">
    <h3 style="margin-top: 0; color: #333;">Zoom Meeting Details</h3>
    <p>Join our meeting using Zoom:</p>
    <a href="{{.ZoomLink}}" style="display: inline-block; background-color: #2D8CFF; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; margin: 10px 0;">Join Zoom Meeting</a>
    {{if .ZoomPassword}}<p style="margin-bottom: 10px; font-size: 14px;">Password: <strong>{{.ZoomPassword}}</strong></p>{{end}}
    <p style="margin-bottom: 0; font-size: 14px; color: #666;">If you don't have Zoom installed, you can join via your browser.</p>
  </div>
  {{end}}
  <p>Best regards{{if .OwnerName}},<br>{{.OwnerName}}{{end}}</p>
</div>
`))

var ownerNotificationTmpl = template.Must(template.New("ownerNotification").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #e1e1e1; border-radius: 5px;">
  <h2 style="color: #8a2387;">New Call Scheduled</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Date:</strong> {{.FormattedDate}}</p>
  <p><strong>Time:</strong> {{.TimeLabel}}</p>
  <p><strong>Duration:</strong> {{.Duration}}</p>
  <p><strong>Topic:</strong> {{.Topic}}</p>
  {{if .ZoomLink}}
  <p><strong>Zoom Meeting:</strong> <a href="{{.ZoomLink}}">{{.ZoomLink}}</a></p>
  {{if .ZoomPassword}}<p><strong>Password:</strong> {{.ZoomPassword}}</p>{{end}}
  {{end}}
  {{if .ZoomError}}<p><strong>Zoom API Error:</strong> {{.ZoomError}}</p>{{end}}
</div>
`))

func renderTemplate(tmpl *template.Template, data confirmationData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
