package templates

import (
	"fmt"

	"github.com/yudhapratama/userhub/pkg/mailer"
)

// Render produces subject, text and HTML bodies for a templated job.
// Jobs without a template pass their explicit fields through unchanged.
func Render(job mailer.EmailJob) (subject, text, html string) {
	switch job.Template {
	case mailer.TemplateWelcome:
		username, _ := job.Data["username"].(string)
		if username == "" {
			username = "there"
		}
		subject = "Welcome to userhub"
		text = fmt.Sprintf("Hi %s,\n\nYour account has been created. Welcome aboard!\n", username)
		html = fmt.Sprintf("<p>Hi %s,</p><p>Your account has been created. Welcome aboard!</p>", username)
		return subject, text, html
	default:
		return job.Subject, job.Text, job.HTML
	}
}
