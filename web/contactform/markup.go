//go:build js && wasm

package main

import (
	"fmt"
	"html"
	"strings"

	"github.com/amorgan/folio/internal/form"
)

// formHTML is the empty form injected into the placeholder. Ids follow the
// contact-<field> / <field>-error pattern that the handlers in app.go look
// up.
const formHTML = `
    <form id="contact-form" class="contact-form">
        <div class="validation-errors" id="validation-errors" style="display: none;">
            <h4>Please fix the following errors:</h4>
            <ul id="validation-errors-list"></ul>
        </div>

        <div class="form-row">
            <div class="form-group">
                <label for="contact-name">Name *</label>
                <input type="text" id="contact-name" class="form-input" placeholder="Your full name" required />
                <div class="error-message" id="name-error"></div>
            </div>
            <div class="form-group">
                <label for="contact-email">Email *</label>
                <input type="email" id="contact-email" class="form-input" placeholder="your.email@example.com" required />
                <div class="error-message" id="email-error"></div>
            </div>
        </div>

        <div class="form-group">
            <label for="contact-subject">Subject *</label>
            <input type="text" id="contact-subject" class="form-input" placeholder="What's this about?" required />
            <div class="error-message" id="subject-error"></div>
        </div>

        <div class="form-group">
            <label for="contact-message">Message *</label>
            <textarea id="contact-message" class="form-textarea" placeholder="Tell me what's on your mind..." rows="6" required></textarea>
            <div class="error-message" id="message-error"></div>
        </div>

        <div class="form-actions">
            <button type="submit" id="submit-btn" class="btn btn-primary">Send Message ✨</button>
            <button type="button" id="reset-btn" class="btn btn-secondary">Reset Form</button>
        </div>

        <div class="form-status" id="form-status"></div>

        <div class="form-note">
            <p>⚙️ <strong>Powered by WebAssembly:</strong> This form is running Go code compiled to WASM!</p>
        </div>
    </form>

    <style>
        .validation-errors {
            background-color: #fef2f2;
            border: 1px solid #fecaca;
            border-radius: 0.5rem;
            color: #dc2626;
            padding: 1rem;
            margin-bottom: 1rem;
        }
        .validation-errors h4 {
            margin: 0 0 0.5rem 0;
        }
        .validation-errors ul {
            margin: 0;
            padding-left: 1.25rem;
        }
        .error-message {
            color: #dc2626;
            font-size: 0.875rem;
            margin-top: 0.25rem;
            min-height: 1.25rem;
        }
        .form-status {
            margin-top: 1rem;
            padding: 1rem;
            border-radius: 0.5rem;
            text-align: center;
            font-weight: 500;
        }
        .form-status.success {
            background-color: #dcfce7;
            color: #166534;
            border: 1px solid #bbf7d0;
        }
        .form-status.error {
            background-color: #fef2f2;
            color: #dc2626;
            border: 1px solid #fecaca;
        }
        .form-input:focus, .form-textarea:focus {
            outline: 2px solid #3b82f6;
            outline-offset: 2px;
        }
        .form-input.error, .form-textarea.error {
            border-color: #dc2626;
        }
        .btn:disabled {
            opacity: 0.6;
            cursor: not-allowed;
        }
    </style>
    `

// submittedHTML renders the post-submission summary. All user text goes
// through html.EscapeString before interpolation.
func submittedHTML(d form.Data) string {
	var b strings.Builder
	b.WriteString(`
    <div class="submission-result">
        <h3>✅ Form Submitted Successfully!</h3>
        <p class="thank-you">`)
	b.WriteString(fmt.Sprintf("Thank you, %s! Your message has been received. (This is a demo)", html.EscapeString(d.Name)))
	b.WriteString(`</p>
        <div class="submitted-data">
            <h4>Submitted Data:</h4>
`)
	rows := []struct{ label, value string }{
		{"Name", d.Name},
		{"Email", d.Email},
		{"Subject", d.Subject},
		{"Message", d.Message},
		{"Submitted", d.SubmittedAt},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, `            <div class="data-item"><strong>%s: </strong><span>%s</span></div>
`, row.label, html.EscapeString(row.value))
	}
	b.WriteString(`        </div>
        <div class="wasm-info">
            <p>This page loaded a Go binary compiled to WebAssembly to handle the form, while every other page stays plain static HTML.</p>
        </div>
        <button type="button" id="another-btn" class="btn btn-secondary">Send Another Message</button>
    </div>
    `)
	return b.String()
}
