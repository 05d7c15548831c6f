// Package render turns site data into finished HTML documents. Every page
// shares the same layout shell; the per-page templates only fill in the
// content block. Rendering is pure: methods return the document text and
// leave all filesystem work to the caller.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/amorgan/folio/internal/blog"
	"github.com/amorgan/folio/internal/profile"
)

// Site holds the site-wide fields shared by every page shell.
type Site struct {
	Title       string
	Description string
	BaseURL     string
}

// Renderer produces the HTML documents of the site.
type Renderer struct {
	Site Site
}

type pageData struct {
	Site          Site
	Title         string
	Description   string
	Canonical     string
	PreloadScript string

	Profile    *profile.Profile
	Post       blog.Post
	ScriptPath string
}

var (
	homeTmpl    = mustPage("home", homeContent)
	aboutTmpl   = mustPage("about", aboutContent)
	contactTmpl = mustPage("contact", contactContent)
	hybridTmpl  = mustPage("contact-hybrid", hybridContent)
	blogTmpl    = mustPage("blog", blogContent)
)

func mustPage(name, content string) *template.Template {
	t := template.Must(template.New(name).Parse(layoutTemplate))
	return template.Must(t.Parse(content))
}

// Home renders the landing page.
func (r *Renderer) Home() (string, error) {
	return r.execute(homeTmpl, "/", pageData{
		Title:       fmt.Sprintf("Home - %s", r.Site.Title),
		Description: r.Site.Description,
	})
}

// About renders the profile page. p may be the placeholder profile when the
// real data failed to load.
func (r *Renderer) About(p *profile.Profile) (string, error) {
	return r.execute(aboutTmpl, "/about", pageData{
		Title:       fmt.Sprintf("About - %s", r.Site.Title),
		Description: "Learn more about me and my work",
		Profile:     p,
	})
}

// ContactStatic renders the display-only contact page used when the site is
// generated without the browser form module.
func (r *Renderer) ContactStatic(p *profile.Profile) (string, error) {
	return r.execute(contactTmpl, "/contact", pageData{
		Title:       fmt.Sprintf("Contact - %s", r.Site.Title),
		Description: "Get in touch with me through this contact form",
		Profile:     p,
	})
}

// ContactHybrid renders the contact page that loads the interactive form
// module from scriptPath at runtime.
func (r *Renderer) ContactHybrid(p *profile.Profile, scriptPath string) (string, error) {
	return r.execute(hybridTmpl, "/contact", pageData{
		Title:         fmt.Sprintf("Contact - %s", r.Site.Title),
		Description:   "Get in touch with me through this interactive contact form",
		Profile:       p,
		ScriptPath:    scriptPath,
		PreloadScript: scriptPath,
	})
}

// BlogPost renders one blog post page.
func (r *Renderer) BlogPost(post blog.Post) (string, error) {
	return r.execute(blogTmpl, fmt.Sprintf("/blog/%d", post.ID), pageData{
		Title:       fmt.Sprintf("%s - %s", post.Title, r.Site.Title),
		Description: post.Summary,
		Post:        post,
	})
}

func (r *Renderer) execute(t *template.Template, path string, data pageData) (string, error) {
	data.Site = r.Site
	if r.Site.BaseURL != "" {
		data.Canonical = strings.TrimSuffix(r.Site.BaseURL, "/") + path
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s page: %w", t.Name(), err)
	}
	return buf.String(), nil
}
