package render

import (
	"html/template"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/amorgan/folio/internal/blog"
	"github.com/amorgan/folio/internal/profile"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func testRenderer() *Renderer {
	return &Renderer{Site: Site{
		Title:       "Test Site",
		Description: "A site for testing",
		BaseURL:     "https://example.com",
	}}
}

func testProfile() *profile.Profile {
	return &profile.Profile{
		Name:     "Ada Lovelace",
		Title:    "Software Engineer",
		Location: "London, UK",
		Bio:      "I write programs for machines that do not exist yet.",
		Skills:   []string{"Go", "WebAssembly", "Mathematics"},
		Experience: []profile.Experience{
			{
				Company:     "Analytical Engines Ltd",
				Position:    "Principal Engineer",
				Duration:    "2020 - Present",
				Description: "Designing computation pipelines.",
			},
		},
		Interests: []string{"Compilers", "Poetry"},
		Contact: profile.Contact{
			Email:   "ada@example.com",
			Website: "https://ada.example.com",
			GitHub:  "adalovelace",
		},
		Updated: "2025-03-14",
	}
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing rendered page: %v", err)
	}
	return doc
}

func TestHomePage(t *testing.T) {
	html, err := testRenderer().Home()
	if err != nil {
		t.Fatalf("Home() error = %v", err)
	}

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("home page does not start with a doctype")
	}

	doc := parseDoc(t, html)

	if got, want := doc.Find("title").Text(), "Home - Test Site"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
	if got, want := doc.Find("h1").Text(), "Welcome to Test Site"; got != want {
		t.Errorf("h1 = %q, want %q", got, want)
	}
	if got, want := doc.Find(`link[rel="canonical"]`).AttrOr("href", ""), "https://example.com/"; got != want {
		t.Errorf("canonical = %q, want %q", got, want)
	}
	if got, want := doc.Find(`meta[name="description"]`).AttrOr("content", ""), "A site for testing"; got != want {
		t.Errorf("description = %q, want %q", got, want)
	}
}

func TestNavbarOnEveryPage(t *testing.T) {
	r := testRenderer()
	p := testProfile()

	pages := map[string]func() (string, error){
		"home":           r.Home,
		"about":          func() (string, error) { return r.About(p) },
		"contact-static": func() (string, error) { return r.ContactStatic(p) },
		"contact-hybrid": func() (string, error) { return r.ContactHybrid(p, "/assets/contactform-abc123.js") },
		"blog":           func() (string, error) { return r.BlogPost(blog.Post{ID: 1, Title: "First"}) },
	}

	want := []string{"/", "/about", "/contact", "/blog/1"}
	for name, renderPage := range pages {
		html, err := renderPage()
		if err != nil {
			t.Fatalf("%s: render error = %v", name, err)
		}

		doc := parseDoc(t, html)
		links := doc.Find("#navbar a")
		if links.Length() != len(want) {
			t.Fatalf("%s: navbar has %d links, want %d", name, links.Length(), len(want))
		}
		links.Each(func(i int, s *goquery.Selection) {
			if got := s.AttrOr("href", ""); got != want[i] {
				t.Errorf("%s: navbar link %d href = %q, want %q", name, i, got, want[i])
			}
		})
	}
}

func TestAboutPage(t *testing.T) {
	p := testProfile()
	html, err := testRenderer().About(p)
	if err != nil {
		t.Fatalf("About() error = %v", err)
	}

	doc := parseDoc(t, html)

	if got, want := doc.Find("h1.about-name").Text(), p.Name; got != want {
		t.Errorf("name = %q, want %q", got, want)
	}
	if got, want := doc.Find("p.about-bio-text").Text(), p.Bio; got != want {
		t.Errorf("bio = %q, want %q", got, want)
	}
	if got, want := doc.Find("span.skill-tag").Length(), len(p.Skills); got != want {
		t.Errorf("skill tags = %d, want %d", got, want)
	}
	if got, want := doc.Find("h4.experience-position").First().Text(), "Principal Engineer"; got != want {
		t.Errorf("experience position = %q, want %q", got, want)
	}
	if got, want := doc.Find(`a[href="mailto:ada@example.com"]`).Length(), 1; got != want {
		t.Errorf("mailto links = %d, want %d", got, want)
	}
	if !strings.Contains(doc.Find("p.footer-updated").Text(), "Last updated: 2025-03-14") {
		t.Errorf("footer = %q, want last updated line", doc.Find("p.footer-updated").Text())
	}
}

func TestAboutPageEscapesProfileData(t *testing.T) {
	p := testProfile()
	p.Name = `<script>alert("pwn")</script>`
	p.Bio = `Likes <b>bold</b> claims`

	html, err := testRenderer().About(p)
	if err != nil {
		t.Fatalf("About() error = %v", err)
	}

	if strings.Contains(html, `<script>alert`) {
		t.Error("profile name rendered as markup")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("profile name was not HTML escaped")
	}
	if strings.Contains(html, "<b>bold</b>") {
		t.Error("profile bio rendered as markup")
	}

	doc := parseDoc(t, html)
	if got := doc.Find("h1.about-name").Text(); got != p.Name {
		t.Errorf("name text = %q, want %q", got, p.Name)
	}
}

func TestAboutPagePlaceholderProfile(t *testing.T) {
	html, err := testRenderer().About(profile.Placeholder())
	if err != nil {
		t.Fatalf("About() error = %v", err)
	}

	doc := parseDoc(t, html)
	if got, want := doc.Find("h1.about-name").Text(), "Error Loading Data"; got != want {
		t.Errorf("name = %q, want %q", got, want)
	}
	if got, want := doc.Find("p.about-bio-text").Text(), "Failed to load about information."; got != want {
		t.Errorf("bio = %q, want %q", got, want)
	}
}

func TestContactStaticPage(t *testing.T) {
	html, err := testRenderer().ContactStatic(testProfile())
	if err != nil {
		t.Fatalf("ContactStatic() error = %v", err)
	}

	doc := parseDoc(t, html)

	for _, id := range []string{"name", "email", "subject", "message"} {
		if doc.Find("#"+id).Length() != 1 {
			t.Errorf("missing form field #%s", id)
		}
	}
	if doc.Find("div.static-form-notice").Length() != 1 {
		t.Error("missing static form notice")
	}
	if doc.Find("#contact-form-placeholder").Length() != 0 {
		t.Error("static page must not carry the interactive form placeholder")
	}
	if doc.Find(`script[type="module"]`).Length() != 0 {
		t.Error("static page must not load a script module")
	}
	if got, want := doc.Find("a.contact-link").First().Text(), "ada@example.com"; got != want {
		t.Errorf("contact email = %q, want %q", got, want)
	}
}

func TestContactHybridPage(t *testing.T) {
	html, err := testRenderer().ContactHybrid(testProfile(), "/assets/contactform-abc123.js")
	if err != nil {
		t.Fatalf("ContactHybrid() error = %v", err)
	}

	doc := parseDoc(t, html)

	if doc.Find("#contact-form-placeholder").Length() != 1 {
		t.Error("missing interactive form placeholder")
	}
	if got, want := doc.Find(`link[rel="preload"]`).AttrOr("href", ""), "/assets/contactform-abc123.js"; got != want {
		t.Errorf("preload href = %q, want %q", got, want)
	}

	script := doc.Find(`script[type="module"]`).Text()
	if !strings.Contains(script, "mountContactForm") {
		t.Error("module script does not import mountContactForm")
	}
	if !strings.Contains(script, "contactform-abc123.js") {
		t.Error("module script does not reference the form bundle")
	}
}

func TestBlogPostPage(t *testing.T) {
	post := blog.Post{
		ID:      2,
		Title:   "Second Post",
		Date:    "2025-02-18",
		Summary: "Blog post number 2",
		Body:    template.HTML("<p>Rendered body.</p>"),
		PrevID:  1,
		NextID:  3,
	}

	html, err := testRenderer().BlogPost(post)
	if err != nil {
		t.Fatalf("BlogPost() error = %v", err)
	}

	if !strings.Contains(html, "<p>Rendered body.</p>") {
		t.Error("post body was escaped instead of rendered")
	}

	doc := parseDoc(t, html)
	if got, want := doc.Find("title").Text(), "Second Post - Test Site"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
	if got, want := doc.Find(`.blog-nav a[href="/blog/1"]`).Text(), "← Previous"; got != want {
		t.Errorf("previous link = %q, want %q", got, want)
	}
	if got, want := doc.Find(`.blog-nav a[href="/blog/3"]`).Text(), "Next →"; got != want {
		t.Errorf("next link = %q, want %q", got, want)
	}
	if got, want := doc.Find(`.blog-nav a[href="/"]`).Text(), "← Back to Home"; got != want {
		t.Errorf("home link = %q, want %q", got, want)
	}
}

func TestBlogPostPageEnds(t *testing.T) {
	r := testRenderer()

	first, err := r.BlogPost(blog.Post{ID: 1, Title: "First", NextID: 2})
	if err != nil {
		t.Fatalf("BlogPost() error = %v", err)
	}
	if strings.Contains(first, "← Previous") {
		t.Error("first post must not link to a previous post")
	}
	if !strings.Contains(first, "Next →") {
		t.Error("first post should link to the next post")
	}

	last, err := r.BlogPost(blog.Post{ID: 3, Title: "Last", PrevID: 2})
	if err != nil {
		t.Fatalf("BlogPost() error = %v", err)
	}
	if strings.Contains(last, "Next →") {
		t.Error("last post must not link to a next post")
	}
	if !strings.Contains(last, "← Previous") {
		t.Error("last post should link to the previous post")
	}
}

func TestHomePageSnapshot(t *testing.T) {
	html, err := testRenderer().Home()
	if err != nil {
		t.Fatalf("Home() error = %v", err)
	}
	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, html)
}

func TestContactStaticPageSnapshot(t *testing.T) {
	html, err := testRenderer().ContactStatic(testProfile())
	if err != nil {
		t.Fatalf("ContactStatic() error = %v", err)
	}
	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, html)
}
