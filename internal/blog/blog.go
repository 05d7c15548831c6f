// Package blog renders the site's blog posts from embedded markdown files.
// Each post carries YAML frontmatter with its title, date, and summary; the
// numeric part of the filename is the post id and the URL segment.
package blog

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

//go:embed posts/*.md
var postFS embed.FS

// Post is one rendered blog post.
type Post struct {
	ID      int
	Title   string
	Date    string
	Summary string
	Body    template.HTML

	// PrevID and NextID are the ids of the neighboring posts in id order,
	// or 0 at the ends of the list.
	PrevID int
	NextID int
}

// postMeta is the YAML frontmatter of a post file.
type postMeta struct {
	Title   string `yaml:"title"`
	Date    string `yaml:"date"`
	Summary string `yaml:"summary"`
}

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// sanitizer strips scripts and event handlers from rendered post HTML while
// keeping the markup goldmark and the syntax highlighter emit.
var sanitizer = newSanitizer()

func newSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("pre", "code", "span", "div")
	p.AllowStyles("color", "background-color", "font-weight", "font-style", "text-decoration").OnElements("span", "pre")
	return p
}

// Posts loads, renders, and returns all blog posts sorted by id.
func Posts() ([]Post, error) {
	entries, err := postFS.ReadDir("posts")
	if err != nil {
		return nil, fmt.Errorf("reading embedded posts: %w", err)
	}

	var posts []Post
	for _, entry := range entries {
		name := entry.Name()
		id, err := strconv.Atoi(strings.TrimSuffix(name, ".md"))
		if err != nil {
			return nil, fmt.Errorf("post filename %s is not numeric: %w", name, err)
		}

		raw, err := postFS.ReadFile(path.Join("posts", name))
		if err != nil {
			return nil, fmt.Errorf("reading post %s: %w", name, err)
		}

		post, err := parsePost(id, raw)
		if err != nil {
			return nil, fmt.Errorf("parsing post %s: %w", name, err)
		}
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })

	// Link neighbors in id order.
	for i := range posts {
		if i > 0 {
			posts[i].PrevID = posts[i-1].ID
		}
		if i < len(posts)-1 {
			posts[i].NextID = posts[i+1].ID
		}
	}

	return posts, nil
}

// parsePost splits frontmatter from the markdown body and renders the body
// to sanitized HTML.
func parsePost(id int, raw []byte) (Post, error) {
	metaRaw, body, err := splitFrontmatter(raw)
	if err != nil {
		return Post{}, err
	}

	var meta postMeta
	if err := yaml.Unmarshal(metaRaw, &meta); err != nil {
		return Post{}, fmt.Errorf("frontmatter: %w", err)
	}
	if meta.Title == "" {
		return Post{}, fmt.Errorf("frontmatter has no title")
	}

	rendered, err := renderBody(body)
	if err != nil {
		return Post{}, err
	}

	return Post{
		ID:      id,
		Title:   meta.Title,
		Date:    meta.Date,
		Summary: meta.Summary,
		Body:    rendered,
	}, nil
}

// renderBody converts markdown to HTML and sanitizes the result.
func renderBody(body []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

// splitFrontmatter separates the leading "---" delimited YAML block from the
// markdown body. Posts are authored in-repo, so a missing or unterminated
// block is an error rather than a fallback.
func splitFrontmatter(content []byte) (meta, body []byte, err error) {
	const delim = "---\n"
	if !bytes.HasPrefix(content, []byte(delim)) {
		return nil, nil, fmt.Errorf("missing frontmatter delimiter")
	}
	rest := content[len(delim):]
	if bytes.HasPrefix(rest, []byte(delim)) {
		return nil, rest[len(delim):], nil
	}
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return nil, nil, fmt.Errorf("unterminated frontmatter block")
	}
	return rest[:idx+1], rest[idx+1+len(delim):], nil
}
