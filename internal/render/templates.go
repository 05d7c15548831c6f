package render

// layoutTemplate is the HTML shell every page shares: metadata, stylesheet
// links, the navbar, and the base styling that keeps pages readable before
// the stylesheets load.
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <title>{{.Title}}</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <meta name="description" content="{{.Description}}">

    <link rel="stylesheet" href="/assets/styling/main.css">
    <link rel="stylesheet" href="/assets/styling/navbar.css">
    <link rel="stylesheet" href="/assets/styling/about.css">
    <link rel="stylesheet" href="/assets/styling/contact.css">
    <link rel="stylesheet" href="/assets/styling/blog.css">

    <link rel="icon" href="/assets/favicon.svg" type="image/svg+xml">

    <meta property="og:title" content="{{.Title}}">
    <meta property="og:description" content="{{.Description}}">
    <meta property="og:type" content="website">
    <meta name="twitter:card" content="summary">
    <meta name="twitter:title" content="{{.Title}}">
    <meta name="twitter:description" content="{{.Description}}">
{{- if .Canonical}}
    <link rel="canonical" href="{{.Canonical}}">
{{- end}}
{{- if .PreloadScript}}
    <link rel="preload" as="script" href="{{.PreloadScript}}" crossorigin>
{{- end}}
</head>
<body>
    <div id="main">
        <div id="navbar">
            <a href="/">Home</a>
            <a href="/about">About</a>
            <a href="/contact">Contact</a>
            <a href="/blog/1">Blog</a>
        </div>
{{template "content" .}}
    </div>

    <noscript>
        <div class="static-notice">
            <p class="static-notice-title">📄 Static HTML</p>
            <p>This page works without JavaScript!</p>
        </div>
    </noscript>

    <style>
    body {
        font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
        margin: 0;
        padding: 0;
        line-height: 1.6;
        color: #333;
    }

    .container {
        max-width: 1200px;
        margin: 0 auto;
        padding: 2rem;
    }

    #navbar {
        background: #f8fafc;
        padding: 1rem;
        border-bottom: 1px solid #e2e8f0;
        margin-bottom: 2rem;
    }

    #navbar a {
        margin-right: 1rem;
        text-decoration: none;
        color: #2563eb;
        font-weight: 500;
        padding: 0.5rem 1rem;
        border-radius: 0.375rem;
        transition: background-color 0.2s;
    }

    #navbar a:hover {
        background: #dbeafe;
    }

    .blog-nav {
        margin-top: 2rem;
        padding-top: 2rem;
        border-top: 1px solid #e2e8f0;
    }

    .blog-nav a {
        margin-right: 1rem;
        text-decoration: none;
        color: #2563eb;
    }

    .blog-nav a:hover {
        text-decoration: underline;
    }

    .static-notice {
        position: fixed;
        bottom: 1rem;
        right: 1rem;
        padding: 0.5rem 1rem;
        background: #f0f9ff;
        border: 1px solid #0ea5e9;
        border-radius: 0.5rem;
        font-size: 0.875rem;
        max-width: 300px;
        z-index: 1000;
        color: #0369a1;
    }

    .static-notice p {
        margin: 0.25rem 0 0 0;
    }

    .static-notice-title {
        margin: 0;
        font-weight: bold;
    }

    h1 {
        color: #1f2937;
        margin-bottom: 1rem;
    }

    h2 {
        color: #374151;
        margin-top: 2rem;
        margin-bottom: 1rem;
    }

    h3 {
        color: #4b5563;
        margin-top: 1.5rem;
        margin-bottom: 0.5rem;
    }

    ul {
        padding-left: 1.5rem;
    }

    li {
        margin-bottom: 0.25rem;
    }
    </style>
</body>
</html>`

const homeContent = `{{define "content"}}
    <div class="container">
        <h1>Welcome to {{.Site.Title}}</h1>
        <p>This is the home page of my personal website.</p>
        <nav>
            <ul>
                <li><a href="/about">Learn about me</a></li>
                <li><a href="/blog/1">Read my blog</a></li>
            </ul>
        </nav>
    </div>
{{end}}`

const aboutContent = `{{define "content"}}
    <div class="about-container">
        <header class="about-header">
            <h1 class="about-name">{{.Profile.Name}}</h1>
            <h2 class="about-title">{{.Profile.Title}}</h2>
            <p class="about-location">📍 {{.Profile.Location}}</p>
        </header>

        <section class="about-bio-section">
            <h3 class="about-section-title">About Me</h3>
            <p class="about-bio-text">{{.Profile.Bio}}</p>
        </section>

        <section class="about-section">
            <h3 class="about-section-title">Skills</h3>
            <div class="skills-grid">
                {{- range .Profile.Skills}}
                <span class="skill-tag">{{.}}</span>
                {{- end}}
            </div>
        </section>

        <section class="about-section">
            <h3 class="about-section-title">Experience</h3>
            {{- range .Profile.Experience}}
            <div class="experience-card">
                <div class="experience-header">
                    <div>
                        <h4 class="experience-position">{{.Position}}</h4>
                        <p class="experience-company">{{.Company}}</p>
                    </div>
                    <span class="experience-duration">{{.Duration}}</span>
                </div>
                <p class="experience-description">{{.Description}}</p>
            </div>
            {{- end}}
        </section>

        <section class="about-section">
            <h3 class="about-section-title">Interests</h3>
            <div class="interests-grid">
                {{- range .Profile.Interests}}
                <div class="interest-item"><span class="interest-bullet">•</span> {{.}}</div>
                {{- end}}
            </div>
        </section>

        <section class="contact-section">
            <h3 class="about-section-title">Contact</h3>
            <div class="contact-grid">
                <div class="contact-item">
                    <span class="contact-icon">📧</span>
                    <a href="mailto:{{.Profile.Contact.Email}}" class="contact-link">{{.Profile.Contact.Email}}</a>
                </div>
                <div class="contact-item">
                    <span class="contact-icon">🌐</span>
                    <a href="{{.Profile.Contact.Website}}" target="_blank" class="contact-link">Website</a>
                </div>
                <div class="contact-item">
                    <span class="contact-icon">⚡</span>
                    <a href="https://github.com/{{.Profile.Contact.GitHub}}" target="_blank" class="contact-link">GitHub</a>
                </div>
            </div>
        </section>

        <footer class="about-footer">
            <p class="footer-updated">Last updated: {{.Profile.Updated}}</p>
            <p class="footer-note">Generated statically with folio</p>
        </footer>
    </div>
{{end}}`

const contactContent = `{{define "content"}}
    <div class="contact-container">
        <header class="contact-header">
            <h1 class="contact-title">Contact Me</h1>
            <p class="contact-subtitle">Get in touch! This page will demonstrate dynamic JavaScript/WASM functionality.</p>
        </header>

        <div class="contact-content">
            <div class="contact-info">
                <h2>Contact Information</h2>
                <div class="contact-methods">
                    <div class="contact-method">
                        <span class="contact-icon">📧</span>
                        <div>
                            <h3>Email</h3>
                            <a href="mailto:{{.Profile.Contact.Email}}" class="contact-link">{{.Profile.Contact.Email}}</a>
                        </div>
                    </div>
                    <div class="contact-method">
                        <span class="contact-icon">🌐</span>
                        <div>
                            <h3>Website</h3>
                            <a href="{{.Profile.Contact.Website}}" target="_blank" class="contact-link">{{.Profile.Contact.Website}}</a>
                        </div>
                    </div>
                    <div class="contact-method">
                        <span class="contact-icon">⚡</span>
                        <div>
                            <h3>GitHub</h3>
                            <a href="https://github.com/{{.Profile.Contact.GitHub}}" target="_blank" class="contact-link">@{{.Profile.Contact.GitHub}}</a>
                        </div>
                    </div>
                </div>
            </div>

            <div class="contact-form-section">
                <h2>Send a Message</h2>

                <div class="js-functionality-notice">
                    <p>🚀 <strong>Dynamic Form Demo:</strong> This form will demonstrate JavaScript/WASM functionality when enhanced with dynamic features.</p>
                </div>

                <div class="static-form-notice">
                    <h3>📄 Static Version</h3>
                    <p>You're viewing the static HTML version. The form below is for display purposes.</p>
                    <p>When JavaScript is enabled, this becomes a fully interactive form with:</p>
                    <ul>
                        <li>Real-time validation</li>
                        <li>Dynamic state management</li>
                        <li>Client-side form processing</li>
                        <li>WASM-powered functionality</li>
                    </ul>
                </div>

                <form class="contact-form">
                    <div class="form-row">
                        <div class="form-group">
                            <label for="name">Name *</label>
                            <input type="text" id="name" class="form-input" placeholder="Your full name" />
                        </div>
                        <div class="form-group">
                            <label for="email">Email *</label>
                            <input type="email" id="email" class="form-input" placeholder="your.email@example.com" />
                        </div>
                    </div>

                    <div class="form-group">
                        <label for="subject">Subject *</label>
                        <input type="text" id="subject" class="form-input" placeholder="What's this about?" />
                    </div>

                    <div class="form-group">
                        <label for="message">Message *</label>
                        <textarea id="message" class="form-textarea" placeholder="Tell me what's on your mind..." rows="6"></textarea>
                    </div>

                    <div class="form-actions">
                        <button type="button" class="btn btn-primary disabled">Send Message ✨ (Demo)</button>
                        <button type="button" class="btn btn-secondary">Reset Form</button>
                    </div>

                    <div class="form-note">
                        <p>* This is a static demo form. Enable JavaScript to see dynamic functionality.</p>
                    </div>
                </form>
            </div>
        </div>

        <div class="tech-details">
            <h2>🔧 Technical Implementation</h2>
            <div class="tech-grid">
                <div class="tech-item">
                    <h3>🌐 WebAssembly</h3>
                    <p>The dynamic version runs Go compiled to WASM for all interactive functionality</p>
                </div>
                <div class="tech-item">
                    <h3>⚡ Client-Side State</h3>
                    <p>Form validation and state management happen entirely in the browser</p>
                </div>
                <div class="tech-item">
                    <h3>🏗️ Hybrid Architecture</h3>
                    <p>Static HTML foundation with dynamic JavaScript/WASM enhancement</p>
                </div>
                <div class="tech-item">
                    <h3>📱 Progressive Enhancement</h3>
                    <p>Works without JS, enhanced with dynamic features when available</p>
                </div>
            </div>
        </div>
    </div>
{{end}}`

const hybridContent = `{{define "content"}}
    <div class="contact-container">
        <header class="contact-header">
            <h1 class="contact-title">Contact Me</h1>
            <p class="contact-subtitle">Get in touch! This form is powered by WebAssembly for interactive functionality.</p>
        </header>

        <div class="contact-content">
            <div class="contact-info">
                <h2>Contact Information</h2>
                <div class="contact-methods">
                    <div class="contact-method">
                        <span class="contact-icon">📧</span>
                        <div>
                            <h3>Email</h3>
                            <a href="mailto:{{.Profile.Contact.Email}}" class="contact-link">{{.Profile.Contact.Email}}</a>
                        </div>
                    </div>
                    <div class="contact-method">
                        <span class="contact-icon">🌐</span>
                        <div>
                            <h3>Website</h3>
                            <a href="{{.Profile.Contact.Website}}" target="_blank" class="contact-link">{{.Profile.Contact.Website}}</a>
                        </div>
                    </div>
                    <div class="contact-method">
                        <span class="contact-icon">⚡</span>
                        <div>
                            <h3>GitHub</h3>
                            <a href="https://github.com/{{.Profile.Contact.GitHub}}" target="_blank" class="contact-link">@{{.Profile.Contact.GitHub}}</a>
                        </div>
                    </div>
                </div>
            </div>

            <div class="contact-form-section">
                <h2>Send a Message</h2>

                <div class="wasm-loading-notice">
                    <p>🚀 <strong>Interactive WASM Form:</strong> Loading the contact form module...</p>
                    <div class="wasm-loading-track">
                        <div class="wasm-loading-bar"></div>
                    </div>
                </div>

                <div id="contact-form-placeholder" class="contact-form-waiting">
                    <div class="contact-form-waiting-inner">
                        <div class="contact-form-waiting-icon">⏳</div>
                        <p>Initializing interactive contact form...</p>
                    </div>
                </div>
            </div>
        </div>

        <div class="tech-details">
            <h2>🔧 Technical Implementation</h2>
            <div class="tech-grid">
                <div class="tech-item">
                    <h3>🌐 WebAssembly</h3>
                    <p>Interactive form powered by Go compiled to WASM running in your browser</p>
                </div>
                <div class="tech-item">
                    <h3>⚡ Client-Side State</h3>
                    <p>Form state, validation, and submission are all handled inside the WASM module</p>
                </div>
                <div class="tech-item">
                    <h3>🏗️ Hybrid Architecture</h3>
                    <p>Statically generated HTML enhanced with a client-side WASM module</p>
                </div>
                <div class="tech-item">
                    <h3>📱 Progressive Enhancement</h3>
                    <p>Works with basic HTML, enhanced with dynamic features</p>
                </div>
            </div>
        </div>
    </div>

    <style>
    .wasm-loading-notice {
        padding: 1rem;
        margin-bottom: 1rem;
        background: #f0f9ff;
        border: 1px solid #0ea5e9;
        border-radius: 0.5rem;
        color: #0369a1;
    }

    .wasm-loading-notice p {
        margin: 0;
    }

    .wasm-loading-track {
        width: 100%;
        height: 4px;
        background: #e0f2fe;
        border-radius: 2px;
        margin-top: 0.5rem;
        overflow: hidden;
    }

    .wasm-loading-bar {
        height: 100%;
        background: #0ea5e9;
        animation: loading 2s infinite;
    }

    @keyframes loading {
        0% { transform: translateX(-100%); }
        100% { transform: translateX(100%); }
    }

    .contact-form-waiting {
        min-height: 400px;
        display: flex;
        align-items: center;
        justify-content: center;
        background: #f9fafb;
        border-radius: 0.5rem;
        border: 2px dashed #d1d5db;
    }

    .contact-form-waiting-inner {
        text-align: center;
        color: #6b7280;
    }

    .contact-form-waiting-inner p {
        margin: 0;
    }

    .contact-form-waiting-icon {
        font-size: 2rem;
        margin-bottom: 0.5rem;
    }

    .form-load-error {
        padding: 2rem;
        text-align: center;
        background: #fef2f2;
        border: 1px solid #fecaca;
        border-radius: 0.5rem;
        color: #dc2626;
    }

    .js-required-notice {
        position: fixed;
        bottom: 1rem;
        right: 1rem;
        padding: 1rem;
        background: #fee;
        border: 1px solid #fcc;
        border-radius: 0.5rem;
        font-size: 0.875rem;
        max-width: 300px;
        z-index: 1000;
        color: #c33;
    }

    .js-required-notice p {
        margin: 0.5rem 0 0 0;
    }

    .js-required-notice-title {
        margin: 0;
        font-weight: bold;
    }
    </style>

    <script type="module">
        import { mountContactForm } from '{{.ScriptPath}}';

        async function loadContactForm() {
            try {
                await mountContactForm();
                const notice = document.querySelector('.wasm-loading-notice');
                if (notice) {
                    notice.style.display = 'none';
                }
            } catch (error) {
                console.error('Failed to load the contact form module:', error);
                const placeholder = document.getElementById('contact-form-placeholder');
                if (placeholder) {
                    placeholder.innerHTML =
                        '<div class="form-load-error">' +
                        '<h3>⚠️ Contact Form Loading Error</h3>' +
                        '<p>The interactive contact form failed to load. Refresh the page or email ' +
                        '<a href="mailto:{{.Profile.Contact.Email}}">{{.Profile.Contact.Email}}</a> directly.</p>' +
                        '</div>';
                }
                const notice = document.querySelector('.wasm-loading-notice');
                if (notice) {
                    notice.style.display = 'none';
                }
            }
        }

        if (document.readyState === 'loading') {
            document.addEventListener('DOMContentLoaded', loadContactForm);
        } else {
            loadContactForm();
        }
    </script>

    <noscript>
        <div class="js-required-notice">
            <p class="js-required-notice-title">⚠️ JavaScript Required</p>
            <p>This page requires JavaScript for the interactive contact form.</p>
        </div>
    </noscript>
{{end}}`

const blogContent = `{{define "content"}}
    <div class="container">
        <h1>{{.Post.Title}}</h1>
        <div class="blog-content">
            <p class="blog-date">{{.Post.Date}}</p>
            {{.Post.Body}}
            <nav class="blog-nav">
                <a href="/">← Back to Home</a>
                {{- if .Post.PrevID}}
                <a href="/blog/{{.Post.PrevID}}">← Previous</a>
                {{- end}}
                {{- if .Post.NextID}}
                <a href="/blog/{{.Post.NextID}}">Next →</a>
                {{- end}}
            </nav>
        </div>
    </div>
{{end}}`
