package site

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/framemaker/reelsite/internal/httputil"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Meta.Title}}</title>
    <meta name="description" content="{{.Meta.Description}}">
    <link rel="canonical" href="{{.Meta.CanonicalURL}}">
    <meta property="og:type" content="website">
    <meta property="og:url" content="{{.Meta.CanonicalURL}}">
    <meta property="og:title" content="{{.Meta.Title}}">
    <meta property="og:description" content="{{.Meta.Description}}">
    {{- with .Meta.Image}}{{if .URL}}
    <meta property="og:image" content="{{.URL}}">
    <meta property="og:image:width" content="{{.Width}}">
    <meta property="og:image:height" content="{{.Height}}">
    <meta property="og:image:alt" content="{{.Alt}}">
    {{- end}}{{end}}
    <style nonce="{{.Nonce}}">
        * { margin: 0; padding: 0; box-sizing: border-box; }
        [hidden] { display: none !important; }
        html { scroll-behavior: smooth; }
        body { background: #111827; color: #fff; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; overflow-x: hidden; }
        a { color: #60a5fa; text-decoration: none; }
        a:hover { color: #93c5fd; }
        .wrap { max-width: 80rem; margin: 0 auto; }
        .gradient { background: linear-gradient(to right, #60a5fa, #c084fc); -webkit-background-clip: text; background-clip: text; color: transparent; }
        header { position: absolute; top: 0; left: 0; right: 0; z-index: 50; padding: 1.5rem 1rem; }
        header .wrap { display: flex; justify-content: space-between; align-items: center; }
        header h1 { font-size: 2.25rem; font-weight: 700; }
        .desktop-nav ul { display: flex; list-style: none; gap: 2rem; }
        .desktop-nav a { color: #d1d5db; transition: color .3s; }
        .desktop-nav a:hover, .desktop-nav a.active { color: #fff; }
        .icon-btn { background: none; border: 0; color: #d1d5db; font-size: 1.5rem; cursor: pointer; }
        #hamburger-btn { display: none; }
        @media (max-width: 767px) { .desktop-nav { display: none; } #hamburger-btn { display: block; } }
        .hero { position: relative; width: 100%; height: 100vh; overflow: hidden; }
        .hero video { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover; }
        .hero-copy { position: absolute; inset: 0; display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center; padding: 0 1rem; }
        .hero-copy h2 { font-size: 3rem; font-weight: 700; margin-bottom: 1rem; }
        .hero-copy p { font-size: 1.5rem; color: #d1d5db; margin-bottom: 2rem; }
        .cta { background: linear-gradient(to right, #3b82f6, #a855f7); color: #fff; border: 0; border-radius: 9999px; padding: .75rem 2rem; font-weight: 600; cursor: pointer; }
        .outline { background: none; color: #60a5fa; border: 1px solid rgba(59,130,246,.3); border-radius: .375rem; padding: .75rem 2rem; cursor: pointer; }
        .mobile-menu { position: fixed; inset: 0; background: rgba(17,24,39,.9); z-index: 60; }
        .mobile-panel { position: absolute; right: 0; top: 0; width: 20rem; height: 100%; background: #1f2937; padding: 1.5rem; }
        .mobile-panel .close-row { display: flex; justify-content: flex-end; margin-bottom: 1rem; }
        .mobile-panel ul { list-style: none; }
        .mobile-panel li { margin-bottom: 1rem; }
        .mobile-panel a { display: block; font-size: 1.125rem; color: #d1d5db; }
        section.block { padding: 4rem 1rem; }
        section h3 { font-size: 2rem; font-weight: 600; color: #60a5fa; margin-bottom: 2rem; }
        .about { display: grid; grid-template-columns: 1fr 1fr; gap: 3rem; align-items: center; color: #d1d5db; }
        .about p { font-size: 1.125rem; margin-bottom: 1.5rem; }
        .about img { width: 100%; border-radius: .75rem; border: 1px solid #374151; }
        @media (max-width: 767px) { .about { grid-template-columns: 1fr; } }
        .center { text-align: center; }
        .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(20rem, 1fr)); gap: 2rem; }
        .card { background: #1f2937; border-radius: .75rem; overflow: hidden; }
        .card-body { padding: 1.5rem; }
        .card-body h4 { font-size: 1.25rem; font-weight: 600; }
        .card-body p { color: #9ca3af; margin-top: .5rem; }
        .card-body a { display: inline-block; margin-top: 1rem; }
        .player { position: relative; width: 100%; aspect-ratio: 16 / 9; background: #000; }
        .player iframe { width: 100%; height: 100%; border: 0; }
        .overlay { position: absolute; inset: 0; display: flex; align-items: center; justify-content: center; background: rgba(0,0,0,.5); backdrop-filter: blur(12px); cursor: pointer; border: 0; color: #fff; font-size: 4rem; }
        #contact { background: #1f2937; }
        .contact-box { background: #111827; border: 1px solid #374151; border-radius: .75rem; padding: 3rem; }
        .contact-box p { font-size: 1.125rem; color: #d1d5db; text-align: center; margin-bottom: 1.5rem; }
        .contact-links { display: flex; justify-content: center; gap: 1.5rem; margin-bottom: 1.5rem; }
        footer { padding: 1.5rem 1rem; text-align: center; color: #9ca3af; }
    </style>
</head>
<body>
    <header>
        <div class="wrap">
            <h1 class="gradient">{{.Studio}}</h1>
            <nav class="desktop-nav">
                <ul>
                    {{- range .Nav}}
                    <li><a href="#{{.ID}}" data-nav="{{.ID}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a></li>
                    {{- end}}
                </ul>
            </nav>
            <button id="hamburger-btn" class="icon-btn" aria-label="Toggle Navigation">&#9776;</button>
        </div>
    </header>

    <div id="home" class="hero" data-section>
        <video autoplay loop muted playsinline>
            <source src="{{.HeroVideo}}" type="video/mp4">
            Your browser does not support the video tag.
        </video>
        <div class="hero-copy">
            <h2>Hello, I'm <span class="gradient">{{.Artist}}</span></h2>
            <p>{{.Tagline}}</p>
            <button class="cta" data-nav="projects">See My Work</button>
        </div>
    </div>

    <div id="mobile-menu" class="mobile-menu"{{if not .MobileMenuOpen}} hidden{{end}}>
        <div class="mobile-panel">
            <div class="close-row">
                <button id="close-menu-btn" class="icon-btn" aria-label="Close Menu">&#10005;</button>
            </div>
            <nav>
                <ul>
                    {{- range .Nav}}
                    <li><a href="#{{.ID}}" data-nav="{{.ID}}">{{.Label}}</a></li>
                    {{- end}}
                </ul>
            </nav>
        </div>
    </div>

    <main>
        <section id="about" class="block" data-section>
            <div class="wrap about">
                <div>
                    <h3>About {{.Studio}}</h3>
                    {{.AboutHTML}}
                </div>
                {{- if .AboutImage}}
                <div><img src="{{.AboutImage}}" alt="{{.Artist}}"></div>
                {{- end}}
            </div>
        </section>

        <section id="projects" class="block" data-section>
            <div class="wrap">
                <h3 class="center">Featured Projects from {{.Brand}}</h3>
                <div class="grid">
                    {{- range .Cards}}
                    <div class="card" data-player data-index="{{.Index}}">
                        <div class="player">
                            <button class="overlay" aria-label="Play Video"{{if not .OverlayVisible}} hidden{{end}}>&#9654;</button>
                            <iframe src="{{.EmbedURL}}" title="{{.Title}}" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share" allowfullscreen></iframe>
                        </div>
                        <div class="card-body">
                            <h4>{{.Title}}</h4>
                            <p>{{.Description}}</p>
                            <a href="{{.DetailsURL}}">View Details &#8599;</a>
                        </div>
                    </div>
                    {{- end}}
                </div>
            </div>
        </section>

        <section id="contact" class="block" data-section>
            <div class="wrap">
                <h3 class="center">Contact {{.Artist}}</h3>
                <div class="contact-box">
                    <p>{{.Contact.Blurb}}</p>
                    <div class="contact-links">
                        {{- if .Contact.Email}}
                        <a href="mailto:{{.Contact.Email}}">&#9993; Email: {{.Contact.Email}}</a>
                        {{- end}}
                        {{- if .Contact.LinkedIn}}
                        <a href="{{.Contact.LinkedIn}}" target="_blank" rel="noopener noreferrer">LinkedIn</a>
                        {{- end}}
                    </div>
                </div>
            </div>
        </section>
    </main>

    <footer>&copy; {{.Year}} {{.Artist}}. All rights reserved.</footer>

    <script nonce="{{.Nonce}}">
        (function() {
            var offset = {{.ActivationOffset}};
            var playCommand = {{.PlayCommand}};
            var pauseCommand = {{.PauseCommand}};

            var menu = document.getElementById('mobile-menu');
            function setMenu(open) { menu.hidden = !open; }
            document.getElementById('hamburger-btn').addEventListener('click', function() { setMenu(menu.hidden); });
            document.getElementById('close-menu-btn').addEventListener('click', function() { setMenu(false); });

            function navigate(id) {
                var section = document.getElementById(id);
                if (section) {
                    section.scrollIntoView({ behavior: 'smooth' });
                }
                setMenu(false);
            }
            document.querySelectorAll('[data-nav]').forEach(function(el) {
                el.addEventListener('click', function(e) {
                    e.preventDefault();
                    navigate(el.getAttribute('data-nav'));
                });
            });

            var links = document.querySelectorAll('.desktop-nav a[data-nav]');
            var sections = document.querySelectorAll('[data-section]');
            function onScroll() {
                var y = window.scrollY;
                var current = '';
                for (var i = 0; i < sections.length; i++) {
                    var s = sections[i];
                    if (y >= s.offsetTop - offset && y < s.offsetTop + s.clientHeight - offset) {
                        current = s.id;
                        break;
                    }
                }
                links.forEach(function(link) {
                    link.classList.remove('active');
                    if (current && link.getAttribute('data-nav') === current) {
                        link.classList.add('active');
                    }
                });
            }
            window.addEventListener('scroll', onScroll);
            window.addEventListener('pagehide', function() {
                window.removeEventListener('scroll', onScroll);
            });

            document.querySelectorAll('[data-player]').forEach(function(card) {
                var frame = card.querySelector('iframe');
                var overlay = card.querySelector('.overlay');
                var playing = false;
                overlay.addEventListener('click', function() {
                    playing = !playing;
                    if (frame.contentWindow) {
                        frame.contentWindow.postMessage(playing ? playCommand : pauseCommand, '*');
                    }
                    overlay.hidden = playing;
                });
            });
        })();
    </script>
</body>
</html>`))

func (s *Site) Page(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.Render(r.Context(), &buf, httputil.NonceFromContext(r.Context())); err != nil {
		slog.Error("failed to render portfolio page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
