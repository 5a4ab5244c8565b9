package web

import "net/http"

// Stylesheet palettes for the served page. The high-contrast palette uses
// pure black/white with saturated accents for low-vision readers; the page
// toggles it by switching the body class.
const themeCSS = `:root {
  --bg: #faf7f2;
  --surface: #ffffff;
  --text: #2d2a26;
  --muted: #7a746c;
  --accent: #2e7d32;
  --accent-text: #ffffff;
  --border: #e3ddd3;
  --danger: #b3261e;
  --notice-info: #eef4fb;
  --notice-success: #e8f5e9;
  --notice-error: #fdecea;
}

body.high-contrast {
  --bg: #000000;
  --surface: #000000;
  --text: #ffffff;
  --muted: #aaaaaa;
  --accent: #ffff00;
  --accent-text: #000000;
  --border: #ffffff;
  --danger: #ff0000;
  --notice-info: #001a33;
  --notice-success: #003300;
  --notice-error: #330000;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: Georgia, 'Times New Roman', serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}

nav {
  position: sticky;
  top: 0;
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 0.75rem 1.5rem;
  background: var(--surface);
  border-bottom: 1px solid var(--border);
  transition: box-shadow 0.2s ease;
}

nav.scrolled { box-shadow: 0 2px 8px rgba(0, 0, 0, 0.15); }

nav .brand { font-size: 1.25rem; font-weight: bold; }

nav button {
  margin-left: 0.5rem;
  padding: 0.4rem 0.9rem;
  border: 1px solid var(--border);
  border-radius: 4px;
  background: var(--surface);
  color: var(--text);
  cursor: pointer;
}

main { max-width: 60rem; margin: 0 auto; padding: 1.5rem; }

article {
  background: var(--surface);
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 1.5rem;
  margin-bottom: 1.5rem;
}

#gallery-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(180px, 1fr));
  gap: 1rem;
}

.tile {
  position: relative;
  border: 1px solid var(--border);
  border-radius: 6px;
  overflow: hidden;
  background: var(--surface);
  transition: opacity 0.3s ease;
}

.tile.removing { opacity: 0; }

.tile img {
  display: block;
  width: 100%;
  height: 160px;
  object-fit: cover;
  cursor: pointer;
}

.tile .remove-btn {
  position: absolute;
  top: 0.35rem;
  right: 0.35rem;
  border: none;
  border-radius: 3px;
  background: var(--danger);
  color: #ffffff;
  cursor: pointer;
  padding: 0.15rem 0.5rem;
}

.tile .caption {
  padding: 0.35rem 0.5rem;
  font-size: 0.85rem;
  color: var(--muted);
  white-space: nowrap;
  overflow: hidden;
  text-overflow: ellipsis;
}

#viewer {
  display: none;
  position: fixed;
  inset: 0;
  background: rgba(0, 0, 0, 0.85);
  z-index: 50;
  align-items: center;
  justify-content: center;
  cursor: pointer;
}

#viewer.active { display: flex; }

#viewer img { max-width: 92vw; max-height: 92vh; object-fit: contain; }

#notices {
  position: fixed;
  bottom: 1rem;
  right: 1rem;
  z-index: 60;
  display: flex;
  flex-direction: column;
  gap: 0.5rem;
}

.notice {
  padding: 0.6rem 1rem;
  border: 1px solid var(--border);
  border-radius: 4px;
  background: var(--surface);
  max-width: 22rem;
}

.notice.info { background: var(--notice-info); }
.notice.success { background: var(--notice-success); }
.notice.error { background: var(--notice-error); }

.upload-row { margin: 1rem 0; display: flex; align-items: center; gap: 0.75rem; }

.upload-row label {
  padding: 0.45rem 1rem;
  border-radius: 4px;
  background: var(--accent);
  color: var(--accent-text);
  cursor: pointer;
}

.upload-row input[type="file"] { display: none; }

@media print {
  nav, .upload-row, #notices, .tile .remove-btn { display: none; }
  body { background: #ffffff; color: #000000; }
}
`

func (h *Handler) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(themeCSS))
}
