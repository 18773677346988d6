package publish

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/ljtill/curate/ent"
)

var editionTmpl = template.Must(template.New("edition").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Edition {{.ID}}</title>
</head>
<body>
  <article class="edition">
    <h1>Edition {{.ID}}</h1>
    {{if .PublishedAt}}<p class="published">Published {{.PublishedAt}}</p>{{end}}
    {{range .Sections}}
    <section id="{{.Key}}">
      <h2>{{.Key}}</h2>
      <div class="content">{{.Content}}</div>
    </section>
    {{end}}
    {{if .Links}}
    <footer>
      <h2>Links</h2>
      <ul>
        {{range .Links}}<li><a href="{{.URL}}">{{.Title}}</a></li>{{end}}
      </ul>
    </footer>
    {{end}}
  </article>
</body>
</html>
`))

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Editions</title>
</head>
<body>
  <h1>Editions</h1>
  <ul class="editions">
    {{range .}}
    <li><a href="editions/{{.ID}}.html">Edition {{.ID}}</a>{{if .PublishedAt}} ({{.PublishedAt}}){{end}}</li>
    {{end}}
  </ul>
</body>
</html>
`))

type sectionView struct {
	Key     string
	Content string
}

type linkView struct {
	URL   string
	Title string
}

type editionView struct {
	ID          string
	PublishedAt string
	Sections    []sectionView
	Links       []linkView
}

// RenderEdition produces the static page for one edition. Sections are
// ordered by key for a stable layout.
func RenderEdition(e *ent.Edition, links []*ent.Link) ([]byte, error) {
	view := editionView{ID: e.ID}
	if e.PublishedAt != nil {
		view.PublishedAt = e.PublishedAt.Format(time.DateOnly)
	}

	keys := make([]string, 0, len(e.Content))
	for k := range e.Content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		content, _ := e.Content[k].(string)
		view.Sections = append(view.Sections, sectionView{Key: k, Content: content})
	}

	for _, l := range links {
		lv := linkView{URL: l.URL, Title: l.URL}
		if l.Title != nil && *l.Title != "" {
			lv.Title = *l.Title
		}
		view.Links = append(view.Links, lv)
	}

	var b strings.Builder
	if err := editionTmpl.Execute(&b, view); err != nil {
		return nil, fmt.Errorf("failed to render edition %s: %w", e.ID, err)
	}
	return []byte(b.String()), nil
}

// RenderIndex produces the site index listing published editions.
func RenderIndex(editions []*ent.Edition) ([]byte, error) {
	views := make([]editionView, 0, len(editions))
	for _, e := range editions {
		v := editionView{ID: e.ID}
		if e.PublishedAt != nil {
			v.PublishedAt = e.PublishedAt.Format(time.DateOnly)
		}
		views = append(views, v)
	}
	var b strings.Builder
	if err := indexTmpl.Execute(&b, views); err != nil {
		return nil, fmt.Errorf("failed to render index: %w", err)
	}
	return []byte(b.String()), nil
}
