package pipeline

import (
	"html/template"
	"strings"

	"github.com/ljtill/curate/ent"
)

// linkRowTmpl is the out-of-band swap fragment for one link row. Failed
// links get a retry affordance.
var linkRowTmpl = template.Must(template.New("link-row").Parse(strings.TrimSpace(`
<tr id="link-{{.ID}}">
  <td><a href="{{.URL}}">{{.Title}}</a></td>
  <td class="status status-{{.Status}}">{{.Status}}</td>
  <td>{{.RunCount}} run{{if ne .RunCount 1}}s{{end}}</td>
  <td>{{if .Failed}}<button class="retry" data-link-id="{{.ID}}">Retry</button>{{end}}</td>
</tr>
`)))

type linkRow struct {
	ID       string
	URL      string
	Title    string
	Status   string
	RunCount int
	Failed   bool
}

// renderLinkRow builds the HTML table-row fragment for a link.
func renderLinkRow(l *ent.Link, runCount int) (string, error) {
	row := linkRow{
		ID:       l.ID,
		URL:      l.URL,
		Title:    l.URL,
		Status:   string(l.Status),
		RunCount: runCount,
		Failed:   l.Status == "failed",
	}
	if l.Title != nil && *l.Title != "" {
		row.Title = *l.Title
	}
	var b strings.Builder
	if err := linkRowTmpl.Execute(&b, row); err != nil {
		return "", err
	}
	return b.String(), nil
}
