package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/johnquangdev/meeting-summary/internal/domain/entities"
)

var summaryTemplate = template.Must(template.New("summary").Parse(`<html>
<body>
    <h2>Meeting Summary</h2>
    <p>{{.Summary}}</p>
    <h2>Objections &amp; Pain Points</h2>
    <ul>
        {{range .Objections}}<li><b>Objection:</b> {{.Point}}<br><b>Resolution:</b> {{.ResolutionOrPlaceholder}}</li>{{end}}
    </ul>
    <h2>Action Items</h2>
    <ul>
        {{range .ActionItems}}<li>{{.}}</li>{{end}}
    </ul>
</body>
</html>
`))

// RenderSummaryHTML renders the analysis as the HTML email body. Text coming
// from the model is HTML-escaped.
func RenderSummaryHTML(analysis *entities.MeetingAnalysis) (string, error) {
	var buf bytes.Buffer
	if err := summaryTemplate.Execute(&buf, analysis); err != nil {
		return "", fmt.Errorf("failed to render summary email: %w", err)
	}
	return buf.String(), nil
}
