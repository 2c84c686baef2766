package imagegen

import (
	"fmt"
	"html/template"
	"os"
)

// indexTemplate renders the per-image metadata table. Prompts are
// escaped; LocalPath is a path the generating command just wrote.
var indexTemplate = template.Must(template.New("index").Parse(`<table>
<tr><th>Image</th><th>Original Prompt</th><th>Revised Prompt</th></tr>
{{range .}}<tr>
<td><img src='{{.LocalPath}}' alt='Image'></td>
<td>{{.Prompt}}</td>
<td>{{.RevisedPrompt}}</td>
</tr>
{{end}}</table>
`))

// WriteHTMLIndex writes an HTML table of the generated images and their
// prompt metadata to path.
func WriteHTMLIndex(path string, images []Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imagegen: write index: %w", err)
	}
	defer f.Close()

	if err := indexTemplate.Execute(f, images); err != nil {
		return fmt.Errorf("imagegen: render index: %w", err)
	}

	return nil
}
