package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"ttc/common"
	"ttc/config"
	"ttc/ttml"
)

// Values holds variables available for output name template expansion.
type Values struct {
	Context    string
	Name       string
	SourceFile string
	Lang       string
	Profile    string
	Format     string
	Cues       int
}

func expandTemplate(doc *ttml.Document, src string, name config.TemplateFieldName, field string, format common.OutputFmt) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Name:       strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		SourceFile: filepath.ToSlash(src),
		Lang:       doc.Lang.String(),
		Profile:    doc.Profile.String(),
		Format:     format.String(),
		Cues:       len(doc.Cues),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
