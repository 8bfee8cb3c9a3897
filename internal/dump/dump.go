/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Package dump renders a parsed fixtree.Message as an indented,
 * human-readable text block — the text/template-driven counterpart to
 * fixtree.Message.ToJSON, selected by the CLI's --format=text flag.
 */

package dump

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/fixorch/fixtree"
	"github.com/fixorch/fixtree/schema"
)

// Item is one rendered line of a Message: a scalar Field ("field") or
// a repeating group ("group"), whose Elements each hold that group
// element's own Items.
type Item struct {
	Kind     string // "field" or "group"
	Key      string
	Value    string
	Elements [][]Item
}

const tmplSource = `{{- define "items" -}}
{{- $indent := .Indent -}}
{{- range .Items }}
{{- if eq .Kind "field" }}
{{ repeat $indent "  " }}{{ .Key | upper }}: {{ .Value }}
{{- else }}
{{ repeat $indent "  " }}GROUP {{ .Key | upper }}
{{- range .Elements }}
{{ template "items" dict "Items" . "Indent" (int (add $indent 1)) }}
{{- end }}
{{- end }}
{{- end }}
{{- end -}}
{{ template "items" dict "Items" .Items "Indent" 0 }}`

var tmpl = template.Must(
	template.New("dump").Funcs(sprig.TxtFuncMap()).Funcs(template.FuncMap{
		"repeat": func(n int, s string) string { return strings.Repeat(s, n) },
	}).Parse(tmplSource),
)

// Render renders msg as indented text: one line per Field, and one
// "GROUP <NAME>" header per GroupList followed by each element's lines
// indented one level deeper (mirroring the teacher's GROUP/ATTR dump
// shape).
func Render(msg *fixtree.Message, repo *schema.Repository) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, struct{ Items []Item }{Items: buildMessage(msg, repo)}); err != nil {
		return "", err
	}
	return strings.TrimLeft(buf.String(), "\n"), nil
}

func buildMessage(m *fixtree.Message, repo *schema.Repository) []Item {
	items := make([]Item, 0, len(m.Children))
	for _, child := range m.Children {
		items = append(items, buildItem(child, repo))
	}
	return items
}

func buildGroup(g *fixtree.Group, repo *schema.Repository) []Item {
	items := make([]Item, 0, len(g.Children))
	for _, child := range g.Children {
		items = append(items, buildItem(child, repo))
	}
	return items
}

// buildItem takes child as interface{} rather than the fixtree
// package's unexported node type: any concrete *Field/*GroupList value
// converts to interface{} implicitly regardless of the static type its
// caller saw it as.
func buildItem(child interface{}, repo *schema.Repository) Item {
	switch n := child.(type) {
	case *fixtree.Field:
		return Item{Kind: "field", Key: n.TagName(), Value: n.ValueName(repo)}
	case *fixtree.GroupList:
		elements := make([][]Item, 0, len(n.Elements))
		for _, g := range n.Elements {
			elements = append(elements, buildGroup(g, repo))
		}
		return Item{Kind: "group", Key: n.Spec.Name, Elements: elements}
	default:
		return Item{}
	}
}
