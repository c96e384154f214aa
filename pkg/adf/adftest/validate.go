// Package adftest checks encoded documents against the structural rules of
// the Atlassian Document Format schema. It is meant for tests, documents are
// never validated at runtime.
package adftest

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

type rule struct {
	children []string
	minItems int
	leaf     bool
}

var inlines = []string{"text", "hardBreak", "emoji"}

var rules = map[string]rule{
	"doc":         {children: []string{"paragraph", "heading", "rule", "codeBlock", "blockquote", "panel", "bulletList", "orderedList", "table"}},
	"paragraph":   {children: inlines},
	"heading":     {children: inlines},
	"codeBlock":   {children: []string{"text"}},
	"blockquote":  {children: []string{"paragraph", "bulletList", "orderedList", "codeBlock"}, minItems: 1},
	"panel":       {children: []string{"paragraph", "heading", "bulletList", "orderedList"}, minItems: 1},
	"bulletList":  {children: []string{"listItem"}, minItems: 1},
	"orderedList": {children: []string{"listItem"}, minItems: 1},
	"listItem":    {children: []string{"paragraph", "bulletList", "orderedList", "codeBlock"}, minItems: 1},
	"table":       {children: []string{"tableRow"}, minItems: 1},
	"tableRow":    {children: []string{"tableHeader", "tableCell"}, minItems: 1},
	"tableHeader": {children: []string{"paragraph", "heading", "bulletList", "orderedList", "panel", "codeBlock", "blockquote", "rule"}, minItems: 1},
	"tableCell":   {children: []string{"paragraph", "heading", "bulletList", "orderedList", "panel", "codeBlock", "blockquote", "rule"}, minItems: 1},
	"text":        {leaf: true},
	"hardBreak":   {leaf: true},
	"emoji":       {leaf: true},
	"rule":        {leaf: true},
}

var (
	panelTypes = []string{"info", "note", "warning", "success", "error"}
	markTypes  = []string{"link", "code", "strong", "em", "strike", "textColor", "underline", "subsup"}
	colorRe    = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Validate decodes data and returns every schema violation found, joined
// into one error, or nil if the document is valid.
func Validate(data []byte) error {
	var root map[string]any

	err := json.Unmarshal(data, &root)
	if err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	v := &validator{}

	if version, ok := root["version"].(float64); !ok || version != 1 {
		v.fail("$", "version must be 1, got %v", root["version"])
	}

	if root["type"] != "doc" {
		v.fail("$", "root type must be doc, got %v", root["type"])
	}

	if _, ok := root["content"].([]any); !ok {
		v.fail("$", "root content must be an array")
	}

	v.node("$", root)

	if len(v.problems) > 0 {
		return fmt.Errorf("invalid document:\n%s", strings.Join(v.problems, "\n"))
	}

	return nil
}

type validator struct {
	problems []string
}

func (v *validator) fail(path, format string, args ...any) {
	v.problems = append(v.problems, path+": "+fmt.Sprintf(format, args...))
}

func (v *validator) node(path string, n map[string]any) {
	typ, _ := n["type"].(string)

	r, ok := rules[typ]
	if !ok {
		v.fail(path, "unknown node type %q", typ)
		return
	}

	v.attrs(path, typ, n)

	if typ == "text" {
		v.text(path, n)
	}

	content, hasContent := n["content"]
	if r.leaf {
		if hasContent {
			v.fail(path, "%s must not have content", typ)
		}

		return
	}

	children, ok := content.([]any)
	if !ok {
		v.fail(path, "%s content must be an array", typ)
		return
	}

	if len(children) < r.minItems {
		v.fail(path, "%s needs at least %d children, got %d", typ, r.minItems, len(children))
	}

	for i, c := range children {
		childPath := fmt.Sprintf("%s.content[%d]", path, i)

		child, ok := c.(map[string]any)
		if !ok {
			v.fail(childPath, "node must be an object")
			continue
		}

		childType, _ := child["type"].(string)
		if !slices.Contains(r.children, childType) {
			v.fail(childPath, "%s is not allowed inside %s", childType, typ)
		}

		if typ == "codeBlock" {
			if _, marked := child["marks"]; marked {
				v.fail(childPath, "text inside codeBlock must not have marks")
			}
		}

		v.node(childPath+"("+childType+")", child)
	}
}

func (v *validator) attrs(path, typ string, n map[string]any) {
	attrs, _ := n["attrs"].(map[string]any)

	switch typ {
	case "heading":
		level, ok := attrs["level"].(float64)
		if !ok || level < 1 || level > 6 {
			v.fail(path, "heading level must be 1-6, got %v", attrs["level"])
		}
	case "panel":
		kind, _ := attrs["panelType"].(string)
		if !slices.Contains(panelTypes, kind) {
			v.fail(path, "unknown panelType %q", kind)
		}
	case "orderedList":
		if order, ok := attrs["order"]; ok {
			if o, ok := order.(float64); !ok || o < 0 {
				v.fail(path, "order must be a non-negative number, got %v", order)
			}
		}
	case "emoji":
		if s, _ := attrs["shortName"].(string); s == "" {
			v.fail(path, "emoji needs a shortName")
		}
	case "table":
		if layout, ok := attrs["layout"].(string); ok && !slices.Contains([]string{"default", "wide", "full-width"}, layout) {
			v.fail(path, "unknown table layout %q", layout)
		}
	}
}

func (v *validator) text(path string, n map[string]any) {
	text, ok := n["text"].(string)
	if !ok || text == "" {
		v.fail(path, "text must be a non-empty string")
	}

	marks, ok := n["marks"]
	if !ok {
		return
	}

	list, ok := marks.([]any)
	if !ok {
		v.fail(path, "marks must be an array")
		return
	}

	for i, m := range list {
		mark, _ := m.(map[string]any)
		markType, _ := mark["type"].(string)
		markPath := fmt.Sprintf("%s.marks[%d]", path, i)

		if !slices.Contains(markTypes, markType) {
			v.fail(markPath, "unknown mark %q", markType)
			continue
		}

		attrs, _ := mark["attrs"].(map[string]any)

		switch markType {
		case "link":
			if href, _ := attrs["href"].(string); href == "" {
				v.fail(markPath, "link needs an href")
			}
		case "textColor":
			if color, _ := attrs["color"].(string); !colorRe.MatchString(color) {
				v.fail(markPath, "textColor needs a #rrggbb color, got %q", color)
			}
		}
	}
}
