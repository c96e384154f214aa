package adf

import (
	"github.com/goccy/go-json"
)

// MarkType is the value of the "type" field of a mark.
type MarkType string

const (
	MarkLink      MarkType = "link"
	MarkCode      MarkType = "code"
	MarkStrong    MarkType = "strong"
	MarkEm        MarkType = "em"
	MarkStrike    MarkType = "strike"
	MarkTextColor MarkType = "textColor"
)

// Mark is an inline decoration of a text node.
type Mark struct {
	typ   MarkType
	attrs any
}

func (m Mark) Type() MarkType { return m.typ }

func (m Mark) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  MarkType `json:"type"`
		Attrs any      `json:"attrs,omitempty"`
	}{
		Type:  m.typ,
		Attrs: m.attrs,
	})
}

type linkAttrs struct {
	Href string `json:"href"`
}

type colorAttrs struct {
	Color string `json:"color"`
}

func Link(href string) Mark {
	return Mark{typ: MarkLink, attrs: linkAttrs{Href: href}}
}

func Code() Mark {
	return Mark{typ: MarkCode}
}

func Strong() Mark {
	return Mark{typ: MarkStrong}
}

func Em() Mark {
	return Mark{typ: MarkEm}
}

func Strike() Mark {
	return Mark{typ: MarkStrike}
}

// TextColor takes a color in #rrggbb form.
func TextColor(color string) Mark {
	return Mark{typ: MarkTextColor, attrs: colorAttrs{Color: color}}
}
