package adf

import (
	"strconv"

	"github.com/goccy/go-json"
)

// TextNode is a leaf carrying literal text.
type TextNode struct {
	Text  string
	Marks []Mark
}

func (t *TextNode) Type() NodeType { return TypeText }
func (t *TextNode) inline()        {}

func (t *TextNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  NodeType `json:"type"`
		Text  string   `json:"text"`
		Marks []Mark   `json:"marks,omitempty"`
	}{
		Type:  TypeText,
		Text:  t.Text,
		Marks: t.Marks,
	})
}

func Text(value string, marks ...Mark) *TextNode {
	return &TextNode{Text: value, Marks: marks}
}

// LinkText is text with a link mark pointing at href.
func LinkText(text, href string) *TextNode {
	return Text(text, Link(href))
}

// HardBreakNode is a line break inside a paragraph.
type HardBreakNode struct{}

func (h *HardBreakNode) Type() NodeType { return TypeHardBreak }
func (h *HardBreakNode) inline()        {}

func (h *HardBreakNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type NodeType `json:"type"`
	}{
		Type: TypeHardBreak,
	})
}

func HardBreak() *HardBreakNode {
	return &HardBreakNode{}
}

// EmojiNode is an emoji given by its short name and unicode code point.
type EmojiNode struct {
	ShortName string
	ID        string
	Text      string
}

func (e *EmojiNode) Type() NodeType { return TypeEmoji }
func (e *EmojiNode) inline()        {}

func (e *EmojiNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  NodeType `json:"type"`
		Attrs any      `json:"attrs"`
	}{
		Type: TypeEmoji,
		Attrs: struct {
			ShortName string `json:"shortName"`
			ID        string `json:"id"`
			Text      string `json:"text"`
		}{
			ShortName: e.ShortName,
			ID:        e.ID,
			Text:      e.Text,
		},
	})
}

// Emoji creates an emoji from a short name such as ":tada:" and a
// code point such as 0x1f389.
func Emoji(shortName string, codepoint rune) *EmojiNode {
	return &EmojiNode{
		ShortName: shortName,
		ID:        strconv.FormatInt(int64(codepoint), 16),
		Text:      string(codepoint),
	}
}

// Texts creates one unmarked text node per non-empty part, the document
// format rejects empty text nodes.
func Texts(parts ...string) []Inline {
	var out []Inline

	for _, p := range parts {
		if p == "" {
			continue
		}

		out = append(out, Text(p))
	}

	return out
}
