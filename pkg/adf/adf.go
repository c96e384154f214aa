// Package adf builds documents in the Atlassian Document Format, the rich
// text format Jira Cloud uses for issue descriptions.
// - https://developer.atlassian.com/cloud/jira/platform/apis/document/structure/
//
// The node kinds form a closed set: every kind is a concrete type in this
// package implementing the unexported methods of Block or Inline, so a
// document can only be assembled from the builders below. Text is always
// literal, nothing is ever parsed as markup.
package adf

import (
	"github.com/goccy/go-json"
)

// NodeType is the value of the "type" field of a node.
type NodeType string

const (
	TypeDoc         NodeType = "doc"
	TypeParagraph   NodeType = "paragraph"
	TypeHeading     NodeType = "heading"
	TypeText        NodeType = "text"
	TypeRule        NodeType = "rule"
	TypeHardBreak   NodeType = "hardBreak"
	TypeCodeBlock   NodeType = "codeBlock"
	TypeBlockquote  NodeType = "blockquote"
	TypePanel       NodeType = "panel"
	TypeBulletList  NodeType = "bulletList"
	TypeOrderedList NodeType = "orderedList"
	TypeListItem    NodeType = "listItem"
	TypeTable       NodeType = "table"
	TypeTableRow    NodeType = "tableRow"
	TypeTableHeader NodeType = "tableHeader"
	TypeTableCell   NodeType = "tableCell"
	TypeEmoji       NodeType = "emoji"
)

// Version is the only document version Jira accepts.
const Version = 1

// Node is implemented by every node kind.
type Node interface {
	Type() NodeType
}

// Block is a node that may appear as a direct child of the document, a
// panel, a list item or a table cell.
type Block interface {
	Node
	block()
}

// Inline is a node that may appear inside a paragraph or heading.
type Inline interface {
	Node
	inline()
}

// Doc is the root of a document.
type Doc struct {
	Content []Block
}

func (d *Doc) Type() NodeType { return TypeDoc }

func (d *Doc) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Version int      `json:"version"`
		Type    NodeType `json:"type"`
		Content []Block  `json:"content"`
	}{
		Version: Version,
		Type:    TypeDoc,
		Content: nonNil(d.Content),
	})
}

// Document creates the root node.
func Document(content ...Block) *Doc {
	return &Doc{Content: content}
}

// Append adds blocks to the end of the document.
func (d *Doc) Append(content ...Block) *Doc {
	d.Content = append(d.Content, content...)

	return d
}

// nonNil makes sure an empty content list is encoded as [] and not null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
