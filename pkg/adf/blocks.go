package adf

import (
	"github.com/goccy/go-json"
)

// PanelType selects the color and icon of a panel.
type PanelType string

const (
	PanelInfo    PanelType = "info"
	PanelNote    PanelType = "note"
	PanelWarning PanelType = "warning"
)

func marshalNode[T any](typ NodeType, attrs any, content []T) ([]byte, error) {
	return json.Marshal(struct {
		Type    NodeType `json:"type"`
		Attrs   any      `json:"attrs,omitempty"`
		Content []T      `json:"content"`
	}{
		Type:    typ,
		Attrs:   attrs,
		Content: nonNil(content),
	})
}

type ParagraphNode struct {
	Content []Inline
}

func (p *ParagraphNode) Type() NodeType { return TypeParagraph }
func (p *ParagraphNode) block()         {}

func (p *ParagraphNode) MarshalJSON() ([]byte, error) {
	return marshalNode(TypeParagraph, nil, p.Content)
}

// Paragraph with no children is a valid, empty paragraph.
func Paragraph(children ...Inline) *ParagraphNode {
	return &ParagraphNode{Content: children}
}

// TextParagraph is a paragraph holding a single unmarked text node, or
// nothing when value is empty.
func TextParagraph(value string) *ParagraphNode {
	return Paragraph(Texts(value)...)
}

type HeadingNode struct {
	Level   int
	Content []Inline
}

func (h *HeadingNode) Type() NodeType { return TypeHeading }
func (h *HeadingNode) block()         {}

func (h *HeadingNode) MarshalJSON() ([]byte, error) {
	return marshalNode(TypeHeading, struct {
		Level int `json:"level"`
	}{Level: h.Level}, h.Content)
}

// Heading levels run from 1 to 6.
func Heading(level int, children ...Inline) *HeadingNode {
	return &HeadingNode{Level: level, Content: children}
}

type RuleNode struct{}

func (r *RuleNode) Type() NodeType { return TypeRule }
func (r *RuleNode) block()         {}

func (r *RuleNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type NodeType `json:"type"`
	}{
		Type: TypeRule,
	})
}

func Rule() *RuleNode {
	return &RuleNode{}
}

type CodeBlockNode struct {
	Language string
	Text     string
}

func (c *CodeBlockNode) Type() NodeType { return TypeCodeBlock }
func (c *CodeBlockNode) block()         {}

func (c *CodeBlockNode) MarshalJSON() ([]byte, error) {
	var attrs any
	if c.Language != "" {
		attrs = struct {
			Language string `json:"language"`
		}{Language: c.Language}
	}

	return marshalNode(TypeCodeBlock, attrs, Texts(c.Text))
}

// CodeBlock holds preformatted text, language may be empty.
func CodeBlock(text, language string) *CodeBlockNode {
	return &CodeBlockNode{Text: text, Language: language}
}

type BlockquoteNode struct {
	Content []*ParagraphNode
}

func (b *BlockquoteNode) Type() NodeType { return TypeBlockquote }
func (b *BlockquoteNode) block()         {}

func (b *BlockquoteNode) MarshalJSON() ([]byte, error) {
	return marshalNode(TypeBlockquote, nil, b.Content)
}

func Blockquote(paragraphs ...*ParagraphNode) *BlockquoteNode {
	return &BlockquoteNode{Content: paragraphs}
}

type PanelNode struct {
	PanelType PanelType
	Content   []Block
}

func (p *PanelNode) Type() NodeType { return TypePanel }
func (p *PanelNode) block()         {}

func (p *PanelNode) MarshalJSON() ([]byte, error) {
	return marshalNode(TypePanel, struct {
		PanelType PanelType `json:"panelType"`
	}{PanelType: p.PanelType}, p.Content)
}

func Panel(kind PanelType, children ...Block) *PanelNode {
	return &PanelNode{PanelType: kind, Content: children}
}

type ListItemNode struct {
	Content []Block
}

func (l *ListItemNode) Type() NodeType { return TypeListItem }

func (l *ListItemNode) MarshalJSON() ([]byte, error) {
	return marshalNode(TypeListItem, nil, l.Content)
}

func ListItem(children ...Block) *ListItemNode {
	return &ListItemNode{Content: children}
}

// TextItem is a list item holding a single text paragraph.
func TextItem(value string) *ListItemNode {
	return ListItem(TextParagraph(value))
}

type BulletListNode struct {
	Items []*ListItemNode
}

func (b *BulletListNode) Type() NodeType { return TypeBulletList }
func (b *BulletListNode) block()         {}

func (b *BulletListNode) MarshalJSON() ([]byte, error) {
	return marshalNode(TypeBulletList, nil, b.Items)
}

func BulletList(items ...*ListItemNode) *BulletListNode {
	return &BulletListNode{Items: items}
}

type OrderedListNode struct {
	Order int
	Items []*ListItemNode
}

func (o *OrderedListNode) Type() NodeType { return TypeOrderedList }
func (o *OrderedListNode) block()         {}

func (o *OrderedListNode) MarshalJSON() ([]byte, error) {
	return marshalNode(TypeOrderedList, struct {
		Order int `json:"order"`
	}{Order: o.Order}, o.Items)
}

// OrderedList numbers its items from start, a start below 1 is treated as 1.
func OrderedList(start int, items ...*ListItemNode) *OrderedListNode {
	if start < 1 {
		start = 1
	}

	return &OrderedListNode{Order: start, Items: items}
}

// Cell is a table header or data cell.
type Cell interface {
	Node
	cell()
}

type TableHeaderNode struct {
	Content []Block
}

func (t *TableHeaderNode) Type() NodeType { return TypeTableHeader }
func (t *TableHeaderNode) cell()          {}

func (t *TableHeaderNode) MarshalJSON() ([]byte, error) {
	return marshalNode(TypeTableHeader, nil, t.Content)
}

func TableHeader(children ...Block) *TableHeaderNode {
	return &TableHeaderNode{Content: children}
}

type TableCellNode struct {
	Content []Block
}

func (t *TableCellNode) Type() NodeType { return TypeTableCell }
func (t *TableCellNode) cell()          {}

func (t *TableCellNode) MarshalJSON() ([]byte, error) {
	return marshalNode(TypeTableCell, nil, t.Content)
}

func TableCell(children ...Block) *TableCellNode {
	return &TableCellNode{Content: children}
}

type TableRowNode struct {
	Cells []Cell
}

func (t *TableRowNode) Type() NodeType { return TypeTableRow }

func (t *TableRowNode) MarshalJSON() ([]byte, error) {
	return marshalNode(TypeTableRow, nil, t.Cells)
}

func TableRow(cells ...Cell) *TableRowNode {
	return &TableRowNode{Cells: cells}
}

type TableNode struct {
	Rows []*TableRowNode
}

func (t *TableNode) Type() NodeType { return TypeTable }
func (t *TableNode) block()         {}

func (t *TableNode) MarshalJSON() ([]byte, error) {
	return marshalNode(TypeTable, struct {
		IsNumberColumnEnabled bool   `json:"isNumberColumnEnabled"`
		Layout                string `json:"layout"`
	}{
		IsNumberColumnEnabled: false,
		Layout:                "default",
	}, t.Rows)
}

func Table(rows ...*TableRowNode) *TableNode {
	return &TableNode{Rows: rows}
}
