// Package contentful converts Contentful rich text documents into the
// document tree used for article bodies.
package contentful

// Node is the Contentful rich text node shape. Every node carries a nodeType
// discriminator; the other fields are populated per type.
type Node struct {
	NodeType string `json:"nodeType"`
	Content  []Node `json:"content,omitempty"`
	Value    string `json:"value,omitempty"`
	Marks    []Mark `json:"marks,omitempty"`
	Data     Data   `json:"data,omitempty"`
}

// Mark is an inline formatting flag on a text node.
type Mark struct {
	Type string `json:"type"`
}

// Data carries hyperlink targets and embedded entry/asset references.
type Data struct {
	URI    string  `json:"uri,omitempty"`
	Target *Target `json:"target,omitempty"`
}

type Target struct {
	Sys    Sys          `json:"sys"`
	Fields TargetFields `json:"fields,omitempty"`
}

type Sys struct {
	ID       string `json:"id"`
	Type     string `json:"type,omitempty"`
	LinkType string `json:"linkType,omitempty"`
}

type TargetFields struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}
