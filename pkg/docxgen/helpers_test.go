package docxgen

import (
	"bytes"
	"encoding/xml"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// node is a parsed markup element. Names and attribute keys are local names;
// the w: namespace is resolved by the decoder.
type node struct {
	Name     string
	Attrs    map[string]string
	Children []*node
	Text     string
}

func parseMarkup(t *testing.T, data []byte) *node {
	t.Helper()

	dec := xml.NewDecoder(bytes.NewReader(data))
	var stack []*node
	var root *node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		switch tk := tok.(type) {
		case xml.StartElement:
			n := &node{Name: tk.Name.Local, Attrs: map[string]string{}}
			for _, a := range tk.Attr {
				n.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(tk)
			}
		}
	}
	require.NotNil(t, root, "no root element")
	return root
}

// children returns the direct children with the given name
func (n *node) children(name string) []*node {
	var out []*node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// child returns the first direct child with the given name, or nil
func (n *node) child(name string) *node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// names lists the direct children's names in order
func (n *node) names() []string {
	out := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, c.Name)
	}
	return out
}

// texts collects the content of every w:t below n, in document order
func (n *node) texts() []string {
	var out []string
	var walk func(*node)
	walk = func(x *node) {
		if x.Name == "t" {
			out = append(out, x.Text)
		}
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

func testDocument(t *testing.T, identity string) *Document {
	t.Helper()
	return New(identity,
		WithConfig(&Config{OutputDir: t.TempDir()}),
		WithLogger(NewLogger(io.Discard, "error")),
	)
}

// bodyOf serializes doc and returns the w:body element
func bodyOf(t *testing.T, doc *Document) *node {
	t.Helper()

	data, err := Serialize(doc)
	require.NoError(t, err)

	root := parseMarkup(t, data)
	require.Equal(t, "document", root.Name)
	body := root.child("body")
	require.NotNil(t, body)
	return body
}
