// Package svg provides a minimal namespace-aware SVG document model:
// enough of the element tree to identify operable shapes, walk the
// document in rendering (preorder) order, and resolve element ids.
// It deliberately does not interpret geometry; path data stays opaque.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Namespace URIs recognized by the predicates.
const (
	Namespace         = "http://www.w3.org/2000/svg"
	NamespaceSodipodi = "http://sodipodi.sourceforge.net/DTD/sodipodi-0.0.dtd"
	NamespaceInkscape = "http://www.inkscape.org/namespaces/inkscape"
)

// Element is a single node in the document tree.
type Element struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []*Element
}

// Document is a parsed SVG file.
type Document struct {
	Root *Element

	// Path is the file the document was read from, if any.
	Path string
}

// Parse reads an SVG document from r and builds the element tree.
// Character data, comments and processing instructions are discarded;
// only the element structure and attributes matter here.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse svg: %w", err)
		}

		switch se := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: se.Name, Attr: se.Copy().Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parse svg: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("parse svg: unbalanced end element %s", se.Name.Local)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parse svg: empty document")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("parse svg: unclosed element %s", stack[len(stack)-1].Name.Local)
	}
	return &Document{Root: root}, nil
}

// ParseFile reads and parses the SVG file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open svg: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// ID returns the element's id attribute, or "" when absent.
func (e *Element) ID() string {
	for _, a := range e.Attr {
		if a.Name.Local == "id" && a.Name.Space == "" {
			return a.Value
		}
	}
	return ""
}

// AttrValue looks up an attribute by namespace and local name. The
// namespace match is lenient: it accepts the resolved URI, the bare
// prefix (for documents that use a prefix without declaring it), and
// the empty space for un-namespaced attributes.
func (e *Element) AttrValue(space, local string) (string, bool) {
	prefix := prefixFor(space)
	for _, a := range e.Attr {
		if a.Name.Local != local {
			continue
		}
		if a.Name.Space == space || a.Name.Space == prefix {
			return a.Value, true
		}
	}
	return "", false
}

func prefixFor(space string) string {
	switch space {
	case NamespaceSodipodi:
		return "sodipodi"
	case NamespaceInkscape:
		return "inkscape"
	default:
		return ""
	}
}

// Find returns the first element in document order with the given id,
// or nil when no such element exists.
func (d *Document) Find(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	walk(d.Root, func(e *Element) bool {
		if e.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// walk visits e and its descendants in preorder. The visitor returns
// false to stop the traversal.
func walk(e *Element, visit func(*Element) bool) bool {
	if !visit(e) {
		return false
	}
	for _, c := range e.Children {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// isSVGName reports whether name is the given SVG element, accepting
// documents that omit the xmlns declaration.
func isSVGName(name xml.Name, local string) bool {
	if name.Local != local {
		return false
	}
	return name.Space == Namespace || name.Space == "" || name.Space == "svg"
}

// String renders the element's name with its namespace prefix, for
// log and error messages.
func (e *Element) String() string {
	if e.Name.Space == "" {
		return e.Name.Local
	}
	if p := prefixFor(e.Name.Space); p != "" {
		return p + ":" + e.Name.Local
	}
	if !strings.Contains(e.Name.Space, "/") {
		return e.Name.Space + ":" + e.Name.Local
	}
	return e.Name.Local
}
