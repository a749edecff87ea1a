// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svgdom is a small retained element tree that stands in for a
// platform drawing API.
//
// Gradient definitions, stop elements and block groups are created and
// mutated here the way a browser backend would mutate live SVG nodes. Every
// mutation is counted by the owning Document so callers can observe how many
// resource writes a frame produced.
//
// Documents are NOT thread-safe.
package svgdom

import (
	"bytes"
	"encoding/xml"
	"io"
	"slices"
	"strconv"
)

// Namespace is the SVG XML namespace written on the root element.
const Namespace = "http://www.w3.org/2000/svg"

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Document owns a root <svg> element with a <defs> child for paint servers.
type Document struct {
	root   *Element
	defs   *Element
	writes uint64
}

// NewDocument creates a document sized width x height.
func NewDocument(width, height int) *Document {
	d := &Document{}
	d.root = d.CreateElement("svg")
	d.root.attrs = []Attr{
		{Name: "xmlns", Value: Namespace},
		{Name: "width", Value: strconv.Itoa(width)},
		{Name: "height", Value: strconv.Itoa(height)},
	}
	d.defs = d.CreateElement("defs")
	d.root.children = append(d.root.children, d.defs)
	d.defs.parent = d.root
	d.writes = 0
	return d
}

// Root returns the <svg> element.
func (d *Document) Root() *Element { return d.root }

// Defs returns the <defs> element gradient definitions live in.
func (d *Document) Defs() *Element { return d.defs }

// CreateElement returns a detached element owned by d.
// Creation itself is not a write; attaching it is.
func (d *Document) CreateElement(name string) *Element {
	return &Element{Name: name, doc: d}
}

// Writes returns the number of mutations applied to the document so far.
func (d *Document) Writes() uint64 { return d.writes }

// ElementByID searches the tree depth-first for an element whose id
// attribute equals id.
func (d *Document) ElementByID(id string) *Element {
	var find func(e *Element) *Element
	find = func(e *Element) *Element {
		if v, ok := e.Attr("id"); ok && v == id {
			return e
		}
		for _, c := range e.children {
			if f := find(c); f != nil {
				return f
			}
		}
		return nil
	}
	return find(d.root)
}

// Encode writes the document as indented XML.
func (d *Document) Encode(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d.root); err != nil {
		return err
	}
	return enc.Close()
}

// String returns the document as indented XML.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return "<!-- " + err.Error() + " -->"
	}
	return buf.String()
}

// Element is a node of the retained tree.
type Element struct {
	Name string

	attrs    []Attr
	children []*Element
	parent   *Element
	doc      *Document
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns a copy of the attributes in insertion order.
func (e *Element) Attrs() []Attr {
	return slices.Clone(e.attrs)
}

// SetAttr sets or replaces an attribute. Each call is one write.
func (e *Element) SetAttr(name, value string) {
	e.doc.writes++
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// RemoveAttr deletes an attribute and reports whether it was present.
// Removing an absent attribute is not a write.
func (e *Element) RemoveAttr(name string) bool {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs = slices.Delete(e.attrs, i, i+1)
			e.doc.writes++
			return true
		}
	}
	return false
}

// Document returns the document that created e.
func (e *Element) Document() *Document { return e.doc }

// Parent returns the parent element, or nil if detached.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the child elements in document order.
// The returned slice must not be modified.
func (e *Element) Children() []*Element { return e.children }

// AppendChild attaches c as the last child of e, detaching it from any
// previous parent first.
func (e *Element) AppendChild(c *Element) {
	if c.parent != nil {
		c.parent.detach(c)
	}
	e.children = append(e.children, c)
	c.parent = e
	e.doc.writes++
}

// InsertBefore attaches c immediately before ref. A nil ref appends.
func (e *Element) InsertBefore(c, ref *Element) {
	if ref == nil {
		e.AppendChild(c)
		return
	}
	if c.parent != nil {
		c.parent.detach(c)
	}
	i := slices.Index(e.children, ref)
	if i < 0 {
		i = len(e.children)
	}
	e.children = slices.Insert(e.children, i, c)
	c.parent = e
	e.doc.writes++
}

// RemoveChild detaches c from e and reports whether c was a child.
func (e *Element) RemoveChild(c *Element) bool {
	if c == nil || c.parent != e {
		return false
	}
	e.detach(c)
	e.doc.writes++
	return true
}

// RemoveChildren detaches every child of e in one write.
func (e *Element) RemoveChildren() {
	if len(e.children) == 0 {
		return
	}
	for _, c := range e.children {
		c.parent = nil
	}
	clear(e.children)
	e.children = e.children[:0]
	e.doc.writes++
}

func (e *Element) detach(c *Element) {
	if i := slices.Index(e.children, c); i >= 0 {
		e.children = slices.Delete(e.children, i, i+1)
	}
	c.parent = nil
}

// MarshalXML implements xml.Marshaler.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range e.children {
		if err := enc.Encode(c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
