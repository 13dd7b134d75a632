/*
Copyright 2025 Mirantis IT.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package shell

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a minimal DOM surface used by shell bootstrap
type Document interface {
	// GetElementByID returns nil if element is absent
	GetElementByID(id string) Element
	Head() Element
	CreateElement(tag string) Element
	Title() string
	SetTitle(title string)
}

type Element interface {
	GetAttribute(key string) (string, bool)
	SetAttribute(key, value string)
	AppendChild(child Element) error
}

type HTMLDocument struct {
	root *html.Node
}

type htmlElement struct {
	node *html.Node
}

func ParseHTMLDocument(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse html document")
	}
	return &HTMLDocument{root: root}, nil
}

func (d *HTMLDocument) Render(w io.Writer) error {
	return errors.Wrap(html.Render(w, d.root), "failed to render html document")
}

func (d *HTMLDocument) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func (d *HTMLDocument) GetElementByID(id string) Element {
	node := findNode(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		value, ok := getAttr(n, "id")
		return ok && value == id
	})
	if node == nil {
		return nil
	}
	return &htmlElement{node: node}
}

func (d *HTMLDocument) headNode() *html.Node {
	// parser always creates head element, even if source has none
	return findNode(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Head
	})
}

func (d *HTMLDocument) Head() Element {
	return &htmlElement{node: d.headNode()}
}

func (d *HTMLDocument) CreateElement(tag string) Element {
	tag = strings.ToLower(tag)
	return &htmlElement{node: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

func (d *HTMLDocument) titleNode() *html.Node {
	return findNode(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Title
	})
}

func (d *HTMLDocument) Title() string {
	title := d.titleNode()
	if title == nil {
		return ""
	}
	var sb strings.Builder
	for c := title.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}

func (d *HTMLDocument) SetTitle(value string) {
	title := d.titleNode()
	if title == nil {
		title = &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
		d.headNode().AppendChild(title)
	}
	for c := title.FirstChild; c != nil; {
		next := c.NextSibling
		title.RemoveChild(c)
		c = next
	}
	title.AppendChild(&html.Node{Type: html.TextNode, Data: value})
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func (e *htmlElement) GetAttribute(key string) (string, bool) {
	return getAttr(e.node, key)
}

func (e *htmlElement) SetAttribute(key, value string) {
	for idx, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			e.node.Attr[idx].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

func (e *htmlElement) AppendChild(child Element) error {
	c, ok := child.(*htmlElement)
	if !ok {
		return errors.Errorf("can't append element of foreign type %T", child)
	}
	if c.node.Parent != nil {
		return errors.New("element is already attached to document")
	}
	e.node.AppendChild(c.node)
	return nil
}
