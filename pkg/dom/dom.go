// Package dom is a minimal in-memory element tree used as the view layer.
// Components read element attributes and write text and classes; nothing
// else about rendering is modelled.
package dom

import (
	"strings"
	"sync"
)

type Element struct {
	mu      sync.RWMutex
	id      string
	classes map[string]struct{}
	attrs   map[string]string
	text    string
}

func NewElement(id string, classes ...string) *Element {
	el := &Element{
		id:      id,
		classes: make(map[string]struct{}, len(classes)),
		attrs:   make(map[string]string),
	}
	for _, c := range classes {
		el.classes[c] = struct{}{}
	}
	return el
}

func (el *Element) ID() string {
	return el.id
}

func (el *Element) HasClass(class string) bool {
	el.mu.RLock()
	defer el.mu.RUnlock()
	_, ok := el.classes[class]
	return ok
}

func (el *Element) AddClass(class string) {
	el.mu.Lock()
	el.classes[class] = struct{}{}
	el.mu.Unlock()
}

// Attr returns the attribute value and whether it is present.
func (el *Element) Attr(name string) (string, bool) {
	el.mu.RLock()
	defer el.mu.RUnlock()
	v, ok := el.attrs[name]
	return v, ok
}

func (el *Element) SetAttr(name, value string) *Element {
	el.mu.Lock()
	el.attrs[name] = value
	el.mu.Unlock()
	return el
}

func (el *Element) RemoveAttr(name string) {
	el.mu.Lock()
	delete(el.attrs, name)
	el.mu.Unlock()
}

func (el *Element) Text() string {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.text
}

func (el *Element) SetText(text string) {
	el.mu.Lock()
	el.text = text
	el.mu.Unlock()
}

// Document keeps elements in insertion order.
type Document struct {
	mu       sync.RWMutex
	elements []*Element
}

func NewDocument(elements ...*Element) *Document {
	return &Document{elements: elements}
}

func (d *Document) Append(el *Element) {
	d.mu.Lock()
	d.elements = append(d.elements, el)
	d.mu.Unlock()
}

func (d *Document) GetElementByID(id string) *Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, el := range d.elements {
		if el.id == id {
			return el
		}
	}
	return nil
}

// QuerySelectorAll supports a comma separated list of "#id" and ".class"
// selectors. Each element is returned once, in document order.
func (d *Document) QuerySelectorAll(selectors string) []*Element {
	var ids, classes []string
	for _, s := range strings.Split(selectors, ",") {
		s = strings.TrimSpace(s)
		switch {
		case strings.HasPrefix(s, "#"):
			ids = append(ids, s[1:])
		case strings.HasPrefix(s, "."):
			classes = append(classes, s[1:])
		}
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	var res []*Element
	for _, el := range d.elements {
		if matches(el, ids, classes) {
			res = append(res, el)
		}
	}
	return res
}

func matches(el *Element, ids, classes []string) bool {
	for _, id := range ids {
		if el.id == id {
			return true
		}
	}
	for _, c := range classes {
		if el.HasClass(c) {
			return true
		}
	}
	return false
}
