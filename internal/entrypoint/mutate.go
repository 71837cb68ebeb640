package entrypoint

import (
	"strings"
)

// AddMethod appends a method with the given marker to the end of the
// entrypoint class body. The body text is an already-rendered, fully-indented
// snippet; the engine only places it. Fails with a DuplicateNameError if a
// method of the same kind and name already exists.
func (d *Document) AddMethod(kind Kind, name, body string) error {
	if d.closed {
		return ErrClosed
	}
	methods, err := d.Methods(kind)
	if err != nil {
		return err
	}
	for _, m := range methods {
		if m.Name == name {
			return &DuplicateNameError{Kind: kind, Name: name, Lines: []int{m.Line}}
		}
	}

	class, err := d.entrypointClass()
	if err != nil {
		return err
	}
	block := class.ChildByFieldName("body")
	if block == nil || block.NamedChildCount() == 0 {
		return &ValidationError{
			Reason: "entrypoint class has an empty body in " + d.path,
		}
	}

	pos := block.NamedChild(int(block.NamedChildCount()) - 1).EndByte()
	text := "\n\n" + strings.TrimRight(body, "\n")
	return d.splice(pos, pos, text)
}

// RemoveMethod deletes the method with the given marker and name, along with
// its decorators and the blank line separating it from the previous member.
// Fails with a NotFoundError if the method is absent.
func (d *Document) RemoveMethod(kind Kind, name string) error {
	if d.closed {
		return ErrClosed
	}
	m, err := d.Method(kind, name)
	if err != nil {
		return err
	}

	start := int(m.node.StartByte())
	end := int(m.node.EndByte())

	// Take the indentation of the first decorator line.
	for start > 0 && (d.source[start-1] == ' ' || d.source[start-1] == '\t') {
		start--
	}
	// Take the trailing newline.
	if end < len(d.source) && d.source[end] == '\n' {
		end++
	}
	// Collapse one separating blank line.
	if start >= 2 && d.source[start-1] == '\n' && d.source[start-2] == '\n' {
		start--
	}

	return d.splice(uint32(start), uint32(end), "")
}

// AddTool appends an identifier to the agent's tool list. Adding an
// identifier that is already present is a no-op, so the operation is
// idempotent. Insertion is always at the end of the list: existing order may
// carry meaning for the user, and stable appends keep diffs minimal.
func (d *Document) AddTool(agentName, tool string) error {
	if d.closed {
		return ErrClosed
	}
	list, err := d.toolList(agentName)
	if err != nil {
		return err
	}

	elements := d.listElements(list)
	for _, el := range elements {
		if el == tool {
			return nil
		}
	}
	elements = append(elements, tool)
	return d.splice(list.StartByte(), list.EndByte(), renderList(elements))
}

// RemoveTool removes every element of the agent's tool list that exactly
// matches the identifier. Removing an absent identifier is a no-op.
func (d *Document) RemoveTool(agentName, tool string) error {
	if d.closed {
		return ErrClosed
	}
	list, err := d.toolList(agentName)
	if err != nil {
		return err
	}

	elements := d.listElements(list)
	kept := elements[:0]
	for _, el := range elements {
		if el != tool {
			kept = append(kept, el)
		}
	}
	if len(kept) == len(elements) {
		return nil
	}
	return d.splice(list.StartByte(), list.EndByte(), renderList(kept))
}

// renderList renders list elements back to a list literal. The list itself is
// the edited region, so it is rewritten; everything around it is untouched.
func renderList(elements []string) string {
	return "[" + strings.Join(elements, ", ") + "]"
}
