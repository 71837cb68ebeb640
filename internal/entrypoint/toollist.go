package entrypoint

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// toolList locates the list literal passed as the tools argument of the
// agent's construction call. The argument is matched by keyword first, then
// by the shape's positional index. Any value other than a list literal is an
// UnsupportedExpressionError: rewriting a variable reference or comprehension
// in place risks corrupting user code, so the engine refuses instead of
// guessing.
func (d *Document) toolList(agentName string) (*sitter.Node, error) {
	method, err := d.Method(KindAgent, agentName)
	if err != nil {
		return nil, err
	}

	call := d.findCall(method.def, d.shape.AgentCall)
	if call == nil {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("agent method %q does not construct `%s` in %s", agentName, d.shape.AgentCall, d.path),
		}
	}

	value := d.toolsArgument(call)
	if value == nil {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("`%s` call in agent method %q has no `%s` argument in %s",
				d.shape.AgentCall, agentName, d.shape.ToolsKeyword, d.path),
		}
	}
	if value.Type() != "list" {
		return nil, &UnsupportedExpressionError{Agent: agentName, Found: value.Type()}
	}
	return value, nil
}

// toolsArgument picks the argument bound to the tools parameter out of a call.
func (d *Document) toolsArgument(call *sitter.Node) *sitter.Node {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}

	positional := 0
	var byIndex *sitter.Node
	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)
		if arg.Type() == "keyword_argument" {
			name := arg.ChildByFieldName("name")
			if name != nil && d.text(name) == d.shape.ToolsKeyword {
				return arg.ChildByFieldName("value")
			}
			continue
		}
		if arg.Type() == "comment" {
			continue
		}
		if positional == d.shape.ToolsArgIndex {
			byIndex = arg
		}
		positional++
	}
	if d.shape.ToolsArgIndex >= 0 {
		return byIndex
	}
	return nil
}

// findCall returns the first call expression under root whose callee resolves
// to name.
func (d *Document) findCall(root *sitter.Node, name string) *sitter.Node {
	if root.Type() == "call" {
		if d.exprName(root.ChildByFieldName("function")) == name {
			return root
		}
	}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		if found := d.findCall(root.NamedChild(i), name); found != nil {
			return found
		}
	}
	return nil
}

// ToolNames lists the elements of the agent's tool list as source text, in
// list order.
func (d *Document) ToolNames(agentName string) ([]string, error) {
	if d.closed {
		return nil, ErrClosed
	}
	list, err := d.toolList(agentName)
	if err != nil {
		return nil, err
	}
	return d.listElements(list), nil
}

func (d *Document) listElements(list *sitter.Node) []string {
	var elements []string
	for i := 0; i < int(list.NamedChildCount()); i++ {
		child := list.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		elements = append(elements, d.text(child))
	}
	return elements
}
