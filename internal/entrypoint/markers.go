package entrypoint

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// Kind classifies a marked method.
type Kind string

const (
	KindTask  Kind = "task"
	KindAgent Kind = "agent"
)

// Method is a reference to a single marked method of the entrypoint class.
// The underlying nodes are owned by the Document and become stale after any
// mutation; Document methods always re-scan rather than holding on to one.
type Method struct {
	Name string
	Kind Kind
	Line int // 1-based line of the first decorator

	node *sitter.Node // decorated_definition
	def  *sitter.Node // function_definition
}

// entrypointClasses returns every top-level class carrying the shape's class
// decorator, in source order.
func (d *Document) entrypointClasses() []*sitter.Node {
	var classes []*sitter.Node
	root := d.tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "decorated_definition" {
			continue
		}
		def := child.ChildByFieldName("definition")
		if def == nil || def.Type() != "class_definition" {
			continue
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			dec := child.NamedChild(j)
			if dec.Type() == "decorator" && d.decoratorName(dec) == d.shape.ClassDecorator {
				classes = append(classes, def)
				break
			}
		}
	}
	return classes
}

// entrypointClass returns the single recognized entrypoint class.
func (d *Document) entrypointClass() (*sitter.Node, error) {
	classes := d.entrypointClasses()
	if len(classes) == 0 {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("`@%s` decorated class not found in %s", d.shape.ClassDecorator, d.path),
		}
	}
	return classes[0], nil
}

// decoratorName resolves the marker name of a decorator node. Both bare
// (`@agent`) and dotted (`@agentstack.agent`) forms resolve to the trailing
// identifier; call-style decorators resolve through the callee.
func (d *Document) decoratorName(dec *sitter.Node) string {
	expr := dec.NamedChild(0)
	return d.exprName(expr)
}

func (d *Document) exprName(expr *sitter.Node) string {
	if expr == nil {
		return ""
	}
	switch expr.Type() {
	case "identifier":
		return d.text(expr)
	case "attribute":
		return d.exprName(expr.ChildByFieldName("attribute"))
	case "call":
		return d.exprName(expr.ChildByFieldName("function"))
	}
	return ""
}

// Methods lists the methods of the entrypoint class marked with kind, in
// declaration order. Nested classes and free functions never qualify.
func (d *Document) Methods(kind Kind) ([]Method, error) {
	if d.closed {
		return nil, ErrClosed
	}
	class, err := d.entrypointClass()
	if err != nil {
		return nil, err
	}
	return d.classMethods(class, kind), nil
}

func (d *Document) classMethods(class *sitter.Node, kind Kind) []Method {
	body := class.ChildByFieldName("body")
	if body == nil {
		return nil
	}

	var methods []Method
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() != "decorated_definition" {
			continue
		}
		def := child.ChildByFieldName("definition")
		if def == nil || def.Type() != "function_definition" {
			continue
		}
		if d.methodKind(child) != kind {
			continue
		}
		nameNode := def.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		methods = append(methods, Method{
			Name: d.text(nameNode),
			Kind: kind,
			Line: int(child.StartPoint().Row) + 1,
			node: child,
			def:  def,
		})
	}
	return methods
}

// methodKind classifies a decorated method. The first recognized marker wins;
// the two kinds are mutually exclusive per method.
func (d *Document) methodKind(decorated *sitter.Node) Kind {
	for i := 0; i < int(decorated.NamedChildCount()); i++ {
		child := decorated.NamedChild(i)
		if child.Type() != "decorator" {
			continue
		}
		switch Kind(d.decoratorName(child)) {
		case KindTask:
			return KindTask
		case KindAgent:
			return KindAgent
		}
	}
	return ""
}

// Method finds a marked method by kind and name. Name comparison is exact and
// case-sensitive.
func (d *Document) Method(kind Kind, name string) (Method, error) {
	methods, err := d.Methods(kind)
	if err != nil {
		return Method{}, err
	}
	for _, m := range methods {
		if m.Name == name {
			return m, nil
		}
	}
	return Method{}, &NotFoundError{Kind: kind, Name: name}
}

// MethodNames lists the names of every method marked with kind, in
// declaration order.
func (d *Document) MethodNames(kind Kind) ([]string, error) {
	methods, err := d.Methods(kind)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.Name
	}
	return names, nil
}
