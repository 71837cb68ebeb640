package entrypoint

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Shape describes how a framework's entrypoint file is structured: how the
// entrypoint class is recognized and how an agent method constructs its
// runtime object. The engine itself is framework-agnostic; each framework
// supplies its own Shape.
type Shape struct {
	// ClassDecorator marks the entrypoint class, e.g. "CrewBase".
	ClassDecorator string
	// AgentCall is the callee that constructs the agent's runtime object
	// inside an agent method, e.g. "Agent".
	AgentCall string
	// ToolsKeyword is the keyword argument holding the agent's tool list.
	ToolsKeyword string
	// ToolsArgIndex is the positional fallback for the tools argument when
	// it is not passed as a keyword. Negative means keyword-only.
	ToolsArgIndex int
}

// Document is an open entrypoint file. It owns the parse tree and the source
// buffer and keeps them consistent: every mutation splices the buffer and
// re-parses. A Document is not safe for concurrent use.
type Document struct {
	path   string
	shape  Shape
	mode   fs.FileMode
	source []byte
	parser *sitter.Parser
	tree   *sitter.Tree
	dirty  bool
	closed bool
}

const defaultFileMode = 0o644

// Open reads and parses the entrypoint file at path. It returns a ParseError
// if the content cannot be parsed into a well-formed tree.
func Open(path string, shape Shape) (*Document, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading entrypoint %s: %w", path, err)
	}

	mode := fs.FileMode(defaultFileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	d := &Document{
		path:   path,
		shape:  shape,
		mode:   mode,
		source: source,
		parser: parser,
	}
	if err := d.reparse(); err != nil {
		parser.Close()
		return nil, err
	}
	return d, nil
}

// Path returns the path the document was opened from.
func (d *Document) Path() string { return d.path }

// Render returns the current source text. Regions untouched by a mutation are
// byte-identical to the original file content.
func (d *Document) Render() []byte {
	out := make([]byte, len(d.source))
	copy(out, d.source)
	return out
}

// Dirty reports whether the document has been mutated since Open.
func (d *Document) Dirty() bool { return d.dirty }

// Close releases the document. If it was mutated, the full text is written
// back with a single atomic write; otherwise the file on disk is untouched.
// The document cannot be used after Close.
func (d *Document) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.release()
	if !d.dirty {
		return nil
	}
	return writeAtomic(d.path, d.source, d.mode)
}

// Discard releases the document without writing, abandoning any mutations.
func (d *Document) Discard() {
	if d.closed {
		return
	}
	d.release()
}

func (d *Document) release() {
	d.closed = true
	if d.tree != nil {
		d.tree.Close()
		d.tree = nil
	}
	d.parser.Close()
}

// splice replaces source[start:end] with text and re-parses. On a parse
// failure the buffer is restored, so a bad edit never leaves the document in
// an inconsistent state.
func (d *Document) splice(start, end uint32, text string) error {
	prev := d.source

	buf := make([]byte, 0, len(prev)-int(end-start)+len(text))
	buf = append(buf, prev[:start]...)
	buf = append(buf, text...)
	buf = append(buf, prev[end:]...)
	d.source = buf

	if err := d.reparse(); err != nil {
		d.source = prev
		if rerr := d.reparse(); rerr != nil {
			return rerr
		}
		return err
	}
	d.dirty = true
	return nil
}

// reparse rebuilds the tree from the current source buffer.
func (d *Document) reparse() error {
	tree, err := d.parser.ParseCtx(context.Background(), nil, d.source)
	if err != nil {
		return &ParseError{Path: d.path, Err: err}
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return &ParseError{Path: d.path}
	}
	if d.tree != nil {
		d.tree.Close()
	}
	d.tree = tree
	return nil
}

// text returns the source text of a node.
func (d *Document) text(n *sitter.Node) string {
	return n.Content(d.source)
}
