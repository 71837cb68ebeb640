// Package entrypoint parses and mutates a project's entrypoint source file.
// It locates methods marked with the task and agent decorators inside the
// project's entrypoint class and applies structural edits (adding or removing
// methods, adding or removing entries in an agent's tool list) while leaving
// every untouched byte of the file exactly as the user wrote it.
//
// Edits are byte-range splices over the original source buffer, guided by a
// tree-sitter parse of the file. The tree is only ever used to find ranges;
// it is never re-serialized, which is what preserves user formatting and
// comments outside the edited region.
package entrypoint
