// Package tools is the registry of tool definitions the CLI can wire into a
// project. Each tool ships as an embedded JSON config validated against a
// JSON Schema; the config names the identifiers that get inserted into an
// agent's tool list, the env vars the tool needs, and the packages to
// install. The registry never touches the entrypoint file itself.
package tools
