// Package scaffold generates new AgentStack projects from embedded templates.
// It powers the "agentstack init" command, producing the project skeleton
// (agentstack.json, src/crew.py, src/main.py, config YAML files) for the
// selected framework with pre-filled boilerplate.
package scaffold
