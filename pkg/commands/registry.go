// Package commands provides a registry system for appgroup commands.
// Commands register themselves on initialization and are discovered dynamically.
package commands

import "sort"

var registry = make(map[string]Command)

// Register adds a command to the registry
func Register(cmd Command) {
	registry[cmd.Name] = cmd
}

// Find returns the command called name
func Find(name string) *Command {
	if cmd, ok := registry[name]; ok {
		return &cmd
	}
	return nil
}

// List returns all registered commands sorted by name
func List() []Command {
	var commands []Command
	for _, cmd := range registry {
		commands = append(commands, cmd)
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name < commands[j].Name
	})
	return commands
}
