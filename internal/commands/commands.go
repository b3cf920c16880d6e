// Package commands routes console lines of the form "cmd <name> [flags]" to
// registered subcommands, each with its own flag.FlagSet.
package commands

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

const prefix = "cmd "

// command pairs a FlagSet with the function run after a successful parse.
type command struct {
	flags *flag.FlagSet
	run   func() error
}

// Registry holds subcommands by name.
type Registry struct {
	cmds map[string]command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]command)}
}

// Register adds a subcommand. name is the first token after "cmd" (e.g.
// "grid"); run is called after fs.Parse succeeds and reads the flag values.
// Registering the same name twice replaces the earlier command.
func (r *Registry) Register(name string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = command{flags: fs, run: run}
}

// Parse splits a console line into subcommand arguments. Lines starting with
// "cmd " (case-sensitive) return the space-separated tokens after the prefix
// and ok true; anything else returns nil, false. "cmd" with nothing after it
// is not a command line.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Names returns the registered command names, sorted. Used by "cmd help".
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the subcommand named by args[0], parsing args[1:] as its
// flags. Unknown or missing subcommands error with the list of registered
// names so console users can recover without docs.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand (try: %s)", strings.Join(r.Names(), ", "))
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q (try: %s)", args[0], strings.Join(r.Names(), ", "))
	}
	if err := cmd.flags.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.run()
}
