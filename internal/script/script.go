// Package script loads plot scripts: TOML files bundling data blocks with
// the gnuplot commands that use them.
//
//	persist = true
//	terminal = "pngcairo size 800,600"
//	output = "plot.png"
//	commands = ["plot @pts using 1:2 with lines"]
//
//	[[block]]
//	name = "pts"
//	row = 1
//	columns = [[1, 2, 3], [4, 5, 6]]
//
// Commands refer to a block as @name; Run replaces the placeholder with the
// generated data block name.
package script

import (
	"cmp"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/wagiedev/gnuplot-go/internal/datablock"
)

// PlaceholderPrefix marks a block reference in a command.
const PlaceholderPrefix = "@"

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Channel is the part of a gnuplot channel a script needs.
type Channel interface {
	Send(line string) error
	Block(layout datablock.Layout, columns ...[]float64) (string, error)
}

// Block is one data block of a script.
type Block struct {
	Name    string      `toml:"name"`
	Row     int         `toml:"row"`
	Sep     int         `toml:"sep"`
	Columns [][]float64 `toml:"columns"`
}

// Script is a parsed plot script.
type Script struct {
	// Persist is nil when the script does not set it.
	Persist  *bool
	Terminal string
	Output   string
	Blocks   []Block
	Commands []string
}

type fileScript struct {
	Persist  bool     `toml:"persist"`
	Terminal string   `toml:"terminal"`
	Output   string   `toml:"output"`
	Commands []string `toml:"commands"`
	Blocks   []Block  `toml:"block"`
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load plot script: %w", err)
	}

	s, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("load plot script %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates a script.
func Parse(data string) (*Script, error) {
	var raw fileScript

	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode plot script: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown plot script key %q", undecoded[0].String())
	}

	s := &Script{
		Terminal: strings.TrimSpace(raw.Terminal),
		Output:   raw.Output,
		Blocks:   raw.Blocks,
		Commands: raw.Commands,
	}

	if meta.IsDefined("persist") {
		persist := raw.Persist
		s.Persist = &persist
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Script) validate() error {
	seen := make(map[string]struct{}, len(s.Blocks))

	for i, b := range s.Blocks {
		if !identifier.MatchString(b.Name) {
			return fmt.Errorf("block %d: invalid name %q", i, b.Name)
		}

		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("block %d: duplicate name %q", i, b.Name)
		}

		seen[b.Name] = struct{}{}

		if b.Row < 0 || b.Sep < 0 {
			return fmt.Errorf("block %q: row and sep must not be negative", b.Name)
		}

		if _, err := datablock.Validate(b.Columns...); err != nil {
			return fmt.Errorf("block %q: %w", b.Name, err)
		}
	}

	return nil
}

// Run sends the script to g: terminal and output settings, then every data
// block in order, then the commands with block placeholders resolved.
func (s *Script) Run(g Channel) error {
	if s.Terminal != "" {
		if err := g.Send("set terminal " + s.Terminal); err != nil {
			return err
		}
	}

	if s.Output != "" {
		if err := g.Send("set output " + quote(s.Output)); err != nil {
			return err
		}
	}

	names := make(map[string]string, len(s.Blocks))

	for _, b := range s.Blocks {
		name, err := g.Block(datablock.Layout{Row: b.Row, Sep: b.Sep}, b.Columns...)
		if err != nil {
			return fmt.Errorf("upload block %q: %w", b.Name, err)
		}

		names[b.Name] = name
	}

	resolve := Resolver(names)

	for _, cmd := range s.Commands {
		if err := g.Send(resolve.Replace(cmd)); err != nil {
			return err
		}
	}

	if s.Output != "" {
		return g.Send("unset output")
	}

	return nil
}

// Resolver returns a replacer from "@name" placeholders to block names.
// Longer names are matched first so @pts2 is not read as @pts.
func Resolver(names map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), cmp.Compare(a, b))
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, PlaceholderPrefix+k, names[k])
	}

	return strings.NewReplacer(pairs...)
}

// quote returns s as a gnuplot single-quoted string.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
