// Command bitecsshell is an interactive line-editor shell for manually
// driving a bitecs.Context: create groups, add and remove entities, add a
// Position component, set or clear the Visible flag, and inspect per-group
// counts, one command at a time. It has no command for removing a single
// component from an entity.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/northfield-games/bitecs"
	"github.com/northfield-games/bitecs/internal/demo"
	"github.com/peterh/liner"
)

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bitecsshell_history")
}

// shell holds the REPL's live state: one Context and the liner reading the
// terminal.
type shell struct {
	ctx   *bitecs.Context[*demo.Group]
	liner *liner.State
}

func main() {
	s := &shell{ctx: demo.NewContext()}
	if err := s.run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (s *shell) run() error {
	s.liner = liner.NewLiner()
	defer s.liner.Close()
	s.liner.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile()); err == nil {
		s.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Println("bitecsshell - interactive bitecs Context driver")
	fmt.Println("Type 'help' for available commands.")

	for {
		line, err := s.liner.Prompt("bitecs> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			s.saveHistory()
			return nil
		case "help", "?":
			s.printHelp()
		case "addgroup":
			s.cmdAddGroup()
		case "addentity":
			s.cmdAddEntity(args)
		case "removeentity":
			s.cmdRemoveEntity(args)
		case "addpos":
			s.cmdAddPosition(args)
		case "setvisible":
			s.cmdSetVisible(args)
		case "info":
			s.cmdInfo(args)
		default:
			fmt.Printf("unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
	s.saveHistory()
	return nil
}

func (s *shell) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			s.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (s *shell) printHelp() {
	fmt.Println(`commands:
  addgroup                    create a new group, prints its id
  addentity <group>           allocate an entity in <group>, prints its id as "group:sub"
  removeentity <group> <sub>  free an entity
  addpos <group> <sub>        add a zero-valued Position to an entity
  setvisible <group> <sub> <true|false>
  info <group>                print entity/position/flag counts for a group
  exit                        leave the shell`)
}

func parseEntity(groupArg, subArg string) (bitecs.EntityID, error) {
	g, err := strconv.Atoi(groupArg)
	if err != nil {
		return bitecs.EntityID{}, fmt.Errorf("invalid group id %q: %w", groupArg, err)
	}
	sub, err := strconv.Atoi(subArg)
	if err != nil {
		return bitecs.EntityID{}, fmt.Errorf("invalid sub id %q: %w", subArg, err)
	}
	return bitecs.EntityID{Group: bitecs.GroupID(g), Sub: bitecs.EntitySubID(sub)}, nil
}

func (s *shell) cmdAddGroup() {
	g := s.ctx.AddGroup()
	fmt.Printf("created group %d\n", g)
}

func (s *shell) cmdAddEntity(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: addentity <group>")
		return
	}
	gid, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("invalid group id:", err)
		return
	}
	g := bitecs.GroupID(gid)
	if !s.ctx.IsValidGroup(g) {
		fmt.Println("no such group")
		return
	}
	e := s.ctx.AddEntity(g)
	fmt.Printf("created entity %d:%d\n", e.Group, e.Sub)
}

func (s *shell) cmdRemoveEntity(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: removeentity <group> <sub>")
		return
	}
	e, err := parseEntity(args[0], args[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	if !s.ctx.IsValidEntity(e) {
		fmt.Println("no such entity")
		return
	}
	s.ctx.RemoveEntity(e)
	fmt.Println("removed")
}

func (s *shell) cmdAddPosition(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: addpos <group> <sub>")
		return
	}
	e, err := parseEntity(args[0], args[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	if !s.ctx.IsValidEntity(e) {
		fmt.Println("no such entity")
		return
	}
	sel := func(gr *demo.Group) *bitecs.TypedManager[demo.Position] { return gr.Positions }
	if bitecs.Has(s.ctx, e, sel) {
		fmt.Println("already has a position")
		return
	}
	bitecs.Add(s.ctx, e, sel, demo.Position{}).Release()
	fmt.Println("added")
}

func (s *shell) cmdSetVisible(args []string) {
	if len(args) != 3 {
		fmt.Println("usage: setvisible <group> <sub> <true|false>")
		return
	}
	e, err := parseEntity(args[0], args[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	if !s.ctx.IsValidEntity(e) {
		fmt.Println("no such entity")
		return
	}
	value, err := strconv.ParseBool(args[2])
	if err != nil {
		fmt.Println("invalid bool:", err)
		return
	}
	bitecs.SetFlag(s.ctx, e, func(gr *demo.Group) *bitecs.FlagManager { return gr.Visible }, value)
	fmt.Println("set")
}

func (s *shell) cmdInfo(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: info <group>")
		return
	}
	gid, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("invalid group id:", err)
		return
	}
	g := bitecs.GroupID(gid)
	if !s.ctx.IsValidGroup(g) {
		fmt.Println("no such group")
		return
	}
	group := s.ctx.Group(g)
	visible := 0
	for sub := uint16(0); sub < group.EntityMax(); sub++ {
		if group.Visible.Has(bitecs.EntitySubID(sub)) {
			visible++
		}
	}
	fmt.Printf("entityMax=%d positions=%d visible=%d\n", group.EntityMax(), group.Positions.Len(), visible)
}
