package qmgr

import (
	"fmt"
	"strings"

	"github.com/openpbs/go-pbs/attr"
)

// noObjCommands take no object/name-list/attr-list at all.
var noObjCommands = map[Command]bool{
	CmdQuit:    true,
	CmdExit:    true,
	CmdHelp:    true,
	CmdHistory: true,
}

// Parse turns one directive string (as produced by Source.GetRequest) into
// a Directive, implementing the grammar:
//
//	directive := command object [name-list] [attr-list]
//	attr-list := attr-op ("," attr-op)*
//	attr-op   := ident ["." ident] OP value     (* create/set *)
//	           | ident ["." ident]              (* unset *)
func Parse(line string) (*Directive, error) {
	words := fields(line)
	if len(words) == 0 {
		return nil, fmt.Errorf("empty directive")
	}

	cmd, ok := lookupCommand(strings.ToLower(words[0]))
	if !ok {
		return nil, fmt.Errorf("unknown command %q", words[0])
	}
	d := &Directive{Command: cmd}

	if noObjCommands[cmd] {
		return d, nil
	}
	if len(words) < 2 {
		if cmd == CmdActive {
			return d, nil
		}
		return nil, fmt.Errorf("%s requires an object type", cmd)
	}

	class, ok := lookupObject(strings.ToLower(words[1]))
	if !ok {
		return nil, fmt.Errorf("unknown object type %q", words[1])
	}
	d.Object = class
	d.HasObj = true

	rest := strings.TrimSpace(strings.TrimPrefix(line, words[0]))
	rest = strings.TrimSpace(strings.TrimPrefix(rest, words[1]))

	if cmd == CmdImport || cmd == CmdExport {
		return parseHookIO(d, rest)
	}

	nameText, attrText := splitNamesAndAttrs(rest)
	names, err := ParseNameList(nameText)
	if err != nil {
		return nil, fmt.Errorf("parse name-list: %w", err)
	}
	d.Names = names

	if attrText != "" {
		ops, err := parseAttrList(class, cmd, attrText)
		if err != nil {
			return nil, fmt.Errorf("parse attr-list: %w", err)
		}
		d.Ops = ops
	}
	return d, nil
}

// splitNamesAndAttrs divides the text following "command object" into the
// name-list token (no unquoted whitespace) and whatever attr-list text
// follows it.
func splitNamesAndAttrs(rest string) (names, attrs string) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", ""
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] == ' ' || rest[i] == '\t' {
			return rest[:i], strings.TrimSpace(rest[i+1:])
		}
	}
	return rest, ""
}

// parseAttrList parses a comma-separated attr-op list, switching the value
// parser into allow_white mode for any attribute whose catalog entry is an
// entity-limit type (spec §4.6).
func parseAttrList(class attr.ObjClass, cmd Command, text string) (attr.AttrOplList, error) {
	var ops attr.AttrOplList
	for _, piece := range SplitTopLevel(text, ',') {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		op, err := parseOneAttrOp(class, cmd, piece)
		if err != nil {
			return nil, err
		}
		ops = ops.Append(op)
	}
	return ops, nil
}

func parseOneAttrOp(class attr.ObjClass, cmd Command, piece string) (attr.AttrOpl, error) {
	i := 0
	for i < len(piece) && isIdentByte(piece[i]) {
		i++
	}
	if i == 0 {
		return attr.AttrOpl{}, fmt.Errorf("malformed attribute operation %q: missing attribute name", piece)
	}
	name := piece[:i]

	resource := ""
	if i < len(piece) && piece[i] == '.' {
		i++
		j := i
		for j < len(piece) && isIdentByte(piece[j]) {
			j++
		}
		resource = piece[i:j]
		i = j
	}

	rest := strings.TrimLeft(piece[i:], " \t")
	if rest == "" {
		if cmd != CmdUnset {
			return attr.AttrOpl{}, fmt.Errorf("malformed attribute operation %q: missing operator", piece)
		}
		return attr.AttrOpl{Name: name, Resource: resource, Op: attr.OpUnset}, nil
	}

	op, opLen, err := parseOp(rest)
	if err != nil {
		return attr.AttrOpl{}, fmt.Errorf("attribute %q: %w", name, err)
	}
	// Whitespace between the operator and the value (as qmgr's own `print`
	// output emits, "name = value") is not part of the value itself.
	valueText := strings.TrimLeft(rest[opLen:], " \t")

	allowWhite := false
	if entry, ok := attr.Default.Find(class, name); ok {
		allowWhite = entry.Type == attr.TypeEntityLimit
	}
	value, _, err := ParseQuoted(valueText, allowWhite)
	if err != nil {
		return attr.AttrOpl{}, fmt.Errorf("attribute %q value: %w", name, err)
	}

	return attr.AttrOpl{Name: name, Resource: resource, Value: value, Op: op}, nil
}

func parseOp(s string) (attr.Op, int, error) {
	switch {
	case strings.HasPrefix(s, "+="):
		return attr.OpIncr, 2, nil
	case strings.HasPrefix(s, "-="):
		return attr.OpDecr, 2, nil
	case strings.HasPrefix(s, "="):
		return attr.OpSet, 1, nil
	default:
		return 0, 0, fmt.Errorf("expected '=', '+=', or '-=' in %q", s)
	}
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// parseHookIO parses the import/export-specific tail:
//
//	import hook NAME <content-type> <encoding> <file|->
//	export hook NAME <content-type> <encoding> <file|->
func parseHookIO(d *Directive, rest string) (*Directive, error) {
	words := fields(rest)
	if len(words) < 4 {
		return nil, fmt.Errorf("%s requires: name content-type encoding file", d.Command)
	}
	d.Names = []Name{{Object: words[0]}}
	d.ContentType = words[1]
	d.Encoding = words[2]
	d.File = words[3]
	return d, nil
}
