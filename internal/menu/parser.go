package menu

import (
	"fmt"
	"strings"
)

// Call - One parsed shell line
type Call struct {
	Name string
	Args []string
}

// ParseCall - Parses lines like:
//
//	ADD(Dune,Frank Herbert,1965)
//	ADD("Dune, Messiah",Frank Herbert,1969)
//	LIST(author,merge)
//	LIST
//
// A command without arguments may leave out the parentheses. The command name is upper cased.
// An empty line gives an empty Call and no error.
func ParseCall(line string) (call Call, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	open := strings.IndexByte(line, '(')
	if open < 0 {
		if strings.ContainsAny(line, " \t,)\"") {
			err = fmt.Errorf("expected format CMD(arg1,arg2,...)")
			return
		}
		call.Name = strings.ToUpper(line)
		return
	}

	closing := strings.LastIndexByte(line, ')')
	if open == 0 || closing < open || strings.TrimSpace(line[closing+1:]) != "" {
		err = fmt.Errorf("expected format CMD(arg1,arg2,...)")
		return
	}

	call.Name = strings.ToUpper(strings.TrimSpace(line[:open]))
	call.Args, err = SplitArgsCSVLike(line[open+1 : closing])

	return
}

// SplitArgsCSVLike - Splits by commas, supporting double quoted arguments with \" and \\ escapes.
// Example: Dune,"Herbert, Frank",1965 -> ["Dune", "Herbert, Frank", "1965"]
func SplitArgsCSVLike(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return []string{}, nil
	}

	var args []string
	var cur strings.Builder
	inQuotes := false
	escape := false

	flush := func() {
		args = append(args, strings.TrimSpace(cur.String()))
		cur.Reset()
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if escape {
			switch ch {
			case 'n':
				cur.WriteByte('\n')
			case 't':
				cur.WriteByte('\t')
			default:
				cur.WriteByte(ch)
			}
			escape = false
			continue
		}

		if ch == '\\' && inQuotes {
			escape = true
			continue
		}

		if ch == '"' {
			inQuotes = !inQuotes
			continue
		}

		if ch == ',' && !inQuotes {
			flush()
			continue
		}

		cur.WriteByte(ch)
	}

	if escape {
		return nil, fmt.Errorf("unfinished escape sequence in quotes")
	}
	if inQuotes {
		return nil, fmt.Errorf("unterminated quote (\")")
	}

	flush()

	for i := range args {
		if args[i] == "" {
			return nil, fmt.Errorf("empty argument #%d not allowed", i+1)
		}
	}

	return args, nil
}
