package gfxtest

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// maxVersion is the highest GLSL version a 3.3 core context accepts.
const maxVersion = 330

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	uniformDecl  = regexp.MustCompile(`(?m)^\s*uniform\s+(\w+)\s+(\w+)\s*;`)
	ioDecl       = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?(?:(?:flat|smooth|noperspective)\s+)?(in|out)\s+(\w+)\s+(\w+)\s*;`)
	mainFunc     = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(?:void\s*)?\)`)
)

// stripComments removes comments while keeping line numbers stable.
func stripComments(src string) string {
	src = blockComment.ReplaceAllStringFunc(src, func(c string) string {
		return strings.Repeat("\n", strings.Count(c, "\n"))
	})
	return lineComment.ReplaceAllString(src, "")
}

// checkSource does the small amount of GLSL validation the fake driver
// performs at compile time. It returns one message per problem found.
func checkSource(src string) []string {
	code := stripComments(src)
	lines := strings.Split(code, "\n")

	var errs []string
	first := true
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if first {
			first = false
			if msg := checkVersion(trimmed); msg != "" {
				errs = append(errs, fmt.Sprintf("0:%d(1): error: %s", i+1, msg))
			}
		}
		if strings.HasPrefix(trimmed, "#error") {
			errs = append(errs, fmt.Sprintf("0:%d(1): error: %s", i+1, strings.TrimSpace(strings.TrimPrefix(trimmed, "#error"))))
		}
	}
	if first {
		return []string{"0:1(1): error: syntax error, unexpected end of file"}
	}

	type open struct {
		r    rune
		line int
	}
	var stack []open
	line := 1
	for _, r := range code {
		switch r {
		case '\n':
			line++
		case '{', '(':
			stack = append(stack, open{r, line})
		case '}', ')':
			want := '{'
			if r == ')' {
				want = '('
			}
			if len(stack) == 0 || stack[len(stack)-1].r != want {
				errs = append(errs, fmt.Sprintf("0:%d(1): error: syntax error, unexpected '%c'", line, r))
				return errs
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		errs = append(errs, fmt.Sprintf("0:%d(1): error: syntax error, unexpected end of file", line))
	}
	return errs
}

func checkVersion(directive string) string {
	fields := strings.Fields(directive)
	if len(fields) == 0 || fields[0] != "#version" {
		return "#version must be the first directive"
	}
	if len(fields) < 2 {
		return "syntax error, missing version number"
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Sprintf("invalid version %q", fields[1])
	}
	if v > maxVersion {
		return fmt.Sprintf("GLSL %d.%02d is not supported", v/100, v%100)
	}
	if len(fields) > 2 && fields[2] != "core" {
		return fmt.Sprintf("unsupported profile %q in a core context", fields[2])
	}
	return ""
}

func hasMain(src string) bool {
	return mainFunc.MatchString(stripComments(src))
}

// uniforms returns name -> GLSL type for every uniform declared in src.
func uniforms(src string) map[string]string {
	out := make(map[string]string)
	for _, m := range uniformDecl.FindAllStringSubmatch(stripComments(src), -1) {
		out[m[2]] = m[1]
	}
	return out
}

// interfaceVars returns name -> GLSL type for the in or out variables of src.
func interfaceVars(src, qualifier string) map[string]string {
	out := make(map[string]string)
	for _, m := range ioDecl.FindAllStringSubmatch(stripComments(src), -1) {
		if m[1] == qualifier {
			out[m[3]] = m[2]
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// zeroValue is the value a freshly linked uniform holds.
func zeroValue(typ string) any {
	switch {
	case typ == "float":
		return float32(0)
	case typ == "int" || typ == "bool" || strings.HasPrefix(typ, "sampler"):
		return int32(0)
	}
	return nil
}
