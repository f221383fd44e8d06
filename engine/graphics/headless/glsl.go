package headless

import (
	"fmt"

	"github.com/Carmen-Shannon/wirecube/engine/graphics"
)

// token is one lexical unit of GLSL source with the line it starts on.
type token struct {
	text string
	line int
}

// declarations are the interface names and entry point found in one shader stage.
type declarations struct {
	attributes []string
	uniforms   []string
	hasMain    bool
}

var (
	storageQualifiers   = map[string]bool{"attribute": true, "uniform": true, "varying": true, "const": true, "invariant": true}
	precisionQualifiers = map[string]bool{"lowp": true, "mediump": true, "highp": true}
	builtinTypes        = map[string]bool{
		"void": true, "bool": true, "int": true, "float": true,
		"vec2": true, "vec3": true, "vec4": true,
		"bvec2": true, "bvec3": true, "bvec4": true,
		"ivec2": true, "ivec3": true, "ivec4": true,
		"mat2": true, "mat3": true, "mat4": true,
		"sampler2D": true, "samplerCube": true,
	}
	closers = map[string]string{")": "(", "]": "[", "}": "{"}
)

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentifier(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func compileErr(line int, format string, args ...any) error {
	return fmt.Errorf("ERROR: 0:%d: %s", line, fmt.Sprintf(format, args...))
}

// tokenize splits GLSL source into tokens, dropping comments and preprocessor lines.
func tokenize(src string) ([]token, error) {
	var toks []token
	line := 1
	lineStart := true

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n':
			line++
			lineStart = true
			i++
			continue
		case c == ' ' || c == '\t' || c == '\r':
			i++
			continue
		case c == '#' && lineStart:
			for i < len(src) && src[i] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			start := line
			i += 2
			for {
				if i+1 >= len(src) {
					return nil, compileErr(start, "unterminated comment")
				}
				if src[i] == '*' && src[i+1] == '/' {
					i += 2
					break
				}
				if src[i] == '\n' {
					line++
				}
				i++
			}
			continue
		}

		lineStart = false
		switch {
		case isLetter(c):
			j := i + 1
			for j < len(src) && (isLetter(src[j]) || isDigit(src[j])) {
				j++
			}
			toks = append(toks, token{text: src[i:j], line: line})
			i = j
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			j := i + 1
			for j < len(src) && (isLetter(src[j]) || isDigit(src[j]) || src[j] == '.') {
				j++
			}
			toks = append(toks, token{text: src[i:j], line: line})
			i = j
		default:
			switch c {
			case '{', '}', '(', ')', '[', ']', ';', ',', '.', '+', '-', '*', '/', '=', '<', '>', '!', '&', '|', '^', '%', '?', ':', '~':
				toks = append(toks, token{text: string(c), line: line})
				i++
			default:
				return nil, compileErr(line, "'%c' : unexpected character", c)
			}
		}
	}
	return toks, nil
}

// parser holds the state of one top-level pass over a shader.
type parser struct {
	stage graphics.ShaderStage
	d     declarations

	// structs maps each declared struct type to its member names
	structs map[string][]string
}

func (p *parser) isType(s string) bool {
	if builtinTypes[s] {
		return true
	}
	_, ok := p.structs[s]
	return ok
}

// parse checks the top-level structure of a shader and collects its declarations.
// Function bodies are only checked for balanced brackets.
func parse(stage graphics.ShaderStage, toks []token) (declarations, error) {
	p := &parser{stage: stage, structs: make(map[string][]string)}
	lastLine := 1
	if len(toks) > 0 {
		lastLine = toks[len(toks)-1].line
	}

	for i := 0; i < len(toks); {
		first := toks[i]
		if !storageQualifiers[first.text] && !precisionQualifiers[first.text] && !p.isType(first.text) && first.text != "precision" && first.text != "struct" {
			return p.d, compileErr(first.line, "'%s' : syntax error", first.text)
		}

		// a struct body is part of a declaration, not a function body
		isStruct := false
		for j := i; j < len(toks); j++ {
			if storageQualifiers[toks[j].text] || precisionQualifiers[toks[j].text] {
				continue
			}
			isStruct = toks[j].text == "struct"
			break
		}

		var stack []string
		var head []token
		isFunction := false
		end := -1
	scan:
		for j := i; j < len(toks); j++ {
			tok := toks[j]
			switch tok.text {
			case "(", "[", "{":
				if tok.text == "{" && len(stack) == 0 && !isStruct {
					isFunction = true
				}
				stack = append(stack, tok.text)
			case ")", "]", "}":
				if len(stack) == 0 || stack[len(stack)-1] != closers[tok.text] {
					return p.d, compileErr(tok.line, "'%s' : syntax error", tok.text)
				}
				stack = stack[:len(stack)-1]
				if tok.text == "}" && len(stack) == 0 && isFunction {
					end = j
					break scan
				}
			case ";":
				if len(stack) == 0 {
					end = j
					break scan
				}
			}
			if !isFunction {
				head = append(head, tok)
			}
		}
		if end < 0 {
			return p.d, compileErr(lastLine, "'' : syntax error, unexpected end of file")
		}

		var err error
		switch {
		case isFunction:
			err = p.parseFunction(head)
		case len(head) == 0:
			err = compileErr(first.line, "';' : syntax error")
		default:
			err = p.parseDeclaration(head)
		}
		if err != nil {
			return p.d, err
		}
		i = end + 1
	}

	if !p.d.hasMain {
		return p.d, compileErr(lastLine, "'main' : function not defined")
	}
	return p.d, nil
}

// splitDeclarators splits tokens on commas outside brackets.
func splitDeclarators(toks []token) [][]token {
	var out [][]token
	depth, from := 0, 0
	for j, tok := range toks {
		switch tok.text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		case ",":
			if depth == 0 {
				out = append(out, toks[from:j])
				from = j + 1
			}
		}
	}
	return append(out, toks[from:])
}

// parseDeclaration handles a top-level statement terminated by ';'.
func (p *parser) parseDeclaration(head []token) error {
	if head[0].text == "precision" {
		if len(head) != 3 || !precisionQualifiers[head[1].text] || !builtinTypes[head[2].text] {
			return compileErr(head[0].line, "'precision' : syntax error")
		}
		return nil
	}

	k := 0
	storage := ""
	for k < len(head) && storageQualifiers[head[k].text] {
		storage = head[k].text
		k++
	}
	for k < len(head) && precisionQualifiers[head[k].text] {
		k++
	}
	if k >= len(head) {
		return compileErr(head[len(head)-1].line, "'%s' : syntax error", head[len(head)-1].text)
	}

	typeName := head[k].text
	rest := head[k+1:]
	if typeName == "struct" {
		var err error
		if typeName, rest, err = p.parseStruct(head[k:]); err != nil {
			return err
		}
		if len(rest) == 0 {
			return nil
		}
	} else if !p.isType(typeName) {
		return compileErr(head[k].line, "'%s' : syntax error", typeName)
	}
	if len(rest) == 0 || !isIdentifier(rest[0].text) {
		return compileErr(head[k].line, "'%s' : syntax error", head[k].text)
	}

	if len(rest) > 1 && rest[1].text == "(" {
		// function prototype
		return nil
	}

	for _, decl := range splitDeclarators(rest) {
		if len(decl) == 0 || !isIdentifier(decl[0].text) {
			return compileErr(head[k].line, "',' : syntax error")
		}
		if len(decl) > 1 && decl[1].text != "[" && decl[1].text != "=" {
			return compileErr(decl[1].line, "'%s' : syntax error", decl[1].text)
		}
		if err := p.declare(storage, typeName, decl[0]); err != nil {
			return err
		}
	}
	return nil
}

// declare records one declarator of a global variable.
func (p *parser) declare(storage, typeName string, name token) error {
	switch storage {
	case "attribute":
		if p.stage != graphics.ShaderStageVertex {
			return compileErr(name.line, "'attribute' : supported in vertex shaders only")
		}
		if _, ok := p.structs[typeName]; ok {
			return compileErr(name.line, "'attribute' : cannot be a structure")
		}
		p.d.attributes = append(p.d.attributes, name.text)
	case "uniform":
		p.d.uniforms = append(p.d.uniforms, p.uniformNames(typeName, name.text)...)
	}
	return nil
}

// uniformNames expands a uniform of struct type into its member locations.
func (p *parser) uniformNames(typeName, name string) []string {
	members, ok := p.structs[typeName]
	if !ok {
		return []string{name}
	}
	var names []string
	for _, m := range members {
		names = append(names, name+"."+m)
	}
	return names
}

// parseStruct handles "struct Name { members } declarators" and registers Name.
// It returns the struct type name and the tokens after the closing brace.
func (p *parser) parseStruct(toks []token) (string, []token, error) {
	line := toks[0].line
	k := 1
	name := ""
	if k < len(toks) && isIdentifier(toks[k].text) {
		name = toks[k].text
		k++
	}
	if k >= len(toks) || toks[k].text != "{" {
		return "", nil, compileErr(line, "'struct' : syntax error")
	}
	if p.isType(name) {
		return "", nil, compileErr(line, "'%s' : redefinition", name)
	}

	depth, closeAt := 0, -1
	for j := k; j < len(toks); j++ {
		switch toks[j].text {
		case "{":
			depth++
		case "}":
			depth--
		}
		if depth == 0 {
			closeAt = j
			break
		}
	}
	if closeAt < 0 {
		return "", nil, compileErr(line, "'struct' : syntax error")
	}

	var members []string
	body := toks[k+1 : closeAt]
	for len(body) > 0 {
		semi := -1
		for j, tok := range body {
			if tok.text == ";" {
				semi = j
				break
			}
		}
		if semi < 0 {
			return "", nil, compileErr(body[0].line, "'%s' : syntax error", body[0].text)
		}
		field := body[:semi]
		body = body[semi+1:]

		m := 0
		for m < len(field) && precisionQualifiers[field[m].text] {
			m++
		}
		if m >= len(field)-1 || !p.isType(field[m].text) {
			return "", nil, compileErr(line, "'struct' : invalid member")
		}
		for _, decl := range splitDeclarators(field[m+1:]) {
			if len(decl) == 0 || !isIdentifier(decl[0].text) || (len(decl) > 1 && decl[1].text != "[") {
				return "", nil, compileErr(line, "'struct' : invalid member")
			}
			members = append(members, p.uniformNames(field[m].text, decl[0].text)...)
		}
	}
	if len(members) == 0 {
		return "", nil, compileErr(line, "'struct' : empty structure")
	}

	if name == "" {
		name = fmt.Sprintf("struct@%d", line)
	}
	p.structs[name] = members
	return name, toks[closeAt+1:], nil
}

// parseFunction handles a function definition; head holds the tokens before the body.
func (p *parser) parseFunction(head []token) error {
	if len(head) < 4 || !p.isType(head[0].text) || !isIdentifier(head[1].text) || head[2].text != "(" || head[len(head)-1].text != ")" {
		return compileErr(head[0].line, "'%s' : syntax error", head[0].text)
	}
	if head[1].text == "main" {
		params := head[3 : len(head)-1]
		if head[0].text != "void" || !(len(params) == 0 || (len(params) == 1 && params[0].text == "void")) {
			return compileErr(head[1].line, "'main' : function must take no parameters and return void")
		}
		p.d.hasMain = true
	}
	return nil
}

// validate runs the full compile check for a stage.
func validate(stage graphics.ShaderStage, source string) (declarations, error) {
	toks, err := tokenize(source)
	if err != nil {
		return declarations{}, err
	}
	return parse(stage, toks)
}
