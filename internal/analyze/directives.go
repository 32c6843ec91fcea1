package analyze

import (
	"strconv"
	"strings"
)

// DirectivePrefix starts a directive line in a type's doc comment, e.g.
//
//	// Pet is anything the store sells.
//	//
//	// +model:discriminator=petType
//	// +model:subtypes=Dog,Cat
//	type Pet struct { ... }
const DirectivePrefix = "+model:"

// Directive keys understood by the provider.
const (
	DirectiveName          = "name"          // schema name override
	DirectiveDiscriminator = "discriminator" // explicit discriminator
	DirectiveTypeInfo      = "typeinfo"      // type-info property, used when no discriminator is set
	DirectiveSubtypes      = "subtypes"      // comma-separated subtype names
	DirectiveXMLRoot       = "xml-root"      // XML root element name
	DirectiveXMLNamespace  = "xml-namespace" // XML root namespace
	DirectiveSet           = "set"           // named slice with set semantics
)

// Directives holds the +model: directives of one doc comment. A
// directive without "=value" maps to the empty string.
type Directives map[string]string

// Get returns the value of key.
func (d Directives) Get(key string) (string, bool) {
	v, ok := d[key]
	return v, ok
}

// Has reports whether key is present.
func (d Directives) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// List splits a comma-separated directive value.
func (d Directives) List(key string) []string {
	v, ok := d[key]
	if !ok {
		return nil
	}

	var out []string

	for part := range strings.SplitSeq(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// ParseDoc separates directive lines from the prose of a doc comment.
func ParseDoc(doc string) (string, Directives) {
	var (
		prose []string
		dirs  Directives
	)

	for line := range strings.SplitSeq(doc, "\n") {
		trimmed := strings.TrimSpace(line)

		rest, ok := strings.CutPrefix(trimmed, DirectivePrefix)
		if !ok {
			prose = append(prose, line)
			continue
		}

		if dirs == nil {
			dirs = make(Directives)
		}

		key, value, _ := strings.Cut(rest, "=")
		dirs[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return strings.TrimSpace(strings.Join(prose, "\n")), dirs
}

// fieldOptions is the parsed form of a `model:"..."` struct tag:
//
//	model:"required,readonly,position=2,wrapped,wrapper=items"
type fieldOptions struct {
	required *bool
	readOnly bool
	position *int
	wrapped  bool
	wrapper  string
}

func parseModelTag(tag string) fieldOptions {
	var opts fieldOptions

	for part := range strings.SplitSeq(tag, ",") {
		key, value, _ := strings.Cut(strings.TrimSpace(part), "=")

		switch key {
		case "required":
			v := true
			opts.required = &v
		case "optional":
			v := false
			opts.required = &v
		case "readonly":
			opts.readOnly = true
		case "position":
			// a malformed position is ignored rather than rejected
			if n, err := strconv.Atoi(value); err == nil {
				opts.position = &n
			}
		case "wrapped":
			opts.wrapped = true
		case "wrapper":
			opts.wrapped = true
			opts.wrapper = value
		}
	}

	return opts
}

// xmlTag splits an `xml:"..."` tag into wrapper and element names. The
// "a>b" form nests b inside wrapper a; flags after the comma are ignored.
func xmlTag(tag string) (wrapper, element string) {
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", ""
	}

	if outer, inner, ok := strings.Cut(name, ">"); ok {
		return outer, inner
	}

	return "", name
}

// xmlName splits the "namespace local" form used by XMLName tags.
func xmlName(tag string) (namespace, local string) {
	name, _, _ := strings.Cut(tag, ",")
	if ns, local, ok := strings.Cut(name, " "); ok {
		return ns, local
	}

	return "", name
}
