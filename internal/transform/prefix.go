package transform

import "strings"

// propertyPrefixes maps properties to the vendor prefixes still required
// by browsers in the wild
var propertyPrefixes = map[string][]string{
	"user-select":          {"-webkit-", "-moz-", "-ms-"},
	"appearance":           {"-webkit-", "-moz-"},
	"backdrop-filter":      {"-webkit-"},
	"text-size-adjust":     {"-webkit-", "-ms-"},
	"hyphens":              {"-webkit-", "-ms-"},
	"tab-size":             {"-moz-"},
	"clip-path":            {"-webkit-"},
	"background-clip":      {"-webkit-"},
	"box-decoration-break": {"-webkit-"},
	"mask":                 {"-webkit-"},
	"mask-image":           {"-webkit-"},
	"mask-size":            {"-webkit-"},
	"mask-position":        {"-webkit-"},
	"mask-repeat":          {"-webkit-"},
	"mask-clip":            {"-webkit-"},
	"mask-origin":          {"-webkit-"},
}

// valuePrefixes maps property -> keyword value -> legacy spellings
var valuePrefixes = map[string]map[string][]string{
	"display": {
		"flex":        {"-webkit-box", "-webkit-flex", "-ms-flexbox"},
		"inline-flex": {"-webkit-inline-box", "-webkit-inline-flex", "-ms-inline-flexbox"},
	},
	"position": {
		"sticky": {"-webkit-sticky"},
	},
}

// Prefix returns the vendor variants of decl followed by decl itself.
// Declarations that need no prefix come back alone.
func Prefix(decl Declaration) []Declaration {
	// already vendor specific or a custom property
	if strings.HasPrefix(decl.Property, "-") {
		return []Declaration{decl}
	}

	var out []Declaration

	for _, p := range propertyPrefixes[decl.Property] {
		out = append(out, Declaration{Property: p + decl.Property, Value: decl.Value})
	}

	if byValue, ok := valuePrefixes[decl.Property]; ok {
		for _, v := range byValue[strings.ToLower(decl.Value)] {
			out = append(out, Declaration{Property: decl.Property, Value: v})
		}
	}

	return append(out, decl)
}
