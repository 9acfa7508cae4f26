// Package recipe describes substitution ciphers declaratively, as a named
// list of builder edits stored in TOML, YAML or JSON.
//
//	name = "caesar-digits"
//	description = "shift letters by three and digits by five"
//
//	[[edits]]
//	op = "rotate"
//	from = "A"
//	to = "Z"
//	offset = 3
//
//	[[edits]]
//	op = "swap"
//	left = "0"
//	right = 255
//
// Byte fields take a one-character string or an integer from 0 to 255. A
// file may also hold several recipes under a top-level "recipes" list.
//
// Every document is validated against an embedded JSON schema before it is
// decoded, so all three formats accept exactly the same recipes. Edits that
// pass the schema can still fail when built, for example a rotation whose
// "to" byte is below its "from" byte.
//
// A Loader registers the recipes of a file with the presets package and can
// watch the file to re-register them when it changes:
//
//	l := recipe.NewLoader("ciphers.toml")
//	if _, err := l.Load(); err != nil {
//	    log.Fatal(err)
//	}
//	_ = l.Watch()
//	defer l.Close()
//
//	c, _ := presets.New("caesar-digits")
package recipe
