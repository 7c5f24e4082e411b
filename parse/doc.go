// Package parse provides pyvoc parsing support.
//
// # Usage
//
//	doc, err := parse.Parse([]byte("<zone=Work><category=Office><John=chef>"))
//	v, _ := doc.Lookup("Work", "Office", "John") // "chef"
//
//	// JSON or YAML renderings of a document
//	doc, err = parse.Parse(data, parse.ParseFormat(format.YAMLFormat))
//
// Parsing pyvoc text does not fail. Tokens outside an open zone or
// category are recorded under the current zone and category, which are
// empty strings until the first declaration; [ParseWarnings] reports such
// cases.
//
// # Related Packages
//
//   - github.com/signadot/pyvoc/token - Scanner
//   - github.com/signadot/pyvoc/encode - Encode a Doc to text
package parse
