// Package format names the textual renderings of a pyvoc document.
//
// [PyvocFormat] is the bracketed source syntax. [JSONFormat] and
// [YAMLFormat] render the same three levels as nested objects, which is
// convenient for tools that do not speak pyvoc.
//
// # Related Packages
//
//   - github.com/signadot/pyvoc/parse - Parse text to a Doc
//   - github.com/signadot/pyvoc/encode - Encode a Doc to text
package format
