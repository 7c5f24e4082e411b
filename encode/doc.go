// Package encode encodes documents to pyvoc text.
//
// # Usage
//
//	doc := ir.New()
//	doc.Set("Work", "Office", "John", "chef")
//	err := encode.Encode(doc, os.Stdout)
//
// produces
//
//	<zone=Work>
//		<category=Office>
//			<John=chef>
//		</category>
//	</zone>
//
// with a blank line after each zone. The output parses back to an equal
// document. [EncodeFormat] selects the JSON or YAML renderings instead.
//
// # Related Packages
//
//   - github.com/signadot/pyvoc/ir - Document model
//   - github.com/signadot/pyvoc/parse - Parse text to a Doc
package encode
