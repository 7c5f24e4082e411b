// Package pyvoc reads and edits pyvoc documents.
//
// A pyvoc document is three levels deep: zones hold categories and
// categories hold key/value nodes.
//
//	<zone=Work>
//		<category=Office>
//			<John=chef>
//		</category>
//	</zone>
//
// A [Document] is bound to a file. Each successful mutation validates the
// change, applies it to a copy of the model, rewrites the whole file and
// only then replaces the in-memory model, so memory and disk agree after
// every call that returns nil.
//
// A Document is not safe for concurrent use.
package pyvoc
