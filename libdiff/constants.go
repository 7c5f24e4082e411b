package libdiff

const (
	DeleteTag  = "!delete"
	InsertTag  = "!insert"
	ReplaceTag = "!replace"
)
