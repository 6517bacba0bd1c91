package constants

const Namespace = "databind"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// Struct tags understood by the default model builder.
const (
	TagDefault     = "default"
	TagDefaultElem = "defaultElem"
	TagDive        = "dive"
	TagAlloc       = "alloc"
	TagSkip        = "-"
)

// FieldPathSeparator separates segments of a nested field path, e.g. "Address.Line1".
const FieldPathSeparator = "."
