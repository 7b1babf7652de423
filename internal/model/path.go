package model

// Path represents a report file reference: a file system path or a URL
// understood by the storage layer.
type Path string
