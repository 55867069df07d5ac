package vfs

// FileOperations is the filesystem surface the interception layer covers.
// Callers written against the real filesystem use it unchanged; whether a
// path is served from memory or from disk is an implementation detail of
// the concrete implementation.
type FileOperations interface {
	WriteFile(name string, data []byte) error
	WriteFileAsync(name string, data []byte, cb func(error))

	ReadFile(name string) ([]byte, error)
	ReadFileString(name string) (string, error)
	ReadFileAsync(name string, cb func([]byte, error))

	Rename(oldname, newname string) error

	Exists(name string) bool
	Stat(name string) (*FileInfo, error)
	Remove(name string) error
}
