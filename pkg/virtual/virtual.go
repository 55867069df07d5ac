// Package virtual implements the interception layer for the plans
// directory. Operations on paths under the virtualized root are served
// from an in-memory store and reported to an observer; everything else is
// forwarded to the fallback filesystem unchanged.
package virtual

import (
	"os"
	"path/filepath"
	"time"

	"plansfs/pkg/notify"
	"plansfs/pkg/passthrough"
	"plansfs/pkg/vfs"

	"golang.org/x/sys/unix"
)

type FS struct {
	classifier *classifier
	store      *store
	fallback   vfs.FileOperations
	sink       notify.Sink
}

type Config struct {
	// Root is the virtualized directory prefix. Empty means DefaultRoot().
	Root string
	// Fallback serves every non-virtual path. Nil means the platform
	// filesystem.
	Fallback vfs.FileOperations
	// Sink receives the event stream. Nil means no observer.
	Sink notify.Sink
}

func New(cfg Config) *FS {
	root := cfg.Root
	if root == "" {
		root = DefaultRoot()
	}

	fallback := cfg.Fallback
	if fallback == nil {
		fallback = passthrough.New()
	}

	sink := cfg.Sink
	if sink == nil {
		sink = notify.NopSink{}
	}

	fsys := &FS{
		classifier: newClassifier(root),
		store:      newStore(),
		fallback:   fallback,
		sink:       sink,
	}

	debugf("virtual layer installed, root=%s", fsys.classifier.root)
	sink.Send(notify.NewInit(fsys.classifier.root))

	return fsys
}

var _ vfs.FileOperations = (*FS)(nil)

// Root returns the virtualized root prefix in its normalized form.
func (fsys *FS) Root() string {
	return fsys.classifier.root
}

func (fsys *FS) WriteFile(name string, data []byte) error {
	if !fsys.classifier.isVirtual(name) {
		return fsys.fallback.WriteFile(name, data)
	}

	key := fsys.classifier.normalize(name)
	content := string(data)
	fsys.store.set(key, content)
	logIntercept("write", name, key)
	fsys.sink.Send(notify.NewWrite(key, content))
	return nil
}

func (fsys *FS) WriteFileAsync(name string, data []byte, cb func(error)) {
	if !fsys.classifier.isVirtual(name) {
		fsys.fallback.WriteFileAsync(name, data, cb)
		return
	}

	err := fsys.WriteFile(name, data)
	if cb != nil {
		go cb(err)
	}
}

func (fsys *FS) ReadFile(name string) ([]byte, error) {
	if !fsys.classifier.isVirtual(name) {
		return fsys.fallback.ReadFile(name)
	}

	content, err := fsys.readVirtual(name)
	if err != nil {
		return nil, err
	}
	return []byte(content), nil
}

func (fsys *FS) ReadFileString(name string) (string, error) {
	if !fsys.classifier.isVirtual(name) {
		return fsys.fallback.ReadFileString(name)
	}
	return fsys.readVirtual(name)
}

func (fsys *FS) ReadFileAsync(name string, cb func([]byte, error)) {
	if !fsys.classifier.isVirtual(name) {
		fsys.fallback.ReadFileAsync(name, cb)
		return
	}

	data, err := fsys.ReadFile(name)
	if cb != nil {
		go cb(data, err)
	}
}

// readVirtual serves a read from the store. A failed read emits no event.
func (fsys *FS) readVirtual(name string) (string, error) {
	key := fsys.classifier.normalize(name)
	content, ok := fsys.store.get(key)
	if !ok {
		return "", vfs.NotFound("read", key)
	}
	logIntercept("read", name, key)
	fsys.sink.Send(notify.NewRead(key, len(content)))
	return content, nil
}

// Rename finalizes the atomic write pattern: when the destination is
// virtual, the document reaches its terminal name and plan_file_write is
// emitted. It is the only operation that can move a document between the
// virtual and real worlds.
func (fsys *FS) Rename(oldname, newname string) error {
	oldVirtual := fsys.classifier.isVirtual(oldname)
	newVirtual := fsys.classifier.isVirtual(newname)

	switch {
	case oldVirtual && newVirtual:
		oldKey := fsys.classifier.normalize(oldname)
		newKey := fsys.classifier.normalize(newname)
		content := fsys.store.move(oldKey, newKey)
		logIntercept("rename", oldname, newKey)
		fsys.sink.Send(notify.NewPlanWrite(newKey, content))
		return nil

	case !oldVirtual && newVirtual:
		return fsys.migrate(oldname, newname)

	default:
		// Virtual-to-real is not finalization; it falls through to the
		// real rename along with the fully real case.
		return fsys.fallback.Rename(oldname, newname)
	}
}

// migrate pulls a real file into the store. Failure to clean up the real
// source is reported but does not discard the already-read content.
func (fsys *FS) migrate(oldname, newname string) error {
	content, err := fsys.fallback.ReadFileString(oldname)
	if err != nil {
		return err
	}

	oldKey := fsys.classifier.normalize(oldname)
	if err := fsys.fallback.Remove(oldname); err != nil {
		debugf("migrate: unlink %s failed: %v", oldname, err)
		fsys.sink.Send(notify.NewError("unlink_original", oldKey, err))
	}

	newKey := fsys.classifier.normalize(newname)
	fsys.store.set(newKey, content)
	logIntercept("rename", oldname, newKey)
	fsys.sink.Send(notify.NewPlanWrite(newKey, content))
	return nil
}

// Exists never fails: a virtual path exists iff its key is present.
func (fsys *FS) Exists(name string) bool {
	if !fsys.classifier.isVirtual(name) {
		return fsys.fallback.Exists(name)
	}
	return fsys.store.has(fsys.classifier.normalize(name))
}

func (fsys *FS) Stat(name string) (*vfs.FileInfo, error) {
	if !fsys.classifier.isVirtual(name) {
		return fsys.fallback.Stat(name)
	}

	key := fsys.classifier.normalize(name)
	content, ok := fsys.store.get(key)
	if !ok {
		return nil, vfs.NotFound("stat", key)
	}
	logIntercept("stat", name, key)
	return synthesizeStat(key, content), nil
}

func (fsys *FS) Remove(name string) error {
	if !fsys.classifier.isVirtual(name) {
		return fsys.fallback.Remove(name)
	}

	key := fsys.classifier.normalize(name)
	if !fsys.store.delete(key) {
		return vfs.NotFound("unlink", key)
	}
	logIntercept("unlink", name, key)
	fsys.sink.Send(notify.NewUnlink(key))
	return nil
}

// synthesizeStat builds the stat shape for a virtual document: always a
// regular file, sized by content, timestamps taken at query time.
func synthesizeStat(key, content string) *vfs.FileInfo {
	now := time.Now()
	size := int64(len(content))

	uid := os.Getuid()
	if uid < 0 {
		uid = 0
	}
	gid := os.Getgid()
	if gid < 0 {
		gid = 0
	}

	return &vfs.FileInfo{
		Name:    filepath.Base(key),
		Size:    size,
		Mode:    unix.S_IFREG | 0o644,
		ModTime: now,
		IsDir:   false,
		Nlink:   1,
		Uid:     uint32(uid),
		Gid:     uint32(gid),
		Blksize: 4096,
		Blocks:  (size + 511) / 512,
		Atime:   now,
		Ctime:   now,
		Btime:   now,
	}
}
