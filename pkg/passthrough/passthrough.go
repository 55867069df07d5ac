package passthrough

import (
	"io/fs"
	"os"
	"syscall"

	"plansfs/pkg/vfs"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// FS delegates every operation to a platform filesystem backend. The
// backend is an afero.Fs so tests can substitute an in-memory one.
type FS struct {
	backend afero.Fs
}

func New() *FS {
	return &FS{backend: afero.NewOsFs()}
}

func NewWithBackend(backend afero.Fs) *FS {
	return &FS{backend: backend}
}

var _ vfs.FileOperations = (*FS)(nil)

func (p *FS) WriteFile(name string, data []byte) error {
	return afero.WriteFile(p.backend, name, data, 0o644)
}

func (p *FS) WriteFileAsync(name string, data []byte, cb func(error)) {
	go func() {
		cb(p.WriteFile(name, data))
	}()
}

func (p *FS) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(p.backend, name)
}

func (p *FS) ReadFileString(name string) (string, error) {
	data, err := p.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (p *FS) ReadFileAsync(name string, cb func([]byte, error)) {
	go func() {
		cb(p.ReadFile(name))
	}()
}

func (p *FS) Rename(oldname, newname string) error {
	return p.backend.Rename(oldname, newname)
}

func (p *FS) Exists(name string) bool {
	if _, isOs := p.backend.(*afero.OsFs); isOs {
		return unix.Access(name, unix.F_OK) == nil
	}
	ok, _ := afero.Exists(p.backend, name)
	return ok
}

func (p *FS) Stat(name string) (*vfs.FileInfo, error) {
	info, err := p.backend.Stat(name)
	if err != nil {
		return nil, err
	}
	return fileInfo(info), nil
}

func (p *FS) Remove(name string) error {
	return p.backend.Remove(name)
}

func fileInfo(info os.FileInfo) *vfs.FileInfo {
	fi := &vfs.FileInfo{
		Name:    info.Name(),
		Size:    info.Size(),
		Mode:    uint32(info.Mode().Perm()),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
		Nlink:   1,
		Blksize: 4096,
		Blocks:  (info.Size() + 511) / 512,
		Atime:   info.ModTime(),
		Ctime:   info.ModTime(),
		Btime:   info.ModTime(),
	}
	if info.IsDir() {
		fi.Mode |= unix.S_IFDIR
	} else if info.Mode()&fs.ModeSymlink != 0 {
		fi.Mode |= unix.S_IFLNK
	} else {
		fi.Mode |= unix.S_IFREG
	}

	// The OS backend carries the full stat underneath; prefer it over
	// the synthesized fields.
	if st, ok := info.Sys().(*syscall.Stat_t); ok && st != nil {
		fi.Mode = uint32(st.Mode)
		fi.Nlink = uint64(st.Nlink)
		fi.Uid = st.Uid
		fi.Gid = st.Gid
		fi.Ino = st.Ino
		fi.Blksize = int64(st.Blksize)
		fi.Blocks = st.Blocks
	}
	return fi
}
