package vfs

import (
	"time"

	"golang.org/x/sys/unix"
)

type FileInfo struct {
	Name    string
	Size    int64
	Mode    uint32
	ModTime time.Time
	IsDir   bool
	Nlink   uint64
	Uid     uint32
	Gid     uint32
	Ino     uint64
	Blksize int64
	Blocks  int64
	Atime   time.Time
	Ctime   time.Time
	Btime   time.Time
}

func (fi *FileInfo) ToStat() unix.Stat_t {
	st := unix.Stat_t{
		Dev:    0,
		Ino:    fi.Ino,
		Mode:   fi.Mode,
		Uid:    fi.Uid,
		Gid:    fi.Gid,
		Size:   fi.Size,
		Blocks: fi.Blocks,
		Atim:   unix.Timespec{Sec: fi.Atime.Unix(), Nsec: int64(fi.Atime.Nanosecond())},
		Mtim:   unix.Timespec{Sec: fi.ModTime.Unix(), Nsec: int64(fi.ModTime.Nanosecond())},
		Ctim:   unix.Timespec{Sec: fi.Ctime.Unix(), Nsec: int64(fi.Ctime.Nanosecond())},
	}
	statSetNlink(&st, fi.Nlink)
	statSetBlksize(&st, fi.Blksize)
	return st
}

func FileInfoFromStat(name string, st *unix.Stat_t) *FileInfo {
	return &FileInfo{
		Name:    name,
		Size:    st.Size,
		Mode:    st.Mode,
		ModTime: time.Unix(st.Mtim.Sec, st.Mtim.Nsec),
		IsDir:   st.Mode&unix.S_IFDIR != 0,
		Nlink:   uint64(st.Nlink),
		Uid:     st.Uid,
		Gid:     st.Gid,
		Ino:     st.Ino,
		Blksize: int64(st.Blksize),
		Blocks:  st.Blocks,
		Atime:   time.Unix(st.Atim.Sec, st.Atim.Nsec),
		Ctime:   time.Unix(st.Ctim.Sec, st.Ctim.Nsec),
	}
}
