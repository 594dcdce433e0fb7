package toparena

import "golang.org/x/sys/unix"

const mmapFlags = unix.MAP_ANON | unix.MAP_PRIVATE | unix.MAP_NORESERVE
