package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	infoFileName    = "info"
	payloadFileName = "payload"
)

// Info is a node's metadata file. Only mtime is defined today; Info is a
// struct rather than a bare time.Time so a future field can be added without
// changing every signature that carries it, the way frm.c's struct info_t
// was a stepping stone to more fields than it ended up needing.
type Info struct {
	Mtime time.Time
}

func readInfo(dir string) (Info, error) {
	data, err := readFile("readInfo", filepath.Join(dir, infoFileName))
	if err != nil {
		return Info{}, err
	}
	var info Info
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "mtime" {
			epoch, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return Info{}, newErr("readInfo", KindCorrupt, dir, err)
			}
			info.Mtime = time.Unix(epoch, 0)
		}
	}
	return info, nil
}

func writeInfo(dir string, info Info) error {
	data := fmt.Sprintf("mtime: %d\n", info.Mtime.Unix())
	return writeFile("writeInfo", filepath.Join(dir, infoFileName), data)
}

func touchInfo(dir string, now time.Time) error {
	return writeInfo(dir, Info{Mtime: now})
}

// createNode creates a node directory under parentDir with the given name,
// writes its info file with the given mtime, and its payload with msg.
// Grounded on frm.c's node_create. If a step after the directory is
// created fails, the partially-created directory is removed on a
// best-effort basis before the original error is returned.
func createNode(parentDir, name, msg string, now time.Time) (dir string, err error) {
	dir = filepath.Join(parentDir, name)
	if err := os.Mkdir(dir, 0777); err != nil {
		if os.IsExist(err) {
			return "", newErr("createNode", KindAlreadyExists, dir, err)
		}
		return "", newErr("createNode", KindIOError, dir, err)
	}

	if err := writeInfo(dir, Info{Mtime: now}); err != nil {
		os.RemoveAll(dir)
		return "", err
	}
	if err := writeFile("createNode", filepath.Join(dir, payloadFileName), msg+"\n"); err != nil {
		os.RemoveAll(dir)
		return "", err
	}
	return dir, nil
}

func readPayload(dir string) (string, error) {
	return readFile("readPayload", filepath.Join(dir, payloadFileName))
}

func writePayload(dir, data string) error {
	return writeFile("writePayload", filepath.Join(dir, payloadFileName), data)
}
