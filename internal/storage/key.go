package storage

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// BuildKey derives the object key for an uploaded scan: namespaced by the
// owning doctor, made unique by the upload timestamp, preserving the
// original file extension. Example: "a1b2.../1735689600123.png".
func BuildKey(doctorID, filename string, now time.Time) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%d.%s", doctorID, now.UnixMilli(), ext)
}
