package video

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/subscout/subscout/internal/match"
)

// hashChunkSize is the block read from each end of the file when computing
// the opensubtitles content hash.
const hashChunkSize = 64 * 1024

// ScanFile builds a Video from a local file: the release name is parsed for
// attributes and the opensubtitles content hash is computed. Files shorter
// than two hash chunks cannot be hashed and get no hash entry.
func ScanFile(path string) (*Video, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat video file: %w", err)
	}

	name := filepath.Base(path)
	rel := match.ParseRelease(name)

	v := &Video{
		Title:        rel.Title,
		Year:         rel.Year,
		ReleaseGroup: rel.ReleaseGroup,
		Resolution:   rel.Resolution,
		Format:       rel.Format,
		VideoCodec:   rel.VideoCodec,
		AudioCodec:   rel.AudioCodec,
		Size:         info.Size(),
		Name:         name,
		Hashes:       make(map[string]string),
	}
	if rel.Season > 0 && rel.Episode > 0 {
		v.Kind = KindEpisode
		v.Series = rel.Title
		v.Season = rel.Season
		v.Episode = rel.Episode
		v.Title = ""
	} else {
		v.Kind = KindMovie
	}

	if info.Size() >= 2*hashChunkSize {
		h, err := OpenSubtitlesHash(path)
		if err != nil {
			return nil, err
		}
		v.Hashes["opensubtitles"] = h
	}

	return v, nil
}

// OpenSubtitlesHash computes the opensubtitles content hash: the file size
// plus the little-endian uint64 sums of the first and last 64 KiB, as a
// 16-digit hex string.
func OpenSubtitlesHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open video file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat video file: %w", err)
	}
	size := info.Size()
	if size < 2*hashChunkSize {
		return "", fmt.Errorf("file too small for content hash: %d bytes", size)
	}

	hash := uint64(size)

	sum, err := sumChunk(f, 0)
	if err != nil {
		return "", err
	}
	hash += sum

	sum, err = sumChunk(f, size-hashChunkSize)
	if err != nil {
		return "", err
	}
	hash += sum

	return fmt.Sprintf("%016x", hash), nil
}

// sumChunk sums one 64 KiB block at offset as little-endian uint64 values,
// with wrapping overflow.
func sumChunk(f *os.File, offset int64) (uint64, error) {
	buf := make([]byte, hashChunkSize)
	if _, err := f.ReadAt(buf, offset); err != nil && err != io.EOF {
		return 0, fmt.Errorf("failed to read hash chunk: %w", err)
	}
	var sum uint64
	for i := 0; i < hashChunkSize; i += 8 {
		sum += binary.LittleEndian.Uint64(buf[i : i+8])
	}
	return sum, nil
}

// IsVideoFile reports whether the path has a known video extension.
func IsVideoFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mkv", ".mp4", ".avi", ".wmv", ".mov", ".m4v", ".webm", ".ts", ".m2ts", ".flv", ".divx":
		return true
	}
	return false
}
