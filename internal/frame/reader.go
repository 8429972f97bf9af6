package frame

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadFrames parses the text encoding. Any run of blank lines ends a frame;
// indices within a frame must count up from zero.
func ReadFrames(r io.Reader) ([]Frame, error) {
	var (
		frames []Frame
		cur    *Frame
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if cur != nil {
				frames = append(frames, *cur)
				cur = nil
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"<index> <value>\", got %q", lineNo, line)
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: index: %w", lineNo, err)
		}
		val, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: value: %w", lineNo, err)
		}

		if cur == nil {
			cur = &Frame{Step: len(frames)}
		}
		if idx != len(cur.Values) {
			return nil, fmt.Errorf("line %d: index %d out of order, want %d", lineNo, idx, len(cur.Values))
		}
		cur.Values = append(cur.Values, val)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		frames = append(frames, *cur)
	}
	return frames, nil
}

func ReadFile(path string) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFrames(f)
}
