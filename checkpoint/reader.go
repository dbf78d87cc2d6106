package checkpoint

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/routechoice/choice"
)

// ReadPartitions reads every row back from root's Hive-style partition
// tree. With no origins given, every origin_id=* partition is read; with
// one or more origins, only those partitions are read. Row order within
// the returned slice is unspecified (spec.md §8: "row-order may differ;
// row-set is identical" after a write/read round trip). choice.Row's
// Assigned field is not part of the persisted schema and always comes
// back false. Every partition file carries all seven columns; when
// PathSizeLogit was off, cost, mask, path_overlap and probability are
// written as zero values rather than omitted.
func ReadPartitions(root string, origins ...int64) ([]choice.Row, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: reading root %q: %w", root, err)
	}

	wanted := make(map[int64]bool, len(origins))
	for _, o := range origins {
		wanted[o] = true
	}

	var rows []choice.Row
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		origin, ok := parsePartitionDirName(entry.Name())
		if !ok {
			continue
		}
		if len(wanted) > 0 && !wanted[origin] {
			continue
		}

		partitionDir := filepath.Join(root, entry.Name())
		parts, err := os.ReadDir(partitionDir)
		if err != nil {
			return nil, fmt.Errorf("checkpoint: reading partition %q: %w", partitionDir, err)
		}
		for _, part := range parts {
			if part.IsDir() || !strings.HasSuffix(part.Name(), ".jsonl") {
				continue
			}
			partRows, err := readPartFile(filepath.Join(partitionDir, part.Name()))
			if err != nil {
				return nil, err
			}
			rows = append(rows, partRows...)
		}
	}
	return rows, nil
}

func parsePartitionDirName(name string) (int64, bool) {
	const prefix = "origin_id="
	if !strings.HasPrefix(name, prefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(name, prefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func readPartFile(path string) ([]choice.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: opening %q: %w", path, err)
	}
	defer f.Close()

	var rows []choice.Row
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var r choice.Row
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			return nil, fmt.Errorf("checkpoint: decoding %q: %w", path, err)
		}
		rows = append(rows, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("checkpoint: scanning %q: %w", path, err)
	}
	return rows, nil
}
