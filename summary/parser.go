package summary

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	common "nanoplot_go/utils"
)

// Column aliases accepted for each field, matched case insensitively.
var (
	lengthCols  = []string{"sequence_length_template", "lengths", "length"}
	qualCols    = []string{"mean_qscore_template", "quals", "quality"}
	channelCols = []string{"channel", "channelids", "ch"}
	timeCols    = []string{"start_time", "time"}
)

// ParseFile reads a sequencing summary file, plain or gzipped, into a
// ReadSet. The file must be tab separated with a header line. A read length
// column is required; quality, channel and start time columns are optional.
// Rows with malformed values are skipped and counted in ReadSet.Skipped.
// Start times may be given as seconds since the run start or as RFC 3339
// timestamps and are normalized so the earliest read sits at zero.
func ParseFile(path string) (*ReadSet, error) {
	f, err := common.OpenMaybeGzip(path)
	if err != nil {
		return nil, fmt.Errorf("open summary file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read summary file %s: %w", path, err)
		}
		return nil, fmt.Errorf("summary file %s is empty", path)
	}
	header := strings.Split(strings.TrimRight(scanner.Text(), "\r"), "\t")
	lengthIdx := findColumn(header, lengthCols)
	if lengthIdx < 0 {
		return nil, fmt.Errorf("summary file %s has no read length column", path)
	}
	qualIdx := findColumn(header, qualCols)
	chanIdx := findColumn(header, channelCols)
	timeIdx := findColumn(header, timeCols)

	rs := &ReadSet{Dataset: filepath.Base(path)}
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")

		length, err := fieldFloat(fields, lengthIdx)
		if err != nil || length <= 0 {
			rs.Skipped++
			continue
		}
		var qual, secs float64
		var channel int
		if qualIdx >= 0 {
			if qual, err = fieldFloat(fields, qualIdx); err != nil {
				rs.Skipped++
				continue
			}
		}
		if chanIdx >= 0 {
			if channel, err = fieldInt(fields, chanIdx); err != nil {
				rs.Skipped++
				continue
			}
		}
		if timeIdx >= 0 {
			if secs, err = fieldTime(fields, timeIdx); err != nil {
				rs.Skipped++
				continue
			}
		}

		rs.Lengths = append(rs.Lengths, length)
		if qualIdx >= 0 {
			rs.Quals = append(rs.Quals, qual)
		}
		if chanIdx >= 0 {
			rs.Channels = append(rs.Channels, channel)
		}
		if timeIdx >= 0 {
			rs.StartSecs = append(rs.StartSecs, secs)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read summary file %s: %w", path, err)
	}
	if rs.Len() == 0 {
		return nil, fmt.Errorf("summary file %s contains no usable reads", path)
	}
	rs.normalizeTimes()
	return rs, nil
}

func findColumn(header []string, aliases []string) int {
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		for _, alias := range aliases {
			if name == alias {
				return i
			}
		}
	}
	return -1
}

func fieldFloat(fields []string, idx int) (float64, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("row has no field %d", idx)
	}
	return strconv.ParseFloat(strings.TrimSpace(fields[idx]), 64)
}

func fieldInt(fields []string, idx int) (int, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("row has no field %d", idx)
	}
	return strconv.Atoi(strings.TrimSpace(fields[idx]))
}

func fieldTime(fields []string, idx int) (float64, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("row has no field %d", idx)
	}
	raw := strings.TrimSpace(fields[idx])
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		return secs, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return 0, err
	}
	return float64(ts.UnixNano()) / 1e9, nil
}

// normalizeTimes shifts start times so the earliest read sits at zero.
func (rs *ReadSet) normalizeTimes() {
	if !rs.HasTimes() {
		return
	}
	min := rs.StartSecs[0]
	for _, t := range rs.StartSecs {
		if t < min {
			min = t
		}
	}
	for i := range rs.StartSecs {
		rs.StartSecs[i] -= min
	}
}
