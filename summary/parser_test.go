package summary

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSummary(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFileGuppyColumns(t *testing.T) {
	content := "read_id\tchannel\tstart_time\tsequence_length_template\tmean_qscore_template\n" +
		"r1\t33\t120.5\t5000\t10.2\n" +
		"r2\t8\t60.5\t1500\t8.9\n" +
		"r3\t512\t180.5\t250\t12.1\n"
	rs, err := ParseFile(writeSummary(t, "sequencing_summary.txt", content))
	require.NoError(t, err)

	assert.Equal(t, 3, rs.Len())
	assert.Equal(t, 0, rs.Skipped)
	assert.Equal(t, "sequencing_summary.txt", rs.Dataset)
	assert.Equal(t, []float64{5000, 1500, 250}, rs.Lengths)
	assert.Equal(t, []float64{10.2, 8.9, 12.1}, rs.Quals)
	assert.Equal(t, []int{33, 8, 512}, rs.Channels)
	// Times are shifted so the earliest read starts at zero.
	assert.Equal(t, []float64{60, 0, 120}, rs.StartSecs)
}

func TestParseFileAliasedColumns(t *testing.T) {
	content := "lengths\tquals\tchannelIDs\ttime\n" +
		"1000\t9.5\t42\t0\n" +
		"2000\t11.5\t99\t30\n"
	rs, err := ParseFile(writeSummary(t, "summary.tsv", content))
	require.NoError(t, err)

	assert.Equal(t, []float64{1000, 2000}, rs.Lengths)
	assert.Equal(t, []float64{9.5, 11.5}, rs.Quals)
	assert.Equal(t, []int{42, 99}, rs.Channels)
	assert.Equal(t, []float64{0, 30}, rs.StartSecs)
}

func TestParseFileLengthOnly(t *testing.T) {
	content := "length\n100\n200\n"
	rs, err := ParseFile(writeSummary(t, "lengths.tsv", content))
	require.NoError(t, err)

	assert.Equal(t, 2, rs.Len())
	assert.False(t, rs.HasQuals())
	assert.False(t, rs.HasChannels())
	assert.False(t, rs.HasTimes())
}

func TestParseFileSkipsMalformedRows(t *testing.T) {
	content := "length\tquality\n" +
		"1000\t9.5\n" +
		"oops\t9.5\n" + // unparseable length
		"1000\n" + // quality field missing
		"0\t9.5\n" + // non positive length
		"2000\t10.5\n"
	rs, err := ParseFile(writeSummary(t, "summary.tsv", content))
	require.NoError(t, err)

	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, 3, rs.Skipped)
	assert.Equal(t, []float64{1000, 2000}, rs.Lengths)
}

func TestParseFileTimestamps(t *testing.T) {
	content := "length\tstart_time\n" +
		"1000\t2025-11-03T10:00:30Z\n" +
		"2000\t2025-11-03T10:00:00Z\n"
	rs, err := ParseFile(writeSummary(t, "summary.tsv", content))
	require.NoError(t, err)

	assert.Equal(t, []float64{30, 0}, rs.StartSecs)
}

func TestParseFileGzipped(t *testing.T) {
	content := "length\tquality\n1000\t9.5\n2000\t10.5\n"
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	path := filepath.Join(t.TempDir(), "summary.tsv.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	rs, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1000, 2000}, rs.Lengths)
	assert.Equal(t, []float64{9.5, 10.5}, rs.Quals)
}

func TestParseFileMissingLengthColumn(t *testing.T) {
	content := "read_id\tquality\nr1\t9.5\n"
	_, err := ParseFile(writeSummary(t, "summary.tsv", content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read length column")
}

func TestParseFileNoUsableReads(t *testing.T) {
	_, err := ParseFile(writeSummary(t, "summary.tsv", "length\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable reads")
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.tsv"))
	require.Error(t, err)
}
