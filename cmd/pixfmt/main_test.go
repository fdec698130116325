package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixfmt"
)

func TestRunSize(t *testing.T) {
	testCases := []struct {
		args []string
		want string
	}{
		{
			args: []string{"size", "Float32Vec4", "4", "4"},
			want: "Float32Vec4 4x4x1: 4x4 blocks of 16 bytes (1x1 px), 256 bytes",
		},
		{
			args: []string{"size", "bc7unorm8vec4", "5", "5"},
			want: "BC7UNorm8Vec4 5x5x1: 2x2 blocks of 16 bytes (4x4 px), 64 bytes",
		},
		{
			args: []string{"size", "UNorm8Vec3", "10", "2", "3"},
			want: "UNorm8Vec3 10x2x3: 10x2 blocks of 3 bytes (1x1 px), 180 bytes",
		},
	}
	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.NoError(t, run(tc.args, &stdout, &stderr))
			require.Equal(t, tc.want, strings.TrimSpace(stdout.String()))
		})
	}
}

func TestRunSizeUnknownFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"size", "RGB565", "4", "4"}, &stdout, &stderr)
	require.ErrorIs(t, err, pixfmt.ErrUnsupportedFormat)
	require.Empty(t, stdout.String())
	require.Equal(t, 1, strings.Count(err.Error(), "pixfmt:"), err.Error())
}

func TestRunSizeNumericFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"size", "15", "4", "4"}, &stdout, &stderr))
	require.True(t, strings.HasPrefix(stdout.String(), "Float32Vec4 4x4x1:"), stdout.String())
}

func TestRunVerboseReportsSentinel(t *testing.T) {
	orig := pixfmt.Logger()
	t.Cleanup(func() { pixfmt.SetLogger(orig) })

	var stdout, stderr bytes.Buffer
	count := strconv.Itoa(int(pixfmt.FormatCount))
	require.NoError(t, run([]string{"--verbose", "size", count, "4", "4"}, &stdout, &stderr))
	require.Equal(t, "Count 4x4x1: 4x4 blocks of 0 bytes (1x1 px), 0 bytes", strings.TrimSpace(stdout.String()))
	require.Contains(t, stderr.String(), "level=WARN")
	require.Contains(t, stderr.String(), "format=Count")
}

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"list"}, &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 1+int(pixfmt.FormatCount))
	require.True(t, strings.HasPrefix(lines[0], "FORMAT"))
	for _, f := range pixfmt.Formats() {
		require.Contains(t, stdout.String(), f.String())
	}
}

func TestRunListCompressed(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"list", "--compressed"}, &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, stdout.String(), "16B 4x4")
	require.NotContains(t, stdout.String(), "Float32Vec4")
}
