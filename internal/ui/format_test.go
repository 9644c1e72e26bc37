package ui

import (
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestElapsedTime(t *testing.T) {
	cases := map[int64]string{
		0:      "00:00:00",
		59:     "00:00:59",
		61:     "00:01:01",
		3600:   "01:00:00",
		86399:  "23:59:59",
		360000: "100:00:00",
		-5:     "00:00:00",
	}
	for in, want := range cases {
		assert.Equal(t, want, ElapsedTime(in), "ElapsedTime(%d)", in)
	}
}

func TestFormatMemory(t *testing.T) {
	assert.Equal(t, "22 MiB", FormatMemory("22240"))
	assert.Equal(t, "164 MiB", FormatMemory("168000"))
	assert.Equal(t, "0 B", FormatMemory("0"))
	assert.Equal(t, "", FormatMemory(""))
	assert.Equal(t, "n/a", FormatMemory("n/a"))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "15.0%", Percent(0.15))
	assert.Equal(t, "0.0%", Percent(0))
	assert.Equal(t, "100.0%", Percent(1))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "/usr/bin/...", truncateString("/usr/bin/python3", 12))
	assert.Equal(t, "abc", truncateString("abcdef", 3))

	assert.Equal(t, "日本...", truncateString("日本語のコマンド", 8))
	for _, s := range []string{"/opt/café/bin/serveur --mode=rapide", "python3 -c 'print(\"日本語\")'"} {
		for n := 1; n < 20; n++ {
			got := truncateString(s, n)
			assert.True(t, utf8.ValidString(got), "truncateString(%q, %d) = %q", s, n, got)
			assert.LessOrEqual(t, runewidth.StringWidth(got), n)
		}
	}
}
