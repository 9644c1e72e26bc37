package collector

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	testOSRelease = `NAME="Ubuntu"
VERSION_ID="22.04"
PRETTY_NAME="Ubuntu 22.04.3 LTS"
ID=ubuntu
`
	testVersion = "Linux version 6.1.0-13-amd64 (debian-kernel@lists.debian.org) (gcc-12 (Debian 12.2.0-14) 12.2.0) #1 SMP PREEMPT_DYNAMIC\n"
	testMeminfo = `MemTotal:           2000 kB
MemFree:             500 kB
MemAvailable:       1200 kB
`
	testUptime = "100.93 350.12\n"
	testStat   = `cpu  100 0 50 850 0 0 0 0 0 0
cpu0 60 0 20 420 0 0 0 0 0 0
cpu1 40 0 30 430 0 0 0 0 0 0
intr 1234 0 0
ctxt 998877
btime 1700000000
processes 86031
procs_running 3
procs_blocked 0
`
	testPasswd = `root:x:0:0:root:/root:/bin/bash
daemon:x:1:1:daemon:/usr/sbin:/usr/sbin/nologin
alice:x:1000:1000:Alice,,,:/home/alice:/bin/bash
`
)

// statLine builds a stat record with the given command name and CPU fields.
func statLine(pid, comm, utime, stime, cutime, cstime, start string) string {
	return pid + " (" + comm + ") S 1 " + pid + " " + pid + " 0 -1 4194560 100 0 0 0 " +
		utime + " " + stime + " " + cutime + " " + cstime + " 20 0 1 0 " + start + " 12345678 300\n"
}

func statusRecord(name, vmSize, uid string) string {
	out := "Name:\t" + name + "\nState:\tS (sleeping)\n"
	if vmSize != "" {
		out += "VmSize:\t   " + vmSize + " kB\n"
	}
	return out + "Uid:\t" + uid + "\t" + uid + "\t" + uid + "\t" + uid + "\nGid:\t0\t0\t0\t0\n"
}

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
}

// newTestFS lays out a small host: init (pid 1, root), a busy worker with a
// space in its name (pid 42, alice) and a kernel thread (pid 2).
func newTestFS(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"/etc/os-release": testOSRelease,
		"/etc/passwd":     testPasswd,
		"/proc/version":   testVersion,
		"/proc/meminfo":   testMeminfo,
		"/proc/uptime":    testUptime,
		"/proc/stat":      testStat,

		"/proc/1/stat":    statLine("1", "systemd", "100", "50", "30", "20", "100"),
		"/proc/1/status":  statusRecord("systemd", "168000", "0"),
		"/proc/1/cmdline": "/sbin/init\x00splash\x00",

		"/proc/42/stat":    statLine("42", "Web Content", "300", "100", "50", "50", "5000"),
		"/proc/42/status":  statusRecord("Web Content", "22240", "1000"),
		"/proc/42/cmdline": "/usr/lib/firefox/firefox\x00-contentproc\x00",

		"/proc/2/stat":    statLine("2", "kthreadd", "0", "0", "0", "0", "0"),
		"/proc/2/status":  statusRecord("kthreadd", "", "0"),
		"/proc/2/cmdline": "",
	})
	require.NoError(t, fs.MkdirAll("/proc/self", 0o755))
	require.NoError(t, fs.MkdirAll("/proc/sys", 0o755))
	return fs
}
