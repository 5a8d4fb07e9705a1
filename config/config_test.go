package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestNewFromReaderBuiltins(t *testing.T) {
	cfg, err := NewFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("NewFromReader failed: %v", err)
	}

	if val, ok := cfg.Get("MINUTE"); !ok || val != "60" {
		t.Errorf("MINUTE = %q, want 60", val)
	}

	if val, ok := cfg.Get("HOUR"); !ok || val != "3600" {
		t.Errorf("HOUR = %q, want 3600", val)
	}
}

func TestSimpleAssignment(t *testing.T) {
	input := `
# This is a comment
PBS_SERVER = headnode
PBS_START_SCHED = true
`

	cfg, err := NewFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if val, ok := cfg.Get("PBS_SERVER"); !ok || val != "headnode" {
		t.Errorf("PBS_SERVER = %q, want headnode", val)
	}

	if val, ok := cfg.Get("PBS_START_SCHED"); !ok || val != "true" {
		t.Errorf("PBS_START_SCHED = %q, want true", val)
	}
}

func TestLastAssignmentWins(t *testing.T) {
	input := `
PBS_SERVER = first
PBS_SERVER = second
`

	cfg, err := NewFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if val, ok := cfg.Get("PBS_SERVER"); !ok || val != "second" {
		t.Errorf("PBS_SERVER = %q, want second", val)
	}
}

func TestLineContinuation(t *testing.T) {
	input := `
PBS_LOG_DESTINATIONS = general,\
protocol,\
ecl
`

	cfg, err := NewFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	val, ok := cfg.Get("PBS_LOG_DESTINATIONS")
	if !ok {
		t.Fatal("PBS_LOG_DESTINATIONS not defined")
	}

	expected := "general,protocol,ecl"
	if val != expected {
		t.Errorf("PBS_LOG_DESTINATIONS = %q, want %q", val, expected)
	}
}

func TestEmptyAndCommentLines(t *testing.T) {
	input := `
# Comment line
   # Indented comment
PBS_SERVER = headnode

PBS_HOME = /var/spool/pbs
	# Another comment
`

	cfg, err := NewFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if val, ok := cfg.Get("PBS_SERVER"); !ok || val != "headnode" {
		t.Errorf("PBS_SERVER = %q, want headnode", val)
	}

	if val, ok := cfg.Get("PBS_HOME"); !ok || val != "/var/spool/pbs" {
		t.Errorf("PBS_HOME = %q, want /var/spool/pbs", val)
	}
}

func TestNonAssignmentLinesIgnored(t *testing.T) {
	input := `
[server]
PBS_SERVER = headnode
not an assignment at all
`

	cfg, err := NewFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if val, ok := cfg.Get("PBS_SERVER"); !ok || val != "headnode" {
		t.Errorf("PBS_SERVER = %q, want headnode", val)
	}
}

func TestCircularIncludeDetection(t *testing.T) {
	cfg := &Config{
		values:        make(map[string]string),
		includedFiles: make(map[string]bool),
	}

	// Simulate including the same file twice
	err := cfg.parseReader(strings.NewReader("PBS_SERVER=headnode"), "/test/pbs.conf")
	if err != nil {
		t.Fatalf("First include failed: %v", err)
	}

	// Second include should fail
	err = cfg.parseReader(strings.NewReader("PBS_HOME=/var/spool/pbs"), "/test/pbs.conf")
	if err == nil {
		t.Error("Expected error for circular include, got nil")
	}

	if !strings.Contains(err.Error(), "circular include") {
		t.Errorf("Expected 'circular include' error, got: %v", err)
	}
}

func TestBuiltinAutoDetectedValues(t *testing.T) {
	cfg, err := NewFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("NewFromReader failed: %v", err)
	}

	tests := []string{
		"HOSTNAME",
		"FULL_HOSTNAME",
		"PID",
		"PPID",
		"SUBSYSTEM",
		"PBS_ARCH",
		"PBS_OPSYS",
		"CONFIG_ROOT",
		"DETECTED_CPUS",
		"DETECTED_CPUS_LIMIT",
	}

	for _, key := range tests {
		if val, ok := cfg.Get(key); !ok || val == "" {
			t.Errorf("built-in %s not set", key)
		}
	}

	// HOSTNAME should be the short name (before first dot)
	hostname, _ := cfg.Get("HOSTNAME")
	fullHostname, _ := cfg.Get("FULL_HOSTNAME")
	if expectedShort := strings.Split(fullHostname, ".")[0]; hostname != expectedShort {
		t.Errorf("HOSTNAME = %q, want %q (short form of FULL_HOSTNAME)", hostname, expectedShort)
	}

	// PID and PPID should be numeric
	if pid, _ := cfg.Get("PID"); pid != "" {
		if _, err := strconv.Atoi(pid); err != nil {
			t.Errorf("PID = %q is not numeric: %v", pid, err)
		}
	}
}

func TestOptionsSetSubsystemAndLocalName(t *testing.T) {
	cfg, err := NewFromReaderWithOptions(strings.NewReader(""), ConfigOptions{
		Subsystem: "SCHED",
		LocalName: "sched1",
	})
	if err != nil {
		t.Fatalf("NewFromReaderWithOptions failed: %v", err)
	}

	if val, ok := cfg.Get("SUBSYSTEM"); !ok || val != "SCHED" {
		t.Errorf("SUBSYSTEM = %q, want SCHED", val)
	}

	if val, ok := cfg.Get("LOCAL_NAME"); !ok || val != "sched1" {
		t.Errorf("LOCAL_NAME = %q, want sched1", val)
	}
}

func TestSubsystemDefaultsToTool(t *testing.T) {
	cfg, err := NewFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("NewFromReader failed: %v", err)
	}

	if val, ok := cfg.Get("SUBSYSTEM"); !ok || val != "TOOL" {
		t.Errorf("SUBSYSTEM = %q, want TOOL (default)", val)
	}
}

func TestConfigRootFollowsPBSConfFile(t *testing.T) {
	origConfFile := os.Getenv("PBS_CONF_FILE")
	defer func() {
		if origConfFile != "" {
			_ = os.Setenv("PBS_CONF_FILE", origConfFile)
		} else {
			_ = os.Unsetenv("PBS_CONF_FILE")
		}
	}()

	testPath := "/opt/pbs/etc/pbs.conf"
	_ = os.Setenv("PBS_CONF_FILE", testPath)

	cfg, err := NewFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("NewFromReader failed: %v", err)
	}

	configRoot, ok := cfg.Get("CONFIG_ROOT")
	if !ok {
		t.Fatal("CONFIG_ROOT not set")
	}

	if expectedRoot := "/opt/pbs/etc"; configRoot != expectedRoot {
		t.Errorf("CONFIG_ROOT = %q, want %q", configRoot, expectedRoot)
	}
}

func TestDetectedCPUsLimitHonorsEnvironment(t *testing.T) {
	origOMP := os.Getenv("OMP_THREAD_LIMIT")
	origSLURM := os.Getenv("SLURM_CPUS_ON_NODE")
	defer func() {
		if origOMP != "" {
			_ = os.Setenv("OMP_THREAD_LIMIT", origOMP)
		} else {
			_ = os.Unsetenv("OMP_THREAD_LIMIT")
		}
		if origSLURM != "" {
			_ = os.Setenv("SLURM_CPUS_ON_NODE", origSLURM)
		} else {
			_ = os.Unsetenv("SLURM_CPUS_ON_NODE")
		}
	}()

	_ = os.Setenv("OMP_THREAD_LIMIT", "1")
	_ = os.Unsetenv("SLURM_CPUS_ON_NODE")

	cfg, err := NewFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("NewFromReader failed: %v", err)
	}

	limitStr, ok := cfg.Get("DETECTED_CPUS_LIMIT")
	if !ok {
		t.Fatal("DETECTED_CPUS_LIMIT not set")
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		t.Fatalf("DETECTED_CPUS_LIMIT = %q is not a valid integer: %v", limitStr, err)
	}

	if limit != 1 {
		t.Errorf("DETECTED_CPUS_LIMIT = %d, want 1", limit)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	confPath := filepath.Join(dir, "pbs.conf")
	if err := os.WriteFile(confPath, []byte("PBS_SERVER = from-file\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	origConfFile, hadConfFile := os.LookupEnv("PBS_CONF_FILE")
	origServer, hadServer := os.LookupEnv("PBS_SERVER")
	defer func() {
		if hadConfFile {
			_ = os.Setenv("PBS_CONF_FILE", origConfFile)
		} else {
			_ = os.Unsetenv("PBS_CONF_FILE")
		}
		if hadServer {
			_ = os.Setenv("PBS_SERVER", origServer)
		} else {
			_ = os.Unsetenv("PBS_SERVER")
		}
	}()

	_ = os.Setenv("PBS_CONF_FILE", confPath)
	_ = os.Setenv("PBS_SERVER", "from-env")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if val, ok := cfg.Get("PBS_SERVER"); !ok || val != "from-env" {
		t.Errorf("PBS_SERVER = %q, want from-env (environment must win over file)", val)
	}
}

func TestLocalConfigDirProcessedInOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "00-base.conf"), []byte("PBS_SCHEDULER_ITERATION = 600\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "10-override.conf"), []byte("PBS_SCHEDULER_ITERATION = 120\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := NewEmpty()
	cfg.Set("LOCAL_CONFIG_DIR", dir)

	if err := cfg.processLocalConfigDir(); err != nil {
		t.Fatalf("processLocalConfigDir failed: %v", err)
	}

	if val, ok := cfg.Get("PBS_SCHEDULER_ITERATION"); !ok || val != "120" {
		t.Errorf("PBS_SCHEDULER_ITERATION = %q, want 120 (later file in lexicographic order wins)", val)
	}
}

func TestLocalConfigFileListAcceptsCommaAndSpace(t *testing.T) {
	dir := t.TempDir()
	file1 := filepath.Join(dir, "a.conf")
	file2 := filepath.Join(dir, "b.conf")
	if err := os.WriteFile(file1, []byte("FROM_A = yes\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(file2, []byte("FROM_B = yes\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := NewEmpty()
	cfg.Set("LOCAL_CONFIG_FILE", file1+", "+file2)

	if err := cfg.processLocalConfigFile(); err != nil {
		t.Fatalf("processLocalConfigFile failed: %v", err)
	}

	if val, ok := cfg.Get("FROM_A"); !ok || val != "yes" {
		t.Errorf("FROM_A = %q, want yes", val)
	}
	if val, ok := cfg.Get("FROM_B"); !ok || val != "yes" {
		t.Errorf("FROM_B = %q, want yes", val)
	}
}
