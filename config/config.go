// Package config implements PBS_CONF_FILE parsing and management (spec
// §6). A PBS configuration file is a flat sequence of "KEY = VALUE"
// directives, '#'-comments, and trailing-backslash continuations. Once
// loaded, same-named PBS_* environment variables always win over whatever
// the file set, and LOCAL_CONFIG_DIR/LOCAL_CONFIG_FILE directives let a
// site layer additional directories and files on top of the main file the
// same way PBS_HOME/server_priv/config.d does for the daemons.
//
// Example usage:
//
//	cfg, err := config.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	value, ok := cfg.Get("PBS_SERVER")
//	if !ok {
//	    log.Fatal("PBS_SERVER not defined")
//	}
package config

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
)

// ConfigOptions contains configuration parameters for creating a Config
//
//nolint:revive // Name is consistent with PBS conventions
type ConfigOptions struct {
	// LocalName is the local name for this PBS instance (e.g., "manager", "worker")
	// When set, it is stored as the LOCAL_NAME built-in value
	LocalName string

	// Subsystem is the PBS subsystem (e.g., "SERVER", "SCHED", "MOM")
	// It is stored as the SUBSYSTEM built-in value ("TOOL" when empty)
	Subsystem string
}

// Config represents a PBS configuration with key-value pairs
type Config struct {
	values map[string]string
	// Track included files to prevent cycles
	includedFiles map[string]bool
	// Configuration options
	options ConfigOptions
}

// New creates a new Config from the runtime environment
func New() (*Config, error) {
	return NewWithOptions(ConfigOptions{})
}

// NewEmpty creates a new empty Config without loading from environment
// This is useful for submit files where we want to parse explicitly
func NewEmpty() *Config {
	cfg := &Config{
		values:        make(map[string]string),
		includedFiles: make(map[string]bool),
	}

	cfg.initBuiltins()

	return cfg
}

// NewWithOptions creates a new Config with specified options
func NewWithOptions(opts ConfigOptions) (*Config, error) {
	cfg := &Config{
		values:        make(map[string]string),
		includedFiles: make(map[string]bool),
		options:       opts,
	}

	cfg.initBuiltins()

	return cfg, cfg.LoadFromEnvironment()
}

// NewFromReader creates a Config from an io.Reader holding PBS_CONF_FILE
// syntax.
func NewFromReader(r io.Reader) (*Config, error) {
	return NewFromReaderWithOptions(r, ConfigOptions{})
}

// NewFromReaderWithOptions creates a Config from an io.Reader with
// specified options.
func NewFromReaderWithOptions(r io.Reader, opts ConfigOptions) (*Config, error) {
	cfg := &Config{
		values:        make(map[string]string),
		includedFiles: make(map[string]bool),
		options:       opts,
	}

	cfg.initBuiltins()

	if err := cfg.parseReader(r, ""); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Get retrieves a configuration value
func (c *Config) Get(key string) (string, bool) {
	val, ok := c.values[key]
	return val, ok
}

// Set sets a configuration value
func (c *Config) Set(key, value string) {
	c.values[key] = value
}

// Keys returns all configuration keys
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	return keys
}

// initBuiltins initializes built-in, auto-detected values: the ones a
// daemon would otherwise have to probe for itself before it can even read
// its own config file (hostname, addresses, CPU/memory, OS/arch).
func (c *Config) initBuiltins() {
	// Time constants, used by attribute values expressed in seconds
	c.Set("SECOND", "1")
	c.Set("MINUTE", "60")
	c.Set("HOUR", "3600")
	c.Set("DAY", "86400")
	c.Set("WEEK", "604800")

	// Auto-detected values
	hostname, _ := os.Hostname()
	c.Set("HOSTNAME", strings.Split(hostname, ".")[0])
	c.Set("FULL_HOSTNAME", hostname)

	// IP address detection
	ipv4Addr, ipv6Addr, ipAddr := detectIPAddresses()
	if ipv4Addr != "" {
		c.Set("IPV4_ADDRESS", ipv4Addr)
	}
	if ipv6Addr != "" {
		c.Set("IPV6_ADDRESS", ipv6Addr)
	}
	if ipAddr != "" {
		c.Set("IP_ADDRESS", ipAddr)
		// Set IP_ADDRESS_IS_V6 based on whether IP_ADDRESS is IPv6
		isV6 := "false"
		if strings.Contains(ipAddr, ":") {
			isV6 = "true"
		}
		c.Set("IP_ADDRESS_IS_V6", isV6)
	}

	// User and directory information
	if tilde := getPBSUserHomeDir(); tilde != "" {
		c.Set("TILDE", tilde)
	}
	if username := getCurrentUsername(); username != "" {
		c.Set("USERNAME", username)
	}

	// Config root directory
	c.Set("CONFIG_ROOT", getConfigRoot())

	// CPU and memory detection
	logicalCPUs, physicalCPUs := detectCPUs()
	c.Set("DETECTED_CPUS", fmt.Sprintf("%d", logicalCPUs))
	c.Set("DETECTED_CORES", fmt.Sprintf("%d", logicalCPUs)) // Alias for DETECTED_CPUS
	c.Set("DETECTED_PHYSICAL_CPUS", fmt.Sprintf("%d", physicalCPUs))

	memory := detectMemory()
	if memory > 0 {
		c.Set("DETECTED_MEMORY", fmt.Sprintf("%d", memory))
	}

	// Architecture and OS detection
	c.Set("PBS_ARCH", goArchToPBSArch(runtime.GOARCH))
	c.Set("PBS_OPSYS", goOSToPBSOS(runtime.GOOS))

	osVersion := detectOSVersion()
	if osVersion != "" {
		c.Set("PBS_OPSYS_VER", osVersion)
		c.Set("PBS_OPSYS_AND_VER", goOSToPBSOS(runtime.GOOS)+osVersion)
	}

	// UNAME values
	unameArch, unameOpsys := getUnameValues()
	c.Set("UNAME_ARCH", unameArch)
	c.Set("UNAME_OPSYS", unameOpsys)

	// Process information
	c.Set("PID", fmt.Sprintf("%d", os.Getpid()))
	c.Set("PPID", fmt.Sprintf("%d", os.Getppid()))

	// CPU limit detection (uses DETECTED_CPUS set above)
	limit := getDetectedCPUsLimit(logicalCPUs)
	c.Set("DETECTED_CPUS_LIMIT", fmt.Sprintf("%d", limit))

	// Subsystem - use configured subsystem or default to TOOL
	if c.options.Subsystem != "" {
		c.Set("SUBSYSTEM", c.options.Subsystem)
	} else {
		c.Set("SUBSYSTEM", "TOOL")
	}

	// Local name if specified
	if c.options.LocalName != "" {
		c.Set("LOCAL_NAME", c.options.LocalName)
	}
}

// isWindows checks if running on Windows
func isWindows() bool {
	return os.PathSeparator == '\\'
}

// detectIPAddresses detects IP addresses from network interfaces
// Returns: ipv4Address, ipv6Address, mostPublicIP
func detectIPAddresses() (string, string, string) {
	// Get all network interfaces
	interfaces, err := net.Interfaces()
	if err != nil {
		return "", "", ""
	}

	// Sort interfaces alphabetically by name
	sort.Slice(interfaces, func(i, j int) bool {
		return interfaces[i].Name < interfaces[j].Name
	})

	var ipv4Addresses []string
	var ipv6Addresses []string

	// Categorize addresses by priority
	type addressWithPriority struct {
		addr     string
		priority int // 0=best (non-link-local, non-loopback), 1=link-local, 2=loopback
	}
	var ipv4WithPrio []addressWithPriority
	var ipv6WithPrio []addressWithPriority

	for _, iface := range interfaces {
		// Skip down interfaces
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			default:
				continue
			}

			if ip == nil {
				continue
			}

			ipStr := ip.String()
			priority := 0

			// Determine priority
			switch {
			case ip.IsLoopback():
				priority = 2 // Lowest priority
			case ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast():
				priority = 1 // Medium priority
			default:
				priority = 0 // Highest priority
			}

			// Categorize by IP version
			if ip.To4() != nil {
				//nolint:staticcheck // SA4010: False positive - slice is sorted and used later
				ipv4Addresses = append(ipv4Addresses, ipStr)
				ipv4WithPrio = append(ipv4WithPrio, addressWithPriority{ipStr, priority})
			} else if ip.To16() != nil {
				//nolint:staticcheck // SA4010: False positive - slice is sorted and used later
				ipv6Addresses = append(ipv6Addresses, ipStr)
				ipv6WithPrio = append(ipv6WithPrio, addressWithPriority{ipStr, priority})
			}
		}
	} // Sort by priority (lowest priority value first)
	sort.Slice(ipv4WithPrio, func(i, j int) bool {
		if ipv4WithPrio[i].priority != ipv4WithPrio[j].priority {
			return ipv4WithPrio[i].priority < ipv4WithPrio[j].priority
		}
		return ipv4WithPrio[i].addr < ipv4WithPrio[j].addr
	})
	sort.Slice(ipv6WithPrio, func(i, j int) bool {
		if ipv6WithPrio[i].priority != ipv6WithPrio[j].priority {
			return ipv6WithPrio[i].priority < ipv6WithPrio[j].priority
		}
		return ipv6WithPrio[i].addr < ipv6WithPrio[j].addr
	})

	// Get the best addresses
	var ipv4Best, ipv6Best, mostPublic string

	if len(ipv4WithPrio) > 0 {
		ipv4Best = ipv4WithPrio[0].addr
	}
	if len(ipv6WithPrio) > 0 {
		ipv6Best = ipv6WithPrio[0].addr
	}

	// Most public is the best IPv4, or if none, the best IPv6
	if ipv4Best != "" {
		mostPublic = ipv4Best
	} else if ipv6Best != "" {
		mostPublic = ipv6Best
	}

	return ipv4Best, ipv6Best, mostPublic
}

// getPBSUserHomeDir gets the home directory of the 'pbs' service account,
// stored as the TILDE built-in value.
func getPBSUserHomeDir() string {
	u, err := user.Lookup("pbs")
	if err != nil {
		// If the pbs service account doesn't exist, return empty string
		return ""
	}
	return u.HomeDir
}

// getCurrentUsername gets the current user's username
func getCurrentUsername() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}

// getConfigRoot gets the directory containing the main config file
func getConfigRoot() string {
	// Check PBS_CONF_FILE environment variable
	confFile := os.Getenv("PBS_CONF_FILE")
	if confFile != "" {
		// Return the parent directory
		return filepath.Dir(confFile)
	}

	// Default based on OS
	if isWindows() {
		return "C:\\PBS"
	}
	return "/etc"
}

// getDetectedCPUsLimit returns the minimum of DETECTED_CPUS and environment limits
func getDetectedCPUsLimit(detectedCPUs int) int {
	limit := detectedCPUs

	// Check OMP_THREAD_LIMIT
	if ompLimit := os.Getenv("OMP_THREAD_LIMIT"); ompLimit != "" {
		if val, err := strconv.Atoi(ompLimit); err == nil && val > 0 && val < limit {
			limit = val
		}
	}

	// Check SLURM_CPUS_ON_NODE
	if slurmLimit := os.Getenv("SLURM_CPUS_ON_NODE"); slurmLimit != "" {
		if val, err := strconv.Atoi(slurmLimit); err == nil && val > 0 && val < limit {
			limit = val
		}
	}

	return limit
}

// detectCPUs detects CPU counts
// Returns: logicalCPUs (with HT), physicalCPUs (without HT)
func detectCPUs() (int, int) {
	// Try to read /proc/cpuinfo on Linux
	if runtime.GOOS == "linux" {
		if logical, physical, ok := detectCPUsLinux(); ok {
			return logical, physical
		}
	}

	// Fallback to runtime.NumCPU()
	numCPU := runtime.NumCPU()
	return numCPU, numCPU
}

// detectCPUsLinux parses /proc/cpuinfo to detect CPU counts
func detectCPUsLinux() (int, int, bool) {
	data, err := os.ReadFile("/proc/cpuinfo")
	if err != nil {
		return 0, 0, false
	}

	// Count unique (physical id, core id) pairs for physical cores
	// Count processor entries for logical CPUs
	type physCore struct {
		physicalID int
		coreID     int
	}
	physicalCores := make(map[physCore]bool)
	logicalCPUs := 0
	currentPhysID := -1
	currentCoreID := -1

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "processor"):
			logicalCPUs++
			// Reset for next processor
			currentPhysID = -1
			currentCoreID = -1
		case strings.HasPrefix(line, "physical id"):
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 {
				if id, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
					currentPhysID = id
				}
			}
		case strings.HasPrefix(line, "core id"):
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 {
				if id, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
					currentCoreID = id
				}
			}
		}

		// If we have both IDs, record this physical core
		if currentPhysID >= 0 && currentCoreID >= 0 {
			physicalCores[physCore{currentPhysID, currentCoreID}] = true
		}
	} // If we didn't find physical/core IDs, assume no hyperthreading
	physCount := len(physicalCores)
	if physCount == 0 {
		physCount = logicalCPUs
	}

	if logicalCPUs > 0 {
		return logicalCPUs, physCount, true
	}
	return 0, 0, false
}

// detectMemory detects system memory in MiB
func detectMemory() int {
	// Try to read /proc/meminfo on Linux
	if runtime.GOOS == "linux" {
		if mem, ok := detectMemoryLinux(); ok {
			return mem
		}
	}

	// Fallback to syscall for other platforms
	return detectMemorySyscall()
}

// detectMemoryLinux parses /proc/meminfo
func detectMemoryLinux() (int, bool) {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return 0, false
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if strings.HasPrefix(line, "MemTotal:") {
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				if kb, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
					// Convert KB to MiB
					return int(kb / 1024), true
				}
			}
		}
	}
	return 0, false
}

// detectMemorySyscall uses syscall to detect memory
func detectMemorySyscall() int {
	// Platform-specific syscall
	if runtime.GOOS == "darwin" || runtime.GOOS == "freebsd" {
		// Use sysctl for BSD-like systems
		return detectMemorySysctl()
	}
	// Default fallback
	return 0
}

// detectMemorySysctl uses sysctl to get memory on BSD-like systems
func detectMemorySysctl() int {
	cmd := exec.CommandContext(context.Background(), "sysctl", "-n", "hw.memsize")
	output, err := cmd.Output()
	if err != nil {
		return 0
	}
	bytes, err := strconv.ParseInt(strings.TrimSpace(string(output)), 10, 64)
	if err != nil {
		return 0
	}
	// Convert bytes to MiB
	return int(bytes / (1024 * 1024))
}

// goArchToPBSArch converts Go's GOARCH to the PBS_ARCH spelling used in
// attribute values and node identification.
func goArchToPBSArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "X86_64"
	case "386":
		return "INTEL"
	case "arm64":
		return "ARM64"
	case "arm":
		return "ARM"
	case "ppc64", "ppc64le":
		return "PPC64"
	case "s390x":
		return "S390X"
	default:
		// Return uppercase version as fallback
		return strings.ToUpper(goarch)
	}
}

// goOSToPBSOS converts Go's GOOS to the PBS_OPSYS spelling.
func goOSToPBSOS(goos string) string {
	switch goos {
	case "linux":
		return "LINUX"
	case "darwin":
		return "OSX"
	case "windows":
		return "WINDOWS"
	case "freebsd":
		return "FREEBSD"
	case "openbsd":
		return "OPENBSD"
	case "netbsd":
		return "NETBSD"
	case "solaris":
		return "SOLARIS"
	default:
		return strings.ToUpper(goos)
	}
}

// detectOSVersion returns the major OS version
func detectOSVersion() string {
	switch runtime.GOOS {
	case "linux":
		return detectLinuxVersion()
	case "darwin":
		return detectDarwinVersion()
	case "windows":
		return detectWindowsVersion()
	default:
		return ""
	}
}

// detectLinuxVersion detects Linux version from /etc/os-release
func detectLinuxVersion() string {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if strings.HasPrefix(line, "VERSION_ID=") {
			version := strings.TrimPrefix(line, "VERSION_ID=")
			version = strings.Trim(version, "\"")
			// Return major version only
			if idx := strings.Index(version, "."); idx > 0 {
				return version[:idx]
			}
			return version
		}
	}
	return ""
}

// detectDarwinVersion detects macOS version
func detectDarwinVersion() string {
	cmd := exec.CommandContext(context.Background(), "sw_vers", "-productVersion")
	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	version := strings.TrimSpace(string(output))
	// Return major version only
	if idx := strings.Index(version, "."); idx > 0 {
		return version[:idx]
	}
	return version
}

// detectWindowsVersion detects Windows version
func detectWindowsVersion() string {
	// Use ver command or fallback
	cmd := exec.CommandContext(context.Background(), "cmd", "/c", "ver")
	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	// Parse output like "Microsoft Windows [Version 10.0.19041.1234]"
	str := string(output)
	if idx := strings.Index(str, "Version "); idx >= 0 {
		versionStr := str[idx+8:]
		if idx2 := strings.Index(versionStr, "]"); idx2 >= 0 {
			versionStr = versionStr[:idx2]
		}
		// Extract major version
		if idx3 := strings.Index(versionStr, "."); idx3 > 0 {
			return versionStr[:idx3]
		}
	}
	return ""
}

// parseReader parses configuration from an io.Reader
func (c *Config) parseReader(r io.Reader, filename string) error {
	if filename != "" {
		// Track included file to prevent cycles
		if c.includedFiles[filename] {
			return fmt.Errorf("circular include detected: %s", filename)
		}
		c.includedFiles[filename] = true
	}

	scanner := bufio.NewScanner(r)
	var currentLine string
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Handle line continuation
		if strings.HasSuffix(strings.TrimSpace(line), "\\") {
			currentLine += strings.TrimSuffix(strings.TrimRight(line, " \t"), "\\")
			continue
		}

		currentLine += line

		// Process the complete line
		if err := c.parseLine(currentLine); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		currentLine = ""
	}

	return scanner.Err()
}

// parseLine parses a single configuration line
//
//nolint:unparam // Returns error for interface consistency with other parse functions
func (c *Config) parseLine(line string) error {
	// Trim whitespace
	line = strings.TrimSpace(line)

	// Skip empty lines and comments
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	// Skip [Section] headers
	if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
		return nil
	}

	// Find the = operator
	eqIdx := strings.Index(line, "=")
	if eqIdx == -1 {
		return nil // Not an assignment, skip
	}

	key := strings.TrimSpace(line[:eqIdx])
	value := strings.TrimSpace(line[eqIdx+1:])

	// Store the value
	c.Set(key, value)

	return nil
}

// loadConfigFile opens path and parses it as PBS_CONF_FILE syntax.
func (c *Config) loadConfigFile(path string) error {
	//nolint:gosec // G304: path comes from validated environment/default locations
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.parseReader(f, path)
}

// LoadFromEnvironment loads configuration from the process environment,
// per spec §6: PBS_CONF_FILE (default /etc/pbs.conf) supplies defaults,
// and same-named environment variables override file values. After the
// main file loads, LOCAL_CONFIG_DIR and LOCAL_CONFIG_FILE directives (if
// set, by the file or the environment) are processed, then the
// environment is reapplied one last time so it always wins.
func (c *Config) LoadFromEnvironment() error {
	// A bare PBS_* environment variable always overrides whatever the
	// config file set for that same key.
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PBS_") {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) == 2 {
				c.Set(parts[0], parts[1])
			}
		}
	}

	if configPath := os.Getenv("PBS_CONF_FILE"); configPath != "" {
		if configPath != "ONLY_ENV" {
			if err := c.loadConfigFile(configPath); err != nil {
				return err
			}
		}
	} else {
		for _, path := range []string{"/etc/pbs.conf", "/usr/local/etc/pbs.conf"} {
			if err := c.loadConfigFile(path); err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return err
			}
			break
		}
	}

	if err := c.reapplyPBSEnvOverrides(); err != nil {
		return err
	}
	if err := c.processLocalConfigDir(); err != nil {
		return err
	}
	if err := c.processLocalConfigFile(); err != nil {
		return err
	}
	return c.reapplyPBSEnvOverrides()
}

// reapplyPBSEnvOverrides re-sets every PBS_* value straight from the
// process environment, so a file directive can never shadow an
// environment override applied earlier in LoadFromEnvironment.
func (c *Config) reapplyPBSEnvOverrides() error {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PBS_") {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) == 2 {
				c.Set(parts[0], parts[1])
			}
		}
	}
	return nil
}

// processLocalConfigDir processes directories listed in LOCAL_CONFIG_DIR
// Directories are processed left-to-right, files within each directory are
// processed in lexicographical order
func (c *Config) processLocalConfigDir() error {
	dirList, ok := c.Get("LOCAL_CONFIG_DIR")
	if !ok || dirList == "" {
		return nil
	}

	// Split on comma and/or space
	dirs := splitConfigList(dirList)

	for _, dir := range dirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}

		// Check if directory exists
		info, err := os.Stat(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue // Skip non-existent directories
			}
			return fmt.Errorf("error accessing directory %s: %w", dir, err)
		}

		if !info.IsDir() {
			continue // Skip non-directories
		}

		// Read directory entries
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("error reading directory %s: %w", dir, err)
		}

		// Sort entries lexicographically (ReadDir already returns sorted)
		for _, entry := range entries {
			if entry.IsDir() {
				continue // Skip subdirectories
			}

			filePath := filepath.Join(dir, entry.Name())
			if err := c.loadConfigFile(filePath); err != nil {
				return fmt.Errorf("error parsing %s: %w", filePath, err)
			}
		}
	}

	return nil
}

// processLocalConfigFile processes files listed in LOCAL_CONFIG_FILE
// Files are processed left-to-right
func (c *Config) processLocalConfigFile() error {
	fileList, ok := c.Get("LOCAL_CONFIG_FILE")
	if !ok || fileList == "" {
		return nil
	}

	// Split on comma and/or space
	files := splitConfigList(fileList)

	for _, file := range files {
		file = strings.TrimSpace(file)
		if file == "" {
			continue
		}

		// Check if this is a command (ends with |)
		if strings.HasSuffix(file, "|") {
			cmdLine := strings.TrimSuffix(file, "|")
			cmdLine = strings.TrimSpace(cmdLine)
			if err := c.includeCommand(cmdLine); err != nil {
				return fmt.Errorf("error executing command %q: %w", cmdLine, err)
			}
			continue
		}

		// Regular file
		if err := c.loadConfigFile(file); err != nil {
			return fmt.Errorf("error opening %s: %w", file, err)
		}
	}

	return nil
}

// includeCommand runs command through the shell and parses its standard
// output as PBS_CONF_FILE syntax, the same "FILE|" convention LOCAL_CONFIG_FILE
// uses to let a site generate config directives dynamically.
func (c *Config) includeCommand(command string) error {
	cmd := exec.CommandContext(context.Background(), "sh", "-c", command)
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("error executing command %q: %w", command, err)
	}
	return c.parseReader(strings.NewReader(string(output)), "")
}

// splitConfigList splits a configuration list on commas and/or spaces
func splitConfigList(list string) []string {
	// Replace commas with spaces
	list = strings.ReplaceAll(list, ",", " ")

	// Split on whitespace
	parts := strings.Fields(list)

	return parts
}
