package pbs

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PelicanPlatform/classad/classad"
	"github.com/openpbs/go-pbs/wire"
)

// hooksDir returns $PBS_HOME/server_priv/hooks, the shared filesystem
// location client and server both reach for hook content staging. The
// caller is expected to have already resolved PBS_HOME (see config.Config).
func hooksDir(pbsHome string) string {
	return filepath.Join(pbsHome, "server_priv", "hooks")
}

// StageHookFile creates a new, uniquely named temp file under
// $PBS_HOME/server_priv/hooks named qmgr_hook<pid>XXXXXX (atomic creation,
// the client/server handshake token for one import or export), writes
// content into it, and returns its basename for use as the input-file or
// output-file attribute on the following manager request.
//
// An EACCES creating the file is reported with the same wording the
// original client uses, since the hooks directory's permissions are the
// entire authorization check for hook staging.
func StageHookFile(pbsHome string, pid int, content []byte) (basename string, err error) {
	dir := hooksDir(pbsHome)
	pattern := fmt.Sprintf("qmgr_hook%d*", pid)
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		if os.IsPermission(err) {
			return "", fmt.Errorf("unauthorized to access hooks data from server: %w", err)
		}
		return "", fmt.Errorf("stage hook file: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(content); err != nil {
		return "", fmt.Errorf("stage hook file: %w", err)
	}
	return filepath.Base(f.Name()), nil
}

// DecodeBase64Stream reads lines from r and base64-decodes them until an
// empty line terminates the stream (the convention `qmgr -c print hook`
// output relies on so it can round-trip back through `qmgr`).
func DecodeBase64Stream(r io.Reader) ([]byte, error) {
	var b64 strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		b64.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("decode base64 hook stream: %w", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(b64.String())
	if err != nil {
		return nil, fmt.Errorf("decode base64 hook stream: %w", err)
	}
	return decoded, nil
}

// EncodeBase64Stream renders content as base64 lines (76 chars each, the
// conventional wrap width) followed by the empty-line terminator that
// DecodeBase64Stream expects.
func EncodeBase64Stream(w io.Writer, content []byte) error {
	encoded := base64.StdEncoding.EncodeToString(content)
	for len(encoded) > 76 {
		if _, err := fmt.Fprintln(w, encoded[:76]); err != nil {
			return err
		}
		encoded = encoded[76:]
	}
	if _, err := fmt.Fprintln(w, encoded); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// ImportHook stages content into the hooks workdir and issues the
// manager(IMPORT, HOOK, ...) request that tells the server to pick the
// staged file up, per the hook import/export protocol: content is never
// carried inline on the wire, only the agreed-upon basename is.
func ImportHook(ctx context.Context, handle int, pbsHome string, pid int, name, contentType, content string) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}

	basename, err := StageHookFile(pbsHome, pid, []byte(content))
	if err != nil {
		return fmt.Errorf("import hook %s: %w", name, err)
	}

	ad := classad.New()
	_ = ad.Set("Name", name)
	_ = ad.Set("ObjectType", "hook")
	_ = ad.Set("ManageCmd", "import")
	_ = ad.Set("ContentType", contentType)
	_ = ad.Set("InputFile", basename)

	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchHookImport, Body: ad}, false)
	if err != nil {
		return fmt.Errorf("import hook %s: %w", name, err)
	}
	return errorFromReply(reply.Code, reply.Message)
}

// ExportHook asks the server to stage hook name's content into the hooks
// workdir under outputFile's basename, then reads that file back from the
// shared filesystem and returns its raw bytes.
func ExportHook(ctx context.Context, handle int, pbsHome string, name, contentType string) ([]byte, error) {
	c, err := conn(handle)
	if err != nil {
		return nil, err
	}

	ad := classad.New()
	_ = ad.Set("Name", name)
	_ = ad.Set("ObjectType", "hook")
	_ = ad.Set("ManageCmd", "export")
	_ = ad.Set("ContentType", contentType)

	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchHookExport, Body: ad}, true)
	if err != nil {
		return nil, fmt.Errorf("export hook %s: %w", name, err)
	}
	if err := errorFromReply(reply.Code, reply.Message); err != nil {
		return nil, err
	}
	if len(reply.Ads) == 0 {
		return nil, fmt.Errorf("export hook %s: server returned no output file", name)
	}
	outputFile, ok := reply.Ads[0].EvaluateAttrString("OutputFile")
	if !ok || outputFile == "" {
		return nil, fmt.Errorf("export hook %s: reply missing OutputFile", name)
	}

	path := filepath.Join(hooksDir(pbsHome), filepath.Base(outputFile))
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("unauthorized to access hooks data from server: %w", err)
		}
		return nil, fmt.Errorf("export hook %s: %w", name, err)
	}
	return content, nil
}
