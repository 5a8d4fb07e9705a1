package qmgr

import (
	"context"
	"fmt"
	"io"
	"os"

	pbs "github.com/openpbs/go-pbs"
)

// runImport executes an `import hook NAME <content-type> <encoding> <file|->`
// directive: read content from d.File (or stdin for "-"), base64-decode it
// first when d.Encoding says so, then hand it to pbs.ImportHook which stages
// it under the hooks workdir and issues the manager(IMPORT, HOOK, ...)
// request.
func runImport(ctx context.Context, handle int, pbsHome string, d *Directive) error {
	name := ""
	if len(d.Names) > 0 {
		name = d.Names[0].Object
	}

	var r io.Reader
	if d.File == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(d.File)
		if err != nil {
			return fmt.Errorf("import hook %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}

	var content []byte
	var err error
	if d.Encoding == "base64" {
		content, err = pbs.DecodeBase64Stream(r)
	} else {
		content, err = io.ReadAll(r)
	}
	if err != nil {
		return fmt.Errorf("import hook %s: %w", name, err)
	}

	return pbs.ImportHook(ctx, handle, pbsHome, os.Getpid(), name, d.ContentType, string(content))
}

// runExport executes an `export hook NAME <content-type> <encoding> <file|->`
// directive, writing the fetched content to d.File (or stdout for "-"),
// base64-encoded first when d.Encoding says so.
func runExport(ctx context.Context, handle int, pbsHome string, d *Directive) error {
	name := ""
	if len(d.Names) > 0 {
		name = d.Names[0].Object
	}

	content, err := pbs.ExportHook(ctx, handle, pbsHome, name, d.ContentType)
	if err != nil {
		return fmt.Errorf("export hook %s: %w", name, err)
	}

	var w io.Writer
	if d.File == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(d.File)
		if err != nil {
			return fmt.Errorf("export hook %s: %w", name, err)
		}
		defer f.Close()
		w = f
	}

	if d.Encoding == "base64" {
		return pbs.EncodeBase64Stream(w, content)
	}
	_, err = w.Write(content)
	return err
}
