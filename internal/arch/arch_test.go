// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// listPackages runs go list over every package of the module rooted at dir.
func listPackages(t *testing.T, dir string) []pkg {
	t.Helper()
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = dir
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list in %s: %v\n%s", dir, err, errb.String())
	}
	var pkgs []pkg
	dec := json.NewDecoder(&out)
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs
}

func TestImportBoundaries(t *testing.T) {
	root := filepath.Join("..", "..")

	// Engine-facing layers stay below the command tree.
	front := []string{"biosci/internal/app", "biosci/cmd/"}
	bans := map[string][]string{
		"biosci/internal/ops":     front,
		"biosci/internal/writers": append([]string{"biosci/internal/batch", "biosci/internal/search"}, front...),
		"biosci/internal/pretty":  append([]string{"biosci/internal/writers", "biosci/internal/ops"}, front...),
		"biosci/internal/batch":   append([]string{"biosci/internal/writers", "biosci/internal/search"}, front...),
		"biosci/internal/search":  append([]string{"biosci/internal/ops", "biosci/internal/writers", "biosci/internal/batch"}, front...),
		"biosci/internal/config":  append([]string{"biosci/internal/ops"}, front...),
		"biosci/pkg/api":          {"biosci/internal/"},
	}

	var violations []string
	for _, p := range listPackages(t, root) {
		if !strings.HasPrefix(p.ImportPath, "biosci/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix && !strings.HasPrefix(imp, prefix+"/") {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "biosci/") {
					continue
				}
				for _, ban := range forbidden {
					if dep == ban || strings.HasPrefix(dep, strings.TrimSuffix(ban, "/")+"/") {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

func TestCoreIsSelfContained(t *testing.T) {
	var violations []string
	for _, p := range listPackages(t, filepath.Join("..", "..", "core")) {
		for _, dep := range p.Imports {
			if strings.HasPrefix(dep, "biosci/") {
				violations = append(violations, p.ImportPath+" → "+dep)
			}
		}
	}
	if len(violations) > 0 {
		t.Fatalf("core imports the application module:\n  %s", strings.Join(violations, "\n  "))
	}
}
