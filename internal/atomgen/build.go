package atomgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/yacobolo/atomcss"
	"github.com/yacobolo/atomcss/internal/dom"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Build extracts every literal CSS call from the configured sources,
// compiles them through one server-mode engine and writes the resulting
// stylesheet. Malformed declarations do not stop the build; they are
// collected in BuildResult.Errors.
func Build(config BuildConfig) (*BuildResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	result := &BuildResult{}

	// 1. Scan sources
	refs, stats, err := ScanFiles(config.Paths, log)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.CallsFound = len(refs)

	if len(refs) == 0 {
		result.Warnings = append(result.Warnings, "no CSS calls found in "+strings.Join(config.Paths, ", "))
	}

	// 2. Compile
	engine, err := atomcss.New(
		atomcss.WithClassPrefix(config.ClassPrefix),
		atomcss.WithElementID(config.ElementID),
		atomcss.WithVendorPrefix(config.VendorPrefix),
		atomcss.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	var errs error
	seen := make(map[string]bool)
	for _, ref := range refs {
		for _, dec := range splitDeclarations(ref.Rules) {
			result.DeclarationsFound++
			if seen[dec.Text] {
				continue
			}

			if _, err := engine.CSS(dec.Text); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s:%d: %w", ref.Location.File, ref.Location.Line, err))
				continue
			}
			seen[dec.Text] = true

			cn := engine.ClassName(dec.Text)
			body, _ := engine.Rule(cn)
			result.Manifest = append(result.Manifest, ManifestEntry{
				Declaration: dec.Text,
				ClassName:   cn,
				Body:        body,
			})
		}
	}
	result.Errors = multierr.Errors(errs)
	result.ClassesGenerated = engine.Len()
	result.CSS = engine.Flush()

	log.Debug("compiled sources",
		zap.Int("calls", result.CallsFound),
		zap.Int("declarations", result.DeclarationsFound),
		zap.Int("classes", result.ClassesGenerated),
		zap.Int("errors", len(result.Errors)))

	// 3. Write outputs
	if config.Output != "" {
		if err := os.WriteFile(config.Output, []byte(result.CSS), 0644); err != nil {
			return nil, fmt.Errorf("write stylesheet: %w", err)
		}
	}

	if config.HTMLFile != "" {
		if err := injectIntoFile(config.HTMLFile, engine.ElementID(), result.CSS); err != nil {
			return nil, fmt.Errorf("inject into %s: %w", config.HTMLFile, err)
		}
	}

	if config.Manifest != "" {
		if err := writeManifest(config.Manifest, result.Manifest); err != nil {
			return nil, fmt.Errorf("write manifest: %w", err)
		}
	}

	return result, nil
}

// declaration is one ';'-separated segment of a CSS call, with its byte
// offset inside the literal
type declaration struct {
	Text   string
	Offset int
}

// splitDeclarations mirrors the engine's splitting: on ';', trimmed,
// empty segments dropped
func splitDeclarations(rules string) []declaration {
	var out []declaration
	offset := 0
	for _, seg := range strings.Split(rules, ";") {
		text := strings.TrimSpace(seg)
		if text != "" {
			out = append(out, declaration{
				Text:   text,
				Offset: offset + strings.Index(seg, text),
			})
		}
		offset += len(seg) + 1
	}
	return out
}

// injectIntoFile rewrites an HTML file with the designated style element
// holding css
func injectIntoFile(path, id, css string) error {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := dom.InjectStyle(bytes.NewReader(content), &buf, id, css); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

func writeManifest(path string, entries []ManifestEntry) error {
	if entries == nil {
		entries = []ManifestEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
