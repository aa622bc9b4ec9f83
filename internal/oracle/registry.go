package oracle

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/Skufu/healthassistant/internal/apperr"
	"github.com/Skufu/healthassistant/internal/diagnosis"
)

//go:embed artifacts/*.json
var bundled embed.FS

// FileName is the artifact name for d inside a models directory.
func FileName(d diagnosis.Disease) string {
	switch d {
	case diagnosis.Diabetes:
		return "diabetes_model.json"
	case diagnosis.Heart:
		return "heart_disease_model.json"
	case diagnosis.Parkinsons:
		return "parkinsons_model.json"
	}
	return ""
}

// Load reads one artifact per disease. Files missing from dir fall back to the
// bundled demo artifacts; an empty dir uses the bundled set only.
func Load(dir string) (map[diagnosis.Disease]diagnosis.Oracle, error) {
	var override fs.FS
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, apperr.Wrapf(apperr.WithCode(apperr.CodeModelLoad, err), "models directory %s", dir)
		}
		if !info.IsDir() {
			return nil, apperr.ModelLoad(dir + " is not a directory")
		}
		override = os.DirFS(dir)
	}

	bundledFS, err := fs.Sub(bundled, "artifacts")
	if err != nil {
		return nil, apperr.Wrap(err, "bundled artifacts")
	}

	oracles := make(map[diagnosis.Disease]diagnosis.Oracle, len(diagnosis.Diseases))
	for _, d := range diagnosis.Diseases {
		name := FileName(d)
		source := "bundled"
		raw, err := readOverride(override, name)
		if err != nil {
			return nil, err
		}
		if raw != nil {
			source = dir
		} else if raw, err = fs.ReadFile(bundledFS, name); err != nil {
			return nil, apperr.Wrapf(apperr.WithCode(apperr.CodeModelLoad, err), "read bundled %s", name)
		}

		m, err := Parse(d, raw)
		if err != nil {
			return nil, apperr.Wrapf(err, "load %s from %s", name, source)
		}
		log.Printf("[oracle] loaded %s classifier (%s) from %s", d.Slug(), m.Kind(), source)
		oracles[d] = m
	}
	return oracles, nil
}

// Parse decodes and validates a JSON artifact for d.
func Parse(d diagnosis.Disease, raw []byte) (*Model, error) {
	var a Artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, apperr.WithCode(apperr.CodeModelLoad, fmt.Errorf("decode %s artifact: %w", d.Slug(), err))
	}
	return NewModel(d, a)
}

func readOverride(fsys fs.FS, name string) ([]byte, error) {
	if fsys == nil {
		return nil, nil
	}
	raw, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.WithCode(apperr.CodeModelLoad, err)
	}
	return raw, nil
}
