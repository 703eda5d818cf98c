// SPDX-License-Identifier: MIT
// Package output - writes the artifacts of a run.
//
// Purpose:
//   - Render the ranked list, the component matrix and the optional plot in memory.
//   - Stage every artifact as a temp file, then rename them over their targets.
//
// Determinism:
//   - Identical Result values render to byte-identical files.

package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/refactor/methylation"
	"github.com/katalvlaran/refactor/refactor"
)

// Default artifact names, relative to the working directory.
const (
	DefaultRankedFilename     = "refactor.out.rankedlist.txt"
	DefaultComponentsFilename = "refactor.out.components.txt"
)

const filePerm = 0o644

// ErrResultShape is returned when a Result does not belong to the given data.
var ErrResultShape = errors.New("output: result does not match data")

// Files selects where WriteResult puts each artifact.
type Files struct {
	// RankedPath receives the ranked site list.
	RankedPath string

	// ComponentsPath receives the samples × components matrix.
	ComponentsPath string

	// PlotPath, if set, receives a PC1 vs PC2 scatter; the extension picks the format.
	PlotPath string

	// Reporter, if set, receives the Saving progress lines.
	Reporter refactor.Reporter
}

// DefaultFiles returns Files pointing at the default artifact names.
func DefaultFiles() Files {
	return Files{RankedPath: DefaultRankedFilename, ComponentsPath: DefaultComponentsFilename}
}

// WriteResult writes the ranked list and the components of res.
// Implementation:
//   - Stage 1: check that res matches data (sites and samples).
//   - Stage 2: render every artifact in memory; any failure aborts before writing.
//   - Stage 3: stage every artifact as a synced temp file next to its target;
//     a failure removes the staged files and leaves the targets untouched.
//   - Stage 4: rename the staged files over their targets.
//
// Existing files are overwritten without confirmation. Only a rename failing
// after an earlier one succeeded can leave the set mixed; each file is still
// either the old one or the complete new one.
//
// Errors:
//   - methylation.ErrNilData, ErrResultShape, render errors, filesystem errors.
func WriteResult(cfg Files, data *methylation.Data, res *refactor.Result) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("output.WriteResult: %w", err)
	}
	if res == nil || res.Components == nil {
		return fmt.Errorf("output.WriteResult: nil result: %w", ErrResultShape)
	}
	if len(res.Ranked) != data.Sites || res.Components.Rows() != data.Samples {
		return fmt.Errorf("output.WriteResult: %d ranked sites and %d component rows for %d×%d data: %w",
			len(res.Ranked), res.Components.Rows(), data.Sites, data.Samples, ErrResultShape)
	}
	if cfg.RankedPath == "" {
		cfg.RankedPath = DefaultRankedFilename
	}
	if cfg.ComponentsPath == "" {
		cfg.ComponentsPath = DefaultComponentsFilename
	}
	rep := cfg.Reporter
	if rep == nil {
		rep = refactor.ReporterFunc(func(string) {})
	}

	rankedOut, compOut, plotOut, err := renderAll(cfg, data, res.Components, res.Ranked)
	if err != nil {
		return fmt.Errorf("output.WriteResult: %w", err)
	}

	artifacts := []artifact{
		{path: cfg.RankedPath, content: rankedOut, status: refactor.StatusSaveRanked},
		{path: cfg.ComponentsPath, content: compOut, status: refactor.StatusSaveComponents},
	}
	if plotOut != nil {
		artifacts = append(artifacts, artifact{path: cfg.PlotPath, content: plotOut})
	}
	if err = writeAllAtomic(artifacts, rep); err != nil {
		return fmt.Errorf("output.WriteResult: %w", err)
	}

	return nil
}

// artifact is one rendered output waiting to replace path.
type artifact struct {
	path    string
	content []byte
	status  string // progress line, empty for none
	tmp     string // staged file, set by stageFile
}

// writeAllAtomic stages every artifact before renaming any of them.
func writeAllAtomic(arts []artifact, rep refactor.Reporter) (err error) {
	defer func() {
		if err != nil {
			for _, a := range arts {
				if a.tmp != "" {
					_ = os.Remove(a.tmp)
				}
			}
		}
	}()

	for i := range arts {
		if arts[i].status != "" {
			rep.Status(arts[i].status)
		}
		if arts[i].tmp, err = stageFile(arts[i].path, arts[i].content); err != nil {
			return err
		}
	}
	for i := range arts {
		if err = os.Rename(arts[i].tmp, arts[i].path); err != nil {
			return err
		}
		arts[i].tmp = ""
	}

	return nil
}

// stageFile writes content to a synced temp file in the directory of path
// and returns its name. Renaming it over path is atomic on the same filesystem.
func stageFile(path string, content []byte) (name string, err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return "", err
	}
	if err = tmp.Sync(); err != nil {
		return "", err
	}
	if err = tmp.Chmod(filePerm); err != nil {
		return "", err
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}

	return tmp.Name(), nil
}
