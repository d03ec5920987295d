// Package batch runs the summary pipeline over every project found
// under an input root. Each immediate subdirectory is one project,
// processed in isolation: a failing project never aborts the run.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	billy "github.com/go-git/go-billy/v5"

	"github.com/agentic-research/laminate/internal/report"
	"github.com/agentic-research/laminate/internal/ruleset"
	"github.com/agentic-research/laminate/internal/scan"
)

// Summary aggregates the outcome of one run.
type Summary struct {
	Projects  int
	Succeeded int
}

// Run enumerates the projects under inputRoot, writes one summary
// document per project under outputRoot, and reports the aggregate.
// It returns an error when the input root is missing, holds no
// project directories, or no project could be processed; partial
// success is success.
func Run(fsys billy.Filesystem, inputRoot, outputRoot string, rs ruleset.Ruleset, stdout, stderr io.Writer) (Summary, error) {
	var sum Summary

	info, err := fsys.Stat(inputRoot)
	if err != nil {
		return sum, fmt.Errorf("input directory not found: %s", inputRoot)
	}
	if !info.IsDir() {
		return sum, fmt.Errorf("input path is not a directory: %s", inputRoot)
	}

	if err := fsys.MkdirAll(outputRoot, 0o755); err != nil {
		return sum, fmt.Errorf("create output directory: %w", err)
	}

	entries, err := fsys.ReadDir(inputRoot)
	if err != nil {
		return sum, fmt.Errorf("list input directory: %w", err)
	}
	var projects []string
	for _, e := range entries {
		if e.IsDir() {
			projects = append(projects, e.Name())
		}
	}
	if len(projects) == 0 {
		return sum, fmt.Errorf("no project directories found in %s", inputRoot)
	}
	sort.Strings(projects)
	sum.Projects = len(projects)

	for _, name := range projects {
		outPath := fsys.Join(outputRoot, name+rs.OutputSuffix)
		fmt.Fprintf(stdout, "Processing: %s\n", name)
		fmt.Fprintf(stdout, "  Output file: %s\n", outPath)

		if processProject(fsys, fsys.Join(inputRoot, name), outPath, name, rs, stdout, stderr) {
			sum.Succeeded++
			fmt.Fprintf(stdout, "  ✓ Successfully generated '%s'!\n", outPath)
		}
	}

	fmt.Fprintf(stdout, "COMPLETED! Processed %d/%d projects\n", sum.Succeeded, sum.Projects)

	if sum.Succeeded == 0 {
		return sum, fmt.Errorf("no projects processed successfully")
	}
	return sum, nil
}

// processProject walks, classifies and renders one project. Failures
// are diagnostics on stderr, never propagated past the project.
func processProject(fsys billy.Filesystem, projectDir, outPath, name string, rs ruleset.Ruleset, stdout, stderr io.Writer) bool {
	projFS, err := fsys.Chroot(projectDir)
	if err != nil {
		fmt.Fprintf(stderr, "  ✗ cannot open project %s: %v\n", name, err)
		return false
	}

	res := scan.Walk(projFS, rs)
	for _, w := range res.Warnings {
		fmt.Fprintf(stderr, "Warning: %s\n", w)
	}

	out, err := fsys.Create(outPath)
	if err != nil {
		fmt.Fprintf(stderr, "  ✗ cannot create %s: %v\n", outPath, err)
		return false
	}

	bw := bufio.NewWriter(out)
	renderErr := report.Render(bw, projFS, name, rs, res)
	if renderErr == nil {
		renderErr = bw.Flush()
	}
	if closeErr := out.Close(); renderErr == nil {
		renderErr = closeErr
	}
	if renderErr != nil {
		fmt.Fprintf(stderr, "  ✗ error writing %s: %v\n", outPath, renderErr)
		return false
	}
	return true
}
