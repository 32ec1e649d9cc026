package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/fundpool"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the
	// code: every topic listed in readme.md loads, and every .md file
	// in the docs directory is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		matches := topicRegex.FindStringSubmatch(scanner.Text())
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	if len(topicsInReadme) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		base := strings.TrimSuffix(filepath.Base(f), ".md")
		if base == "readme" {
			continue
		}
		found := false
		for _, topic := range topicsInReadme {
			if topic == base {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

func TestFundFileExamples(t *testing.T) {
	// Every jsonl code fence in the documentation must be a valid fund
	// file, so examples never drift from the decoder.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			mdParser := goldmark.DefaultParser()
			root := mdParser.Parse(text.NewReader(content))

			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				fcb, ok := n.(*ast.FencedCodeBlock)
				if !ok || fcb.Info == nil {
					return ast.WalkContinue, nil
				}
				if string(fcb.Info.Text(content)) != "jsonl" {
					return ast.WalkContinue, nil
				}

				var block strings.Builder
				lines := fcb.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					block.Write(seg.Value(content))
				}

				if _, err := fundpool.DecodeRecords(strings.NewReader(block.String())); err != nil {
					t.Errorf("invalid fund file example: %v\n%s", err, block.String())
				}
				return ast.WalkContinue, nil
			})
		})
	}
}
