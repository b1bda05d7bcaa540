package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// The documentation must stay in sync with itself: every topic listed in
// readme.md loads, every topic file is listed, and every topic is well-formed
// markdown starting with a level-1 heading.

func topicsInReadme(t *testing.T) []string {
	t.Helper()

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopicsListedAndLoadable(t *testing.T) {
	listed := topicsInReadme(t)
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, topic := range listed {
		if _, err := Topic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for _, topic := range all {
		found := false
		for _, l := range listed {
			if l == topic {
				found = true
			}
		}
		if !found {
			t.Errorf("topic %q exists but is not listed in readme.md", topic)
		}
	}
}

func TestTopicsAreWellFormedMarkdown(t *testing.T) {
	all, err := List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	all = append(all, "readme")

	md := goldmark.New()
	for _, topic := range all {
		content, err := Topic(topic)
		if err != nil {
			t.Fatalf("Topic(%q) error = %v", topic, err)
		}
		source := []byte(content)
		doc := md.Parser().Parse(text.NewReader(source))

		var firstHeading *ast.Heading
		ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering || firstHeading != nil {
				return ast.WalkContinue, nil
			}
			if h, ok := n.(*ast.Heading); ok {
				firstHeading = h
				return ast.WalkStop, nil
			}
			return ast.WalkContinue, nil
		})
		if firstHeading == nil {
			t.Errorf("topic %q has no heading", topic)
			continue
		}
		if firstHeading.Level != 1 {
			t.Errorf("topic %q starts with a level %d heading, want 1", topic, firstHeading.Level)
		}
	}
}
