package docs

import (
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code.
	// It checks that every topic listed in readme.md can be loaded, that
	// every topic file is listed in readme.md, and that each topic is valid
	// markdown starting with a heading.

	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("failed to read readme topic: %v", err)
	}

	var topicsInReadme []string
	topicRegex := regexp.MustCompile(`^\*\s+\*{0,2}([^:*]+)\*{0,2}:.*$`)
	for _, line := range strings.Split(readme, "\n") {
		if matches := topicRegex.FindStringSubmatch(line); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
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

	all, err := AllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}
	listed := make(map[string]bool, len(topicsInReadme))
	for _, topic := range topicsInReadme {
		listed[topic] = true
	}
	for _, topic := range all {
		if !listed[topic] {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}

	// Every topic (readme included) must parse as markdown with a document
	// title.
	md := goldmark.New()
	for _, topic := range append([]string{"readme"}, all...) {
		t.Run("parse_"+topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("failed to get topic %q: %v", topic, err)
			}
			doc := md.Parser().Parse(text.NewReader([]byte(content)))
			first := doc.FirstChild()
			if first == nil || first.Kind() != ast.KindHeading {
				t.Errorf("topic %q does not start with a heading", topic)
			}
		})
	}
}
