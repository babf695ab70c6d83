// Package conllu reads the gold tokenization from a CoNLL-U file.
//
// Only the word forms and the document and sentence boundaries are kept;
// every other column is ignored.
package conllu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/corefclean/file"
	sent "github.com/revelaction/corefclean/sentence"
)

const (
	newDocPrefix = "# newdoc id"
	sentIdPrefix = "# sent_id"

	maxLineSize = 1024 * 1024
)

// ReadFile reads the gold documents of the CoNLL-U file at path. Files
// ending in .xz are decompressed.
func ReadFile(path string, zeroMentions bool) (sent.Library, error) {
	f, err := file.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lib, err := Read(f, zeroMentions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Read parses CoNLL-U into documents of sentences of word forms.
//
// A "# newdoc id" comment starts a new document, a "# sent_id" comment a new
// sentence. Multiword token ranges are skipped. Empty nodes (ids with a dot)
// are zero mentions and are kept only if zeroMentions is set.
func Read(r io.Reader, zeroMentions bool) (sent.Library, error) {
	var (
		docs   sent.Library
		doc    sent.Doc
		tokens []string
		lineNo int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			beginsDoc := strings.HasPrefix(line, newDocPrefix)

			if beginsDoc || strings.HasPrefix(line, sentIdPrefix) {
				if len(tokens) > 0 {
					doc.Sentences = append(doc.Sentences, tokens)
				}
				tokens = nil
			}

			if beginsDoc {
				if len(doc.Sentences) > 0 {
					docs = append(docs, doc)
				}
				doc = sent.Doc{Id: docId(line)}
			}

			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected at least 2 columns, got %d", lineNo, len(fields))
		}

		id, form := fields[0], fields[1]

		if strings.Contains(id, "-") {
			continue
		}

		if !zeroMentions && strings.Contains(id, ".") {
			continue
		}

		tokens = append(tokens, form)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}

	if tokens == nil {
		tokens = []string{}
	}
	doc.Sentences = append(doc.Sentences, tokens)
	docs = append(docs, doc)

	return docs, nil
}

// docId returns the value of a "# newdoc id = value" comment.
func docId(line string) string {
	_, value, found := strings.Cut(line, "=")
	if !found {
		return ""
	}
	return strings.TrimSpace(value)
}
