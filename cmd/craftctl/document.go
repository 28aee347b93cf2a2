package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/SylphxAI/craft/patch"
	"github.com/SylphxAI/craft/pkg/value"
)

// docCharmap resolves the --encoding flag to a character map. UTF-8 (the
// default) needs no conversion and resolves to nil.
func docCharmap(name string) (*charmap.Charmap, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "windows-1251", "cp1251":
		return charmap.Windows1251, nil
	case "cp437", "ibm437":
		return charmap.CodePage437, nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
}

// loadDocument reads and decodes a JSON document file, converting from
// the configured encoding first.
func loadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	cm, err := docCharmap(encoding)
	if err != nil {
		return nil, err
	}
	if cm != nil {
		data, err = cm.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s text: %w", encoding, err)
		}
	}
	doc, err := value.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}

// writeDocument serializes a document and writes it back, converting to
// the configured encoding.
func writeDocument(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	data = append(data, '\n')
	cm, err := docCharmap(encoding)
	if err != nil {
		return err
	}
	if cm != nil {
		data, err = cm.NewEncoder().Bytes(data)
		if err != nil {
			return fmt.Errorf("failed to encode %s text: %w", encoding, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// parseValueArg interprets a value argument. JSON syntax is honored
// (numbers, booleans, null, objects, arrays); anything that does not
// parse as JSON is taken as a plain string. raw forces the string
// reading.
func parseValueArg(s string, raw bool) any {
	if raw {
		return s
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return value.FromAny(v)
}

// writeResult routes a produced document to its output target: the
// source file by default (in-place), another file with -o, stdout with
// "-o -".
func writeResult(docFile, out string, doc any) error {
	if out == "-" {
		return printJSON(doc)
	}
	if out == "" {
		out = docFile
	}
	return writeDocument(out, doc)
}

// reportPatches prints the patch ops a mutating command generated.
func reportPatches(ops []patch.Op) error {
	if jsonOut {
		return printJSON(ops)
	}
	printInfo("\nPatches:\n")
	for _, op := range ops {
		printInfo("  %s\n", op)
	}
	return nil
}
