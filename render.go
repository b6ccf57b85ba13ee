package tailwind

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// SRC_DIR_TOKEN is replaced with the resolved source directory everywhere
// it appears in the serialized tailwind config, including inside string
// values, the replacement is purely textual
const SRC_DIR_TOKEN = "{src_dir}"

// renderConfig serializes the tailwind config document to pretty printed
// json and expands every occurrence of SRC_DIR_TOKEN. both the jit setup
// and the compiled build go through this function so the two modes can
// never drift apart in how they read the config.
func renderConfig(document map[string]any, srcDir string) (string, error) {
	raw, err := json.MarshalIndent(document, "", "    ")

	if err != nil {
		return "", err
	}

	replacement, err := escapePath(srcDir)

	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(string(raw), SRC_DIR_TOKEN, replacement), nil
}

// escapePath encodes the path the way it would appear inside a json string,
// a quote or backslash in the source directory must not be able to break
// out of the surrounding document
func escapePath(path string) (string, error) {
	if !utf8.ValidString(path) {
		return "", ErrInvalidSrcPath
	}

	raw, err := json.Marshal(path)

	if err != nil {
		return "", err
	}

	return string(raw[1 : len(raw)-1]), nil
}
