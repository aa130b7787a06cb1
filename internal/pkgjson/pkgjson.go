package pkgjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// FileName is the manifest file rewritten after a template is copied.
const FileName = "package.json"

type member struct {
	key   string
	value json.RawMessage
}

// SetName returns data with the top-level "name" member set to name. Member
// order and the raw encoding of all other values are preserved; a missing
// "name" is appended. The output is indented with two spaces and ends with a
// newline.
func SetName(data []byte, name string) ([]byte, error) {
	members, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	encodedName, err := encodeString(name)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range members {
		if members[i].key == "name" {
			members[i].value = encodedName
			found = true
			break
		}
	}
	if !found {
		members = append(members, member{key: "name", value: encodedName})
	}

	return encodeObject(members)
}

// SetNameFile applies SetName to the file at path in place.
func SetNameFile(path, name string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out, err := SetName(data, name)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// decodeObject reads a single top-level JSON object as an ordered member list.
// A repeated key keeps the position of its first occurrence and the value of
// its last, matching how JavaScript engines parse objects.
func decodeObject(data []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("package.json must contain a JSON object")
	}

	var members []member
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding JSON: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decoding JSON: unexpected token %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decoding value of %q: %w", key, err)
		}
		if i, dup := index[key]; dup {
			members[i].value = value
			continue
		}
		index[key] = len(members)
		members = append(members, member{key: key, value: value})
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("decoding JSON: unexpected data after top-level object")
	}

	return members, nil
}

func encodeObject(members []member) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := encodeString(m.key)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(m.value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("formatting JSON: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// encodeString encodes s as a JSON string without HTML escaping.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encoding %q: %w", s, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
