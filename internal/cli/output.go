package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// printOutput writes payload in the requested format. text is used as is
// for the text format.
func printOutput(w io.Writer, format string, payload any, text string) error {
	switch format {
	case formatText, "":
		_, err := io.WriteString(w, text)
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case formatYAML:
		return writeYAML(w, payload)
	default:
		return fmt.Errorf("unsupported format %q (expected text|json|yaml)", format)
	}
}

// writeYAML renders payload through its JSON encoding so that YAML keys and
// scalar forms match the HTTP API exactly.
func writeYAML(w io.Writer, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	blockStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle clears the flow and quoting styles inherited from JSON.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
