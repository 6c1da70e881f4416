package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/amazon-ion/ion-go/ion"
	yaml "gopkg.in/yaml.v3"

	"ttc/common"
)

// writeOutput stores document in requested format. File must not exist.
func writeOutput(path string, doc *Document, format common.OutputFmt, indent bool) error {
	if format == common.OutputFmtSqlite {
		return writeSQLite(path, doc)
	}

	data, err := encode(doc, format, indent)
	if err != nil {
		return fmt.Errorf("unable to encode %s: %w", format, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

func encode(doc *Document, format common.OutputFmt, indent bool) ([]byte, error) {
	switch format {
	case common.OutputFmtJson:
		buf := new(bytes.Buffer)
		enc := json.NewEncoder(buf)
		// style values contain no markup, keep them readable
		enc.SetEscapeHTML(false)
		if indent {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case common.OutputFmtYaml:
		buf := new(bytes.Buffer)
		enc := yaml.NewEncoder(buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case common.OutputFmtIon:
		if indent {
			return ion.MarshalText(doc)
		}
		return ion.MarshalBinary(doc)
	}
	return nil, fmt.Errorf("unsupported output format %s", format)
}
