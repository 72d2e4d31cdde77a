package response

import (
	"encoding/json"
	"io"
	"strings"

	er "github.com/mcorbin/corbierror"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable   = "table"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

// Formats lists the accepted values of the --format flag.
var Formats = []string{FormatTable, FormatJSON, FormatYAML, FormatMsgpack}

// IsExportFormat reports whether format is a document format rather than the
// terminal table.
func IsExportFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatJSON, FormatYAML, FormatMsgpack:
		return true
	}
	return false
}

// Encode writes v to w in the given document format.
func Encode(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	case FormatMsgpack:
		encoder := msgpack.NewEncoder(w)
		return encoder.Encode(v)
	default:
		return er.Newf("unsupported export format %q", er.BadRequest, true, format)
	}
}
