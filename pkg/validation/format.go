package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iwvelando/calckit/pkg/constants"
)

// OutputFormats lists the result formats the CLI can write.
var OutputFormats = []string{
	constants.OutputFormatPretty,
	constants.OutputFormatCSV,
	constants.OutputFormatJSON,
}

// ValidateOutputFormat rejects formats outside OutputFormats.
func ValidateOutputFormat(format string) error {
	if slices.Contains(OutputFormats, format) {
		return nil
	}
	return fmt.Errorf("unsupported output format %q, expected one of %s", format, strings.Join(OutputFormats, ", "))
}
