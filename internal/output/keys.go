package output

import (
	"reflect"
	"sort"
	"strings"

	"github.com/iwvelando/calckit/pkg/format"
)

func sortedKeys(d format.Display) []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" {
		return sf.Name
	}
	return name
}

// columnOrder returns the JSON names of the records held in the sequence
// field of result, in declaration order.
func columnOrder(result any, field string) []string {
	v := reflect.Indirect(reflect.ValueOf(result))
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < v.NumField(); i++ {
		sf := v.Type().Field(i)
		if jsonName(sf) != field || sf.Type.Kind() != reflect.Slice {
			continue
		}
		elem := sf.Type.Elem()
		if elem.Kind() != reflect.Struct {
			return nil
		}
		var cols []string
		for j := 0; j < elem.NumField(); j++ {
			if name := jsonName(elem.Field(j)); elem.Field(j).IsExported() && name != "-" {
				cols = append(cols, name)
			}
		}
		return cols
	}
	return nil
}
