/*
Package yaml provides methods to parse feature schema specifications,
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/youyoungjang/tab-transformer/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
Schema is the parsed content of a feature metadata document: the names of
the continuous columns, the canonical value orders of categorical columns
that declare one, and the label feature. Columns present in the data but
absent from the document are treated as categorical features whose codes
come from sorting their distinct values.
*/
type Schema struct {
	Continuous []string
	Canonical  map[string][]string
	Label      *feature.LabelFeature
}

/*
ReadSchema takes a slice of bytes with a feature schema in YML and returns
the Schema parsed from it or an error.
The YML is expected to be an object with a features property and a label
property. The value for features should be an object with a property for
each declared feature: a string value of 'continuous' for continuous
features, the string 'categorical' for plain categorical features, or a
list of values for categorical features with a canonical value order. The
label property should be an object with name, positive and negative
string properties.
*/
func ReadSchema(md []byte) (*Schema, error) {
	metadata := struct {
		Features map[string]interface{}
		Label    struct {
			Name     string
			Positive string
			Negative string
		}
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml schema: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	if metadata.Label.Name == "" {
		return nil, fmt.Errorf("metadata file has no label information")
	}
	if metadata.Label.Positive == "" || metadata.Label.Negative == "" {
		return nil, fmt.Errorf("label %s declares no positive/negative values", metadata.Label.Name)
	}
	schema := &Schema{
		Canonical: make(map[string][]string),
		Label:     feature.NewLabelFeature(metadata.Label.Name, metadata.Label.Positive, metadata.Label.Negative),
	}
	for fn, vs := range metadata.Features {
		switch values := vs.(type) {
		case string:
			switch values {
			case "continuous":
				schema.Continuous = append(schema.Continuous, fn)
			case "categorical":
			default:
				return nil, fmt.Errorf("invalid feature declaration %q for %s", values, fn)
			}
		case []interface{}:
			stringVs := []string{}
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			schema.Canonical[fn] = stringVs
		case []string:
			schema.Canonical[fn] = values
		default:
			return nil, fmt.Errorf("invalid feature declaration of type %T", vs)
		}
	}
	return schema, nil
}

/*
ReadSchemaFromFile takes a filepath string, reads its contents and uses
ReadSchema to parse it and return a Schema or an error.
If the file indicated by the filepath cannot be opened for reading an
error will be returned.
*/
func ReadSchemaFromFile(filepath string) (*Schema, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading schema yml file %s: %v", filepath, err)
	}
	schema, err := ReadSchema(md)
	if err != nil {
		err = fmt.Errorf("parsing schema yml file %s: %v", filepath, err)
	}
	return schema, err
}
