/*
Package yaml provides methods to dump a pipeline run's CategoryMap
collection to a YAML document and to load it back, so the encoding can be
reproduced on new data by a later run or another tool.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/youyoungjang/tab-transformer/encode"
	"github.com/youyoungjang/tab-transformer/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
WriteCategoryMaps takes a collection of CategoryMaps by feature name and
returns a YAML document with a maps property holding, for each feature,
its value domain in code order: the i-th listed value encodes to code i.
*/
func WriteCategoryMaps(maps map[string]*encode.CategoryMap) ([]byte, error) {
	doc := struct {
		Maps map[string][]string `yaml:"maps"`
	}{Maps: make(map[string][]string)}
	for name, m := range maps {
		doc.Maps[name] = m.Values()
	}
	md, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("dumping category maps to yml: %v", err)
	}
	return md, nil
}

/*
WriteCategoryMapsToFile takes a filepath string and a collection of
CategoryMaps and writes the document produced by WriteCategoryMaps to the
file the filepath points to, creating it if needed.
*/
func WriteCategoryMapsToFile(filepath string, maps map[string]*encode.CategoryMap) error {
	md, err := WriteCategoryMaps(maps)
	if err != nil {
		return err
	}
	err = ioutil.WriteFile(filepath, md, 0644)
	if err != nil {
		return fmt.Errorf("writing category maps yml file %s: %v", filepath, err)
	}
	return nil
}

/*
ReadCategoryMaps takes a slice of bytes with a YAML document produced by
WriteCategoryMaps and returns the CategoryMap collection parsed from it
or an error.
*/
func ReadCategoryMaps(md []byte) (map[string]*encode.CategoryMap, error) {
	doc := struct {
		Maps map[string][]string `yaml:"maps"`
	}{}
	err := yaml.Unmarshal(md, &doc)
	if err != nil {
		return nil, fmt.Errorf("parsing category maps yml: %v", err)
	}
	if doc.Maps == nil {
		return nil, fmt.Errorf("category maps document has no maps property")
	}
	maps := make(map[string]*encode.CategoryMap)
	for name, values := range doc.Maps {
		m, err := encode.FitCategoryMap(feature.NewCanonicalCategoricalFeature(name, values), nil)
		if err != nil {
			return nil, err
		}
		maps[name] = m
	}
	return maps, nil
}

/*
ReadCategoryMapsFromFile takes a filepath string, reads its contents and
uses ReadCategoryMaps to parse it and return a CategoryMap collection or
an error.
*/
func ReadCategoryMapsFromFile(filepath string) (map[string]*encode.CategoryMap, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading category maps yml file %s: %v", filepath, err)
	}
	maps, err := ReadCategoryMaps(md)
	if err != nil {
		err = fmt.Errorf("parsing category maps yml file %s: %v", filepath, err)
	}
	return maps, err
}
