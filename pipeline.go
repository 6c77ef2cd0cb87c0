/*
Package tabtransformer turns a raw tabular record set into a
deterministic, model-ready, three-way split dataset with reversible
feature encodings: categorical columns become dense integer codes,
continuous columns are rescaled into [0, 1] and the label column becomes
binary.
*/
package tabtransformer

import (
	"fmt"

	"github.com/youyoungjang/tab-transformer/dataset"
	"github.com/youyoungjang/tab-transformer/encode"
	"github.com/youyoungjang/tab-transformer/feature"
	"github.com/youyoungjang/tab-transformer/scale"
	"github.com/youyoungjang/tab-transformer/table"
	"github.com/youyoungjang/tab-transformer/table/csv"
)

/*
Observer receives the pipeline's progress notifications. A nil Observer
silences them. The notifications are a side channel: they are not part of
the data contract.
*/
type Observer interface {
	Logf(format string, a ...interface{})
}

/*
Metadata is the mapping metadata of a pipeline run: the CategoryMap per
categorical feature, and the categorical and continuous feature name
lists, in processed column order. It is what a caller needs to reproduce
the run's encoding on new data.
*/
type Metadata struct {
	Maps        map[string]*encode.CategoryMap
	Categorical []string
	Continuous  []string
}

/*
Result holds the output of a full pipeline run: the three partition
datasets and the CategoryMap collection.
*/
type Result struct {
	Train *dataset.Dataset
	Val   *dataset.Dataset
	Test  *dataset.Dataset
	Maps  map[string]*encode.CategoryMap
}

/*
Pipeline sequences the preprocessing of a delimiter-separated record set:
load, categorical mapping, continuous scaling, label mapping and column
reordering, followed by the three-way split.

Every column of the record set that is not named in Continuous and is not
the label becomes a categorical feature; columns named in Canonical are
encoded following that fixed value order, the rest by sorting their
distinct values.

The continuous scaling is fitted on the full record set before the split,
so scaling statistics flow across the train/val/test boundary. That is a
deliberate property of the pipeline, not an accident of this
implementation.
*/
type Pipeline struct {
	Path       string
	Separator  rune
	Continuous []string
	Label      *feature.LabelFeature
	Canonical  map[string][]string
	Observer   Observer
}

/*
Preprocess loads the record set and applies the three transforms,
returning the processed table, with its columns reordered to categorical,
continuous, label order, together with the run's Metadata. On any error
the run aborts and no partial table is returned.
*/
func (p *Pipeline) Preprocess() (*table.Table, *Metadata, error) {
	p.logf("Loading record set from %s...", p.Path)
	t, partition, err := csv.ReadFromFilePath(p.Path, p.Separator, p.Continuous, p.Label, p.Canonical)
	if err != nil {
		return nil, nil, err
	}
	p.logf("Loaded %d rows with %d columns", t.Rows(), len(t.ColumnNames()))
	maps, err := encode.MapCategorical(t, partition.Categorical)
	if err != nil {
		return nil, nil, err
	}
	p.logf("Mapped categorical features to integer codes")
	err = scale.Apply(t, partition.Continuous)
	if err != nil {
		return nil, nil, err
	}
	p.logf("Scaled continuous features")
	err = encode.MapLabel(t, partition.Label)
	if err != nil {
		return nil, nil, err
	}
	t, err = t.Reorder(partition.ColumnOrder())
	if err != nil {
		return nil, nil, err
	}
	metadata := &Metadata{
		Maps:        maps,
		Categorical: partition.CategoricalNames(),
		Continuous:  partition.ContinuousNames(),
	}
	return t, metadata, nil
}

/*
Datasets runs Preprocess, splits the processed table with the given
planner, or the default unseeded 0.7/0.2 planner when nil, and wraps each
partition in a dataset over the run's feature name lists. It returns the
Result with the three datasets and the CategoryMap collection, or an
error, in which case no partial result is returned.
*/
func (p *Pipeline) Datasets(planner *SplitPlanner) (*Result, error) {
	if planner == nil {
		planner = NewSplitPlanner()
	}
	data, metadata, err := p.Preprocess()
	if err != nil {
		return nil, err
	}
	train, val, test, err := planner.Split(data)
	if err != nil {
		return nil, err
	}
	p.logf("Split %d rows into train/val/test partitions with %d/%d/%d rows", data.Rows(), train.Rows(), val.Rows(), test.Rows())
	result := &Result{Maps: metadata.Maps}
	result.Train, err = dataset.New(train, metadata.Categorical, metadata.Continuous, p.Label.Name())
	if err != nil {
		return nil, fmt.Errorf("wrapping train partition: %v", err)
	}
	result.Val, err = dataset.New(val, metadata.Categorical, metadata.Continuous, p.Label.Name())
	if err != nil {
		return nil, fmt.Errorf("wrapping val partition: %v", err)
	}
	result.Test, err = dataset.New(test, metadata.Categorical, metadata.Continuous, p.Label.Name())
	if err != nil {
		return nil, fmt.Errorf("wrapping test partition: %v", err)
	}
	p.logf("Preprocessing done: categorical features %v, continuous features %v", metadata.Categorical, metadata.Continuous)
	return result, nil
}

func (p *Pipeline) logf(format string, a ...interface{}) {
	if p.Observer != nil {
		p.Observer.Logf(format, a...)
	}
}
