package feature

import "fmt"

/*
Partition represents the fixed split of a record set's columns into
categorical features, continuous features and a single label feature.
The three groups cover the columns exactly, with no overlap.
*/
type Partition struct {
	Categorical []*CategoricalFeature
	Continuous  []*ContinuousFeature
	Label       *LabelFeature
}

/*
DerivePartition takes the full ordered column list of a record set, the
names of the continuous columns, the label feature and a map from column
names to canonical value orders, and returns a Partition in which every
column that is neither continuous nor the label is a categorical feature.
Columns named in the canonical map become categorical features with that
fixed value order.

It returns an error if a continuous column or the label is missing from
the column list, if the label is also declared continuous, or if a column
appears more than once.
*/
func DerivePartition(columns []string, continuous []string, label *LabelFeature, canonical map[string][]string) (*Partition, error) {
	seen := make(map[string]bool)
	for _, c := range columns {
		if seen[c] {
			return nil, fmt.Errorf("deriving partition: duplicate column %s", c)
		}
		seen[c] = true
	}
	if !seen[label.Name()] {
		return nil, fmt.Errorf("deriving partition: label column %s not present", label.Name())
	}
	isContinuous := make(map[string]bool)
	for _, c := range continuous {
		if c == label.Name() {
			return nil, fmt.Errorf("deriving partition: label column %s declared continuous", c)
		}
		if !seen[c] {
			return nil, fmt.Errorf("deriving partition: continuous column %s not present", c)
		}
		isContinuous[c] = true
	}
	p := &Partition{Label: label}
	for _, c := range columns {
		switch {
		case c == label.Name():
		case isContinuous[c]:
			p.Continuous = append(p.Continuous, NewContinuousFeature(c))
		case canonical[c] != nil:
			p.Categorical = append(p.Categorical, NewCanonicalCategoricalFeature(c, canonical[c]))
		default:
			p.Categorical = append(p.Categorical, NewCategoricalFeature(c))
		}
	}
	return p, nil
}

/*
Features returns all the features of the partition as a single slice, in
categorical, continuous, label order.
*/
func (p *Partition) Features() []Feature {
	features := make([]Feature, 0, len(p.Categorical)+len(p.Continuous)+1)
	for _, f := range p.Categorical {
		features = append(features, f)
	}
	for _, f := range p.Continuous {
		features = append(features, f)
	}
	features = append(features, p.Label)
	return features
}

/*
CategoricalNames returns the names of the categorical features, in
partition order.
*/
func (p *Partition) CategoricalNames() []string {
	names := make([]string, len(p.Categorical))
	for i, f := range p.Categorical {
		names[i] = f.Name()
	}
	return names
}

/*
ContinuousNames returns the names of the continuous features, in
partition order.
*/
func (p *Partition) ContinuousNames() []string {
	names := make([]string, len(p.Continuous))
	for i, f := range p.Continuous {
		names[i] = f.Name()
	}
	return names
}

/*
ColumnOrder returns the processed column order of the partition:
categorical names, then continuous names, then the label name.
*/
func (p *Partition) ColumnOrder() []string {
	order := append(p.CategoricalNames(), p.ContinuousNames()...)
	return append(order, p.Label.Name())
}
