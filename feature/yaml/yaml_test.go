package yaml

import "testing"

const testSchema = `
features:
  age: continuous
  balance: continuous
  job: categorical
  month: [jan, feb, mar, apr]
label:
  name: y
  positive: "yes"
  negative: "no"
`

func TestReadSchema(t *testing.T) {
	schema, err := ReadSchema([]byte(testSchema))
	if err != nil {
		t.Fatalf("reading schema: %v", err)
	}
	continuous := map[string]bool{}
	for _, c := range schema.Continuous {
		continuous[c] = true
	}
	if len(continuous) != 2 || !continuous["age"] || !continuous["balance"] {
		t.Errorf("continuous columns: got %v, want age and balance", schema.Continuous)
	}
	order := schema.Canonical["month"]
	want := []string{"jan", "feb", "mar", "apr"}
	if len(order) != len(want) {
		t.Fatalf("month canonical order: got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("month canonical order: got %v, want %v", order, want)
			break
		}
	}
	if _, ok := schema.Canonical["job"]; ok {
		t.Errorf("job declared categorical got a canonical order")
	}
	if schema.Label.Name() != "y" || schema.Label.Positive() != "yes" || schema.Label.Negative() != "no" {
		t.Errorf("label: got %s (%s/%s), want y (yes/no)", schema.Label.Name(), schema.Label.Positive(), schema.Label.Negative())
	}
}

func TestReadSchemaErrors(t *testing.T) {
	testCases := []struct {
		name string
		md   string
	}{
		{"no features", "label: {name: y, positive: \"yes\", negative: \"no\"}"},
		{"no label", "features: {age: continuous}"},
		{"label without domain", "features: {age: continuous}\nlabel: {name: y}"},
		{"bad declaration", "features: {age: numeric}\nlabel: {name: y, positive: \"yes\", negative: \"no\"}"},
		{"not yml", "features: ["},
	}
	for _, tc := range testCases {
		if _, err := ReadSchema([]byte(tc.md)); err == nil {
			t.Errorf("%s: expected an error reading schema", tc.name)
		}
	}
}
