package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	tabtransformer "github.com/youyoungjang/tab-transformer"
	encodeyaml "github.com/youyoungjang/tab-transformer/encode/yaml"
	featureyaml "github.com/youyoungjang/tab-transformer/feature/yaml"
	"github.com/youyoungjang/tab-transformer/sqlout"
	"github.com/youyoungjang/tab-transformer/sqlout/pgadapter"
	"github.com/youyoungjang/tab-transformer/sqlout/sqlite3adapter"
	"github.com/youyoungjang/tab-transformer/table"
	"github.com/youyoungjang/tab-transformer/table/csv"
)

type preprocessCmdConfig struct {
	*rootCmdConfig
	dataRoot      string
	setInput      string
	metadataInput string
	separator     string
	trainRatio    float64
	valRatio      float64
	seed          int64
	output        string
	mapsOutput    string
}

func preprocessCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &preprocessCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "preprocess",
		Short: "Encode, scale and split a record set",
		Long:  `Encode categorical columns to integer codes, rescale continuous columns into [0, 1], binarize the label and split the result into train/val/test partitions`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			pipeline, err := config.Pipeline()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			planner := tabtransformer.NewSplitPlanner()
			planner.TrainRatio = config.trainRatio
			planner.ValRatio = config.valRatio
			if cmd.Flags().Changed("seed") {
				planner.Seed = &config.seed
			}
			data, metadata, err := pipeline.Preprocess()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			train, val, test, err := planner.Split(data)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Split %d rows into train/val/test partitions with %d/%d/%d rows", data.Rows(), train.Rows(), val.Rows(), test.Rows())
			partitions := map[string]*table.Table{"train": train, "val": val, "test": test}
			err = config.WritePartitions(partitions)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			if config.mapsOutput != "" {
				config.Logf("Dumping category maps to %s...", config.mapsOutput)
				err = encodeyaml.WriteCategoryMapsToFile(config.mapsOutput, metadata.Maps)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(6)
				}
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataRoot), "data-root", "d", ".", "path to the data root holding the bank marketing record set")
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", "path to an input delimiter-separated file with the record set (defaults to the bank marketing file under the data root)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the columns of the input file (defaults to the bank marketing schema)")
	cmd.PersistentFlags().StringVarP(&(config.separator), "separator", "s", ";", "field delimiter of the input file")
	cmd.PersistentFlags().Float64VarP(&(config.trainRatio), "train-ratio", "t", tabtransformer.DefaultTrainRatio, "fraction of rows assigned to the train partition")
	cmd.PersistentFlags().Float64VarP(&(config.valRatio), "val-ratio", "r", tabtransformer.DefaultValRatio, "fraction of rows assigned to the val partition")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the shuffle, for reproducible splits (defaults to a fresh shuffle every run)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", ".", "directory to dump train.csv, val.csv and test.csv into, or an SQLite3 (.db) file or PostgreSQL DB connection URL to dump train/val/test tables into")
	cmd.PersistentFlags().StringVarP(&(config.mapsOutput), "maps-output", "M", "", "path to a YML file to dump the category maps of the run into")
	return cmd
}

func (pcc *preprocessCmdConfig) Validate() error {
	if utf8.RuneCountInString(pcc.separator) != 1 {
		return fmt.Errorf("separator flag must be a single character, got %q", pcc.separator)
	}
	if pcc.output == "" {
		return fmt.Errorf("required output flag was set to an empty value")
	}
	return nil
}

func (pcc *preprocessCmdConfig) Pipeline() (*tabtransformer.Pipeline, error) {
	pipeline := tabtransformer.NewBankPipeline(pcc.dataRoot, pcc.rootCmdConfig)
	if pcc.metadataInput != "" {
		pcc.Logf("Reading schema from metadata at %s...", pcc.metadataInput)
		schema, err := featureyaml.ReadSchemaFromFile(pcc.metadataInput)
		if err != nil {
			return nil, err
		}
		pipeline.Continuous = schema.Continuous
		pipeline.Label = schema.Label
		pipeline.Canonical = schema.Canonical
	}
	if pcc.setInput != "" {
		pipeline.Path = pcc.setInput
	}
	sep, _ := utf8.DecodeRuneInString(pcc.separator)
	pipeline.Separator = sep
	return pipeline, nil
}

func (pcc *preprocessCmdConfig) WritePartitions(partitions map[string]*table.Table) error {
	if strings.HasPrefix(pcc.output, "postgresql://") || strings.HasSuffix(pcc.output, ".db") {
		return pcc.writeSQLPartitions(partitions)
	}
	sep, _ := utf8.DecodeRuneInString(pcc.separator)
	for name, t := range partitions {
		path := filepath.Join(pcc.output, name+".csv")
		pcc.Logf("Dumping %s partition to %s...", name, path)
		err := csv.WriteTableToFilePath(path, sep, t)
		if err != nil {
			return err
		}
	}
	return nil
}

func (pcc *preprocessCmdConfig) writeSQLPartitions(partitions map[string]*table.Table) error {
	var adapter sqlout.Adapter
	var err error
	if strings.HasPrefix(pcc.output, "postgresql://") {
		pcc.Logf("Connecting to PostgreSQL database to dump partitions...")
		adapter, err = pgadapter.New(pcc.output)
	} else {
		pcc.Logf("Opening %s to dump partitions...", pcc.output)
		adapter, err = sqlite3adapter.New(pcc.output)
	}
	if err != nil {
		return err
	}
	writer := sqlout.New(adapter)
	defer writer.Close()
	ctx := context.Background()
	for name, t := range partitions {
		pcc.Logf("Dumping %s partition...", name)
		err = writer.WritePartition(ctx, name, t)
		if err != nil {
			return err
		}
	}
	return nil
}
