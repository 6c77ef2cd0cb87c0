package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tabtransformer "github.com/youyoungjang/tab-transformer"
)

const (
	// VersionMajor is the major number in tabprep's version
	VersionMajor = 0
	// VersionMinor is the minor number in tabprep's version
	VersionMinor = 1
	// VersionPatch is the patch number in tabprep's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tabprep",
		Long:  `All software has versions. This is tabprep's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tabprep v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print where the default record set comes from",
		Long:  `Print the source of the bank marketing record set the preprocess command consumes by default`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(tabtransformer.BankInfo())
		},
	}
}
