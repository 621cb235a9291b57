// mtdata is a maintenance tool for the magnetotelluric sample-data
// tree: list families, resolve directories, extract archives, verify
// the tree, and manage the checksum manifest.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kujaku11/mtdata"
)

var baseDir string

var rootCmd = &cobra.Command{
	Use:          "mtdata",
	Short:        "Manage the MT sample-data tree",
	SilenceUsage: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered data families",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var pathCmd = &cobra.Command{
	Use:   "path [key]",
	Short: "Print the directory for a family, extracting its archive first",
	Args:  cobra.ExactArgs(1),
	RunE:  runPath,
}

var extractCmd = &cobra.Command{
	Use:   "extract [key...]",
	Short: "Extract archives for the given families (all when none given)",
	RunE:  runExtract,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every data directory is present and archives are readable",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Manage the checksum manifest",
}

var manifestAlg int

var manifestWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Digest the tree and write manifest.json at the base",
	Args:  cobra.NoArgs,
	RunE:  runManifestWrite,
}

var manifestCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Re-digest the tree against manifest.json",
	Args:  cobra.NoArgs,
	RunE:  runManifestCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&baseDir, "base", "b", "",
		"Base directory of the data tree (defaults to the installed tree)")
	manifestWriteCmd.Flags().IntVar(&manifestAlg, "alg", mtdata.AlgXXHash3,
		"Digest algorithm: 1=xxHash3, 2=FNV-1a, 3=BLAKE2b")

	manifestCmd.AddCommand(manifestWriteCmd)
	manifestCmd.AddCommand(manifestCheckCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(manifestCmd)
}

func registry() *mtdata.Registry {
	if baseDir != "" {
		return mtdata.New(baseDir)
	}
	return mtdata.Default()
}

func runList(cmd *cobra.Command, args []string) error {
	for key, dir := range registry().Enumerate() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", key, dir)
	}
	return nil
}

func runPath(cmd *cobra.Command, args []string) error {
	dir, err := registry().Path(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), dir)
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	r := registry()
	keys := args
	if len(keys) == 0 {
		keys = r.Keys()
	}
	for _, key := range keys {
		dir, err := r.Path(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", key, dir)
	}
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	if err := registry().Verify(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "data tree ok")
	return nil
}

func runManifestWrite(cmd *cobra.Command, args []string) error {
	return registry().WriteManifest(manifestAlg)
}

func runManifestCheck(cmd *cobra.Command, args []string) error {
	bad, err := registry().CheckManifest()
	if err != nil {
		return err
	}
	for _, m := range bad {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", m.Path, m.Reason)
	}
	if len(bad) > 0 {
		return fmt.Errorf("%d file(s) deviate from the manifest", len(bad))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "manifest ok")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
