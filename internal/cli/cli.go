// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/temirov/arbor/internal/config"
	"github.com/temirov/arbor/internal/output"
	"github.com/temirov/arbor/internal/scan"
	"github.com/temirov/arbor/internal/services/clipboard"
	"github.com/temirov/arbor/internal/types"
	"github.com/temirov/arbor/internal/utils"
)

const (
	allFlagName      = "all"
	allFlagShorthand = "a"

	directoriesFlagName      = "directories"
	directoriesFlagShorthand = "d"

	fullPathFlagName      = "full-path"
	fullPathFlagShorthand = "f"

	maxDepthFlagName      = "max-depth"
	maxDepthFlagShorthand = "m"

	noIndentFlagName      = "no-indent"
	noIndentFlagShorthand = "i"

	outputFlagName      = "output"
	outputFlagShorthand = "o"

	copyFlagName      = "copy"
	copyFlagShorthand = "c"

	versionFlagName = "version"
	versionTemplate = "arbor version: %s\n"

	defaultDirectory = "."

	rootUse              = "arbor [directory]"
	rootShortDescription = "arbor renders a directory tree"
	rootLongDescription  = `arbor scans a directory and renders the hierarchy as an indented,
colorized tree with summary counts, or serializes it to a pretty-printed
XML file with --output. Scans are capped at 200 entries.`
	rootUsageExample = `  # Render the current directory including hidden entries
  arbor -a

  # Directories only, two levels deep
  arbor -d -m 2 ./src

  # Write the tree as XML/project.xml
  arbor -o project.xml ./src`

	initUse              = "init"
	initShortDescription = "write a default configuration file"
	initLongDescription  = `Write the default configuration template to the working directory,
or to the global configuration directory with --global.`

	initGlobalFlagName = "global"
	initForceFlagName  = "force"

	allFlagDescription         = "include hidden and dunder-prefixed entries"
	directoriesFlagDescription = "list directories only"
	fullPathFlagDescription    = "label entries with paths relative to the scan root"
	maxDepthFlagDescription    = "limit recursion depth (negative means unlimited)"
	noIndentFlagDescription    = "suppress indentation guide lines"
	outputFlagDescription      = "write the tree in XML format to the named file under the XML output directory"
	copyFlagDescription        = "copy the rendered tree to the system clipboard"
	versionFlagDescription     = "display application version"
	initGlobalFlagDescription  = "write the global configuration instead of the local one"
	initForceFlagDescription   = "overwrite an existing configuration file"

	initializedConfigurationFormat = "Wrote configuration %s\n"
	workingDirectoryErrorFormat    = "unable to determine working directory: %w"
)

// scanOptions stores the parsed flag values of the root command.
type scanOptions struct {
	includeHidden   bool
	directoriesOnly bool
	fullPath        bool
	maxDepth        int
	noIndent        bool
	outputFileName  string
	copyEnabled     bool
	showVersion     bool
}

// Execute runs the arbor application.
func Execute() error {
	rootCommand := NewRootCommand()
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand() *cobra.Command {
	options := &scanOptions{}

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			directoryArgument := defaultDirectory
			if len(arguments) > 0 {
				directoryArgument = arguments[0]
			}
			return runScan(command, directoryArgument, options)
		},
	}

	rootCommand.Flags().BoolVarP(&options.includeHidden, allFlagName, allFlagShorthand, false, allFlagDescription)
	rootCommand.Flags().BoolVarP(&options.directoriesOnly, directoriesFlagName, directoriesFlagShorthand, false, directoriesFlagDescription)
	rootCommand.Flags().BoolVarP(&options.fullPath, fullPathFlagName, fullPathFlagShorthand, false, fullPathFlagDescription)
	rootCommand.Flags().IntVarP(&options.maxDepth, maxDepthFlagName, maxDepthFlagShorthand, types.UnlimitedDepth, maxDepthFlagDescription)
	rootCommand.Flags().BoolVarP(&options.noIndent, noIndentFlagName, noIndentFlagShorthand, false, noIndentFlagDescription)
	rootCommand.Flags().StringVarP(&options.outputFileName, outputFlagName, outputFlagShorthand, "", outputFlagDescription)
	rootCommand.Flags().BoolVarP(&options.copyEnabled, copyFlagName, copyFlagShorthand, false, copyFlagDescription)
	rootCommand.Flags().BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand writing configuration templates.
func createInitCommand() *cobra.Command {
	var writeGlobal bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			writtenPath, initializeError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializeError != nil {
				return initializeError
			}
			fmt.Fprintf(command.OutOrStdout(), initializedConfigurationFormat, writtenPath)
			return nil
		},
	}

	initCommand.Flags().BoolVar(&writeGlobal, initGlobalFlagName, false, initGlobalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, initForceFlagName, false, initForceFlagDescription)
	return initCommand
}

// runScan builds the tree for the directory argument and renders it as text
// or as an XML file depending on the resolved options.
func runScan(command *cobra.Command, directoryArgument string, options *scanOptions) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
	})
	if configurationError != nil {
		return configurationError
	}

	scanConfiguration, copyEnabled := resolveScanConfiguration(command, options, applicationConfiguration)

	buildResult, buildError := scan.Build(directoryArgument, scanConfiguration)
	if buildError != nil {
		return buildError
	}

	if options.outputFileName != "" {
		_, writeError := output.WriteXMLFile(buildResult, applicationConfiguration.Output.Directory, options.outputFileName)
		return writeError
	}

	renderedText := output.RenderText(buildResult, scanConfiguration)
	fmt.Fprintln(command.OutOrStdout(), renderedText)
	if copyEnabled {
		return clipboard.NewService().Copy(renderedText)
	}
	return nil
}

// resolveScanConfiguration overlays configuration-file defaults with the flag
// values that were explicitly set on the command line.
func resolveScanConfiguration(command *cobra.Command, options *scanOptions, applicationConfiguration config.ApplicationConfiguration) (types.Config, bool) {
	scanConfiguration := types.DefaultConfig()
	copyEnabled := false

	if applicationConfiguration.Scan.IncludeHidden != nil {
		scanConfiguration.IncludeHidden = *applicationConfiguration.Scan.IncludeHidden
	}
	if applicationConfiguration.Scan.DirectoriesOnly != nil {
		scanConfiguration.DirectoriesOnly = *applicationConfiguration.Scan.DirectoriesOnly
	}
	if applicationConfiguration.Scan.MaxDepth != nil {
		scanConfiguration.MaxDepth = *applicationConfiguration.Scan.MaxDepth
	}
	if applicationConfiguration.Render.FullPath != nil {
		scanConfiguration.ShowRelativePath = *applicationConfiguration.Render.FullPath
	}
	if applicationConfiguration.Render.NoIndent != nil {
		scanConfiguration.SuppressGuides = *applicationConfiguration.Render.NoIndent
	}
	if applicationConfiguration.Render.Copy != nil {
		copyEnabled = *applicationConfiguration.Render.Copy
	}

	commandFlags := command.Flags()
	if commandFlags.Changed(allFlagName) {
		scanConfiguration.IncludeHidden = options.includeHidden
	}
	if commandFlags.Changed(directoriesFlagName) {
		scanConfiguration.DirectoriesOnly = options.directoriesOnly
	}
	if commandFlags.Changed(maxDepthFlagName) {
		scanConfiguration.MaxDepth = options.maxDepth
	}
	if commandFlags.Changed(fullPathFlagName) {
		scanConfiguration.ShowRelativePath = options.fullPath
	}
	if commandFlags.Changed(noIndentFlagName) {
		scanConfiguration.SuppressGuides = options.noIndent
	}
	if commandFlags.Changed(copyFlagName) {
		copyEnabled = options.copyEnabled
	}

	return scanConfiguration, copyEnabled
}
