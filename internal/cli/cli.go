// Package cli provides the command line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/uicrumb/uicrumb/internal/component"
	"github.com/uicrumb/uicrumb/internal/config"
	"github.com/uicrumb/uicrumb/internal/notify"
	"github.com/uicrumb/uicrumb/internal/resolve"
	"github.com/uicrumb/uicrumb/internal/services/clipboard"
	"github.com/uicrumb/uicrumb/internal/snapshot"
	"github.com/uicrumb/uicrumb/internal/utils"
)

const (
	rootUse              = "uicrumb"
	rootShortDescription = "uicrumb command line interface"
	rootLongDescription  = `uicrumb reconstructs breadcrumb paths for UI components.
Given a snapshot of a component tree it resolves where a target component
lives in the navigation hierarchy (for example "Settings | Editor | Code Style")
and prints the path or copies it to the clipboard.`
	versionFlagName        = "version"
	versionFlagDescription = "display application version"
	versionTemplate        = "uicrumb version: %s\n"

	resolveUse              = "resolve <snapshot.json>"
	resolveAlias            = "r"
	resolveShortDescription = "resolve breadcrumb paths (" + resolveAlias + ")"
	resolveLongDescription  = `Resolve the breadcrumb path of one or more target components in a snapshot.
Use --target to select components by node identifier, --click to supply the
original click point, and --copy to place the result on the clipboard.`
	resolveUsageExample = `  # Resolve one component and copy the path
  uicrumb resolve settings.json --target indent.field --copy

  # Resolve several components with an arrow separator
  uicrumb resolve panel.json --target a --target b --style arrow`

	configUse                  = "config"
	configShortDescription     = "manage configuration"
	configInitUse              = "init"
	configInitShortDescription = "write the default configuration file"

	targetFlagName            = "target"
	targetFlagDescription     = "target component node identifier (repeatable)"
	clickFlagName             = "click"
	clickFlagDescription      = "click point as x,y screen coordinates"
	styleFlagName             = "style"
	styleFlagDescription      = "separator style (pipe, arrow, chevron)"
	separatorFlagName         = "separator"
	separatorFlagDescription  = "literal separator overriding the style"
	valuesFlagName            = "values"
	valuesFlagDescription     = "include adjacent values for grouping labels"
	copyFlagName              = "copy"
	copyFlagDescription       = "copy resolved paths to the clipboard"
	formatFlagName            = "format"
	formatFlagDescription     = "output format (raw or json)"
	configPathFlagName        = "config"
	configPathFlagDescription = "explicit configuration file path"
	globalFlagName            = "global"
	globalFlagDescription     = "write the global configuration file"
	forceFlagName             = "force"
	forceFlagDescription      = "overwrite an existing configuration file"

	formatRaw  = "raw"
	formatJSON = "json"

	invalidFormatMessage     = "invalid format value '%s'"
	invalidStyleMessage      = "invalid separator style '%s'"
	invalidClickPointMessage = "invalid click point '%s'; expected x,y"
	missingTargetMessage     = "at least one --target is required"
	unresolvedTargetFormat   = "Warning: no path resolved for target %s\n"
	unknownTargetFormat      = "unknown target identifier '%s'"
	copiedNotificationFormat = "Copied: %s"
	notificationDuration     = 3 * time.Second
)

// Execute runs the uicrumb application.
func Execute() error {
	rootCommand := createRootCommand()
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(
		createResolveCommand(),
		createConfigCommand(),
	)
	return rootCommand
}

// resolveCommandFlags carries the parsed flag state of the resolve command.
type resolveCommandFlags struct {
	targets         []string
	clickPoint      string
	style           string
	separator       string
	includeValues   bool
	copyToClipboard bool
	format          string
	configPath      string
}

func createResolveCommand() *cobra.Command {
	flags := &resolveCommandFlags{}

	resolveCommand := &cobra.Command{
		Use:     resolveUse,
		Aliases: []string{resolveAlias},
		Short:   resolveShortDescription,
		Long:    resolveLongDescription,
		Example: resolveUsageExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return runResolveCommand(command, arguments[0], flags)
		},
	}
	resolveCommand.Flags().StringArrayVar(&flags.targets, targetFlagName, nil, targetFlagDescription)
	resolveCommand.Flags().StringVar(&flags.clickPoint, clickFlagName, "", clickFlagDescription)
	resolveCommand.Flags().StringVar(&flags.style, styleFlagName, "", styleFlagDescription)
	resolveCommand.Flags().StringVar(&flags.separator, separatorFlagName, "", separatorFlagDescription)
	registerBooleanFlag(resolveCommand.Flags(), &flags.includeValues, valuesFlagName, true, valuesFlagDescription)
	registerBooleanFlag(resolveCommand.Flags(), &flags.copyToClipboard, copyFlagName, false, copyFlagDescription)
	resolveCommand.Flags().StringVar(&flags.format, formatFlagName, "", formatFlagDescription)
	resolveCommand.Flags().StringVar(&flags.configPath, configPathFlagName, "", configPathFlagDescription)
	return resolveCommand
}

// resolvedPath pairs a target identifier with its resolved breadcrumb path.
type resolvedPath struct {
	Target string `json:"target"`
	Path   string `json:"path"`
}

func runResolveCommand(command *cobra.Command, snapshotPath string, flags *resolveCommandFlags) error {
	if len(flags.targets) == 0 {
		return fmt.Errorf(missingTargetMessage)
	}

	applicationConfiguration, configError := config.LoadApplicationConfiguration(config.LoadOptions{
		ExplicitFilePath: flags.configPath,
	})
	if configError != nil {
		return configError
	}
	settings := effectiveResolveSettings(command, applicationConfiguration.Resolve, flags)
	if !isSupportedFormat(settings.format) {
		return fmt.Errorf(invalidFormatMessage, settings.format)
	}

	inputEvent, eventError := parseClickPoint(flags.clickPoint)
	if eventError != nil {
		return eventError
	}

	loadedSnapshot, loadError := snapshot.Load(snapshotPath)
	if loadError != nil {
		return loadError
	}

	resolvedPaths, resolveError := resolveTargets(loadedSnapshot, flags.targets, inputEvent, resolve.Options{
		Separator:     settings.separator,
		IncludeValues: settings.includeValues,
		Registry:      loadedSnapshot,
	})
	if resolveError != nil {
		return resolveError
	}
	if len(resolvedPaths) == 0 {
		return nil
	}

	if renderError := renderResolvedPaths(resolvedPaths, settings.format); renderError != nil {
		return renderError
	}

	if settings.copyToClipboard {
		if copyError := copyResolvedPaths(resolvedPaths); copyError != nil {
			return copyError
		}
	}
	return nil
}

// resolveSettings is the fully merged per-run configuration of the resolve
// command.
type resolveSettings struct {
	separator       string
	includeValues   bool
	copyToClipboard bool
	format          string
}

// effectiveResolveSettings merges configuration defaults with explicitly set
// command line flags; a flag the user set always wins.
func effectiveResolveSettings(command *cobra.Command, configuration config.ResolveCommandConfiguration, flags *resolveCommandFlags) resolveSettings {
	settings := resolveSettings{
		separator:       configuration.EffectiveSeparator(),
		includeValues:   true,
		copyToClipboard: false,
		format:          formatRaw,
	}
	if configuration.Values != nil {
		settings.includeValues = *configuration.Values
	}
	if configuration.Clipboard != nil {
		settings.copyToClipboard = *configuration.Clipboard
	}
	if configuration.Format != "" {
		settings.format = configuration.Format
	}
	if command.Flags().Changed(styleFlagName) {
		if literal, known := config.SeparatorForStyle(flags.style); known {
			settings.separator = literal
		}
	}
	if command.Flags().Changed(separatorFlagName) {
		settings.separator = flags.separator
	}
	if command.Flags().Changed(valuesFlagName) {
		settings.includeValues = flags.includeValues
	}
	if command.Flags().Changed(copyFlagName) {
		settings.copyToClipboard = flags.copyToClipboard
	}
	if command.Flags().Changed(formatFlagName) {
		settings.format = flags.format
	}
	return settings
}

func isSupportedFormat(format string) bool {
	switch format {
	case formatRaw, formatJSON:
		return true
	default:
		return false
	}
}

// parseClickPoint parses the optional x,y click coordinate flag.
func parseClickPoint(clickValue string) (component.InputEvent, error) {
	if clickValue == "" {
		return nil, nil
	}
	coordinates := strings.Split(clickValue, ",")
	if len(coordinates) != 2 {
		return nil, fmt.Errorf(invalidClickPointMessage, clickValue)
	}
	x, xError := strconv.Atoi(strings.TrimSpace(coordinates[0]))
	y, yError := strconv.Atoi(strings.TrimSpace(coordinates[1]))
	if xError != nil || yError != nil {
		return nil, fmt.Errorf(invalidClickPointMessage, clickValue)
	}
	return component.PointerEvent{Location: component.Point{X: x, Y: y}}, nil
}

// resolveTargets resolves every requested target against the snapshot. The
// snapshot is immutable, so multiple targets resolve concurrently; result
// order follows the requested target order. Targets that resolve to nothing
// are reported as warnings and contribute no output.
func resolveTargets(loadedSnapshot *snapshot.Snapshot, targets []string, inputEvent component.InputEvent, options resolve.Options) ([]resolvedPath, error) {
	resolvedByIndex := make([]*resolvedPath, len(targets))
	var group errgroup.Group
	for targetIndex, targetIdentifier := range targets {
		targetIndex, targetIdentifier := targetIndex, targetIdentifier
		group.Go(func() error {
			targetComponent, known := loadedSnapshot.Lookup(targetIdentifier)
			if !known {
				return fmt.Errorf(unknownTargetFormat, targetIdentifier)
			}
			if pathText, ok := resolve.Path(targetComponent, inputEvent, options); ok {
				resolvedByIndex[targetIndex] = &resolvedPath{Target: targetIdentifier, Path: pathText}
			}
			return nil
		})
	}
	if waitError := group.Wait(); waitError != nil {
		return nil, waitError
	}
	var resolvedPaths []resolvedPath
	for targetIndex, resolved := range resolvedByIndex {
		if resolved == nil {
			fmt.Fprintf(os.Stderr, unresolvedTargetFormat, targets[targetIndex])
			continue
		}
		resolvedPaths = append(resolvedPaths, *resolved)
	}
	return resolvedPaths, nil
}

func renderResolvedPaths(resolvedPaths []resolvedPath, format string) error {
	switch format {
	case formatJSON:
		encodedPaths, encodeError := json.MarshalIndent(resolvedPaths, "", "  ")
		if encodeError != nil {
			return fmt.Errorf("encode resolved paths: %w", encodeError)
		}
		fmt.Println(string(encodedPaths))
	default:
		for _, resolved := range resolvedPaths {
			fmt.Println(resolved.Path)
		}
	}
	return nil
}

// copyResolvedPaths places the resolved paths on the system clipboard and
// shows a transient confirmation through the notification manager.
func copyResolvedPaths(resolvedPaths []resolvedPath) error {
	copier := clipboard.NewService()
	pathTexts := make([]string, 0, len(resolvedPaths))
	for _, resolved := range resolvedPaths {
		pathTexts = append(pathTexts, resolved.Path)
	}
	var copyError error
	if len(pathTexts) == 1 {
		copyError = copier.CopyPath(pathTexts[0])
	} else {
		copyError = copier.CopyPaths(pathTexts)
	}
	if copyError != nil {
		return fmt.Errorf("copy to clipboard: %w", copyError)
	}
	notificationManager := notify.NewManager(stderrSink{})
	notificationManager.Show(fmt.Sprintf(copiedNotificationFormat, pathTexts[0]), notificationDuration)
	return nil
}

// stderrSink displays notifications as status lines on standard error.
type stderrSink struct{}

func (stderrSink) Display(message string) {
	fmt.Fprintln(os.Stderr, message)
}

func (stderrSink) Clear() {}

func createConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   configUse,
		Short: configShortDescription,
	}
	var useGlobalTarget bool
	var forceOverwrite bool
	initCommand := &cobra.Command{
		Use:   configInitUse,
		Short: configInitShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if useGlobalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initError != nil {
				return initError
			}
			fmt.Printf("Configuration written to %s\n", writtenPath)
			return nil
		},
	}
	registerBooleanFlag(initCommand.Flags(), &useGlobalTarget, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &forceOverwrite, forceFlagName, false, forceFlagDescription)
	configCommand.AddCommand(initCommand)
	return configCommand
}
