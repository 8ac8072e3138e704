package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/pslcheck/cli/internal/ui"
	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/validation"
)

// NewCapabilitiesCommand creates the capabilities command.
func NewCapabilitiesCommand() *cobra.Command {
	var (
		provider  string
		algorithm string
		markdown  bool
	)

	cmd := &cobra.Command{
		Use:   "capabilities",
		Short: "List a connector's operator classes and the fields they index",
		Long: `List every operator class with its index algorithm, the native types it
accepts and the field type it falls back to when no native type is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := validation.NewBuiltinConnectors()
			connector := registry.GetConnector(provider)
			if connector == nil {
				return fmt.Errorf("unknown provider %q, expected one of %s", provider, strings.Join(registry.ProviderNames(), ", "))
			}

			var filter *database.IndexAlgorithm
			if algorithm != "" {
				algo, ok := database.ParseIndexAlgorithm(algorithm)
				if !ok || !connector.SupportsIndexAlgorithm(algo) {
					return fmt.Errorf("unknown index algorithm %q, expected one of %s", algorithm, algorithmNames(connector))
				}
				filter = &algo
			}

			if markdown {
				return ui.PrintMarkdown(capabilitiesMarkdown(connector, filter))
			}
			ui.PrintInfo("%s", connectorSummary(connector))
			return ui.PrintTable(capabilityHeaders, capabilityRows(filter))
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "postgresql", "Datasource provider whose connector is listed")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Only list classes of one index algorithm, e.g. Gin")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render the tables as markdown")

	return cmd
}

var capabilityHeaders = []string{"Operator class", "Algorithm", "Native types", "Without native type"}

func algorithmNames(connector validation.Connector) string {
	algos := connector.SupportedIndexAlgorithms()
	names := make([]string, 0, len(algos))
	for _, algo := range algos {
		names = append(names, algo.String())
	}
	return strings.Join(names, ", ")
}

func connectorSummary(connector validation.Connector) string {
	return fmt.Sprintf("%s connector (provider %q), default index type %s",
		connector.Name(), connector.ProviderName(), connector.DefaultIndexAlgorithm())
}

// capabilityRows renders the operator class table, optionally for one algorithm.
func capabilityRows(filter *database.IndexAlgorithm) [][]string {
	var rows [][]string
	for _, class := range database.OperatorClasses() {
		rule, ok := validation.PostgresOperatorClassRule(class)
		if !ok || (filter != nil && rule.Algorithm != *filter) {
			continue
		}
		rows = append(rows, []string{
			class.String(),
			rule.Algorithm.String(),
			nativeTypeList(rule.NativeTypes),
			fallbackDescription(rule),
		})
	}
	return rows
}

func nativeTypeList(types []validation.PostgresType) string {
	if len(types) == 0 {
		return "any"
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

func fallbackDescription(rule validation.OperatorClassRule) string {
	switch {
	case rule.RequiresList:
		return "any list"
	case rule.Fallback != nil:
		return string(*rule.Fallback)
	default:
		return "-"
	}
}

// capabilitiesMarkdown renders the operator class table and the default
// class of every algorithm as markdown.
func capabilitiesMarkdown(connector validation.Connector, filter *database.IndexAlgorithm) string {
	var b strings.Builder

	b.WriteString("# Operator classes\n\n")
	b.WriteString(connectorSummary(connector) + ".\n\n")
	b.WriteString("| " + strings.Join(capabilityHeaders, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(capabilityHeaders)) + "\n")
	for _, row := range capabilityRows(filter) {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	b.WriteString("\n# Default operator classes\n\n")
	b.WriteString("| Algorithm | Native types | Without native type |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, algo := range connector.SupportedIndexAlgorithms() {
		if filter != nil && algo != *filter {
			continue
		}
		rule := validation.PostgresDefaultOperatorClassRule(algo)
		natives, scalars := "any", "any"
		if !rule.Unconstrained {
			natives = nativeTypeList(rule.NativeTypes)
			if len(rule.NativeTypes) == 0 {
				natives = "-"
			}
			scalars = scalarTypeList(rule)
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", algo, natives, scalars)
	}
	return b.String()
}

func scalarTypeList(rule validation.DefaultOperatorClassRule) string {
	names := make([]string, 0, len(rule.ScalarTypes)+1)
	for _, st := range rule.ScalarTypes {
		names = append(names, string(st))
	}
	if rule.AnyList {
		names = append(names, "any list")
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
